package cpuid

// rawCpuid executes the CPUID instruction on the current core.
// Implemented in cpuid_amd64.s.
func rawCpuid(leaf, subleaf uint32) (eax, ebx, ecx, edx uint32)

// NativeSource returns a LeafSource that executes the CPUID instruction
// directly. Results describe whichever core the calling goroutine is
// scheduled on; pin the OS thread if that matters.
func NativeSource() LeafSource {
	return func(leaf, subleaf uint32) Result {
		a, b, c, d := rawCpuid(leaf, subleaf)
		return Result{EAX: a, EBX: b, ECX: c, EDX: d}
	}
}
