//go:build !amd64
// +build !amd64

package cpuid

// NativeSource returns a LeafSource for platforms without the CPUID
// instruction. Every leaf reads as zero, so all queries beyond leaf 0
// report absence.
func NativeSource() LeafSource {
	return func(leaf, subleaf uint32) Result {
		return Result{}
	}
}
