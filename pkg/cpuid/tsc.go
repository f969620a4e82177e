package cpuid

// TscInfo is the leaf 0x15 time stamp counter and nominal core crystal
// clock enumeration (Intel).
type TscInfo struct {
	EAX uint32
	EBX uint32
	ECX uint32
}

// Denominator returns the denominator of the TSC to core crystal clock
// ratio.
func (t TscInfo) Denominator() uint32 { return t.EAX }

// Numerator returns the numerator of the TSC to core crystal clock
// ratio; zero when the ratio is not enumerated.
func (t TscInfo) Numerator() uint32 { return t.EBX }

// NominalFrequency returns the core crystal clock frequency in Hz;
// zero when not enumerated.
func (t TscInfo) NominalFrequency() uint32 { return t.ECX }

// TscFrequency returns the TSC frequency in Hz, or zero when the leaf
// does not enumerate enough information to compute it.
func (t TscInfo) TscFrequency() uint64 {
	if t.EAX == 0 || t.EBX == 0 || t.ECX == 0 {
		return 0
	}
	return uint64(t.ECX) * uint64(t.EBX) / uint64(t.EAX)
}

// ProcessorFrequencyInfo is the leaf 0x16 processor frequency
// enumeration (Intel). All values are in MHz and informational only.
type ProcessorFrequencyInfo struct {
	EAX uint32
	EBX uint32
	ECX uint32
}

// BaseFrequency returns the processor base frequency in MHz.
func (p ProcessorFrequencyInfo) BaseFrequency() uint32 { return field(p.EAX, 15, 0) }

// MaxFrequency returns the maximum frequency in MHz.
func (p ProcessorFrequencyInfo) MaxFrequency() uint32 { return field(p.EBX, 15, 0) }

// BusFrequency returns the bus (reference) frequency in MHz.
func (p ProcessorFrequencyInfo) BusFrequency() uint32 { return field(p.ECX, 15, 0) }
