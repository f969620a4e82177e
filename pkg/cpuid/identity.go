package cpuid

// VendorInfo is the leaf 0 manufacturer identification: twelve ASCII
// bytes split across EBX, EDX and ECX, in that order.
type VendorInfo struct {
	EBX uint32
	ECX uint32
	EDX uint32
}

func (v VendorInfo) String() string {
	return regString(regBytes(v.EBX, v.EDX, v.ECX))
}

// ProcessorSerial is the leaf 3 processor serial number (Pentium III
// only; zero elsewhere). The upper 32 bits of the 96-bit serial come
// from the leaf 1 signature.
type ProcessorSerial struct {
	ECX uint32
	EDX uint32
}

// Serial returns the lower 64 bits of the processor serial number.
func (p ProcessorSerial) Serial() uint64 {
	return uint64(p.EDX)<<32 | uint64(p.ECX)
}

// ProcessorBrandString is the up to 48-byte processor name string
// packed into leaves 0x8000_0002 through 0x8000_0004.
type ProcessorBrandString struct {
	data [3]Result
}

func (b ProcessorBrandString) String() string {
	var regs []uint32
	for _, r := range b.data {
		regs = append(regs, r.EAX, r.EBX, r.ECX, r.EDX)
	}
	return regString(regBytes(regs...))
}

// DirectCacheAccessInfo is the leaf 9 direct cache access capability
// word (the value of IA32_PLATFORM_DCA_CAP).
type DirectCacheAccessInfo struct {
	EAX uint32
}

// CapValue returns the raw DCA capability value.
func (d DirectCacheAccessInfo) CapValue() uint32 { return d.EAX }
