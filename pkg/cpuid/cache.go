package cpuid

// CacheType classifies a deterministic cache parameter entry.
type CacheType uint32

const (
	// CacheTypeNull terminates the cache parameter sub-leaf sequence.
	CacheTypeNull CacheType = iota
	CacheTypeData
	CacheTypeInstruction
	CacheTypeUnified
)

func (t CacheType) String() string {
	switch t {
	case CacheTypeData:
		return "Data"
	case CacheTypeInstruction:
		return "Instruction"
	case CacheTypeUnified:
		return "Unified"
	}
	return "Null"
}

// CacheParameter describes one cache level reported by the
// deterministic cache parameter leaf (Intel leaf 4, AMD leaf
// 0x8000_001D). The associativity, partition, line size and set
// fields are stored by the hardware as value-1; the accessors return
// the corrected capacities.
type CacheParameter struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32
}

// Type returns the cache type; CacheTypeNull means the entry is past
// the last cache level.
func (c CacheParameter) Type() CacheType { return CacheType(field(c.EAX, 4, 0)) }

// Level returns the cache level (1, 2, 3, ...).
func (c CacheParameter) Level() uint32 { return field(c.EAX, 7, 5) }

// SelfInitializing reports whether the cache initializes itself
// without software intervention.
func (c CacheParameter) SelfInitializing() bool { return bitSet(c.EAX, 8) }

// FullyAssociative reports whether the cache is fully associative.
func (c CacheParameter) FullyAssociative() bool { return bitSet(c.EAX, 9) }

// MaxCoresForCache returns the maximum number of logical processors
// sharing this cache.
func (c CacheParameter) MaxCoresForCache() uint32 { return field(c.EAX, 25, 14) + 1 }

// MaxCoresForPackage returns the maximum number of processor cores in
// the physical package.
func (c CacheParameter) MaxCoresForPackage() uint32 { return field(c.EAX, 31, 26) + 1 }

// CoherencyLineSize returns the system coherency line size in bytes.
func (c CacheParameter) CoherencyLineSize() uint32 { return field(c.EBX, 11, 0) + 1 }

// PhysicalLinePartitions returns the number of physical line
// partitions.
func (c CacheParameter) PhysicalLinePartitions() uint32 { return field(c.EBX, 21, 12) + 1 }

// Associativity returns the ways of associativity.
func (c CacheParameter) Associativity() uint32 { return field(c.EBX, 31, 22) + 1 }

// Sets returns the number of sets.
func (c CacheParameter) Sets() uint32 { return c.ECX + 1 }

// WriteBackInvalidate reports whether WBINVD/INVD from a sharing
// thread does not invalidate lower-level caches of non-sharing
// threads.
func (c CacheParameter) WriteBackInvalidate() bool { return bitSet(c.EDX, 0) }

// Inclusive reports whether the cache is inclusive of lower levels.
func (c CacheParameter) Inclusive() bool { return bitSet(c.EDX, 1) }

// ComplexIndexing reports whether the cache uses a complex function to
// index its sets.
func (c CacheParameter) ComplexIndexing() bool { return bitSet(c.EDX, 2) }

// Size returns the total cache capacity in bytes:
// associativity * partitions * line size * sets.
func (c CacheParameter) Size() uint64 {
	return uint64(c.Associativity()) * uint64(c.PhysicalLinePartitions()) *
		uint64(c.CoherencyLineSize()) * uint64(c.Sets())
}

// CacheParametersIter lazily enumerates the cache hierarchy sub-leaves
// of one processor. The sequence terminates when the hardware reports
// a null cache type.
type CacheParametersIter struct {
	src  LeafSource
	leaf uint32
	next uint32
}

// Next returns the next cache level. ok is false once the processor
// reports no further caches.
func (it *CacheParametersIter) Next() (CacheParameter, bool) {
	r := it.src(it.leaf, it.next)
	p := CacheParameter{EAX: r.EAX, EBX: r.EBX, ECX: r.ECX, EDX: r.EDX}
	if p.Type() == CacheTypeNull {
		return CacheParameter{}, false
	}
	it.next++
	return p, true
}

// Reset restarts the iteration at sub-leaf 0.
func (it *CacheParametersIter) Reset() { it.next = 0 }

// CacheInfo is the legacy leaf 2 cache and TLB descriptor report: up
// to fifteen one-byte descriptors packed into the four registers.
type CacheInfo struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32
}

// Descriptors returns the valid descriptor bytes. A register whose
// top bit is set carries no descriptors, and the low byte of EAX
// encodes the number of times the leaf must be queried (always 1 on
// every processor that implements the leaf), so both are skipped.
func (c CacheInfo) Descriptors() []CacheDescriptor {
	var out []CacheDescriptor
	for i, reg := range []uint32{c.EAX, c.EBX, c.ECX, c.EDX} {
		if bitSet(reg, 31) {
			continue
		}
		bytes := regBytes(reg)
		if i == 0 {
			bytes = bytes[1:]
		}
		for _, b := range bytes {
			if b == 0 {
				continue
			}
			d, known := cacheDescriptorTable[b]
			d.Raw = b
			d.Known = known
			out = append(out, d)
		}
	}
	return out
}

// DescriptorKind classifies a leaf 2 descriptor byte.
type DescriptorKind int

const (
	DescriptorNull DescriptorKind = iota
	DescriptorData
	DescriptorInstruction
	DescriptorUnified
	DescriptorTLB
	DescriptorDTLB
	DescriptorSTLB
	DescriptorPrefetch
	DescriptorTrace
)

func (k DescriptorKind) String() string {
	switch k {
	case DescriptorData:
		return "Data cache"
	case DescriptorInstruction:
		return "Instruction cache"
	case DescriptorUnified:
		return "Unified cache"
	case DescriptorTLB:
		return "TLB"
	case DescriptorDTLB:
		return "DTLB"
	case DescriptorSTLB:
		return "STLB"
	case DescriptorPrefetch:
		return "Prefetch"
	case DescriptorTrace:
		return "Trace cache"
	}
	return "Null"
}

// CacheDescriptor is the decoded meaning of one leaf 2 descriptor
// byte. Size is in KiB for caches and the page size in KiB for TLBs;
// Entries is the TLB entry count; fields the descriptor does not
// specify are zero. Assoc 0xFF means fully associative.
type CacheDescriptor struct {
	Raw      uint8
	Known    bool
	Level    int
	Kind     DescriptorKind
	Desc     string
	Size     int
	Assoc    int
	LineSize int
	Entries  int
}

// Descriptor meanings per the Intel SDM leaf 2 table. Descriptor 0xFF
// reports that the processor describes its caches exclusively through
// the deterministic cache parameter leaf.
var cacheDescriptorTable = map[uint8]CacheDescriptor{
	0x01: {Kind: DescriptorTLB, Desc: "Instruction TLB, 4K pages", Size: 4, Assoc: 4, Entries: 32},
	0x02: {Kind: DescriptorTLB, Desc: "Instruction TLB, 4M pages", Size: 4096, Assoc: 0xFF, Entries: 2},
	0x03: {Kind: DescriptorDTLB, Desc: "Data TLB, 4K pages", Size: 4, Assoc: 4, Entries: 64},
	0x04: {Kind: DescriptorDTLB, Desc: "Data TLB, 4M pages", Size: 4096, Assoc: 4, Entries: 8},
	0x05: {Kind: DescriptorDTLB, Desc: "Data TLB1, 4M pages", Size: 4096, Assoc: 4, Entries: 32},
	0x06: {Level: 1, Kind: DescriptorInstruction, Desc: "L1 instruction cache", Size: 8, Assoc: 4, LineSize: 32},
	0x08: {Level: 1, Kind: DescriptorInstruction, Desc: "L1 instruction cache", Size: 16, Assoc: 4, LineSize: 32},
	0x09: {Level: 1, Kind: DescriptorInstruction, Desc: "L1 instruction cache", Size: 32, Assoc: 4, LineSize: 64},
	0x0A: {Level: 1, Kind: DescriptorData, Desc: "L1 data cache", Size: 8, Assoc: 2, LineSize: 32},
	0x0B: {Kind: DescriptorTLB, Desc: "Instruction TLB, 4M pages", Size: 4096, Assoc: 4, Entries: 4},
	0x0C: {Level: 1, Kind: DescriptorData, Desc: "L1 data cache", Size: 16, Assoc: 4, LineSize: 32},
	0x0D: {Level: 1, Kind: DescriptorData, Desc: "L1 data cache", Size: 16, Assoc: 4, LineSize: 64},
	0x0E: {Level: 1, Kind: DescriptorData, Desc: "L1 data cache", Size: 24, Assoc: 6, LineSize: 64},
	0x1D: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 128, Assoc: 2, LineSize: 64},
	0x21: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 256, Assoc: 8, LineSize: 64},
	0x22: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 512, Assoc: 4, LineSize: 64},
	0x23: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 1024, Assoc: 8, LineSize: 64},
	0x24: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 1024, Assoc: 16, LineSize: 64},
	0x25: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 2048, Assoc: 8, LineSize: 64},
	0x29: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 4096, Assoc: 8, LineSize: 64},
	0x2C: {Level: 1, Kind: DescriptorData, Desc: "L1 data cache", Size: 32, Assoc: 8, LineSize: 64},
	0x30: {Level: 1, Kind: DescriptorInstruction, Desc: "L1 instruction cache", Size: 32, Assoc: 8, LineSize: 64},
	0x40: {Kind: DescriptorNull, Desc: "No L2 cache, or no L3 cache if an L2 is present"},
	0x41: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 128, Assoc: 4, LineSize: 32},
	0x42: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 256, Assoc: 4, LineSize: 32},
	0x43: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 512, Assoc: 4, LineSize: 32},
	0x44: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 1024, Assoc: 4, LineSize: 32},
	0x45: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 2048, Assoc: 4, LineSize: 32},
	0x46: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 4096, Assoc: 4, LineSize: 64},
	0x47: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 8192, Assoc: 8, LineSize: 64},
	0x48: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 3072, Assoc: 12, LineSize: 64},
	0x49: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 4096, Assoc: 16, LineSize: 64},
	0x4A: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 6144, Assoc: 12, LineSize: 64},
	0x4B: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 8192, Assoc: 16, LineSize: 64},
	0x4C: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 12288, Assoc: 12, LineSize: 64},
	0x4D: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 16384, Assoc: 16, LineSize: 64},
	0x4E: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 6144, Assoc: 24, LineSize: 64},
	0x4F: {Kind: DescriptorTLB, Desc: "Instruction TLB, 4K pages", Size: 4, Entries: 32},
	0x50: {Kind: DescriptorTLB, Desc: "Instruction TLB, 4K and 2M/4M pages", Size: 4, Entries: 64},
	0x51: {Kind: DescriptorTLB, Desc: "Instruction TLB, 4K and 2M/4M pages", Size: 4, Entries: 128},
	0x52: {Kind: DescriptorTLB, Desc: "Instruction TLB, 4K and 2M/4M pages", Size: 4, Entries: 256},
	0x55: {Kind: DescriptorTLB, Desc: "Instruction TLB, 2M/4M pages", Size: 2048, Assoc: 0xFF, Entries: 7},
	0x56: {Kind: DescriptorDTLB, Desc: "Data TLB0, 4M pages", Size: 4096, Assoc: 4, Entries: 16},
	0x57: {Kind: DescriptorDTLB, Desc: "Data TLB0, 4K pages", Size: 4, Assoc: 4, Entries: 16},
	0x59: {Kind: DescriptorDTLB, Desc: "Data TLB0, 4K pages", Size: 4, Assoc: 0xFF, Entries: 16},
	0x5A: {Kind: DescriptorDTLB, Desc: "Data TLB0, 2M/4M pages", Size: 2048, Assoc: 4, Entries: 32},
	0x5B: {Kind: DescriptorDTLB, Desc: "Data TLB, 4K and 4M pages", Size: 4, Entries: 64},
	0x5C: {Kind: DescriptorDTLB, Desc: "Data TLB, 4K and 4M pages", Size: 4, Entries: 128},
	0x5D: {Kind: DescriptorDTLB, Desc: "Data TLB, 4K and 4M pages", Size: 4, Entries: 256},
	0x60: {Level: 1, Kind: DescriptorData, Desc: "L1 data cache", Size: 16, Assoc: 8, LineSize: 64},
	0x61: {Kind: DescriptorTLB, Desc: "Instruction TLB, 4K pages", Size: 4, Assoc: 0xFF, Entries: 48},
	0x63: {Kind: DescriptorDTLB, Desc: "Data TLB, 2M/4M and 1G pages", Size: 2048, Assoc: 4, Entries: 32},
	0x66: {Level: 1, Kind: DescriptorData, Desc: "L1 data cache", Size: 8, Assoc: 4, LineSize: 64},
	0x67: {Level: 1, Kind: DescriptorData, Desc: "L1 data cache", Size: 16, Assoc: 4, LineSize: 64},
	0x68: {Level: 1, Kind: DescriptorData, Desc: "L1 data cache", Size: 32, Assoc: 4, LineSize: 64},
	0x70: {Level: 1, Kind: DescriptorTrace, Desc: "Trace cache, 12 K-uop", Size: 12, Assoc: 8},
	0x71: {Level: 1, Kind: DescriptorTrace, Desc: "Trace cache, 16 K-uop", Size: 16, Assoc: 8},
	0x72: {Level: 1, Kind: DescriptorTrace, Desc: "Trace cache, 32 K-uop", Size: 32, Assoc: 8},
	0x76: {Kind: DescriptorTLB, Desc: "Instruction TLB, 2M/4M pages", Size: 2048, Assoc: 0xFF, Entries: 8},
	0x78: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 1024, Assoc: 4, LineSize: 64},
	0x79: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 128, Assoc: 8, LineSize: 64},
	0x7A: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 256, Assoc: 8, LineSize: 64},
	0x7B: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 512, Assoc: 8, LineSize: 64},
	0x7C: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 1024, Assoc: 8, LineSize: 64},
	0x7D: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 2048, Assoc: 8, LineSize: 64},
	0x7F: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 512, Assoc: 2, LineSize: 64},
	0x80: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 512, Assoc: 8, LineSize: 64},
	0x82: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 256, Assoc: 8, LineSize: 32},
	0x83: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 512, Assoc: 8, LineSize: 32},
	0x84: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 1024, Assoc: 8, LineSize: 32},
	0x85: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 2048, Assoc: 8, LineSize: 32},
	0x86: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 512, Assoc: 4, LineSize: 32},
	0x87: {Level: 2, Kind: DescriptorUnified, Desc: "L2 cache", Size: 1024, Assoc: 8, LineSize: 64},
	0xA0: {Kind: DescriptorDTLB, Desc: "DTLB, 4K pages", Size: 4, Assoc: 0xFF, Entries: 32},
	0xB0: {Kind: DescriptorTLB, Desc: "Instruction TLB, 4K pages", Size: 4, Assoc: 4, Entries: 128},
	0xB1: {Kind: DescriptorTLB, Desc: "Instruction TLB, 2M/4M pages", Size: 2048, Assoc: 4, Entries: 8},
	0xB2: {Kind: DescriptorTLB, Desc: "Instruction TLB, 4K pages", Size: 4, Assoc: 4, Entries: 64},
	0xB3: {Kind: DescriptorDTLB, Desc: "Data TLB, 4K pages", Size: 4, Assoc: 4, Entries: 128},
	0xB4: {Kind: DescriptorDTLB, Desc: "Data TLB1, 4K pages", Size: 4, Assoc: 4, Entries: 256},
	0xB5: {Kind: DescriptorTLB, Desc: "Instruction TLB, 4K pages", Size: 4, Assoc: 8, Entries: 64},
	0xB6: {Kind: DescriptorTLB, Desc: "Instruction TLB, 4K pages", Size: 4, Assoc: 8, Entries: 128},
	0xBA: {Kind: DescriptorDTLB, Desc: "Data TLB1, 4K pages", Size: 4, Assoc: 4, Entries: 64},
	0xC0: {Kind: DescriptorDTLB, Desc: "Data TLB, 4K and 4M pages", Size: 4, Assoc: 4, Entries: 8},
	0xC1: {Kind: DescriptorSTLB, Desc: "Shared L2 TLB, 4K and 2M pages", Size: 4, Assoc: 8, Entries: 1024},
	0xC2: {Kind: DescriptorDTLB, Desc: "DTLB, 4K and 2M pages", Size: 4, Assoc: 4, Entries: 16},
	0xC3: {Kind: DescriptorSTLB, Desc: "Shared L2 TLB, 4K and 2M pages", Size: 4, Assoc: 6, Entries: 1536},
	0xC4: {Kind: DescriptorDTLB, Desc: "DTLB, 2M/4M pages", Size: 2048, Assoc: 4, Entries: 32},
	0xCA: {Kind: DescriptorSTLB, Desc: "Shared L2 TLB, 4K pages", Size: 4, Assoc: 4, Entries: 512},
	0xD0: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 512, Assoc: 4, LineSize: 64},
	0xD1: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 1024, Assoc: 4, LineSize: 64},
	0xD2: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 2048, Assoc: 4, LineSize: 64},
	0xD6: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 1024, Assoc: 8, LineSize: 64},
	0xD7: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 2048, Assoc: 8, LineSize: 64},
	0xD8: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 4096, Assoc: 8, LineSize: 64},
	0xDC: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 1536, Assoc: 12, LineSize: 64},
	0xDD: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 3072, Assoc: 12, LineSize: 64},
	0xDE: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 6144, Assoc: 12, LineSize: 64},
	0xE2: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 2048, Assoc: 16, LineSize: 64},
	0xE3: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 4096, Assoc: 16, LineSize: 64},
	0xE4: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 8192, Assoc: 16, LineSize: 64},
	0xEA: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 12288, Assoc: 24, LineSize: 64},
	0xEB: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 18432, Assoc: 24, LineSize: 64},
	0xEC: {Level: 3, Kind: DescriptorUnified, Desc: "L3 cache", Size: 24576, Assoc: 24, LineSize: 64},
	0xF0: {Kind: DescriptorPrefetch, Desc: "64-byte prefetching", Size: 64},
	0xF1: {Kind: DescriptorPrefetch, Desc: "128-byte prefetching", Size: 128},
	0xFF: {Kind: DescriptorNull, Desc: "Cache data is in the deterministic cache parameter leaf"},
}
