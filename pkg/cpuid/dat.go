package cpuid

// DatType classifies a deterministic address translation structure.
type DatType uint32

const (
	// DatTypeInvalid marks a sub-leaf that carries no structure.
	DatTypeInvalid DatType = iota
	DatTypeDataTLB
	DatTypeInstructionTLB
	DatTypeUnifiedTLB
	DatTypeLoadOnlyTLB
	DatTypeStoreOnlyTLB
)

func (t DatType) String() string {
	switch t {
	case DatTypeDataTLB:
		return "Data TLB"
	case DatTypeInstructionTLB:
		return "Instruction TLB"
	case DatTypeUnifiedTLB:
		return "Unified TLB"
	case DatTypeLoadOnlyTLB:
		return "Load-only TLB"
	case DatTypeStoreOnlyTLB:
		return "Store-only TLB"
	}
	return "Invalid"
}

// DatInfo is one leaf 0x18 deterministic address translation sub-leaf
// (Intel): the shape of one TLB or translation cache.
type DatInfo struct {
	Subleaf uint32
	EBX     uint32
	ECX     uint32
	EDX     uint32
}

func (d DatInfo) Has4KEntries() bool  { return bitSet(d.EBX, 0) }
func (d DatInfo) Has2MBEntries() bool { return bitSet(d.EBX, 1) }
func (d DatInfo) Has4MBEntries() bool { return bitSet(d.EBX, 2) }
func (d DatInfo) Has1GBEntries() bool { return bitSet(d.EBX, 3) }

// Partitioning returns the partitioning field (0 means soft
// partitioning between threads sharing the structure).
func (d DatInfo) Partitioning() uint32 { return field(d.EBX, 10, 8) }

// Ways returns the ways of associativity.
func (d DatInfo) Ways() uint32 { return field(d.EBX, 31, 16) }

// Sets returns the number of sets.
func (d DatInfo) Sets() uint32 { return d.ECX }

// Type returns the translation structure type.
func (d DatInfo) Type() DatType { return DatType(field(d.EDX, 4, 0)) }

// Level returns the structure level (starting at 1).
func (d DatInfo) Level() uint32 { return field(d.EDX, 7, 5) }

// FullyAssociative reports whether the structure is fully associative.
func (d DatInfo) FullyAssociative() bool { return bitSet(d.EDX, 8) }

// MaxSharingIDs returns the maximum number of addressable logical
// processors sharing the structure. Stored minus one by the hardware.
func (d DatInfo) MaxSharingIDs() uint32 { return field(d.EDX, 25, 14) + 1 }

// DatIter enumerates the leaf 0x18 sub-leaves. Sub-leaf 0's EAX bounds
// the sequence; individual sub-leaves of invalid type inside the bound
// are skipped, since the leaf permits sparse population.
type DatIter struct {
	src        LeafSource
	maxSubleaf uint32
	next       uint32
}

// Next returns the next populated translation structure; ok is false
// once the sub-leaf bound is passed.
func (it *DatIter) Next() (DatInfo, bool) {
	for ; it.next <= it.maxSubleaf; it.next++ {
		r := it.src(leafAddressTranslation, it.next)
		d := DatInfo{Subleaf: it.next, EBX: r.EBX, ECX: r.ECX, EDX: r.EDX}
		if d.Type() == DatTypeInvalid {
			continue
		}
		it.next++
		return d, true
	}
	return DatInfo{}, false
}

// Reset restarts the iteration at sub-leaf 0.
func (it *DatIter) Reset() { it.next = 0 }
