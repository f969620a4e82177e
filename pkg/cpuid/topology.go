package cpuid

// TopologyLevelType classifies one level of the extended topology
// enumeration.
type TopologyLevelType uint32

const (
	// TopologyLevelInvalid terminates the topology sub-leaf sequence.
	TopologyLevelInvalid TopologyLevelType = iota
	TopologyLevelSMT
	TopologyLevelCore
)

func (t TopologyLevelType) String() string {
	switch t {
	case TopologyLevelSMT:
		return "SMT"
	case TopologyLevelCore:
		return "Core"
	}
	return "Invalid"
}

// TopologyLevel is one sub-leaf of the leaf 0xB extended topology
// enumeration.
type TopologyLevel struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32
}

// ShiftRightForNextApicID returns the number of bits to shift the
// x2APIC ID right to obtain the topology ID of the next level up.
func (l TopologyLevel) ShiftRightForNextApicID() uint32 { return field(l.EAX, 4, 0) }

// Processors returns the number of logical processors at this level.
// The value is specified per the queried core and may differ from the
// package total.
func (l TopologyLevel) Processors() uint32 { return field(l.EBX, 15, 0) }

// LevelNumber returns the level index queried.
func (l TopologyLevel) LevelNumber() uint32 { return field(l.ECX, 7, 0) }

// LevelType returns the kind of topology level.
func (l TopologyLevel) LevelType() TopologyLevelType {
	return TopologyLevelType(field(l.ECX, 15, 8))
}

// X2ApicID returns the x2APIC ID of the queried logical processor.
func (l TopologyLevel) X2ApicID() uint32 { return l.EDX }

// TopologyIter lazily enumerates the leaf 0xB topology levels,
// terminating when the hardware reports an invalid level type.
type TopologyIter struct {
	src  LeafSource
	next uint32
}

// Next returns the next topology level; ok is false past the last
// valid level.
func (it *TopologyIter) Next() (TopologyLevel, bool) {
	r := it.src(leafExtendedTopology, it.next)
	l := TopologyLevel{EAX: r.EAX, EBX: r.EBX, ECX: r.ECX, EDX: r.EDX}
	if l.LevelType() == TopologyLevelInvalid {
		return TopologyLevel{}, false
	}
	it.next++
	return l, true
}

// Reset restarts the iteration at level 0.
func (it *TopologyIter) Reset() { it.next = 0 }
