package cpuid

import "testing"

func TestTopologyIter(t *testing.T) {
	src := mapSource(map[uint64]Result{
		uint64(leafExtendedTopology) << 32:     {EAX: 1, EBX: 2, ECX: 256, EDX: 3},
		uint64(leafExtendedTopology)<<32 | 1:   {EAX: 4, EBX: 4, ECX: 513, EDX: 3},
	})
	it := &TopologyIter{src: src}

	l, ok := it.Next()
	if !ok {
		t.Fatalf("expected an SMT level")
	}
	if l.LevelType() != TopologyLevelSMT {
		t.Fatalf("level 0 type = %v, want SMT", l.LevelType())
	}
	if l.LevelNumber() != 0 || l.Processors() != 2 || l.ShiftRightForNextApicID() != 1 || l.X2ApicID() != 3 {
		t.Fatalf("level 0 decoded as %+v", l)
	}

	l, ok = it.Next()
	if !ok {
		t.Fatalf("expected a core level")
	}
	if l.LevelType() != TopologyLevelCore {
		t.Fatalf("level 1 type = %v, want Core", l.LevelType())
	}
	if l.LevelNumber() != 1 || l.Processors() != 4 || l.ShiftRightForNextApicID() != 4 {
		t.Fatalf("level 1 decoded as %+v", l)
	}

	// The missing sub-leaf 2 reads zero, an invalid level type.
	if _, ok := it.Next(); ok {
		t.Fatalf("iteration must stop at the first invalid level")
	}

	it.Reset()
	if l, ok := it.Next(); !ok || l.LevelType() != TopologyLevelSMT {
		t.Fatalf("after Reset: got (%v, %v), want the SMT level again", l.LevelType(), ok)
	}
}
