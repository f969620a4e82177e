package cpuid

import "testing"

// Ice Lake client leaf 0x18: a 4K-only data TLB at sub-leaf 1 and a
// unified second level TLB at sub-leaf 3, with sub-leaf 2 left
// unpopulated.
func icelakeDatSource() LeafSource {
	return intelSource(0x18, 0x80000008, map[uint64]Result{
		0x00000018_00000000: {EAX: 0x00000003},
		0x00000018_00000001: {EBX: 0x00080001, ECX: 0x00000010, EDX: 0x00004021},
		0x00000018_00000003: {EBX: 0x00080007, ECX: 0x00000080, EDX: 0x00004063},
	})
}

func TestDatDecode(t *testing.T) {
	c := NewFromSource(icelakeDatSource())
	iter, ok := c.DeterministicAddressTranslation()
	if !ok {
		t.Fatal("leaf 0x18 not reported")
	}

	d, ok := iter.Next()
	if !ok {
		t.Fatal("expected a first translation structure")
	}
	if d.Subleaf != 1 {
		t.Fatalf("expected sub-leaf 1, got %d", d.Subleaf)
	}
	if d.Type() != DatTypeDataTLB || d.Level() != 1 {
		t.Fatalf("unexpected type/level: %v L%d", d.Type(), d.Level())
	}
	if !d.Has4KEntries() || d.Has2MBEntries() || d.Has1GBEntries() {
		t.Fatal("expected a 4K-only structure")
	}
	if d.Ways() != 8 || d.Sets() != 16 {
		t.Fatalf("expected 8 ways and 16 sets, got %d/%d", d.Ways(), d.Sets())
	}
	// EDX[25:14] is stored minus one.
	if d.MaxSharingIDs() != 2 {
		t.Fatalf("expected 2 sharing ids, got %d", d.MaxSharingIDs())
	}

	// Sub-leaf 2 is invalid and must be skipped, not terminate the walk.
	d, ok = iter.Next()
	if !ok {
		t.Fatal("sparse sub-leaf terminated the iteration")
	}
	if d.Subleaf != 3 || d.Type() != DatTypeUnifiedTLB || d.Level() != 3 {
		t.Fatalf("unexpected second structure: sub-leaf %d %v L%d", d.Subleaf, d.Type(), d.Level())
	}
	if !d.Has4KEntries() || !d.Has2MBEntries() || !d.Has4MBEntries() {
		t.Fatal("expected 4K+2M+4M page support")
	}

	if _, ok := iter.Next(); ok {
		t.Fatal("iteration continued past the sub-leaf bound")
	}

	iter.Reset()
	if d, ok := iter.Next(); !ok || d.Subleaf != 1 {
		t.Fatal("Reset did not restart the iteration")
	}
}
