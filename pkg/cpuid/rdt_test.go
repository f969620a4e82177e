package cpuid

import "testing"

func TestRdtMonitoringInfo(t *testing.T) {
	r := RdtMonitoringInfo{EBX: 832}
	if r.RmidRange() != 832 {
		t.Fatalf("RmidRange = %d, want 832", r.RmidRange())
	}
	if r.HasL3Monitoring() {
		t.Fatalf("EDX = 0 but L3 monitoring reads enumerated")
	}
	if _, ok := r.L3Monitoring(); ok {
		t.Fatalf("L3 monitoring sub-leaf must be absent")
	}
}

func TestRdtAllocationSubleafGating(t *testing.T) {
	src := mapSource(map[uint64]Result{
		uint64(leafRdtAllocation)<<32 | 1: {EAX: 0xF, ECX: 4, EDX: 0xF},
		uint64(leafRdtAllocation)<<32 | 2: {EAX: 0x7, EDX: 0x3},
		uint64(leafRdtAllocation)<<32 | 3: {EAX: 0x59, ECX: 4, EDX: 0x7},
	})

	// Only L3 CAT enumerated: the other sub-leaves stay absent even
	// though the source has data for them.
	r := RdtAllocationInfo{EBX: 1 << 1, src: src}
	l3, ok := r.L3Cat()
	if !ok {
		t.Fatalf("L3 CAT must be present")
	}
	if l3.CapacityMaskLength() != 0x10 {
		t.Fatalf("CapacityMaskLength = %#x, want 0x10", l3.CapacityMaskLength())
	}
	if !l3.HasCodeDataPrioritization() {
		t.Fatalf("expected code/data prioritization")
	}
	if l3.HighestCos() != 15 {
		t.Fatalf("HighestCos = %d, want 15", l3.HighestCos())
	}
	if _, ok := r.L2Cat(); ok {
		t.Fatalf("L2 CAT must be absent")
	}
	if _, ok := r.MemoryBandwidthAllocation(); ok {
		t.Fatalf("memory bandwidth allocation must be absent")
	}

	r = RdtAllocationInfo{EBX: 1<<2 | 1<<3, src: src}
	l2, ok := r.L2Cat()
	if !ok || l2.CapacityMaskLength() != 8 {
		t.Fatalf("L2 CAT = %+v (ok=%v), want mask length 8", l2, ok)
	}
	mba, ok := r.MemoryBandwidthAllocation()
	if !ok || mba.MaxHbaThrottling() != 0x5A {
		t.Fatalf("MBA = %+v (ok=%v), want max throttling 0x5A", mba, ok)
	}
	if !mba.HasLinearResponseDelay() {
		t.Fatalf("expected linear response delay")
	}
}

// The capacity mask length and maximum throttling fields are stored by
// the hardware as value-1.
func TestRdtPlusOneConvention(t *testing.T) {
	for raw := uint32(0); raw < 32; raw++ {
		l3 := L3CatInfo{EAX: raw}
		if l3.CapacityMaskLength() != raw+1 {
			t.Fatalf("raw L3 mask length %d decoded as %d", raw, l3.CapacityMaskLength())
		}
		l2 := L2CatInfo{EAX: raw}
		if l2.CapacityMaskLength() != raw+1 {
			t.Fatalf("raw L2 mask length %d decoded as %d", raw, l2.CapacityMaskLength())
		}
	}
	for raw := uint32(0); raw < 4096; raw += 13 {
		m := MemBwAllocationInfo{EAX: raw}
		if m.MaxHbaThrottling() != raw+1 {
			t.Fatalf("raw throttling %d decoded as %d", raw, m.MaxHbaThrottling())
		}
	}
}
