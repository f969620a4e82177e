package cpuid

import "testing"

func TestPerformanceMonitoringInfo(t *testing.T) {
	p := PerformanceMonitoringInfo{EAX: 120587267, EDX: 1539}

	if p.VersionID() != 3 {
		t.Fatalf("VersionID = %d, want 3", p.VersionID())
	}
	if p.NumberOfCounters() != 4 {
		t.Fatalf("NumberOfCounters = %d, want 4", p.NumberOfCounters())
	}
	if p.CounterBitWidth() != 48 {
		t.Fatalf("CounterBitWidth = %d, want 48", p.CounterBitWidth())
	}
	if p.EbxLength() != 7 {
		t.Fatalf("EbxLength = %d, want 7", p.EbxLength())
	}
	if p.FixedFunctionCounters() != 3 {
		t.Fatalf("FixedFunctionCounters = %d, want 3", p.FixedFunctionCounters())
	}
	if p.FixedFunctionCounterBitWidth() != 48 {
		t.Fatalf("FixedFunctionCounterBitWidth = %d, want 48", p.FixedFunctionCounterBitWidth())
	}

	// EBX reads zero, so every architectural event is available.
	if p.CoreCycleEventUnavailable() || p.InstRetiredEventUnavailable() ||
		p.RefCycleEventUnavailable() || p.CacheRefEventUnavailable() ||
		p.LLCacheMissEventUnavailable() || p.BranchInstRetiredEventUnavailable() ||
		p.BranchMispredictEventUnavailable() {
		t.Fatalf("EBX = 0 but an event reads unavailable")
	}
}
