package cpuid

import "testing"

func TestMonitorMwaitInfo(t *testing.T) {
	m := MonitorMwaitInfo{EAX: 64, EBX: 64, ECX: 3, EDX: 135456}

	if m.SmallestMonitorLine() != 64 {
		t.Fatalf("SmallestMonitorLine = %d, want 64", m.SmallestMonitorLine())
	}
	if m.LargestMonitorLine() != 64 {
		t.Fatalf("LargestMonitorLine = %d, want 64", m.LargestMonitorLine())
	}
	if !m.ExtensionsSupported() {
		t.Fatalf("expected MWAIT extensions")
	}
	if !m.InterruptsAsBreakEvent() {
		t.Fatalf("expected interrupts as break events")
	}

	want := []uint32{0, 2, 1, 1, 2, 0, 0, 0}
	for n, w := range want {
		if got := m.SupportedCStates(uint(n)); got != w {
			t.Fatalf("SupportedCStates(%d) = %d, want %d", n, got, w)
		}
	}
	if m.SupportedCStates(8) != 0 {
		t.Fatalf("C-state index out of range must read 0")
	}
}

func TestThermalPowerInfo(t *testing.T) {
	tp := ThermalPowerInfo{EAX: 119, EBX: 2, ECX: 9}

	if !tp.HasDTS() || !tp.HasTurboBoost() || !tp.HasARAT() || !tp.HasPLN() || !tp.HasECMD() || !tp.HasPTM() {
		t.Fatalf("EAX %#x: missing thermal capability", tp.EAX)
	}
	if tp.HasHWP() || tp.HasHDC() {
		t.Fatalf("EAX %#x: unexpected HWP/HDC capability", tp.EAX)
	}
	if tp.DTSIrqThreshold() != 2 {
		t.Fatalf("DTSIrqThreshold = %d, want 2", tp.DTSIrqThreshold())
	}
	if !tp.HasHwCoordFeedback() {
		t.Fatalf("expected hardware coordination feedback")
	}
	if !tp.HasEnergyBiasPref() {
		t.Fatalf("expected energy bias preference")
	}
}

func TestExtendedFeaturesFlags(t *testing.T) {
	e := ExtendedFeatures{EBX: 641}

	if !e.HasFSGSBASE() || !e.HasSMEP() || !e.HasRepMovsbStosb() {
		t.Fatalf("EBX %#x: missing expected flags", e.EBX)
	}
	if e.HasTSCAdjustMSR() || e.HasBMI1() || e.HasHLE() || e.HasAVX2() || e.HasBMI2() ||
		e.HasINVPCID() || e.HasRTM() || e.HasRDTM() || e.HasFPUCSDSDeprecated() {
		t.Fatalf("EBX %#x: unexpected flags set", e.EBX)
	}
	if e.MawauValue() != 0 {
		t.Fatalf("MawauValue = %d, want 0", e.MawauValue())
	}
}

func TestMawauValue(t *testing.T) {
	for raw := uint32(0); raw < 32; raw++ {
		e := ExtendedFeatures{ECX: raw << 17}
		if e.MawauValue() != raw {
			t.Fatalf("raw MAWAU %d decoded as %d", raw, e.MawauValue())
		}
	}
}
