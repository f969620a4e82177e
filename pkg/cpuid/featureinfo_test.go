package cpuid

import "testing"

func TestFeatureInfoSignature(t *testing.T) {
	// Ivy Bridge mobile signature 0x306A9.
	f := FeatureInfo{EAX: 198313}

	if f.SteppingID() != 9 {
		t.Fatalf("SteppingID = %d, want 9", f.SteppingID())
	}
	if f.BaseModelID() != 10 {
		t.Fatalf("BaseModelID = %d, want 10", f.BaseModelID())
	}
	if f.ExtendedModelID() != 3 {
		t.Fatalf("ExtendedModelID = %d, want 3", f.ExtendedModelID())
	}
	if f.BaseFamilyID() != 6 {
		t.Fatalf("BaseFamilyID = %d, want 6", f.BaseFamilyID())
	}
	if f.ExtendedFamilyID() != 0 {
		t.Fatalf("ExtendedFamilyID = %d, want 0", f.ExtendedFamilyID())
	}
	if f.FamilyID() != 6 {
		t.Fatalf("FamilyID = %d, want 6", f.FamilyID())
	}
	// Family 6 composes the display model from both model fields.
	if f.ModelID() != 58 {
		t.Fatalf("ModelID = %d, want 58", f.ModelID())
	}
	if f.BrandIndex() != 0 {
		t.Fatalf("BrandIndex = %d, want 0", f.BrandIndex())
	}
}

func TestFamilyModelComposition(t *testing.T) {
	for _, tc := range []struct {
		eax           uint32
		family, model uint32
	}{
		// Base family 0xF adds the extended family; base families
		// 0x6 and 0xF extend the model.
		{0x00870F10, 0x17, 0x71}, // Zen 2
		{0x000306A9, 0x6, 0x3A},  // Ivy Bridge
		{0x00000F29, 0xF, 0x2},   // Pentium 4: extended fields read zero
		{0x00000543, 0x5, 0x4},   // P5: no composition below family 6
	} {
		f := FeatureInfo{EAX: tc.eax}
		if f.FamilyID() != tc.family {
			t.Fatalf("eax %#x: FamilyID = %#x, want %#x", tc.eax, f.FamilyID(), tc.family)
		}
		if f.ModelID() != tc.model {
			t.Fatalf("eax %#x: ModelID = %#x, want %#x", tc.eax, f.ModelID(), tc.model)
		}
	}
}

func TestFeatureInfoEbxFields(t *testing.T) {
	f := FeatureInfo{EBX: 0x000C0800}
	if f.CLFLUSHLineSize() != 64 {
		t.Fatalf("CLFLUSHLineSize = %d, want 64", f.CLFLUSHLineSize())
	}
	if f.MaxLogicalProcessorIDs() != 12 {
		t.Fatalf("MaxLogicalProcessorIDs = %d, want 12", f.MaxLogicalProcessorIDs())
	}
	if f.InitialLocalApicID() != 0 {
		t.Fatalf("InitialLocalApicID = %d, want 0", f.InitialLocalApicID())
	}
}

// Each flag accessor must read exactly one bit: setting only that bit
// turns the flag on, and setting every other bit leaves it off.
func TestFeatureFlagBitIsolation(t *testing.T) {
	edxFlags := map[uint]func(FeatureInfo) bool{
		0:  FeatureInfo.HasFPU,
		4:  FeatureInfo.HasTSC,
		8:  FeatureInfo.HasCMPXCHG8B,
		11: FeatureInfo.HasSysenterSysexit,
		19: FeatureInfo.HasCLFLUSH,
		23: FeatureInfo.HasMMX,
		24: FeatureInfo.HasFXSaveFXStor,
		25: FeatureInfo.HasSSE,
		26: FeatureInfo.HasSSE2,
		28: FeatureInfo.HasHTT,
	}
	for pos, flag := range edxFlags {
		on := FeatureInfo{EDX: 1 << pos}
		if !flag(on) {
			t.Fatalf("EDX bit %d set but flag reads false", pos)
		}
		off := FeatureInfo{EDX: ^(uint32(1) << pos)}
		if flag(off) {
			t.Fatalf("every EDX bit except %d set but flag reads true", pos)
		}
	}

	ecxFlags := map[uint]func(FeatureInfo) bool{
		0:  FeatureInfo.HasSSE3,
		9:  FeatureInfo.HasSSSE3,
		19: FeatureInfo.HasSSE41,
		20: FeatureInfo.HasSSE42,
		28: FeatureInfo.HasAVX,
		31: FeatureInfo.HasHypervisor,
	}
	for pos, flag := range ecxFlags {
		on := FeatureInfo{ECX: 1 << pos}
		if !flag(on) {
			t.Fatalf("ECX bit %d set but flag reads false", pos)
		}
		off := FeatureInfo{ECX: ^(uint32(1) << pos)}
		if flag(off) {
			t.Fatalf("every ECX bit except %d set but flag reads true", pos)
		}
	}
}
