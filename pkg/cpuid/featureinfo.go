package cpuid

// FeatureInfo is the leaf 1 processor signature and capability flags.
//
// The family and model reported by the signature are split into base
// and extended fields; FamilyID and ModelID return the composed
// display values while the Base*/Extended* accessors expose the raw
// fields, since callers historically depend on both.
type FeatureInfo struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32
}

// SteppingID returns the processor stepping (EAX bits 3:0).
func (f FeatureInfo) SteppingID() uint32 { return field(f.EAX, 3, 0) }

// BaseModelID returns the model field of the signature (EAX bits 7:4).
func (f FeatureInfo) BaseModelID() uint32 { return field(f.EAX, 7, 4) }

// BaseFamilyID returns the family field of the signature (EAX bits
// 11:8).
func (f FeatureInfo) BaseFamilyID() uint32 { return field(f.EAX, 11, 8) }

// ProcessorType returns the processor type field (EAX bits 13:12).
func (f FeatureInfo) ProcessorType() uint32 { return field(f.EAX, 13, 12) }

// ExtendedModelID returns the extended model field (EAX bits 19:16).
func (f FeatureInfo) ExtendedModelID() uint32 { return field(f.EAX, 19, 16) }

// ExtendedFamilyID returns the extended family field (EAX bits 27:20).
func (f FeatureInfo) ExtendedFamilyID() uint32 { return field(f.EAX, 27, 20) }

// FamilyID returns the display family: the base family, plus the
// extended family when the base family reads 0xF.
func (f FeatureInfo) FamilyID() uint32 {
	base := f.BaseFamilyID()
	if base == 0xF {
		return base + f.ExtendedFamilyID()
	}
	return base
}

// ModelID returns the display model: the base model, extended by the
// extended-model nibble when the base family reads 0x6 or 0xF.
func (f FeatureInfo) ModelID() uint32 {
	base := f.BaseFamilyID()
	if base == 0x6 || base == 0xF {
		return f.ExtendedModelID()<<4 + f.BaseModelID()
	}
	return f.BaseModelID()
}

// BrandIndex returns the brand table index (EBX bits 7:0).
func (f FeatureInfo) BrandIndex() uint32 { return field(f.EBX, 7, 0) }

// CLFLUSHLineSize returns the cache line size flushed by CLFLUSH in
// bytes (EBX bits 15:8, scaled from 8-byte units).
func (f FeatureInfo) CLFLUSHLineSize() uint32 { return field(f.EBX, 15, 8) * 8 }

// MaxLogicalProcessorIDs returns the maximum number of addressable
// logical processor IDs in the package (EBX bits 23:16).
func (f FeatureInfo) MaxLogicalProcessorIDs() uint32 { return field(f.EBX, 23, 16) }

// InitialLocalApicID returns the initial APIC ID of the queried core
// (EBX bits 31:24).
func (f FeatureInfo) InitialLocalApicID() uint32 { return field(f.EBX, 31, 24) }

// ECX flags.

func (f FeatureInfo) HasSSE3() bool         { return bitSet(f.ECX, 0) }
func (f FeatureInfo) HasPCLMULQDQ() bool    { return bitSet(f.ECX, 1) }
func (f FeatureInfo) HasDSArea() bool       { return bitSet(f.ECX, 2) }
func (f FeatureInfo) HasMonitorMwait() bool { return bitSet(f.ECX, 3) }
func (f FeatureInfo) HasCPL() bool          { return bitSet(f.ECX, 4) }
func (f FeatureInfo) HasVMX() bool          { return bitSet(f.ECX, 5) }
func (f FeatureInfo) HasSMX() bool          { return bitSet(f.ECX, 6) }
func (f FeatureInfo) HasEIST() bool         { return bitSet(f.ECX, 7) }
func (f FeatureInfo) HasTM2() bool          { return bitSet(f.ECX, 8) }
func (f FeatureInfo) HasSSSE3() bool        { return bitSet(f.ECX, 9) }
func (f FeatureInfo) HasCNXTID() bool       { return bitSet(f.ECX, 10) }
func (f FeatureInfo) HasSDBG() bool         { return bitSet(f.ECX, 11) }
func (f FeatureInfo) HasFMA() bool          { return bitSet(f.ECX, 12) }
func (f FeatureInfo) HasCMPXCHG16B() bool   { return bitSet(f.ECX, 13) }
func (f FeatureInfo) HasPDCM() bool         { return bitSet(f.ECX, 15) }
func (f FeatureInfo) HasPCID() bool         { return bitSet(f.ECX, 17) }
func (f FeatureInfo) HasDCA() bool          { return bitSet(f.ECX, 18) }
func (f FeatureInfo) HasSSE41() bool        { return bitSet(f.ECX, 19) }
func (f FeatureInfo) HasSSE42() bool        { return bitSet(f.ECX, 20) }
func (f FeatureInfo) HasX2APIC() bool       { return bitSet(f.ECX, 21) }
func (f FeatureInfo) HasMOVBE() bool        { return bitSet(f.ECX, 22) }
func (f FeatureInfo) HasPOPCNT() bool       { return bitSet(f.ECX, 23) }
func (f FeatureInfo) HasTSCDeadline() bool  { return bitSet(f.ECX, 24) }
func (f FeatureInfo) HasAESNI() bool        { return bitSet(f.ECX, 25) }
func (f FeatureInfo) HasXSAVE() bool        { return bitSet(f.ECX, 26) }
func (f FeatureInfo) HasOSXSAVE() bool      { return bitSet(f.ECX, 27) }
func (f FeatureInfo) HasAVX() bool          { return bitSet(f.ECX, 28) }
func (f FeatureInfo) HasF16C() bool         { return bitSet(f.ECX, 29) }
func (f FeatureInfo) HasRDRAND() bool       { return bitSet(f.ECX, 30) }
func (f FeatureInfo) HasHypervisor() bool   { return bitSet(f.ECX, 31) }

// EDX flags.

func (f FeatureInfo) HasFPU() bool             { return bitSet(f.EDX, 0) }
func (f FeatureInfo) HasVME() bool             { return bitSet(f.EDX, 1) }
func (f FeatureInfo) HasDE() bool              { return bitSet(f.EDX, 2) }
func (f FeatureInfo) HasPSE() bool             { return bitSet(f.EDX, 3) }
func (f FeatureInfo) HasTSC() bool             { return bitSet(f.EDX, 4) }
func (f FeatureInfo) HasMSR() bool             { return bitSet(f.EDX, 5) }
func (f FeatureInfo) HasPAE() bool             { return bitSet(f.EDX, 6) }
func (f FeatureInfo) HasMCE() bool             { return bitSet(f.EDX, 7) }
func (f FeatureInfo) HasCMPXCHG8B() bool       { return bitSet(f.EDX, 8) }
func (f FeatureInfo) HasAPIC() bool            { return bitSet(f.EDX, 9) }
func (f FeatureInfo) HasSysenterSysexit() bool { return bitSet(f.EDX, 11) }
func (f FeatureInfo) HasMTRR() bool            { return bitSet(f.EDX, 12) }
func (f FeatureInfo) HasPGE() bool             { return bitSet(f.EDX, 13) }
func (f FeatureInfo) HasMCA() bool             { return bitSet(f.EDX, 14) }
func (f FeatureInfo) HasCMOV() bool            { return bitSet(f.EDX, 15) }
func (f FeatureInfo) HasPAT() bool             { return bitSet(f.EDX, 16) }
func (f FeatureInfo) HasPSE36() bool           { return bitSet(f.EDX, 17) }
func (f FeatureInfo) HasPSN() bool             { return bitSet(f.EDX, 18) }
func (f FeatureInfo) HasCLFLUSH() bool         { return bitSet(f.EDX, 19) }
func (f FeatureInfo) HasDS() bool              { return bitSet(f.EDX, 21) }
func (f FeatureInfo) HasACPI() bool            { return bitSet(f.EDX, 22) }
func (f FeatureInfo) HasMMX() bool             { return bitSet(f.EDX, 23) }
func (f FeatureInfo) HasFXSaveFXStor() bool    { return bitSet(f.EDX, 24) }
func (f FeatureInfo) HasSSE() bool             { return bitSet(f.EDX, 25) }
func (f FeatureInfo) HasSSE2() bool            { return bitSet(f.EDX, 26) }
func (f FeatureInfo) HasSS() bool              { return bitSet(f.EDX, 27) }
func (f FeatureInfo) HasHTT() bool             { return bitSet(f.EDX, 28) }
func (f FeatureInfo) HasTM() bool              { return bitSet(f.EDX, 29) }
func (f FeatureInfo) HasPBE() bool             { return bitSet(f.EDX, 31) }
