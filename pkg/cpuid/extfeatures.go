package cpuid

// ExtendedFeatures is the leaf 7 sub-leaf 0 structured extended
// feature flag set.
type ExtendedFeatures struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32
}

// MaxSubleaf returns the number of additional leaf 7 sub-leaves the
// processor implements.
func (e ExtendedFeatures) MaxSubleaf() uint32 { return e.EAX }

// EBX flags.

func (e ExtendedFeatures) HasFSGSBASE() bool          { return bitSet(e.EBX, 0) }
func (e ExtendedFeatures) HasTSCAdjustMSR() bool      { return bitSet(e.EBX, 1) }
func (e ExtendedFeatures) HasSGX() bool               { return bitSet(e.EBX, 2) }
func (e ExtendedFeatures) HasBMI1() bool              { return bitSet(e.EBX, 3) }
func (e ExtendedFeatures) HasHLE() bool               { return bitSet(e.EBX, 4) }
func (e ExtendedFeatures) HasAVX2() bool              { return bitSet(e.EBX, 5) }
func (e ExtendedFeatures) HasFDP() bool               { return bitSet(e.EBX, 6) }
func (e ExtendedFeatures) HasSMEP() bool              { return bitSet(e.EBX, 7) }
func (e ExtendedFeatures) HasBMI2() bool              { return bitSet(e.EBX, 8) }
func (e ExtendedFeatures) HasRepMovsbStosb() bool     { return bitSet(e.EBX, 9) }
func (e ExtendedFeatures) HasINVPCID() bool           { return bitSet(e.EBX, 10) }
func (e ExtendedFeatures) HasRTM() bool               { return bitSet(e.EBX, 11) }
func (e ExtendedFeatures) HasRDTM() bool              { return bitSet(e.EBX, 12) }
func (e ExtendedFeatures) HasFPUCSDSDeprecated() bool { return bitSet(e.EBX, 13) }
func (e ExtendedFeatures) HasMPX() bool               { return bitSet(e.EBX, 14) }
func (e ExtendedFeatures) HasRDTA() bool              { return bitSet(e.EBX, 15) }
func (e ExtendedFeatures) HasAVX512F() bool           { return bitSet(e.EBX, 16) }
func (e ExtendedFeatures) HasAVX512DQ() bool          { return bitSet(e.EBX, 17) }
func (e ExtendedFeatures) HasRDSEED() bool            { return bitSet(e.EBX, 18) }
func (e ExtendedFeatures) HasADX() bool               { return bitSet(e.EBX, 19) }
func (e ExtendedFeatures) HasSMAP() bool              { return bitSet(e.EBX, 20) }
func (e ExtendedFeatures) HasAVX512IFMA() bool        { return bitSet(e.EBX, 21) }
func (e ExtendedFeatures) HasCLFLUSHOPT() bool        { return bitSet(e.EBX, 23) }
func (e ExtendedFeatures) HasCLWB() bool              { return bitSet(e.EBX, 24) }
func (e ExtendedFeatures) HasProcessorTrace() bool    { return bitSet(e.EBX, 25) }
func (e ExtendedFeatures) HasAVX512PF() bool          { return bitSet(e.EBX, 26) }
func (e ExtendedFeatures) HasAVX512ER() bool          { return bitSet(e.EBX, 27) }
func (e ExtendedFeatures) HasAVX512CD() bool          { return bitSet(e.EBX, 28) }
func (e ExtendedFeatures) HasSHA() bool               { return bitSet(e.EBX, 29) }
func (e ExtendedFeatures) HasAVX512BW() bool          { return bitSet(e.EBX, 30) }
func (e ExtendedFeatures) HasAVX512VL() bool          { return bitSet(e.EBX, 31) }

// ECX flags.

func (e ExtendedFeatures) HasPREFETCHWT1() bool     { return bitSet(e.ECX, 0) }
func (e ExtendedFeatures) HasAVX512VBMI() bool      { return bitSet(e.ECX, 1) }
func (e ExtendedFeatures) HasUMIP() bool            { return bitSet(e.ECX, 2) }
func (e ExtendedFeatures) HasPKU() bool             { return bitSet(e.ECX, 3) }
func (e ExtendedFeatures) HasOSPKE() bool           { return bitSet(e.ECX, 4) }
func (e ExtendedFeatures) HasWAITPKG() bool         { return bitSet(e.ECX, 5) }
func (e ExtendedFeatures) HasAVX512VBMI2() bool     { return bitSet(e.ECX, 6) }
func (e ExtendedFeatures) HasCETSS() bool           { return bitSet(e.ECX, 7) }
func (e ExtendedFeatures) HasGFNI() bool            { return bitSet(e.ECX, 8) }
func (e ExtendedFeatures) HasVAES() bool            { return bitSet(e.ECX, 9) }
func (e ExtendedFeatures) HasVPCLMULQDQ() bool      { return bitSet(e.ECX, 10) }
func (e ExtendedFeatures) HasAVX512VNNI() bool      { return bitSet(e.ECX, 11) }
func (e ExtendedFeatures) HasAVX512BITALG() bool    { return bitSet(e.ECX, 12) }
func (e ExtendedFeatures) HasAVX512VPOPCNTDQ() bool { return bitSet(e.ECX, 14) }
func (e ExtendedFeatures) HasLA57() bool            { return bitSet(e.ECX, 16) }
func (e ExtendedFeatures) HasRDPID() bool           { return bitSet(e.ECX, 22) }
func (e ExtendedFeatures) HasSGXLC() bool           { return bitSet(e.ECX, 30) }

// MawauValue returns the MPX address-width adjust used by BNDLDX and
// BNDSTX in 64-bit mode (ECX bits 21:17).
func (e ExtendedFeatures) MawauValue() uint32 { return field(e.ECX, 21, 17) }

// EDX flags.

func (e ExtendedFeatures) HasAVX5124VNNIW() bool       { return bitSet(e.EDX, 2) }
func (e ExtendedFeatures) HasAVX5124FMAPS() bool       { return bitSet(e.EDX, 3) }
func (e ExtendedFeatures) HasFSRM() bool               { return bitSet(e.EDX, 4) }
func (e ExtendedFeatures) HasAVX512VP2INTERSECT() bool { return bitSet(e.EDX, 8) }
func (e ExtendedFeatures) HasMDClear() bool            { return bitSet(e.EDX, 10) }
func (e ExtendedFeatures) HasSERIALIZE() bool          { return bitSet(e.EDX, 14) }
func (e ExtendedFeatures) HasHybrid() bool             { return bitSet(e.EDX, 15) }
func (e ExtendedFeatures) HasCETIBT() bool             { return bitSet(e.EDX, 20) }
func (e ExtendedFeatures) HasAMXBF16() bool            { return bitSet(e.EDX, 22) }
func (e ExtendedFeatures) HasAVX512FP16() bool         { return bitSet(e.EDX, 23) }
func (e ExtendedFeatures) HasAMXTile() bool            { return bitSet(e.EDX, 24) }
func (e ExtendedFeatures) HasAMXInt8() bool            { return bitSet(e.EDX, 25) }
func (e ExtendedFeatures) HasIBRSIBPB() bool           { return bitSet(e.EDX, 26) }
func (e ExtendedFeatures) HasSTIBP() bool              { return bitSet(e.EDX, 27) }
func (e ExtendedFeatures) HasL1DFlush() bool           { return bitSet(e.EDX, 28) }
func (e ExtendedFeatures) HasArchCapabilities() bool   { return bitSet(e.EDX, 29) }
func (e ExtendedFeatures) HasSSBD() bool               { return bitSet(e.EDX, 31) }
