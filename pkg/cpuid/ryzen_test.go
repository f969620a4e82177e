package cpuid

import "testing"

// Raw dump of an AMD Ryzen 5 3600X, keyed leaf<<32 | subleaf. Leaves
// the processor reports as all-zero are omitted; the map source reads
// them as zero either way.
var ryzenMatisse = map[uint64]Result{
	0x00000000_00000000: {EAX: 0x00000010, EBX: 0x68747541, ECX: 0x444d4163, EDX: 0x69746e65},
	0x00000001_00000000: {EAX: 0x00870f10, EBX: 0x000c0800, ECX: 0x7ed8320b, EDX: 0x178bfbff},
	0x00000005_00000000: {EAX: 0x00000040, EBX: 0x00000040, ECX: 0x00000003, EDX: 0x00000011},
	0x00000006_00000000: {EAX: 0x00000004, EBX: 0x00000000, ECX: 0x00000001, EDX: 0x00000000},
	0x00000007_00000000: {EAX: 0x00000000, EBX: 0x219c91a9, ECX: 0x00400004, EDX: 0x00000000},
	0x0000000b_00000000: {EAX: 0x00000001, EBX: 0x00000002, ECX: 0x00000100, EDX: 0x00000000},
	0x0000000b_00000001: {EAX: 0x00000007, EBX: 0x0000000c, ECX: 0x00000201, EDX: 0x00000000},
	0x0000000d_00000000: {EAX: 0x00000207, EBX: 0x00000340, ECX: 0x00000380, EDX: 0x00000000},
	0x0000000d_00000001: {EAX: 0x0000000f, EBX: 0x00000340, ECX: 0x00000000, EDX: 0x00000000},
	0x0000000d_00000002: {EAX: 0x00000100, EBX: 0x00000240, ECX: 0x00000000, EDX: 0x00000000},
	0x0000000d_00000009: {EAX: 0x00000040, EBX: 0x00000340, ECX: 0x00000000, EDX: 0x00000000},
	0x0000000f_00000000: {EAX: 0x00000000, EBX: 0x000000ff, ECX: 0x00000000, EDX: 0x00000002},
	0x0000000f_00000001: {EAX: 0x00000000, EBX: 0x00000040, ECX: 0x000000ff, EDX: 0x00000007},
	0x00000010_00000000: {EAX: 0x00000000, EBX: 0x00000002, ECX: 0x00000000, EDX: 0x00000000},
	0x00000010_00000001: {EAX: 0x0000000f, EBX: 0x00000000, ECX: 0x00000004, EDX: 0x0000000f},
	0x80000000_00000000: {EAX: 0x80000020, EBX: 0x68747541, ECX: 0x444d4163, EDX: 0x69746e65},
	0x80000001_00000000: {EAX: 0x00870f10, EBX: 0x20000000, ECX: 0x75c237ff, EDX: 0x2fd3fbff},
	0x80000002_00000000: {EAX: 0x20444d41, EBX: 0x657a7952, ECX: 0x2035206e, EDX: 0x30303633},
	0x80000003_00000000: {EAX: 0x2d362058, EBX: 0x65726f43, ECX: 0x6f725020, EDX: 0x73736563},
	0x80000004_00000000: {EAX: 0x2020726f, EBX: 0x20202020, ECX: 0x20202020, EDX: 0x00202020},
	0x80000005_00000000: {EAX: 0xff40ff40, EBX: 0xff40ff40, ECX: 0x20080140, EDX: 0x20080140},
	0x80000006_00000000: {EAX: 0x48006400, EBX: 0x68006400, ECX: 0x02006140, EDX: 0x01009140},
	0x80000007_00000000: {EAX: 0x00000000, EBX: 0x0000001b, ECX: 0x00000000, EDX: 0x00006799},
	0x80000008_00000000: {EAX: 0x00003030, EBX: 0x010eb757, ECX: 0x0000700b, EDX: 0x00010000},
	0x8000000a_00000000: {EAX: 0x00000001, EBX: 0x00008000, ECX: 0x00000000, EDX: 0x0013bcff},
	0x80000019_00000000: {EAX: 0xf040f040, EBX: 0x00000000, ECX: 0x00000000, EDX: 0x00000000},
	0x8000001a_00000000: {EAX: 0x00000006, EBX: 0x00000000, ECX: 0x00000000, EDX: 0x00000000},
	0x8000001b_00000000: {EAX: 0x000003ff, EBX: 0x00000000, ECX: 0x00000000, EDX: 0x00000000},
	0x8000001d_00000000: {EAX: 0x00004121, EBX: 0x01c0003f, ECX: 0x0000003f, EDX: 0x00000000},
	0x8000001d_00000001: {EAX: 0x00004122, EBX: 0x01c0003f, ECX: 0x0000003f, EDX: 0x00000000},
	0x8000001d_00000002: {EAX: 0x00004143, EBX: 0x01c0003f, ECX: 0x000003ff, EDX: 0x00000002},
	0x8000001d_00000003: {EAX: 0x00014163, EBX: 0x03c0003f, ECX: 0x00003fff, EDX: 0x00000001},
	0x8000001e_00000000: {EAX: 0x00000000, EBX: 0x00000100, ECX: 0x00000000, EDX: 0x00000000},
	0x8000001f_00000000: {EAX: 0x0001000f, EBX: 0x0000016f, ECX: 0x000001fd, EDX: 0x00000001},
}

func ryzen() *CPUID {
	return NewFromSource(mapSource(ryzenMatisse))
}

func TestRyzenVendor(t *testing.T) {
	c := ryzen()
	v, _ := c.VendorInfo()
	if v.String() != "AuthenticAMD" {
		t.Fatalf("vendor = %q, want AuthenticAMD", v.String())
	}
	if c.Vendor() != VendorAMD {
		t.Fatalf("vendor classified as %v", c.Vendor())
	}
}

func TestRyzenFeatureInfo(t *testing.T) {
	f, ok := ryzen().FeatureInfo()
	if !ok {
		t.Fatalf("feature info must be present")
	}

	if f.BaseFamilyID() != 0xF || f.ExtendedFamilyID() != 0x8 || f.FamilyID() != 0x17 {
		t.Fatalf("family fields: base %#x ext %#x display %#x", f.BaseFamilyID(), f.ExtendedFamilyID(), f.FamilyID())
	}
	if f.BaseModelID() != 0x1 || f.ExtendedModelID() != 0x7 || f.ModelID() != 0x71 {
		t.Fatalf("model fields: base %#x ext %#x display %#x", f.BaseModelID(), f.ExtendedModelID(), f.ModelID())
	}
	if f.SteppingID() != 0 {
		t.Fatalf("SteppingID = %d, want 0", f.SteppingID())
	}
	if f.CLFLUSHLineSize() != 64 {
		t.Fatalf("CLFLUSHLineSize = %d, want 64", f.CLFLUSHLineSize())
	}
	if f.MaxLogicalProcessorIDs() != 12 {
		t.Fatalf("MaxLogicalProcessorIDs = %d, want 12", f.MaxLogicalProcessorIDs())
	}

	if !f.HasFPU() || !f.HasTSC() || !f.HasCMPXCHG8B() || !f.HasSysenterSysexit() ||
		!f.HasMMX() || !f.HasFXSaveFXStor() || !f.HasSSE() || !f.HasSSE2() || !f.HasHTT() {
		t.Fatalf("EDX %#x: missing baseline features", f.EDX)
	}
	if f.HasPSN() || f.HasDS() || f.HasACPI() || f.HasSS() || f.HasTM() || f.HasPBE() {
		t.Fatalf("EDX %#x: Intel-specific bits set", f.EDX)
	}
	if !f.HasSSE3() || !f.HasPCLMULQDQ() || !f.HasMonitorMwait() || !f.HasSSSE3() ||
		!f.HasFMA() || !f.HasCMPXCHG16B() || !f.HasSSE41() || !f.HasSSE42() ||
		!f.HasMOVBE() || !f.HasPOPCNT() || !f.HasAESNI() || !f.HasXSAVE() ||
		!f.HasOSXSAVE() || !f.HasAVX() || !f.HasF16C() || !f.HasRDRAND() {
		t.Fatalf("ECX %#x: missing features", f.ECX)
	}
	if f.HasVMX() || f.HasSMX() || f.HasEIST() || f.HasX2APIC() || f.HasTSCDeadline() || f.HasHypervisor() {
		t.Fatalf("ECX %#x: unexpected features", f.ECX)
	}
}

func TestRyzenIntelOnlyLeavesAbsent(t *testing.T) {
	c := ryzen()
	if _, ok := c.CacheDescriptors(); ok {
		t.Fatalf("legacy cache descriptors must be absent")
	}
	if _, ok := c.ProcessorSerial(); ok {
		t.Fatalf("processor serial must be absent")
	}
	if _, ok := c.DirectCacheAccessInfo(); ok {
		t.Fatalf("DCA info must be absent")
	}
	if _, ok := c.PerformanceMonitoringInfo(); ok {
		t.Fatalf("perfmon info must be absent")
	}
	if _, ok := c.SgxInfo(); ok {
		t.Fatalf("SGX info must be absent")
	}
	if _, ok := c.TscInfo(); ok {
		t.Fatalf("TSC info must be absent")
	}
	if _, ok := c.ProcessorFrequencyInfo(); ok {
		t.Fatalf("frequency info must be absent")
	}
	if _, ok := c.DeterministicAddressTranslation(); ok {
		t.Fatalf("address translation info must be absent")
	}
}

func TestRyzenMonitorMwait(t *testing.T) {
	m, ok := ryzen().MonitorMwaitInfo()
	if !ok {
		t.Fatalf("monitor/mwait must be present")
	}
	if m.SmallestMonitorLine() != 64 || m.LargestMonitorLine() != 64 {
		t.Fatalf("monitor lines = %d/%d, want 64/64", m.SmallestMonitorLine(), m.LargestMonitorLine())
	}
	if !m.ExtensionsSupported() || !m.InterruptsAsBreakEvent() {
		t.Fatalf("ECX %#x: missing MWAIT capabilities", m.ECX)
	}
}

func TestRyzenThermalPower(t *testing.T) {
	tp, ok := ryzen().ThermalPowerInfo()
	if !ok {
		t.Fatalf("thermal/power must be present")
	}
	if !tp.HasARAT() {
		t.Fatalf("expected ARAT")
	}
	if tp.HasDTS() || tp.HasTurboBoost() || tp.HasPLN() || tp.HasECMD() || tp.HasPTM() ||
		tp.HasHWP() || tp.HasHDC() || tp.HasTurboBoost3() {
		t.Fatalf("EAX %#x: Intel thermal bits set", tp.EAX)
	}
	if tp.DTSIrqThreshold() != 0 {
		t.Fatalf("DTSIrqThreshold = %d, want 0", tp.DTSIrqThreshold())
	}
	if !tp.HasHwCoordFeedback() {
		t.Fatalf("expected hardware coordination feedback")
	}
	if tp.HasEnergyBiasPref() {
		t.Fatalf("unexpected energy bias preference")
	}
}

func TestRyzenExtendedFeatures(t *testing.T) {
	e, ok := ryzen().ExtendedFeatures()
	if !ok {
		t.Fatalf("extended features must be present")
	}
	if !e.HasFSGSBASE() || !e.HasBMI1() || !e.HasAVX2() || !e.HasSMEP() || !e.HasBMI2() ||
		!e.HasRDTM() || !e.HasRDTA() || !e.HasRDSEED() || !e.HasADX() || !e.HasSMAP() ||
		!e.HasCLFLUSHOPT() || !e.HasCLWB() || !e.HasSHA() {
		t.Fatalf("EBX %#x: missing features", e.EBX)
	}
	if e.HasTSCAdjustMSR() || e.HasHLE() || e.HasRepMovsbStosb() || e.HasINVPCID() ||
		e.HasRTM() || e.HasMPX() || e.HasSGX() || e.HasAVX512F() || e.HasProcessorTrace() {
		t.Fatalf("EBX %#x: unexpected features", e.EBX)
	}
	if !e.HasUMIP() || !e.HasRDPID() {
		t.Fatalf("ECX %#x: missing features", e.ECX)
	}
	if e.HasPREFETCHWT1() || e.HasPKU() || e.HasOSPKE() || e.HasSGXLC() {
		t.Fatalf("ECX %#x: unexpected features", e.ECX)
	}
	if e.MawauValue() != 0 {
		t.Fatalf("MawauValue = %d, want 0", e.MawauValue())
	}
}

func TestRyzenTopology(t *testing.T) {
	it, ok := ryzen().ExtendedTopology()
	if !ok {
		t.Fatalf("extended topology must be present")
	}

	l, ok := it.Next()
	if !ok || l.LevelType() != TopologyLevelSMT {
		t.Fatalf("level 0 = %v (ok=%v), want SMT", l.LevelType(), ok)
	}
	if l.Processors() != 2 || l.ShiftRightForNextApicID() != 1 || l.LevelNumber() != 0 || l.X2ApicID() != 0 {
		t.Fatalf("SMT level decoded as %+v", l)
	}

	l, ok = it.Next()
	if !ok || l.LevelType() != TopologyLevelCore {
		t.Fatalf("level 1 = %v (ok=%v), want Core", l.LevelType(), ok)
	}
	if l.Processors() != 12 || l.ShiftRightForNextApicID() != 7 || l.LevelNumber() != 1 {
		t.Fatalf("core level decoded as %+v", l)
	}

	if _, ok := it.Next(); ok {
		t.Fatalf("no levels expected past the core level")
	}
}

func TestRyzenExtendedState(t *testing.T) {
	e, ok := ryzen().ExtendedStateInfo()
	if !ok {
		t.Fatalf("extended state must be present")
	}
	if !e.Xcr0SupportsLegacyX87() || !e.Xcr0SupportsSSE128() || !e.Xcr0SupportsAVX256() || !e.Xcr0SupportsPKRU() {
		t.Fatalf("XCR0 %#x: missing state components", e.Xcr0Supported())
	}
	if e.Xcr0SupportsMPXBndregs() || e.Xcr0SupportsMPXBndcsr() || e.Xcr0SupportsAVX512Opmask() ||
		e.Xcr0SupportsAVX512ZmmHi256() || e.Xcr0SupportsAVX512ZmmHi16() {
		t.Fatalf("XCR0 %#x: unexpected state components", e.Xcr0Supported())
	}
	if e.IA32XssSupportsPT() || e.IA32XssSupportsHDC() {
		t.Fatalf("unexpected IA32_XSS components")
	}
	if e.XsaveAreaSizeEnabledFeatures() != 0x340 {
		t.Fatalf("enabled-features size = %#x, want 0x340", e.XsaveAreaSizeEnabledFeatures())
	}
	if e.XsaveAreaSizeSupportedFeatures() != 0x380 {
		t.Fatalf("supported-features size = %#x, want 0x380", e.XsaveAreaSizeSupportedFeatures())
	}
	if !e.HasXsaveopt() || !e.HasXsavec() || !e.HasXgetbv1() || !e.HasXsavesXrstors() {
		t.Fatalf("EAX1 %#x: missing XSAVE instruction support", e.EAX1)
	}
	if e.XsaveSize() != 0x340 {
		t.Fatalf("XsaveSize = %#x, want 0x340", e.XsaveSize())
	}

	it := e.Iter()
	s, ok := it.Next()
	if !ok || s.Subleaf != 2 || s.Size() != 256 || s.Offset() != 576 {
		t.Fatalf("first component = %+v (ok=%v), want AVX at sub-leaf 2", s, ok)
	}
	if !s.IsInXcr0() || s.IsCompactedFormat() {
		t.Fatalf("AVX component flags decoded as %+v", s)
	}
	s, ok = it.Next()
	if !ok || s.Subleaf != 9 || s.Size() != 64 || s.Offset() != 832 {
		t.Fatalf("second component = %+v (ok=%v), want PKRU at sub-leaf 9", s, ok)
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("no components expected past PKRU")
	}
}

func TestRyzenRdtMonitoring(t *testing.T) {
	r, ok := ryzen().RdtMonitoringInfo()
	if !ok {
		t.Fatalf("RDT monitoring must be present")
	}
	if r.RmidRange() != 255 {
		t.Fatalf("RmidRange = %d, want 255", r.RmidRange())
	}
	if !r.HasL3Monitoring() {
		t.Fatalf("expected L3 monitoring")
	}

	l3, ok := r.L3Monitoring()
	if !ok {
		t.Fatalf("L3 monitoring sub-leaf must be present")
	}
	if l3.ConversionFactor() != 64 {
		t.Fatalf("ConversionFactor = %d, want 64", l3.ConversionFactor())
	}
	if l3.MaximumRmidRange() != 255 {
		t.Fatalf("MaximumRmidRange = %d, want 255", l3.MaximumRmidRange())
	}
	if !l3.HasOccupancyMonitoring() || !l3.HasTotalBandwidthMonitoring() || !l3.HasLocalBandwidthMonitoring() {
		t.Fatalf("EDX %#x: missing L3 monitoring events", l3.EDX)
	}
}

func TestRyzenRdtAllocation(t *testing.T) {
	r, ok := ryzen().RdtAllocationInfo()
	if !ok {
		t.Fatalf("RDT allocation must be present")
	}
	if !r.HasL3Cat() || r.HasL2Cat() || r.HasMemoryBandwidthAllocation() {
		t.Fatalf("EBX %#x: want L3 CAT only", r.EBX)
	}
	if _, ok := r.L2Cat(); ok {
		t.Fatalf("L2 CAT must be absent")
	}
	if _, ok := r.MemoryBandwidthAllocation(); ok {
		t.Fatalf("memory bandwidth allocation must be absent")
	}

	l3, ok := r.L3Cat()
	if !ok {
		t.Fatalf("L3 CAT sub-leaf must be present")
	}
	if l3.CapacityMaskLength() != 0x10 {
		t.Fatalf("CapacityMaskLength = %#x, want 0x10", l3.CapacityMaskLength())
	}
	if l3.IsolationBitmap() != 0 {
		t.Fatalf("IsolationBitmap = %#x, want 0", l3.IsolationBitmap())
	}
	if l3.HighestCos() != 15 {
		t.Fatalf("HighestCos = %d, want 15", l3.HighestCos())
	}
	if !l3.HasCodeDataPrioritization() {
		t.Fatalf("expected code/data prioritization")
	}
}

func TestRyzenBrandString(t *testing.T) {
	b, ok := ryzen().ProcessorBrandString()
	if !ok {
		t.Fatalf("brand string must be present")
	}
	want := "AMD Ryzen 5 3600X 6-Core Processor"
	if b.String() != want {
		t.Fatalf("brand string = %q, want %q", b.String(), want)
	}
}

func TestRyzenCacheHierarchy(t *testing.T) {
	// AMD reports the deterministic cache hierarchy on leaf
	// 0x8000001D.
	it, ok := ryzen().CacheParameters()
	if !ok {
		t.Fatalf("cache parameters must be present")
	}

	type level struct {
		typ   CacheType
		level uint32
		size  uint64
		cores uint32
	}
	want := []level{
		{CacheTypeData, 1, 32 * 1024, 2},
		{CacheTypeInstruction, 1, 32 * 1024, 2},
		{CacheTypeUnified, 2, 512 * 1024, 2},
		{CacheTypeUnified, 3, 16 * 1024 * 1024, 6},
	}
	for i, w := range want {
		p, ok := it.Next()
		if !ok {
			t.Fatalf("cache level %d missing", i)
		}
		if p.Type() != w.typ || p.Level() != w.level {
			t.Fatalf("level %d: %v L%d, want %v L%d", i, p.Type(), p.Level(), w.typ, w.level)
		}
		if p.Size() != w.size {
			t.Fatalf("level %d: size %d, want %d", i, p.Size(), w.size)
		}
		if p.MaxCoresForCache() != w.cores {
			t.Fatalf("level %d: shared by %d, want %d", i, p.MaxCoresForCache(), w.cores)
		}
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("no cache levels expected past L3")
	}
}

func TestRyzenExtendedProcessorInfo(t *testing.T) {
	e, ok := ryzen().ExtendedProcessorInfo()
	if !ok {
		t.Fatalf("extended processor info must be present")
	}
	if !e.HasLahfSahf() || !e.HasLzcnt() || !e.HasSse4a() || !e.HasMisalignedSse() ||
		!e.HasOsvw() || !e.HasTopologyExtensions() {
		t.Fatalf("ECX %#x: missing features", e.ECX)
	}
	if !e.HasSvm() {
		t.Fatalf("expected SVM")
	}
	if !e.HasSyscallSysret() || !e.HasExecuteDisable() || !e.Has1GiBPages() ||
		!e.HasRdtscp() || !e.Has64BitMode() || !e.HasMmxExt() || !e.HasFastFxsave() {
		t.Fatalf("EDX %#x: missing features", e.EDX)
	}
	if e.Has3DNow() || e.Has3DNowExt() {
		t.Fatalf("unexpected 3DNow support")
	}
}

func TestRyzenL1CacheTlb(t *testing.T) {
	l, ok := ryzen().L1CacheTlbInfo()
	if !ok {
		t.Fatalf("L1 cache/TLB info must be present")
	}
	if l.DCacheSize() != 32 || l.DCacheAssociativity() != 8 || l.DCacheLineSize() != 64 {
		t.Fatalf("L1D: %dK %d-way %dB lines", l.DCacheSize(), l.DCacheAssociativity(), l.DCacheLineSize())
	}
	if l.ICacheSize() != 32 || l.ICacheAssociativity() != 8 || l.ICacheLineSize() != 64 {
		t.Fatalf("L1I: %dK %d-way %dB lines", l.ICacheSize(), l.ICacheAssociativity(), l.ICacheLineSize())
	}
	if l.DTlb4KEntries() != 64 || l.DTlb4KAssociativity() != 0xFF {
		t.Fatalf("DTLB 4K: %d entries assoc %#x", l.DTlb4KEntries(), l.DTlb4KAssociativity())
	}
	if l.ITlb2M4MEntries() != 64 || l.ITlb2M4MAssociativity() != 0xFF {
		t.Fatalf("ITLB 2M/4M: %d entries assoc %#x", l.ITlb2M4MEntries(), l.ITlb2M4MAssociativity())
	}
}

func TestRyzenL2L3CacheTlb(t *testing.T) {
	l, ok := ryzen().L2L3CacheTlbInfo()
	if !ok {
		t.Fatalf("L2/L3 cache info must be present")
	}
	if l.L2CacheSize() != 512 || l.L2CacheAssociativity() != 8 || l.L2CacheLineSize() != 64 {
		t.Fatalf("L2: %dK %d-way %dB lines", l.L2CacheSize(), l.L2CacheAssociativity(), l.L2CacheLineSize())
	}
	if l.L3CacheSize() != 32*1024 {
		t.Fatalf("L3CacheSize = %dK, want 32768K", l.L3CacheSize())
	}
	if l.L3CacheLineSize() != 64 {
		t.Fatalf("L3CacheLineSize = %d, want 64", l.L3CacheLineSize())
	}
}

func TestRyzenApmInfo(t *testing.T) {
	a, ok := ryzen().ApmInfo()
	if !ok {
		t.Fatalf("APM info must be present")
	}
	if !a.HasMcaOverflowRecovery() || !a.HasSuccor() {
		t.Fatalf("EBX %#x: missing RAS capabilities", a.EBX)
	}
	if a.HasHwa() {
		t.Fatalf("unexpected HWA")
	}
	if !a.HasTsMsr() || !a.HasThermTrip() || !a.HasTm() || !a.HasHwPstate() ||
		!a.HasInvariantTsc() || !a.HasCpb() {
		t.Fatalf("EDX %#x: missing power capabilities", a.EDX)
	}
	if a.Has100MHzSteps() {
		t.Fatalf("unexpected 100 MHz steps")
	}
}

func TestRyzenProcessorCapacity(t *testing.T) {
	p, ok := ryzen().ProcessorCapacityInfo()
	if !ok {
		t.Fatalf("capacity info must be present")
	}
	if p.PhysicalAddressBits() != 48 || p.LinearAddressBits() != 48 {
		t.Fatalf("address bits = %d/%d, want 48/48", p.PhysicalAddressBits(), p.LinearAddressBits())
	}
	if p.NumPhysicalThreads() != 12 {
		t.Fatalf("NumPhysicalThreads = %d, want 12", p.NumPhysicalThreads())
	}
	if p.ApicIDSize() != 7 {
		t.Fatalf("ApicIDSize = %d, want 7", p.ApicIDSize())
	}
	if p.PerfTscSize() != 40 {
		t.Fatalf("PerfTscSize = %d, want 40", p.PerfTscSize())
	}
	if !p.HasClzero() || !p.HasRdpru() || !p.HasWbnoinvd() || !p.HasIbpb() || !p.HasStibp() || !p.HasSsbd() {
		t.Fatalf("EBX %#x: missing extended features", p.EBX)
	}
	if p.HasIbrs() {
		t.Fatalf("unexpected IBRS")
	}
}

func TestRyzenSvm(t *testing.T) {
	s, ok := ryzen().SvmInfo()
	if !ok {
		t.Fatalf("SVM info must be present")
	}
	if s.Revision() != 1 {
		t.Fatalf("Revision = %d, want 1", s.Revision())
	}
	if s.SupportedAsids() != 32768 {
		t.Fatalf("SupportedAsids = %d, want 32768", s.SupportedAsids())
	}
	if !s.HasNestedPaging() || !s.HasLbrVirtualization() || !s.HasNrips() ||
		!s.HasFlushByAsid() || !s.HasDecodeAssists() || !s.HasPauseFilter() ||
		!s.HasPauseFilterThreshold() || !s.HasAvic() || !s.HasVgif() {
		t.Fatalf("EDX %#x: missing SVM capabilities", s.EDX)
	}
}

func TestRyzenTlb1GbPage(t *testing.T) {
	tlb, ok := ryzen().Tlb1GbPageInfo()
	if !ok {
		t.Fatalf("1-GiB TLB info must be present")
	}
	if tlb.L1ITlbEntries() != 64 || tlb.L1ITlbAssociativity() != 0xFF {
		t.Fatalf("L1 ITLB: %d entries assoc %#x", tlb.L1ITlbEntries(), tlb.L1ITlbAssociativity())
	}
	if tlb.L1DTlbEntries() != 64 || tlb.L1DTlbAssociativity() != 0xFF {
		t.Fatalf("L1 DTLB: %d entries assoc %#x", tlb.L1DTlbEntries(), tlb.L1DTlbAssociativity())
	}
	if tlb.L2ITlbEntries() != 0 || tlb.L2DTlbEntries() != 0 {
		t.Fatalf("no L2 1-GiB TLB expected")
	}
}

func TestRyzenPerformanceOptimization(t *testing.T) {
	p, ok := ryzen().PerformanceOptimizationInfo()
	if !ok {
		t.Fatalf("performance optimization info must be present")
	}
	if p.HasFp128() {
		t.Fatalf("unexpected 128-bit FPU report")
	}
	if !p.HasMovU() || !p.HasFp256() {
		t.Fatalf("EAX %#x: missing optimization hints", p.EAX)
	}
}

func TestRyzenMemoryEncryption(t *testing.T) {
	m, ok := ryzen().MemoryEncryptionInfo()
	if !ok {
		t.Fatalf("memory encryption info must be present")
	}
	if !m.HasSme() || !m.HasSev() || !m.HasPageFlushMsr() || !m.HasSevEs() {
		t.Fatalf("EAX %#x: missing SME/SEV capabilities", m.EAX)
	}
	if m.HasSevSnp() || m.HasVmpl() {
		t.Fatalf("EAX %#x: unexpected SNP capabilities", m.EAX)
	}
	if m.CBitPosition() != 47 {
		t.Fatalf("CBitPosition = %d, want 47", m.CBitPosition())
	}
	if m.PhysicalAddressReduction() != 5 {
		t.Fatalf("PhysicalAddressReduction = %d, want 5", m.PhysicalAddressReduction())
	}
	if m.MaxEncryptedGuests() != 509 {
		t.Fatalf("MaxEncryptedGuests = %d, want 509", m.MaxEncryptedGuests())
	}
	if m.MinSevNoEsAsid() != 1 {
		t.Fatalf("MinSevNoEsAsid = %d, want 1", m.MinSevNoEsAsid())
	}
}
