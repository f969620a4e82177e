package cpuid

// ExtendedProcessorInfo is the leaf 0x8000_0001 extended signature and
// feature identification. Several ECX/EDX bits are AMD-specific; those
// accessors consult the vendor and report false on other vendors even
// if the raw bit happens to be set.
type ExtendedProcessorInfo struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32

	vendor Vendor
}

// ExtendedSignature returns the raw extended processor signature.
func (e ExtendedProcessorInfo) ExtendedSignature() uint32 { return e.EAX }

func (e ExtendedProcessorInfo) amd(reg uint32, pos uint) bool {
	return e.vendor == VendorAMD && bitSet(reg, pos)
}

// Flags defined for both vendors.

func (e ExtendedProcessorInfo) HasLahfSahf() bool       { return bitSet(e.ECX, 0) }
func (e ExtendedProcessorInfo) HasLzcnt() bool          { return bitSet(e.ECX, 5) }
func (e ExtendedProcessorInfo) HasPrefetchW() bool      { return bitSet(e.ECX, 8) }
func (e ExtendedProcessorInfo) HasSyscallSysret() bool  { return bitSet(e.EDX, 11) }
func (e ExtendedProcessorInfo) HasExecuteDisable() bool { return bitSet(e.EDX, 20) }
func (e ExtendedProcessorInfo) Has1GiBPages() bool      { return bitSet(e.EDX, 26) }
func (e ExtendedProcessorInfo) HasRdtscp() bool         { return bitSet(e.EDX, 27) }
func (e ExtendedProcessorInfo) Has64BitMode() bool      { return bitSet(e.EDX, 29) }

// AMD-only flags.

func (e ExtendedProcessorInfo) HasCmpLegacy() bool          { return e.amd(e.ECX, 1) }
func (e ExtendedProcessorInfo) HasSvm() bool                { return e.amd(e.ECX, 2) }
func (e ExtendedProcessorInfo) HasExtApicSpace() bool       { return e.amd(e.ECX, 3) }
func (e ExtendedProcessorInfo) HasAltMovCr8() bool          { return e.amd(e.ECX, 4) }
func (e ExtendedProcessorInfo) HasSse4a() bool              { return e.amd(e.ECX, 6) }
func (e ExtendedProcessorInfo) HasMisalignedSse() bool      { return e.amd(e.ECX, 7) }
func (e ExtendedProcessorInfo) HasOsvw() bool               { return e.amd(e.ECX, 9) }
func (e ExtendedProcessorInfo) HasIbs() bool                { return e.amd(e.ECX, 10) }
func (e ExtendedProcessorInfo) HasXop() bool                { return e.amd(e.ECX, 11) }
func (e ExtendedProcessorInfo) HasSkinit() bool             { return e.amd(e.ECX, 12) }
func (e ExtendedProcessorInfo) HasWdt() bool                { return e.amd(e.ECX, 13) }
func (e ExtendedProcessorInfo) HasLwp() bool                { return e.amd(e.ECX, 15) }
func (e ExtendedProcessorInfo) HasFma4() bool               { return e.amd(e.ECX, 16) }
func (e ExtendedProcessorInfo) HasTbm() bool                { return e.amd(e.ECX, 21) }
func (e ExtendedProcessorInfo) HasTopologyExtensions() bool { return e.amd(e.ECX, 22) }
func (e ExtendedProcessorInfo) HasMmxExt() bool             { return e.amd(e.EDX, 22) }
func (e ExtendedProcessorInfo) HasFastFxsave() bool         { return e.amd(e.EDX, 25) }
func (e ExtendedProcessorInfo) Has3DNowExt() bool           { return e.amd(e.EDX, 30) }
func (e ExtendedProcessorInfo) Has3DNow() bool              { return e.amd(e.EDX, 31) }

// TLB and cache associativity codes used by the AMD extended cache
// leaves. 0xFF means fully associative.
var amdAssocCodes = map[uint32]int{
	0x0: 0, 0x1: 1, 0x2: 2, 0x4: 4, 0x6: 8,
	0x8: 16, 0xA: 32, 0xB: 48, 0xC: 64, 0xD: 96, 0xE: 128, 0xF: 0xFF,
}

// L1CacheTlbInfo is the leaf 0x8000_0005 L1 cache and TLB description
// (AMD). TLB associativity of 0xFF means fully associative.
type L1CacheTlbInfo struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32
}

func (l L1CacheTlbInfo) ITlb2M4MEntries() uint32       { return field(l.EAX, 7, 0) }
func (l L1CacheTlbInfo) ITlb2M4MAssociativity() uint32 { return field(l.EAX, 15, 8) }
func (l L1CacheTlbInfo) DTlb2M4MEntries() uint32       { return field(l.EAX, 23, 16) }
func (l L1CacheTlbInfo) DTlb2M4MAssociativity() uint32 { return field(l.EAX, 31, 24) }

func (l L1CacheTlbInfo) ITlb4KEntries() uint32       { return field(l.EBX, 7, 0) }
func (l L1CacheTlbInfo) ITlb4KAssociativity() uint32 { return field(l.EBX, 15, 8) }
func (l L1CacheTlbInfo) DTlb4KEntries() uint32       { return field(l.EBX, 23, 16) }
func (l L1CacheTlbInfo) DTlb4KAssociativity() uint32 { return field(l.EBX, 31, 24) }

// DCacheLineSize returns the L1 data cache line size in bytes.
func (l L1CacheTlbInfo) DCacheLineSize() uint32 { return field(l.ECX, 7, 0) }

// DCacheLinesPerTag returns the L1 data cache lines per tag.
func (l L1CacheTlbInfo) DCacheLinesPerTag() uint32 { return field(l.ECX, 15, 8) }

// DCacheAssociativity returns the L1 data cache associativity.
func (l L1CacheTlbInfo) DCacheAssociativity() uint32 { return field(l.ECX, 23, 16) }

// DCacheSize returns the L1 data cache size in KiB.
func (l L1CacheTlbInfo) DCacheSize() uint32 { return field(l.ECX, 31, 24) }

// ICacheLineSize returns the L1 instruction cache line size in bytes.
func (l L1CacheTlbInfo) ICacheLineSize() uint32 { return field(l.EDX, 7, 0) }

// ICacheLinesPerTag returns the L1 instruction cache lines per tag.
func (l L1CacheTlbInfo) ICacheLinesPerTag() uint32 { return field(l.EDX, 15, 8) }

// ICacheAssociativity returns the L1 instruction cache associativity.
func (l L1CacheTlbInfo) ICacheAssociativity() uint32 { return field(l.EDX, 23, 16) }

// ICacheSize returns the L1 instruction cache size in KiB.
func (l L1CacheTlbInfo) ICacheSize() uint32 { return field(l.EDX, 31, 24) }

// L2L3CacheTlbInfo is the leaf 0x8000_0006 L2/L3 cache and TLB
// description. Intel defines only the L2 cache fields in ECX; the TLB
// fields in EAX/EBX and the L3 fields in EDX are AMD-specific and
// report zero on other vendors.
type L2L3CacheTlbInfo struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32

	vendor Vendor
}

// L2CacheLineSize returns the L2 cache line size in bytes.
func (l L2L3CacheTlbInfo) L2CacheLineSize() uint32 { return field(l.ECX, 7, 0) }

// L2CacheAssociativity returns the decoded L2 associativity; 0xFF
// means fully associative, 0 means the L2 is disabled.
func (l L2L3CacheTlbInfo) L2CacheAssociativity() int {
	return amdAssocCodes[field(l.ECX, 15, 12)]
}

// L2CacheSize returns the L2 cache size in KiB.
func (l L2L3CacheTlbInfo) L2CacheSize() uint32 { return field(l.ECX, 31, 16) }

// L2CacheLinesPerTag returns the L2 lines per tag (AMD).
func (l L2L3CacheTlbInfo) L2CacheLinesPerTag() uint32 {
	if l.vendor != VendorAMD {
		return 0
	}
	return field(l.ECX, 11, 8)
}

// L2DTlb2M4MEntries returns the L2 data TLB entry count for 2M/4M
// pages (AMD).
func (l L2L3CacheTlbInfo) L2DTlb2M4MEntries() uint32 {
	if l.vendor != VendorAMD {
		return 0
	}
	return field(l.EAX, 27, 16)
}

// L2DTlb2M4MAssociativity returns the decoded associativity of the L2
// data TLB for 2M/4M pages (AMD).
func (l L2L3CacheTlbInfo) L2DTlb2M4MAssociativity() int {
	if l.vendor != VendorAMD {
		return 0
	}
	return amdAssocCodes[field(l.EAX, 31, 28)]
}

// L2ITlb2M4MEntries returns the L2 instruction TLB entry count for
// 2M/4M pages (AMD).
func (l L2L3CacheTlbInfo) L2ITlb2M4MEntries() uint32 {
	if l.vendor != VendorAMD {
		return 0
	}
	return field(l.EAX, 11, 0)
}

// L2ITlb2M4MAssociativity returns the decoded associativity of the L2
// instruction TLB for 2M/4M pages (AMD).
func (l L2L3CacheTlbInfo) L2ITlb2M4MAssociativity() int {
	if l.vendor != VendorAMD {
		return 0
	}
	return amdAssocCodes[field(l.EAX, 15, 12)]
}

// L2DTlb4KEntries returns the L2 data TLB entry count for 4K pages
// (AMD).
func (l L2L3CacheTlbInfo) L2DTlb4KEntries() uint32 {
	if l.vendor != VendorAMD {
		return 0
	}
	return field(l.EBX, 27, 16)
}

// L2DTlb4KAssociativity returns the decoded associativity of the L2
// data TLB for 4K pages (AMD).
func (l L2L3CacheTlbInfo) L2DTlb4KAssociativity() int {
	if l.vendor != VendorAMD {
		return 0
	}
	return amdAssocCodes[field(l.EBX, 31, 28)]
}

// L2ITlb4KEntries returns the L2 instruction TLB entry count for 4K
// pages (AMD).
func (l L2L3CacheTlbInfo) L2ITlb4KEntries() uint32 {
	if l.vendor != VendorAMD {
		return 0
	}
	return field(l.EBX, 11, 0)
}

// L2ITlb4KAssociativity returns the decoded associativity of the L2
// instruction TLB for 4K pages (AMD).
func (l L2L3CacheTlbInfo) L2ITlb4KAssociativity() int {
	if l.vendor != VendorAMD {
		return 0
	}
	return amdAssocCodes[field(l.EBX, 15, 12)]
}

// L3CacheSize returns the L3 cache size in KiB, reported by the
// hardware in 512 KiB units (AMD).
func (l L2L3CacheTlbInfo) L3CacheSize() uint32 {
	if l.vendor != VendorAMD {
		return 0
	}
	return field(l.EDX, 31, 18) * 512
}

// L3CacheLineSize returns the L3 cache line size in bytes (AMD).
func (l L2L3CacheTlbInfo) L3CacheLineSize() uint32 {
	if l.vendor != VendorAMD {
		return 0
	}
	return field(l.EDX, 7, 0)
}

// L3CacheAssociativity returns the decoded L3 associativity (AMD).
func (l L2L3CacheTlbInfo) L3CacheAssociativity() int {
	if l.vendor != VendorAMD {
		return 0
	}
	return amdAssocCodes[field(l.EDX, 15, 12)]
}

// ApmInfo is the leaf 0x8000_0007 advanced power management, RAS and
// TSC invariance description.
type ApmInfo struct {
	EBX uint32
	ECX uint32
	EDX uint32
}

// RAS capabilities (AMD).

func (a ApmInfo) HasMcaOverflowRecovery() bool { return bitSet(a.EBX, 0) }
func (a ApmInfo) HasSuccor() bool              { return bitSet(a.EBX, 1) }
func (a ApmInfo) HasHwa() bool                 { return bitSet(a.EBX, 2) }

// CpuPowerSampleTimeRatio returns the compute unit power accumulator
// sample period to TSC counter ratio (AMD).
func (a ApmInfo) CpuPowerSampleTimeRatio() uint32 { return a.ECX }

// Power management flags.

func (a ApmInfo) HasTsMsr() bool           { return bitSet(a.EDX, 0) }
func (a ApmInfo) HasFreqIDCtrl() bool      { return bitSet(a.EDX, 1) }
func (a ApmInfo) HasVoltIDCtrl() bool      { return bitSet(a.EDX, 2) }
func (a ApmInfo) HasThermTrip() bool       { return bitSet(a.EDX, 3) }
func (a ApmInfo) HasTm() bool              { return bitSet(a.EDX, 4) }
func (a ApmInfo) Has100MHzSteps() bool     { return bitSet(a.EDX, 6) }
func (a ApmInfo) HasHwPstate() bool        { return bitSet(a.EDX, 7) }
func (a ApmInfo) HasInvariantTsc() bool    { return bitSet(a.EDX, 8) }
func (a ApmInfo) HasCpb() bool             { return bitSet(a.EDX, 9) }
func (a ApmInfo) HasRoEffFreqRo() bool     { return bitSet(a.EDX, 10) }
func (a ApmInfo) HasProcFeedback() bool    { return bitSet(a.EDX, 11) }
func (a ApmInfo) HasProcPowerReport() bool { return bitSet(a.EDX, 12) }

// ProcessorCapacityInfo is the leaf 0x8000_0008 address width and
// capacity description. The address widths are defined for both
// vendors; everything else on the leaf is AMD-specific and reports
// zero on other vendors.
type ProcessorCapacityInfo struct {
	EAX uint32
	EBX uint32
	ECX uint32

	vendor Vendor
}

// PhysicalAddressBits returns the maximum physical address width.
func (p ProcessorCapacityInfo) PhysicalAddressBits() uint32 { return field(p.EAX, 7, 0) }

// LinearAddressBits returns the maximum linear address width.
func (p ProcessorCapacityInfo) LinearAddressBits() uint32 { return field(p.EAX, 15, 8) }

// GuestPhysicalAddressBits returns the maximum guest physical address
// width, or zero when it equals the host width (AMD).
func (p ProcessorCapacityInfo) GuestPhysicalAddressBits() uint32 {
	if p.vendor != VendorAMD {
		return 0
	}
	return field(p.EAX, 23, 16)
}

func (p ProcessorCapacityInfo) amd(reg uint32, pos uint) bool {
	return p.vendor == VendorAMD && bitSet(reg, pos)
}

// AMD extended feature identifiers sharing the leaf.

func (p ProcessorCapacityInfo) HasClzero() bool        { return p.amd(p.EBX, 0) }
func (p ProcessorCapacityInfo) HasInstRetCntMsr() bool { return p.amd(p.EBX, 1) }
func (p ProcessorCapacityInfo) HasRstrFpErrPtrs() bool { return p.amd(p.EBX, 2) }
func (p ProcessorCapacityInfo) HasInvlpgb() bool       { return p.amd(p.EBX, 3) }
func (p ProcessorCapacityInfo) HasRdpru() bool         { return p.amd(p.EBX, 4) }
func (p ProcessorCapacityInfo) HasWbnoinvd() bool      { return p.amd(p.EBX, 9) }
func (p ProcessorCapacityInfo) HasIbpb() bool          { return p.amd(p.EBX, 12) }
func (p ProcessorCapacityInfo) HasIbrs() bool          { return p.amd(p.EBX, 14) }
func (p ProcessorCapacityInfo) HasStibp() bool         { return p.amd(p.EBX, 15) }
func (p ProcessorCapacityInfo) HasSsbd() bool          { return p.amd(p.EBX, 24) }

// NumPhysicalThreads returns the number of physical threads in the
// processor. Stored minus one by the hardware (AMD).
func (p ProcessorCapacityInfo) NumPhysicalThreads() uint32 {
	if p.vendor != VendorAMD {
		return 0
	}
	return field(p.ECX, 7, 0) + 1
}

// ApicIDSize returns the number of APIC ID bits dedicated to the
// package (AMD).
func (p ProcessorCapacityInfo) ApicIDSize() uint32 {
	if p.vendor != VendorAMD {
		return 0
	}
	return field(p.ECX, 15, 12)
}

// PerfTscSize returns the size of the performance TSC: 40 + 8*n bits
// (AMD).
func (p ProcessorCapacityInfo) PerfTscSize() uint32 {
	if p.vendor != VendorAMD {
		return 0
	}
	return 40 + 8*field(p.ECX, 17, 16)
}

// SvmInfo is the leaf 0x8000_000A secure virtual machine description
// (AMD).
type SvmInfo struct {
	EAX uint32
	EBX uint32
	EDX uint32
}

// Revision returns the SVM revision number.
func (s SvmInfo) Revision() uint32 { return field(s.EAX, 7, 0) }

// SupportedAsids returns the number of address space identifiers the
// hardware supports.
func (s SvmInfo) SupportedAsids() uint32 { return s.EBX }

func (s SvmInfo) HasNestedPaging() bool         { return bitSet(s.EDX, 0) }
func (s SvmInfo) HasLbrVirtualization() bool    { return bitSet(s.EDX, 1) }
func (s SvmInfo) HasSvmLock() bool              { return bitSet(s.EDX, 2) }
func (s SvmInfo) HasNrips() bool                { return bitSet(s.EDX, 3) }
func (s SvmInfo) HasTscRateMsr() bool           { return bitSet(s.EDX, 4) }
func (s SvmInfo) HasVmcbClean() bool            { return bitSet(s.EDX, 5) }
func (s SvmInfo) HasFlushByAsid() bool          { return bitSet(s.EDX, 6) }
func (s SvmInfo) HasDecodeAssists() bool        { return bitSet(s.EDX, 7) }
func (s SvmInfo) HasPauseFilter() bool          { return bitSet(s.EDX, 10) }
func (s SvmInfo) HasPauseFilterThreshold() bool { return bitSet(s.EDX, 12) }
func (s SvmInfo) HasAvic() bool                 { return bitSet(s.EDX, 13) }
func (s SvmInfo) HasVmsaveVirtualization() bool { return bitSet(s.EDX, 15) }
func (s SvmInfo) HasVgif() bool                 { return bitSet(s.EDX, 16) }
func (s SvmInfo) HasGmet() bool                 { return bitSet(s.EDX, 17) }

// Tlb1GbPageInfo is the leaf 0x8000_0019 TLB description for 1-GiB
// pages (AMD).
type Tlb1GbPageInfo struct {
	EAX uint32
	EBX uint32
}

func (t Tlb1GbPageInfo) L1DTlbEntries() uint32 { return field(t.EAX, 27, 16) }
func (t Tlb1GbPageInfo) L1DTlbAssociativity() int {
	return amdAssocCodes[field(t.EAX, 31, 28)]
}
func (t Tlb1GbPageInfo) L1ITlbEntries() uint32 { return field(t.EAX, 11, 0) }
func (t Tlb1GbPageInfo) L1ITlbAssociativity() int {
	return amdAssocCodes[field(t.EAX, 15, 12)]
}
func (t Tlb1GbPageInfo) L2DTlbEntries() uint32 { return field(t.EBX, 27, 16) }
func (t Tlb1GbPageInfo) L2DTlbAssociativity() int {
	return amdAssocCodes[field(t.EBX, 31, 28)]
}
func (t Tlb1GbPageInfo) L2ITlbEntries() uint32 { return field(t.EBX, 11, 0) }
func (t Tlb1GbPageInfo) L2ITlbAssociativity() int {
	return amdAssocCodes[field(t.EBX, 15, 12)]
}

// PerformanceOptimizationInfo is the leaf 0x8000_001A instruction
// optimization description (AMD).
type PerformanceOptimizationInfo struct {
	EAX uint32
}

// HasFp128 reports that the floating point unit is 128 bits wide (one
// uop per 128-bit SSE instruction).
func (p PerformanceOptimizationInfo) HasFp128() bool { return bitSet(p.EAX, 0) }

// HasMovU reports that unaligned MOVU* is as fast as the aligned
// forms.
func (p PerformanceOptimizationInfo) HasMovU() bool { return bitSet(p.EAX, 1) }

// HasFp256 reports that the floating point unit is 256 bits wide.
func (p PerformanceOptimizationInfo) HasFp256() bool { return bitSet(p.EAX, 2) }

// MemoryEncryptionInfo is the leaf 0x8000_001F secure memory
// encryption description (AMD).
type MemoryEncryptionInfo struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32
}

func (m MemoryEncryptionInfo) HasSme() bool          { return bitSet(m.EAX, 0) }
func (m MemoryEncryptionInfo) HasSev() bool          { return bitSet(m.EAX, 1) }
func (m MemoryEncryptionInfo) HasPageFlushMsr() bool { return bitSet(m.EAX, 2) }
func (m MemoryEncryptionInfo) HasSevEs() bool        { return bitSet(m.EAX, 3) }
func (m MemoryEncryptionInfo) HasSevSnp() bool       { return bitSet(m.EAX, 4) }
func (m MemoryEncryptionInfo) HasVmpl() bool         { return bitSet(m.EAX, 5) }

// CBitPosition returns the page table bit used to mark pages
// encrypted.
func (m MemoryEncryptionInfo) CBitPosition() uint32 { return field(m.EBX, 5, 0) }

// PhysicalAddressReduction returns the physical address bits lost to
// memory encryption.
func (m MemoryEncryptionInfo) PhysicalAddressReduction() uint32 { return field(m.EBX, 11, 6) }

// MaxEncryptedGuests returns the number of simultaneously supported
// encrypted guests.
func (m MemoryEncryptionInfo) MaxEncryptedGuests() uint32 { return m.ECX }

// MinSevNoEsAsid returns the minimum ASID for an SEV guest that does
// not use SEV-ES.
func (m MemoryEncryptionInfo) MinSevNoEsAsid() uint32 { return m.EDX }
