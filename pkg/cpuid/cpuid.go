package cpuid

// Result holds the four registers returned by one execution of the
// CPUID instruction for a single leaf/sub-leaf pair.
type Result struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32
}

func (r Result) empty() bool {
	return r.EAX == 0 && r.EBX == 0 && r.ECX == 0 && r.EDX == 0
}

// LeafSource returns the raw register contents for a leaf/sub-leaf
// pair. The default implementation executes the CPUID instruction on
// the current core; alternative implementations serve captured dumps.
type LeafSource func(leaf, subleaf uint32) Result

// Leaf numbers decoded by this package.
const (
	leafVendorInfo         = 0x0
	leafFeatureInfo        = 0x1
	leafCacheDescriptors   = 0x2
	leafProcessorSerial    = 0x3
	leafCacheParams        = 0x4
	leafMonitorMwait       = 0x5
	leafThermalPower       = 0x6
	leafExtendedFeatures   = 0x7
	leafDirectCacheAccess  = 0x9
	leafPerfMonitoring     = 0xA
	leafExtendedTopology   = 0xB
	leafExtendedState      = 0xD
	leafRdtMonitoring      = 0xF
	leafRdtAllocation      = 0x10
	leafSgx                = 0x12
	leafTscInfo            = 0x15
	leafFrequencyInfo      = 0x16
	leafAddressTranslation = 0x18

	leafExtendedFunction  = 0x80000000
	leafExtendedInfo      = 0x80000001
	leafBrandString0      = 0x80000002
	leafBrandString1      = 0x80000003
	leafBrandString2      = 0x80000004
	leafL1CacheTlb        = 0x80000005
	leafL2L3CacheTlb      = 0x80000006
	leafApm               = 0x80000007
	leafProcessorCapacity = 0x80000008
	leafSvm               = 0x8000000A
	leafTlb1GbPage        = 0x80000019
	leafPerfOptimization  = 0x8000001A
	leafCacheParamsAmd    = 0x8000001D
	leafMemoryEncryption  = 0x8000001F
)

// Vendor classifies the processor manufacturer reported by leaf 0.
// The classification gates extended-leaf decoding: Intel and AMD
// assign different meanings to several leaves at and above
// 0x8000_0000.
type Vendor int

const (
	VendorOther Vendor = iota
	VendorIntel
	VendorAMD
)

func (v Vendor) String() string {
	switch v {
	case VendorIntel:
		return "GenuineIntel"
	case VendorAMD:
		return "AuthenticAMD"
	}
	return "Unknown"
}

var vendorMap = map[string]Vendor{
	"GenuineIntel": VendorIntel,
	"AuthenticAMD": VendorAMD,
}

// Leaves in the standard range that only Intel defines. On other
// vendors the register contents at these indices are reserved and must
// not be decoded.
var intelOnlyLeaves = map[uint32]bool{
	leafCacheDescriptors:   true,
	leafProcessorSerial:    true,
	leafCacheParams:        true,
	leafDirectCacheAccess:  true,
	leafPerfMonitoring:     true,
	leafSgx:                true,
	leafTscInfo:            true,
	leafFrequencyInfo:      true,
	leafAddressTranslation: true,
}

// Extended-range leaves only AMD defines.
var amdOnlyLeaves = map[uint32]bool{
	leafL1CacheTlb:       true,
	leafSvm:              true,
	leafTlb1GbPage:       true,
	leafPerfOptimization: true,
	leafCacheParamsAmd:   true,
	leafMemoryEncryption: true,
}

// CPUID decodes processor information obtained from a LeafSource.
// The zero value is not usable; construct instances with New or
// NewFromSource. Instances are stateless beyond the source, the vendor
// classification and the two maximum-leaf boundaries captured at
// construction time, so independent instances may be used from
// multiple goroutines concurrently.
type CPUID struct {
	src        LeafSource
	vendor     Vendor
	maxLeaf    uint32
	maxExtLeaf uint32
}

// New returns a CPUID backed by the CPUID instruction of the core the
// calling goroutine happens to run on. On non-x86 platforms every
// query reports absence.
func New() *CPUID {
	return NewFromSource(NativeSource())
}

// NewFromSource returns a CPUID that reads raw leaves from src instead
// of the hardware. The vendor string and the standard and extended
// maximum-leaf boundaries are read once, up front.
func NewFromSource(src LeafSource) *CPUID {
	c := &CPUID{src: src}
	root := src(leafVendorInfo, 0)
	c.maxLeaf = root.EAX
	c.vendor = vendorMap[VendorInfo{EBX: root.EBX, ECX: root.ECX, EDX: root.EDX}.String()]
	c.maxExtLeaf = src(leafExtendedFunction, 0).EAX
	return c
}

// Vendor returns the manufacturer classification derived from leaf 0.
func (c *CPUID) Vendor() Vendor { return c.vendor }

// MaxLeaf returns the highest standard leaf the processor reports.
func (c *CPUID) MaxLeaf() uint32 { return c.maxLeaf }

// MaxExtendedLeaf returns the highest extended leaf the processor
// reports, or a value below 0x8000_0000 if the extended range is not
// implemented.
func (c *CPUID) MaxExtendedLeaf() uint32 { return c.maxExtLeaf }

// supported reports whether leaf is inside the boundary advertised by
// its root leaf and is defined for the current vendor. Pure function
// of values captured at construction; issues no queries.
func (c *CPUID) supported(leaf uint32) bool {
	if leaf >= leafExtendedFunction {
		if c.maxExtLeaf < leafExtendedFunction || leaf > c.maxExtLeaf {
			return false
		}
		if amdOnlyLeaves[leaf] && c.vendor != VendorAMD {
			return false
		}
		return true
	}
	if leaf > c.maxLeaf {
		return false
	}
	if intelOnlyLeaves[leaf] && c.vendor == VendorAMD {
		return false
	}
	return true
}

// VendorInfo returns the 12-byte manufacturer identification string of
// leaf 0. Present on every processor that implements CPUID.
func (c *CPUID) VendorInfo() (VendorInfo, bool) {
	r := c.src(leafVendorInfo, 0)
	return VendorInfo{EBX: r.EBX, ECX: r.ECX, EDX: r.EDX}, true
}

// FeatureInfo returns the leaf 1 signature and capability flags.
func (c *CPUID) FeatureInfo() (FeatureInfo, bool) {
	if !c.supported(leafFeatureInfo) {
		return FeatureInfo{}, false
	}
	r := c.src(leafFeatureInfo, 0)
	return FeatureInfo{EAX: r.EAX, EBX: r.EBX, ECX: r.ECX, EDX: r.EDX}, true
}

// CacheDescriptors returns the legacy leaf 2 cache and TLB descriptor
// bytes. Intel only; modern processors report 0xFF here and describe
// their caches through CacheParameters instead.
func (c *CPUID) CacheDescriptors() (CacheInfo, bool) {
	if !c.supported(leafCacheDescriptors) {
		return CacheInfo{}, false
	}
	r := c.src(leafCacheDescriptors, 0)
	return CacheInfo{EAX: r.EAX, EBX: r.EBX, ECX: r.ECX, EDX: r.EDX}, true
}

// ProcessorSerial returns the leaf 3 processor serial number. Intel
// only, and only populated on Pentium III class hardware; the leaf
// reads zero everywhere else.
func (c *CPUID) ProcessorSerial() (ProcessorSerial, bool) {
	if !c.supported(leafProcessorSerial) {
		return ProcessorSerial{}, false
	}
	r := c.src(leafProcessorSerial, 0)
	return ProcessorSerial{ECX: r.ECX, EDX: r.EDX}, true
}

// CacheParameters returns an iterator over the deterministic cache
// hierarchy. Intel reports it on leaf 4, AMD on leaf 0x8000_001D; the
// returned iterator queries whichever leaf the vendor defines.
func (c *CPUID) CacheParameters() (*CacheParametersIter, bool) {
	leaf := uint32(leafCacheParams)
	if c.vendor == VendorAMD {
		leaf = leafCacheParamsAmd
	}
	if !c.supported(leaf) {
		return nil, false
	}
	return &CacheParametersIter{src: c.src, leaf: leaf}, true
}

// MonitorMwaitInfo returns the leaf 5 MONITOR/MWAIT parameters.
func (c *CPUID) MonitorMwaitInfo() (MonitorMwaitInfo, bool) {
	if !c.supported(leafMonitorMwait) {
		return MonitorMwaitInfo{}, false
	}
	r := c.src(leafMonitorMwait, 0)
	return MonitorMwaitInfo{EAX: r.EAX, EBX: r.EBX, ECX: r.ECX, EDX: r.EDX}, true
}

// ThermalPowerInfo returns the leaf 6 thermal and power management
// capabilities.
func (c *CPUID) ThermalPowerInfo() (ThermalPowerInfo, bool) {
	if !c.supported(leafThermalPower) {
		return ThermalPowerInfo{}, false
	}
	r := c.src(leafThermalPower, 0)
	return ThermalPowerInfo{EAX: r.EAX, EBX: r.EBX, ECX: r.ECX, EDX: r.EDX}, true
}

// ExtendedFeatures returns the leaf 7 sub-leaf 0 structured feature
// flags.
func (c *CPUID) ExtendedFeatures() (ExtendedFeatures, bool) {
	if !c.supported(leafExtendedFeatures) {
		return ExtendedFeatures{}, false
	}
	r := c.src(leafExtendedFeatures, 0)
	return ExtendedFeatures{EAX: r.EAX, EBX: r.EBX, ECX: r.ECX, EDX: r.EDX}, true
}

// DirectCacheAccessInfo returns the leaf 9 DCA capability value.
// Intel only.
func (c *CPUID) DirectCacheAccessInfo() (DirectCacheAccessInfo, bool) {
	if !c.supported(leafDirectCacheAccess) {
		return DirectCacheAccessInfo{}, false
	}
	r := c.src(leafDirectCacheAccess, 0)
	return DirectCacheAccessInfo{EAX: r.EAX}, true
}

// PerformanceMonitoringInfo returns the leaf 0xA architectural
// performance monitoring parameters. Intel only.
func (c *CPUID) PerformanceMonitoringInfo() (PerformanceMonitoringInfo, bool) {
	if !c.supported(leafPerfMonitoring) {
		return PerformanceMonitoringInfo{}, false
	}
	r := c.src(leafPerfMonitoring, 0)
	return PerformanceMonitoringInfo{EAX: r.EAX, EBX: r.EBX, ECX: r.ECX, EDX: r.EDX}, true
}

// ExtendedTopology returns an iterator over the leaf 0xB processor
// topology levels.
func (c *CPUID) ExtendedTopology() (*TopologyIter, bool) {
	if !c.supported(leafExtendedTopology) {
		return nil, false
	}
	return &TopologyIter{src: c.src}, true
}

// ExtendedStateInfo returns the leaf 0xD XSAVE area description.
func (c *CPUID) ExtendedStateInfo() (ExtendedStateInfo, bool) {
	if !c.supported(leafExtendedState) {
		return ExtendedStateInfo{}, false
	}
	r := c.src(leafExtendedState, 0)
	r1 := c.src(leafExtendedState, 1)
	return ExtendedStateInfo{
		EAX: r.EAX, EBX: r.EBX, ECX: r.ECX, EDX: r.EDX,
		EAX1: r1.EAX, EBX1: r1.EBX, ECX1: r1.ECX, EDX1: r1.EDX,
		src: c.src,
	}, true
}

// RdtMonitoringInfo returns the leaf 0xF resource director technology
// monitoring capabilities.
func (c *CPUID) RdtMonitoringInfo() (RdtMonitoringInfo, bool) {
	if !c.supported(leafRdtMonitoring) {
		return RdtMonitoringInfo{}, false
	}
	r := c.src(leafRdtMonitoring, 0)
	return RdtMonitoringInfo{EBX: r.EBX, EDX: r.EDX, src: c.src}, true
}

// RdtAllocationInfo returns the leaf 0x10 resource director technology
// allocation capabilities.
func (c *CPUID) RdtAllocationInfo() (RdtAllocationInfo, bool) {
	if !c.supported(leafRdtAllocation) {
		return RdtAllocationInfo{}, false
	}
	r := c.src(leafRdtAllocation, 0)
	return RdtAllocationInfo{EBX: r.EBX, src: c.src}, true
}

// SgxInfo returns the leaf 0x12 Software Guard Extensions description,
// including an iterator over the EPC sections. Intel only; absent
// unless leaf 7 advertises SGX.
func (c *CPUID) SgxInfo() (SgxInfo, bool) {
	if !c.supported(leafSgx) {
		return SgxInfo{}, false
	}
	if ef, ok := c.ExtendedFeatures(); !ok || !ef.HasSGX() {
		return SgxInfo{}, false
	}
	r := c.src(leafSgx, 0)
	r1 := c.src(leafSgx, 1)
	return SgxInfo{
		EAX: r.EAX, EBX: r.EBX, EDX: r.EDX,
		EAX1: r1.EAX, EBX1: r1.EBX, ECX1: r1.ECX, EDX1: r1.EDX,
		src: c.src,
	}, true
}

// TscInfo returns the leaf 0x15 time stamp counter and core crystal
// clock ratios. Intel only.
func (c *CPUID) TscInfo() (TscInfo, bool) {
	if !c.supported(leafTscInfo) {
		return TscInfo{}, false
	}
	r := c.src(leafTscInfo, 0)
	return TscInfo{EAX: r.EAX, EBX: r.EBX, ECX: r.ECX}, true
}

// ProcessorFrequencyInfo returns the leaf 0x16 base, maximum and bus
// frequencies. Intel only.
func (c *CPUID) ProcessorFrequencyInfo() (ProcessorFrequencyInfo, bool) {
	if !c.supported(leafFrequencyInfo) {
		return ProcessorFrequencyInfo{}, false
	}
	r := c.src(leafFrequencyInfo, 0)
	return ProcessorFrequencyInfo{EAX: r.EAX, EBX: r.EBX, ECX: r.ECX}, true
}

// DeterministicAddressTranslation returns an iterator over the leaf
// 0x18 TLB and translation structure descriptions. Intel only.
func (c *CPUID) DeterministicAddressTranslation() (*DatIter, bool) {
	if !c.supported(leafAddressTranslation) {
		return nil, false
	}
	max := c.src(leafAddressTranslation, 0).EAX
	return &DatIter{src: c.src, maxSubleaf: max}, true
}

// ExtendedProcessorInfo returns the leaf 0x8000_0001 extended
// signature and feature identifiers.
func (c *CPUID) ExtendedProcessorInfo() (ExtendedProcessorInfo, bool) {
	if !c.supported(leafExtendedInfo) {
		return ExtendedProcessorInfo{}, false
	}
	r := c.src(leafExtendedInfo, 0)
	return ExtendedProcessorInfo{EAX: r.EAX, EBX: r.EBX, ECX: r.ECX, EDX: r.EDX, vendor: c.vendor}, true
}

// ProcessorBrandString returns the up to 48-character processor name
// assembled from leaves 0x8000_0002 through 0x8000_0004.
func (c *CPUID) ProcessorBrandString() (ProcessorBrandString, bool) {
	if !c.supported(leafBrandString2) {
		return ProcessorBrandString{}, false
	}
	return ProcessorBrandString{data: [3]Result{
		c.src(leafBrandString0, 0),
		c.src(leafBrandString1, 0),
		c.src(leafBrandString2, 0),
	}}, true
}

// L1CacheTlbInfo returns the leaf 0x8000_0005 L1 cache and TLB
// description. AMD only.
func (c *CPUID) L1CacheTlbInfo() (L1CacheTlbInfo, bool) {
	if !c.supported(leafL1CacheTlb) {
		return L1CacheTlbInfo{}, false
	}
	r := c.src(leafL1CacheTlb, 0)
	return L1CacheTlbInfo{EAX: r.EAX, EBX: r.EBX, ECX: r.ECX, EDX: r.EDX}, true
}

// L2L3CacheTlbInfo returns the leaf 0x8000_0006 L2/L3 cache and TLB
// description. The L2 cache fields are defined for both vendors; the
// TLB and L3 fields only for AMD.
func (c *CPUID) L2L3CacheTlbInfo() (L2L3CacheTlbInfo, bool) {
	if !c.supported(leafL2L3CacheTlb) {
		return L2L3CacheTlbInfo{}, false
	}
	r := c.src(leafL2L3CacheTlb, 0)
	return L2L3CacheTlbInfo{EAX: r.EAX, EBX: r.EBX, ECX: r.ECX, EDX: r.EDX, vendor: c.vendor}, true
}

// ApmInfo returns the leaf 0x8000_0007 advanced power management and
// RAS capabilities, including the invariant TSC flag.
func (c *CPUID) ApmInfo() (ApmInfo, bool) {
	if !c.supported(leafApm) {
		return ApmInfo{}, false
	}
	r := c.src(leafApm, 0)
	return ApmInfo{EBX: r.EBX, ECX: r.ECX, EDX: r.EDX}, true
}

// ProcessorCapacityInfo returns the leaf 0x8000_0008 address widths
// and, on AMD, the capacity and extended feature fields that share the
// leaf. Intel leaves everything beyond the address widths reserved,
// so the AMD-only accessors report zero there.
func (c *CPUID) ProcessorCapacityInfo() (ProcessorCapacityInfo, bool) {
	if !c.supported(leafProcessorCapacity) {
		return ProcessorCapacityInfo{}, false
	}
	r := c.src(leafProcessorCapacity, 0)
	return ProcessorCapacityInfo{EAX: r.EAX, EBX: r.EBX, ECX: r.ECX, vendor: c.vendor}, true
}

// SvmInfo returns the leaf 0x8000_000A secure virtual machine
// capabilities. AMD only.
func (c *CPUID) SvmInfo() (SvmInfo, bool) {
	if !c.supported(leafSvm) {
		return SvmInfo{}, false
	}
	r := c.src(leafSvm, 0)
	return SvmInfo{EAX: r.EAX, EBX: r.EBX, EDX: r.EDX}, true
}

// Tlb1GbPageInfo returns the leaf 0x8000_0019 1-GiB page TLB
// description. AMD only.
func (c *CPUID) Tlb1GbPageInfo() (Tlb1GbPageInfo, bool) {
	if !c.supported(leafTlb1GbPage) {
		return Tlb1GbPageInfo{}, false
	}
	r := c.src(leafTlb1GbPage, 0)
	return Tlb1GbPageInfo{EAX: r.EAX, EBX: r.EBX}, true
}

// PerformanceOptimizationInfo returns the leaf 0x8000_001A
// instruction optimization hints. AMD only.
func (c *CPUID) PerformanceOptimizationInfo() (PerformanceOptimizationInfo, bool) {
	if !c.supported(leafPerfOptimization) {
		return PerformanceOptimizationInfo{}, false
	}
	r := c.src(leafPerfOptimization, 0)
	return PerformanceOptimizationInfo{EAX: r.EAX}, true
}

// MemoryEncryptionInfo returns the leaf 0x8000_001F SME/SEV memory
// encryption capabilities. AMD only.
func (c *CPUID) MemoryEncryptionInfo() (MemoryEncryptionInfo, bool) {
	if !c.supported(leafMemoryEncryption) {
		return MemoryEncryptionInfo{}, false
	}
	r := c.src(leafMemoryEncryption, 0)
	return MemoryEncryptionInfo{EAX: r.EAX, EBX: r.EBX, ECX: r.ECX, EDX: r.EDX}, true
}
