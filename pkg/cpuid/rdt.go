package cpuid

// RdtMonitoringInfo is the leaf 0xF resource director technology
// monitoring enumeration.
type RdtMonitoringInfo struct {
	EBX uint32
	EDX uint32

	src LeafSource
}

// RmidRange returns the maximum resource monitoring ID of any type on
// this physical processor.
func (r RdtMonitoringInfo) RmidRange() uint32 { return r.EBX }

// HasL3Monitoring reports whether L3 cache monitoring is enumerated.
func (r RdtMonitoringInfo) HasL3Monitoring() bool { return bitSet(r.EDX, 1) }

// L3Monitoring returns the L3 monitoring sub-leaf, absent when L3
// monitoring is not enumerated.
func (r RdtMonitoringInfo) L3Monitoring() (L3MonitoringInfo, bool) {
	if !r.HasL3Monitoring() {
		return L3MonitoringInfo{}, false
	}
	s := r.src(leafRdtMonitoring, 1)
	return L3MonitoringInfo{EBX: s.EBX, ECX: s.ECX, EDX: s.EDX}, true
}

// L3MonitoringInfo is leaf 0xF sub-leaf 1, the L3 cache monitoring
// capabilities.
type L3MonitoringInfo struct {
	EBX uint32
	ECX uint32
	EDX uint32
}

// ConversionFactor returns the factor that converts reported occupancy
// counts to bytes.
func (l L3MonitoringInfo) ConversionFactor() uint32 { return l.EBX }

// MaximumRmidRange returns the maximum RMID of the L3 monitoring
// resource type.
func (l L3MonitoringInfo) MaximumRmidRange() uint32 { return l.ECX }

func (l L3MonitoringInfo) HasOccupancyMonitoring() bool      { return bitSet(l.EDX, 0) }
func (l L3MonitoringInfo) HasTotalBandwidthMonitoring() bool { return bitSet(l.EDX, 1) }
func (l L3MonitoringInfo) HasLocalBandwidthMonitoring() bool { return bitSet(l.EDX, 2) }

// RdtAllocationInfo is the leaf 0x10 resource director technology
// allocation enumeration.
type RdtAllocationInfo struct {
	EBX uint32

	src LeafSource
}

// HasL3Cat reports whether L3 cache allocation technology is
// enumerated.
func (r RdtAllocationInfo) HasL3Cat() bool { return bitSet(r.EBX, 1) }

// HasL2Cat reports whether L2 cache allocation technology is
// enumerated.
func (r RdtAllocationInfo) HasL2Cat() bool { return bitSet(r.EBX, 2) }

// HasMemoryBandwidthAllocation reports whether memory bandwidth
// allocation is enumerated.
func (r RdtAllocationInfo) HasMemoryBandwidthAllocation() bool { return bitSet(r.EBX, 3) }

// L3Cat returns the L3 cache allocation sub-leaf.
func (r RdtAllocationInfo) L3Cat() (L3CatInfo, bool) {
	if !r.HasL3Cat() {
		return L3CatInfo{}, false
	}
	s := r.src(leafRdtAllocation, 1)
	return L3CatInfo{EAX: s.EAX, EBX: s.EBX, ECX: s.ECX, EDX: s.EDX}, true
}

// L2Cat returns the L2 cache allocation sub-leaf.
func (r RdtAllocationInfo) L2Cat() (L2CatInfo, bool) {
	if !r.HasL2Cat() {
		return L2CatInfo{}, false
	}
	s := r.src(leafRdtAllocation, 2)
	return L2CatInfo{EAX: s.EAX, EBX: s.EBX, EDX: s.EDX}, true
}

// MemoryBandwidthAllocation returns the memory bandwidth allocation
// sub-leaf.
func (r RdtAllocationInfo) MemoryBandwidthAllocation() (MemBwAllocationInfo, bool) {
	if !r.HasMemoryBandwidthAllocation() {
		return MemBwAllocationInfo{}, false
	}
	s := r.src(leafRdtAllocation, 3)
	return MemBwAllocationInfo{EAX: s.EAX, ECX: s.ECX, EDX: s.EDX}, true
}

// L3CatInfo is leaf 0x10 sub-leaf 1, the L3 cache allocation
// capabilities.
type L3CatInfo struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32
}

// CapacityMaskLength returns the length of the capacity bit mask. The
// hardware stores the value minus one.
func (l L3CatInfo) CapacityMaskLength() uint32 { return field(l.EAX, 4, 0) + 1 }

// IsolationBitmap returns the bitmap of cache ways used by other
// entities (for example the integrated graphics).
func (l L3CatInfo) IsolationBitmap() uint32 { return l.EBX }

// HasCodeDataPrioritization reports whether code and data can be
// allocated separately.
func (l L3CatInfo) HasCodeDataPrioritization() bool { return bitSet(l.ECX, 2) }

// HighestCos returns the highest class-of-service number supported.
func (l L3CatInfo) HighestCos() uint32 { return field(l.EDX, 15, 0) }

// L2CatInfo is leaf 0x10 sub-leaf 2, the L2 cache allocation
// capabilities.
type L2CatInfo struct {
	EAX uint32
	EBX uint32
	EDX uint32
}

// CapacityMaskLength returns the length of the capacity bit mask,
// corrected for the stored-minus-one convention.
func (l L2CatInfo) CapacityMaskLength() uint32 { return field(l.EAX, 4, 0) + 1 }

// IsolationBitmap returns the bitmap of ways used by other entities.
func (l L2CatInfo) IsolationBitmap() uint32 { return l.EBX }

// HighestCos returns the highest class-of-service number supported.
func (l L2CatInfo) HighestCos() uint32 { return field(l.EDX, 15, 0) }

// MemBwAllocationInfo is leaf 0x10 sub-leaf 3, the memory bandwidth
// allocation capabilities.
type MemBwAllocationInfo struct {
	EAX uint32
	ECX uint32
	EDX uint32
}

// MaxHbaThrottling returns the maximum memory bandwidth throttling
// value. The hardware stores the value minus one.
func (m MemBwAllocationInfo) MaxHbaThrottling() uint32 { return field(m.EAX, 11, 0) + 1 }

// HasLinearResponseDelay reports whether the throttling delay values
// are linear.
func (m MemBwAllocationInfo) HasLinearResponseDelay() bool { return bitSet(m.ECX, 2) }

// HighestCos returns the highest class-of-service number supported.
func (m MemBwAllocationInfo) HighestCos() uint32 { return field(m.EDX, 15, 0) }
