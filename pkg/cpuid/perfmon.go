package cpuid

// PerformanceMonitoringInfo is the leaf 0xA architectural performance
// monitoring description (Intel).
type PerformanceMonitoringInfo struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32
}

// VersionID returns the architectural performance monitoring version.
func (p PerformanceMonitoringInfo) VersionID() uint32 { return field(p.EAX, 7, 0) }

// NumberOfCounters returns the number of general-purpose counters per
// logical processor.
func (p PerformanceMonitoringInfo) NumberOfCounters() uint32 { return field(p.EAX, 15, 8) }

// CounterBitWidth returns the width of the general-purpose counters.
func (p PerformanceMonitoringInfo) CounterBitWidth() uint32 { return field(p.EAX, 23, 16) }

// EbxLength returns the number of valid event-availability bits in
// EBX.
func (p PerformanceMonitoringInfo) EbxLength() uint32 { return field(p.EAX, 31, 24) }

// The EBX bits report events that are NOT available despite the
// version claiming them.

func (p PerformanceMonitoringInfo) CoreCycleEventUnavailable() bool         { return bitSet(p.EBX, 0) }
func (p PerformanceMonitoringInfo) InstRetiredEventUnavailable() bool       { return bitSet(p.EBX, 1) }
func (p PerformanceMonitoringInfo) RefCycleEventUnavailable() bool          { return bitSet(p.EBX, 2) }
func (p PerformanceMonitoringInfo) CacheRefEventUnavailable() bool          { return bitSet(p.EBX, 3) }
func (p PerformanceMonitoringInfo) LLCacheMissEventUnavailable() bool       { return bitSet(p.EBX, 4) }
func (p PerformanceMonitoringInfo) BranchInstRetiredEventUnavailable() bool { return bitSet(p.EBX, 5) }
func (p PerformanceMonitoringInfo) BranchMispredictEventUnavailable() bool  { return bitSet(p.EBX, 6) }

// FixedFunctionCounters returns the number of fixed-function counters.
func (p PerformanceMonitoringInfo) FixedFunctionCounters() uint32 { return field(p.EDX, 4, 0) }

// FixedFunctionCounterBitWidth returns the width of the fixed-function
// counters.
func (p PerformanceMonitoringInfo) FixedFunctionCounterBitWidth() uint32 {
	return field(p.EDX, 12, 5)
}
