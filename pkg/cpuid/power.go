package cpuid

// MonitorMwaitInfo is the leaf 5 MONITOR/MWAIT description.
type MonitorMwaitInfo struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32
}

// SmallestMonitorLine returns the smallest monitor-line size in bytes.
func (m MonitorMwaitInfo) SmallestMonitorLine() uint32 { return field(m.EAX, 15, 0) }

// LargestMonitorLine returns the largest monitor-line size in bytes.
func (m MonitorMwaitInfo) LargestMonitorLine() uint32 { return field(m.EBX, 15, 0) }

// ExtensionsSupported reports whether MONITOR/MWAIT extensions beyond
// EAX/EBX enumeration are supported.
func (m MonitorMwaitInfo) ExtensionsSupported() bool { return bitSet(m.ECX, 0) }

// InterruptsAsBreakEvent reports whether interrupts can wake MWAIT
// even when masked.
func (m MonitorMwaitInfo) InterruptsAsBreakEvent() bool { return bitSet(m.ECX, 1) }

// SupportedCStates returns the number of sub C-states supported for
// MWAIT C-state n, 0 <= n <= 7. Intel only; AMD leaves EDX reserved.
func (m MonitorMwaitInfo) SupportedCStates(n uint) uint32 {
	if n > 7 {
		return 0
	}
	return field(m.EDX, uint(4*n+3), uint(4*n))
}

// ThermalPowerInfo is the leaf 6 thermal and power management
// description.
type ThermalPowerInfo struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32
}

func (t ThermalPowerInfo) HasDTS() bool                            { return bitSet(t.EAX, 0) }
func (t ThermalPowerInfo) HasTurboBoost() bool                     { return bitSet(t.EAX, 1) }
func (t ThermalPowerInfo) HasARAT() bool                           { return bitSet(t.EAX, 2) }
func (t ThermalPowerInfo) HasPLN() bool                            { return bitSet(t.EAX, 4) }
func (t ThermalPowerInfo) HasECMD() bool                           { return bitSet(t.EAX, 5) }
func (t ThermalPowerInfo) HasPTM() bool                            { return bitSet(t.EAX, 6) }
func (t ThermalPowerInfo) HasHWP() bool                            { return bitSet(t.EAX, 7) }
func (t ThermalPowerInfo) HasHWPNotification() bool                { return bitSet(t.EAX, 8) }
func (t ThermalPowerInfo) HasHWPActivityWindow() bool              { return bitSet(t.EAX, 9) }
func (t ThermalPowerInfo) HasHWPEnergyPerformancePreference() bool { return bitSet(t.EAX, 10) }
func (t ThermalPowerInfo) HasHWPPackageLevelRequest() bool         { return bitSet(t.EAX, 11) }
func (t ThermalPowerInfo) HasHDC() bool                            { return bitSet(t.EAX, 13) }
func (t ThermalPowerInfo) HasTurboBoost3() bool                    { return bitSet(t.EAX, 14) }
func (t ThermalPowerInfo) HasHWPCapabilities() bool                { return bitSet(t.EAX, 15) }
func (t ThermalPowerInfo) HasHWPPECIOverride() bool                { return bitSet(t.EAX, 16) }
func (t ThermalPowerInfo) HasFlexibleHWP() bool                    { return bitSet(t.EAX, 17) }
func (t ThermalPowerInfo) HasHWPFastAccessMode() bool              { return bitSet(t.EAX, 18) }
func (t ThermalPowerInfo) HasIgnoreIdleProcessorHWPRequest() bool  { return bitSet(t.EAX, 20) }

// DTSIrqThreshold returns the number of interrupt thresholds in the
// digital thermal sensor.
func (t ThermalPowerInfo) DTSIrqThreshold() uint32 { return field(t.EBX, 3, 0) }

// HasHwCoordFeedback reports hardware coordination feedback capability
// (the MPERF/APERF MSR pair).
func (t ThermalPowerInfo) HasHwCoordFeedback() bool { return bitSet(t.ECX, 0) }

// HasEnergyBiasPref reports support for the performance-energy bias
// preference MSR.
func (t ThermalPowerInfo) HasEnergyBiasPref() bool { return bitSet(t.ECX, 3) }
