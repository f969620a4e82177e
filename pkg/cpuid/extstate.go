package cpuid

// ExtendedStateInfo is the leaf 0xD XSAVE/XRSTOR area description,
// aggregating sub-leaves 0 and 1.
type ExtendedStateInfo struct {
	EAX  uint32
	EBX  uint32
	ECX  uint32
	EDX  uint32
	EAX1 uint32
	EBX1 uint32
	ECX1 uint32
	EDX1 uint32

	src LeafSource
}

// Xcr0Supported returns the 64-bit mask of state components XCR0 can
// enable.
func (e ExtendedStateInfo) Xcr0Supported() uint64 {
	return uint64(e.EDX)<<32 | uint64(e.EAX)
}

func (e ExtendedStateInfo) Xcr0SupportsLegacyX87() bool      { return bitSet(e.EAX, 0) }
func (e ExtendedStateInfo) Xcr0SupportsSSE128() bool         { return bitSet(e.EAX, 1) }
func (e ExtendedStateInfo) Xcr0SupportsAVX256() bool         { return bitSet(e.EAX, 2) }
func (e ExtendedStateInfo) Xcr0SupportsMPXBndregs() bool     { return bitSet(e.EAX, 3) }
func (e ExtendedStateInfo) Xcr0SupportsMPXBndcsr() bool      { return bitSet(e.EAX, 4) }
func (e ExtendedStateInfo) Xcr0SupportsAVX512Opmask() bool   { return bitSet(e.EAX, 5) }
func (e ExtendedStateInfo) Xcr0SupportsAVX512ZmmHi256() bool { return bitSet(e.EAX, 6) }
func (e ExtendedStateInfo) Xcr0SupportsAVX512ZmmHi16() bool  { return bitSet(e.EAX, 7) }
func (e ExtendedStateInfo) Xcr0SupportsPKRU() bool           { return bitSet(e.EAX, 9) }

func (e ExtendedStateInfo) IA32XssSupportsPT() bool  { return bitSet(e.ECX1, 8) }
func (e ExtendedStateInfo) IA32XssSupportsHDC() bool { return bitSet(e.ECX1, 13) }

// XsaveAreaSizeEnabledFeatures returns the XSAVE area size required by
// the feature set currently enabled in XCR0.
func (e ExtendedStateInfo) XsaveAreaSizeEnabledFeatures() uint32 { return e.EBX }

// XsaveAreaSizeSupportedFeatures returns the XSAVE area size required
// if every supported feature were enabled.
func (e ExtendedStateInfo) XsaveAreaSizeSupportedFeatures() uint32 { return e.ECX }

func (e ExtendedStateInfo) HasXsaveopt() bool      { return bitSet(e.EAX1, 0) }
func (e ExtendedStateInfo) HasXsavec() bool        { return bitSet(e.EAX1, 1) }
func (e ExtendedStateInfo) HasXgetbv1() bool       { return bitSet(e.EAX1, 2) }
func (e ExtendedStateInfo) HasXsavesXrstors() bool { return bitSet(e.EAX1, 3) }

// XsaveSize returns the size of the XSAVE area containing all state
// enabled by XCR0 | IA32_XSS (sub-leaf 1 EBX).
func (e ExtendedStateInfo) XsaveSize() uint32 { return e.EBX1 }

// Iter returns an iterator over the per-component state sub-leaves
// (sub-leaf 2 upward), visiting only components the processor reports
// in XCR0 or IA32_XSS.
func (e ExtendedStateInfo) Iter() *ExtendedStateIter {
	mask := e.Xcr0Supported() | uint64(e.EDX1)<<32 | uint64(e.ECX1)
	return &ExtendedStateIter{src: e.src, mask: mask, next: 2}
}

// ExtendedState describes the save area of one XSAVE state component.
type ExtendedState struct {
	Subleaf uint32
	EAX     uint32
	EBX     uint32
	ECX     uint32
}

// Size returns the component save area size in bytes.
func (s ExtendedState) Size() uint32 { return s.EAX }

// Offset returns the component offset from the base of the XSAVE area.
func (s ExtendedState) Offset() uint32 { return s.EBX }

// IsInXcr0 reports whether the component is enabled through XCR0 (as
// opposed to IA32_XSS).
func (s ExtendedState) IsInXcr0() bool { return !bitSet(s.ECX, 0) }

// IsInIA32Xss reports whether the component is enabled through
// IA32_XSS.
func (s ExtendedState) IsInIA32Xss() bool { return bitSet(s.ECX, 0) }

// IsCompactedFormat reports whether the component is 64-byte aligned
// when part of a compacted save area.
func (s ExtendedState) IsCompactedFormat() bool { return bitSet(s.ECX, 1) }

// ExtendedStateIter enumerates the supported XSAVE state components.
// The state-component bitmap is 64 bits wide, so the sequence is
// always finite.
type ExtendedStateIter struct {
	src  LeafSource
	mask uint64
	next uint32
}

// Next returns the next supported state component; ok is false after
// the last one.
func (it *ExtendedStateIter) Next() (ExtendedState, bool) {
	for ; it.next < 64; it.next++ {
		if it.mask&(1<<it.next) == 0 {
			continue
		}
		r := it.src(leafExtendedState, it.next)
		if r.empty() {
			continue
		}
		s := ExtendedState{Subleaf: it.next, EAX: r.EAX, EBX: r.EBX, ECX: r.ECX}
		it.next++
		return s, true
	}
	return ExtendedState{}, false
}

// Reset restarts the iteration at the first state component.
func (it *ExtendedStateIter) Reset() { it.next = 2 }
