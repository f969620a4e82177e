package cpuid

import "testing"

func TestExtendedStateInfo(t *testing.T) {
	e := ExtendedStateInfo{EAX: 7, EBX: 832, ECX: 832, EAX1: 1}

	if e.Xcr0Supported() != 7 {
		t.Fatalf("Xcr0Supported = %#x, want 0x7", e.Xcr0Supported())
	}
	if !e.Xcr0SupportsLegacyX87() || !e.Xcr0SupportsSSE128() || !e.Xcr0SupportsAVX256() {
		t.Fatalf("EAX %#x: missing x87/SSE/AVX state components", e.EAX)
	}
	if e.Xcr0SupportsMPXBndregs() || e.Xcr0SupportsAVX512Opmask() || e.Xcr0SupportsPKRU() {
		t.Fatalf("EAX %#x: unexpected state components", e.EAX)
	}
	if e.XsaveAreaSizeEnabledFeatures() != 832 {
		t.Fatalf("XsaveAreaSizeEnabledFeatures = %d, want 832", e.XsaveAreaSizeEnabledFeatures())
	}
	if e.XsaveAreaSizeSupportedFeatures() != 832 {
		t.Fatalf("XsaveAreaSizeSupportedFeatures = %d, want 832", e.XsaveAreaSizeSupportedFeatures())
	}
	if !e.HasXsaveopt() {
		t.Fatalf("expected XSAVEOPT")
	}
	if e.HasXsavec() || e.HasXgetbv1() || e.HasXsavesXrstors() {
		t.Fatalf("EAX1 %#x: unexpected XSAVE instruction support", e.EAX1)
	}
}

func TestExtendedStateIterSkipsUnsupportedComponents(t *testing.T) {
	// XCR0 advertises AVX (bit 2) and PKRU (bit 9) beyond the legacy
	// pair; the iterator must visit exactly those sub-leaves and skip
	// bits the mask does not cover even if the source has data there.
	src := mapSource(map[uint64]Result{
		uint64(leafExtendedState)<<32 | 2: {EAX: 256, EBX: 576},
		uint64(leafExtendedState)<<32 | 3: {EAX: 64, EBX: 960},
		uint64(leafExtendedState)<<32 | 9: {EAX: 64, EBX: 832},
	})
	e := ExtendedStateInfo{EAX: 0x207, src: src}

	it := e.Iter()
	s, ok := it.Next()
	if !ok || s.Subleaf != 2 || s.Size() != 256 || s.Offset() != 576 {
		t.Fatalf("first component = %+v (ok=%v), want sub-leaf 2, 256 bytes at 576", s, ok)
	}
	if !s.IsInXcr0() || s.IsCompactedFormat() {
		t.Fatalf("first component flags decoded as %+v", s)
	}
	s, ok = it.Next()
	if !ok || s.Subleaf != 9 || s.Size() != 64 || s.Offset() != 832 {
		t.Fatalf("second component = %+v (ok=%v), want sub-leaf 9, 64 bytes at 832", s, ok)
	}
	if _, ok := it.Next(); ok {
		t.Fatalf("iteration must end after the last masked component")
	}

	it.Reset()
	if s, ok := it.Next(); !ok || s.Subleaf != 2 {
		t.Fatalf("after Reset: got sub-leaf %d (ok=%v), want 2", s.Subleaf, ok)
	}
}

func TestExtendedStateIA32XssComponents(t *testing.T) {
	// Processor trace state (bit 8) lives in IA32_XSS, not XCR0.
	src := mapSource(map[uint64]Result{
		uint64(leafExtendedState)<<32 | 8: {EAX: 128, EBX: 0, ECX: 1},
	})
	e := ExtendedStateInfo{EAX: 0x3, ECX1: 1 << 8, src: src}
	if !e.IA32XssSupportsPT() {
		t.Fatalf("ECX1 bit 8 set but PT support reads false")
	}

	it := e.Iter()
	s, ok := it.Next()
	if !ok || s.Subleaf != 8 {
		t.Fatalf("component = %+v (ok=%v), want sub-leaf 8", s, ok)
	}
	if s.IsInXcr0() || !s.IsInIA32Xss() {
		t.Fatalf("PT state must report IA32_XSS, not XCR0")
	}
}
