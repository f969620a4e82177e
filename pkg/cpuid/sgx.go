package cpuid

// SgxInfo is the leaf 0x12 Software Guard Extensions enumeration,
// aggregating sub-leaves 0 and 1 (Intel).
type SgxInfo struct {
	EAX  uint32
	EBX  uint32
	EDX  uint32
	EAX1 uint32
	EBX1 uint32
	ECX1 uint32
	EDX1 uint32

	src LeafSource
}

// HasSgx1 reports SGX1 leaf function support.
func (s SgxInfo) HasSgx1() bool { return bitSet(s.EAX, 0) }

// HasSgx2 reports SGX2 leaf function support.
func (s SgxInfo) HasSgx2() bool { return bitSet(s.EAX, 1) }

// HasEnclv reports ENCLV instruction support.
func (s SgxInfo) HasEnclv() bool { return bitSet(s.EAX, 5) }

// HasEncls reports ENCLS instruction support.
func (s SgxInfo) HasEncls() bool { return bitSet(s.EAX, 6) }

// MiscSelect returns the supported extended SGX feature bits for
// MISCSELECT.
func (s SgxInfo) MiscSelect() uint32 { return s.EBX }

// MaxEnclaveSizeNon64 returns the log2 of the maximum enclave size in
// non-64-bit mode.
func (s SgxInfo) MaxEnclaveSizeNon64() uint32 { return field(s.EDX, 7, 0) }

// MaxEnclaveSize64 returns the log2 of the maximum enclave size in
// 64-bit mode.
func (s SgxInfo) MaxEnclaveSize64() uint32 { return field(s.EDX, 15, 8) }

// SecsAttributes returns the 128-bit mask of attributes software may
// set in SECS.ATTRIBUTES.
func (s SgxInfo) SecsAttributes() (uint64, uint64) {
	return uint64(s.EBX1)<<32 | uint64(s.EAX1), uint64(s.EDX1)<<32 | uint64(s.ECX1)
}

// Sections returns an iterator over the enclave page cache sections
// (sub-leaf 2 upward).
func (s SgxInfo) Sections() *SgxSectionIter {
	return &SgxSectionIter{src: s.src, next: 2}
}

// SgxSection describes one EPC section reported by a leaf 0x12
// sub-leaf of type 1.
type SgxSection struct {
	EAX uint32
	EBX uint32
	ECX uint32
	EDX uint32
}

// Base returns the physical base address of the EPC section.
func (s SgxSection) Base() uint64 {
	return uint64(field(s.EBX, 19, 0))<<32 | uint64(s.EAX&0xFFFFF000)
}

// Size returns the size of the EPC section in bytes.
func (s SgxSection) Size() uint64 {
	return uint64(field(s.EDX, 19, 0))<<32 | uint64(s.ECX&0xFFFFF000)
}

// SgxSectionIter enumerates EPC sections, terminating on the first
// sub-leaf whose type field reads invalid.
type SgxSectionIter struct {
	src  LeafSource
	next uint32
}

// Next returns the next EPC section; ok is false once the hardware
// reports an invalid sub-leaf type.
func (it *SgxSectionIter) Next() (SgxSection, bool) {
	r := it.src(leafSgx, it.next)
	if field(r.EAX, 3, 0) != 1 {
		return SgxSection{}, false
	}
	it.next++
	return SgxSection{EAX: r.EAX, EBX: r.EBX, ECX: r.ECX, EDX: r.EDX}, true
}

// Reset restarts the iteration at the first EPC sub-leaf.
func (it *SgxSectionIter) Reset() { it.next = 2 }
