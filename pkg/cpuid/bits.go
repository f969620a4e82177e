package cpuid

import (
	"strings"
	"unicode/utf8"
)

// bitSet reports whether bit pos of reg is set.
func bitSet(reg uint32, pos uint) bool {
	return reg&(1<<pos) != 0
}

// field extracts the inclusive bit range hi:lo of reg, the notation
// used by the vendor manuals.
func field(reg uint32, hi, lo uint) uint32 {
	return (reg >> lo) & (1<<(hi-lo+1) - 1)
}

// regBytes appends the little-endian bytes of each register in the
// order given. Vendor and brand strings are packed this way.
func regBytes(regs ...uint32) []byte {
	b := make([]byte, 0, 4*len(regs))
	for _, r := range regs {
		b = append(b, byte(r), byte(r>>8), byte(r>>16), byte(r>>24))
	}
	return b
}

// regString converts packed register bytes to a string: stop at the
// first NUL, drop trailing space padding, and substitute any invalid
// byte sequences instead of failing.
func regString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			b = b[:i]
			break
		}
	}
	s := strings.TrimRight(string(b), " ")
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, string(utf8.RuneError))
	}
	return s
}
