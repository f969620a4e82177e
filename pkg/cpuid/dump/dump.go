// Package dump captures the raw CPUID leaves of a processor into a
// serializable form and serves captured dumps back as a leaf source,
// so that decoded reports can be reproduced away from the machine they
// were taken on.
package dump

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/go-cpuid/cpuid/pkg/cpuid"
	"github.com/go-cpuid/cpuid/pkg/logflags"
	"gopkg.in/yaml.v2"
)

// Entry is one captured leaf/sub-leaf query result.
type Entry struct {
	Leaf    uint32 `yaml:"leaf" json:"leaf"`
	Subleaf uint32 `yaml:"subleaf" json:"subleaf"`
	EAX     uint32 `yaml:"eax" json:"eax"`
	EBX     uint32 `yaml:"ebx" json:"ebx"`
	ECX     uint32 `yaml:"ecx" json:"ecx"`
	EDX     uint32 `yaml:"edx" json:"edx"`
}

// Dump is a complete capture of the CPUID leaves of one processor.
type Dump struct {
	Entries []Entry `yaml:"cpuid" json:"cpuid"`
}

// Formats accepted by Write and Read.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// maxSubleaves bounds the sentinel-terminated sub-leaf walks, so a
// source that never reports a sentinel cannot make Capture loop
// forever. Real processors stay far below it.
const maxSubleaves = 256

type capturer struct {
	src cpuid.LeafSource
	out []Entry
	log logflags.Logger
}

// record queries one leaf/sub-leaf pair and stores the result. All-zero
// results are dropped, except for the two range roots: a served dump
// reads missing entries as zero anyway.
func (c *capturer) record(leaf, subleaf uint32) cpuid.Result {
	r := c.src(leaf, subleaf)
	if r == (cpuid.Result{}) && leaf != 0 && leaf != 0x80000000 {
		return r
	}
	c.out = append(c.out, Entry{
		Leaf: leaf, Subleaf: subleaf,
		EAX: r.EAX, EBX: r.EBX, ECX: r.ECX, EDX: r.EDX,
	})
	if logflags.Dump() {
		c.log.Debugf("leaf %#010x subleaf %#x: %08x %08x %08x %08x", leaf, subleaf, r.EAX, r.EBX, r.ECX, r.EDX)
	}
	return r
}

// subleaves captures the sub-leaf sequence of one leaf. Most leaves
// have a single sub-leaf; the enumerated ones are walked with the same
// termination rule their decoder uses.
func (c *capturer) subleaves(leaf uint32, r0 cpuid.Result) {
	switch leaf {
	case 0x4, 0x8000001D:
		// Terminated by a null cache type.
		if r0.EAX&0x1F == 0 {
			return
		}
		for n := uint32(1); n < maxSubleaves; n++ {
			if c.record(leaf, n).EAX&0x1F == 0 {
				return
			}
		}
	case 0x7, 0x18:
		// Sub-leaf 0 EAX bounds the sequence.
		for n := uint32(1); n <= r0.EAX && n < maxSubleaves; n++ {
			c.record(leaf, n)
		}
	case 0xB:
		// Terminated by an invalid level type.
		if (r0.ECX>>8)&0xFF == 0 {
			return
		}
		for n := uint32(1); n < maxSubleaves; n++ {
			if r := c.record(leaf, n); (r.ECX>>8)&0xFF == 0 {
				return
			}
		}
	case 0xD:
		r1 := c.record(leaf, 1)
		mask := uint64(r0.EDX)<<32 | uint64(r0.EAX)
		mask |= uint64(r1.EDX)<<32 | uint64(r1.ECX)
		for n := uint32(2); n < 64; n++ {
			if mask&(1<<n) != 0 {
				c.record(leaf, n)
			}
		}
	case 0xF:
		if r0.EDX&(1<<1) != 0 {
			c.record(leaf, 1)
		}
	case 0x10:
		for n := uint32(1); n <= 3; n++ {
			if r0.EBX&(1<<n) != 0 {
				c.record(leaf, n)
			}
		}
	case 0x12:
		c.record(leaf, 1)
		// EPC sections, terminated by an invalid section type.
		for n := uint32(2); n < maxSubleaves; n++ {
			if c.record(leaf, n).EAX&0xF != 1 {
				return
			}
		}
	}
}

// Capture walks every leaf the processor behind src reports, including
// the sub-leaves of the enumerated leaves, and returns the raw results.
func Capture(src cpuid.LeafSource) *Dump {
	c := &capturer{src: src, log: logflags.DumpLogger()}

	root := c.record(0, 0)
	for leaf := uint32(1); leaf <= root.EAX; leaf++ {
		c.subleaves(leaf, c.record(leaf, 0))
	}

	extRoot := c.record(0x80000000, 0)
	if extRoot.EAX >= 0x80000000 {
		for leaf := uint32(0x80000001); leaf <= extRoot.EAX; leaf++ {
			c.subleaves(leaf, c.record(leaf, 0))
		}
	}

	if logflags.Dump() {
		c.log.Debugf("captured %d entries", len(c.out))
	}
	return &Dump{Entries: c.out}
}

// Source returns a leaf source serving the captured registers. Pairs
// the dump does not contain read as zero, which every decoder treats
// as leaf absence or sequence termination.
func (d *Dump) Source() cpuid.LeafSource {
	m := make(map[uint64]cpuid.Result, len(d.Entries))
	for _, e := range d.Entries {
		m[uint64(e.Leaf)<<32|uint64(e.Subleaf)] = cpuid.Result{
			EAX: e.EAX, EBX: e.EBX, ECX: e.ECX, EDX: e.EDX,
		}
	}
	return func(leaf, subleaf uint32) cpuid.Result {
		return m[uint64(leaf)<<32|uint64(subleaf)]
	}
}

// Write serializes the dump to w in the given format.
func (d *Dump) Write(w io.Writer, format string) error {
	switch format {
	case FormatYAML:
		out, err := yaml.Marshal(d)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "\t")
		return enc.Encode(d)
	}
	return fmt.Errorf("unknown dump format %q", format)
}

// Read deserializes a dump from r in the given format.
func Read(r io.Reader, format string) (*Dump, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	d := &Dump{}
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, d)
	case FormatJSON:
		err = json.Unmarshal(data, d)
	default:
		err = fmt.Errorf("unknown dump format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}
