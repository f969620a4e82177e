package cmds

import (
	"fmt"

	"github.com/go-cpuid/cpuid/pkg/cpuid/dump"
	"github.com/spf13/pflag"
)

// formatFlag is a pflag.Value restricted to the dump serialization
// formats.
type formatFlag string

var _ pflag.Value = (*formatFlag)(nil)

func (f *formatFlag) String() string { return string(*f) }

func (f *formatFlag) Set(s string) error {
	switch s {
	case dump.FormatYAML, dump.FormatJSON:
		*f = formatFlag(s)
		return nil
	}
	return fmt.Errorf("invalid format %q, expected yaml or json", s)
}

func (f *formatFlag) Type() string { return "format" }
