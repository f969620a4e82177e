package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Version represents the current version of the cpuid tool.
type Version struct {
	Major    string
	Minor    string
	Patch    string
	Metadata string
	Build    string
}

// CpuidVersion is the current version of the cpuid tool.
var CpuidVersion = Version{
	Major: "1", Minor: "0", Patch: "0", Metadata: "",
	Build: "$Id$",
}

func (v Version) String() string {
	fixBuild(&v)
	ver := fmt.Sprintf("Version: %s.%s.%s", v.Major, v.Minor, v.Patch)
	if v.Metadata != "" {
		ver += "-" + v.Metadata
	}
	return fmt.Sprintf("%s\nBuild: %s", ver, v.Build)
}

var buildInfo = func() string {
	return ""
}

func BuildInfo() string {
	return fmt.Sprintf("%s\n%s", runtime.Version(), buildInfo())
}

func fixBuild(v *Version) {
	// Leave v.Build alone unless it still carries the unexpanded Git
	// ident placeholder.
	if !strings.HasPrefix(v.Build, "$Id$") {
		return
	}
	if rev := vcsRevision(); rev != "" {
		v.Build = rev
	}
}
