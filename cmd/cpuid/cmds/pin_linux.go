package cmds

import (
	"runtime"

	sys "golang.org/x/sys/unix"
)

// pinToCPU locks the calling goroutine to its OS thread and restricts
// that thread to the given CPU, so that every subsequent leaf query
// reads the same core.
func pinToCPU(cpu int) error {
	runtime.LockOSThread()
	var set sys.CPUSet
	set.Zero()
	set.Set(cpu)
	return sys.SchedSetaffinity(0, &set)
}
