//go:build !linux
// +build !linux

package cmds

import (
	"fmt"
	"runtime"
)

func pinToCPU(cpu int) error {
	return fmt.Errorf("cpu pinning is not supported on %s", runtime.GOOS)
}
