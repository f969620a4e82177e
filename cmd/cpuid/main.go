package main

import (
	"os"

	"github.com/go-cpuid/cpuid/cmd/cpuid/cmds"
)

func main() {
	if cmds.New().Execute() != nil {
		os.Exit(1)
	}
}
