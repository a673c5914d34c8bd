package main

import (
	"fmt"
	"os"

	"github.com/cpp-pm/openddl-parser/cmd"
)

// Build information (injected at build time)
var (
	commit = "unknown"
	date   = "unknown"
)

func main() {
	cmd.SetBuildInfo(commit, date)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
