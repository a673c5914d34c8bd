package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cpp-pm/openddl-parser/pkg/parser"
)

// Build information, overridden at link time.
var (
	commit = "unknown"
	date   = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "openddl",
	Short: "A parser for the OpenDDL text format",
	Long: `openddl is a CLI tool that parses OpenDDL text buffers into a node
tree. It can dump the parsed structure, pretty-print a buffer back to
canonical OpenDDL text, and extract single structures by path.`,
	Version: getVersionString(),
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("openddl %s\n", getVersionString())
		fmt.Printf("  Parser:  %s\n", parser.Version())
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Date:    %s\n", date)
	},
}

func getVersionString() string {
	return parser.Version()
}

func SetBuildInfo(c, d string) {
	commit = c
	date = d
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(formatCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(versionCmd)
}
