package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cpp-pm/openddl-parser/pkg/document"
)

var formatCmd = &cobra.Command{
	Use:   "format [file]",
	Short: "Pretty-print an OpenDDL file",
	Long: `Parse an OpenDDL file and emit it back as canonical text with uniform
indentation, one structure per line. Comments are not preserved.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		doc, err := document.NewFromFile(filename)
		if err != nil {
			return err
		}

		output := doc.Emit()

		write, _ := cmd.Flags().GetBool("write")
		if write {
			if err := os.WriteFile(filename, []byte(output), 0o644); err != nil {
				return fmt.Errorf("failed to write file %s: %w", filename, err)
			}
			return nil
		}

		fmt.Print(output)
		return nil
	},
}

func init() {
	formatCmd.Flags().BoolP("write", "w", false, "Rewrite the file in place instead of printing")
}
