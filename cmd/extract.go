package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cpp-pm/openddl-parser/pkg/document"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file] [node-path]",
	Short: "Extract one structure from an OpenDDL file",
	Long: `Extract a single structure and its subtree from an OpenDDL file.
The node-path is slash-joined: a segment is the structure's name when it
has one, its type tag otherwise (e.g. GeometryNode/mesh).`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]
		nodePath := args[1]

		doc, err := document.NewFromFile(filename)
		if err != nil {
			return err
		}

		node := doc.FindNode(nodePath)
		if node == nil {
			return fmt.Errorf("structure not found: %s", nodePath)
		}

		fmt.Print(doc.EmitNode(node))
		return nil
	},
}
