package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"github.com/cpp-pm/openddl-parser/pkg/ddl"
	"github.com/cpp-pm/openddl-parser/pkg/document"
	"github.com/cpp-pm/openddl-parser/pkg/formatter"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse an OpenDDL file and output the node tree",
	Long: `Parse an OpenDDL file and create a tree of typed structures.
The output can be human-readable, JSON or YAML for further processing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		doc, err := document.NewFromFile(filename)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "json":
			return outputJSON(doc)
		case "yaml":
			return outputYAML(doc)
		default:
			return outputHuman(doc)
		}
	},
}

func init() {
	parseCmd.Flags().StringP("format", "f", "human", "Output format (human, json, yaml)")
}

// treeNode is the serializable shape of a parsed structure.
type treeNode struct {
	Type       string         `json:"type" yaml:"type"`
	Name       string         `json:"name,omitempty" yaml:"name,omitempty"`
	Properties map[string]any `json:"properties,omitempty" yaml:"properties,omitempty"`
	Values     []any          `json:"values,omitempty" yaml:"values,omitempty"`
	Arrays     [][]any        `json:"arrays,omitempty" yaml:"arrays,omitempty"`
	Children   []treeNode     `json:"children,omitempty" yaml:"children,omitempty"`
}

func convertNode(node *ddl.Node) treeNode {
	tn := treeNode{
		Type: node.Type,
		Name: node.Name,
	}
	if len(node.Properties) > 0 {
		tn.Properties = make(map[string]any, len(node.Properties))
		for _, prop := range node.Properties {
			tn.Properties[prop.Key] = propertyValue(prop)
		}
	}
	for _, v := range node.Values {
		tn.Values = append(tn.Values, plainValue(v))
	}
	for _, elem := range node.Arrays {
		var row []any
		for _, v := range elem.Values {
			row = append(row, plainValue(v))
		}
		tn.Arrays = append(tn.Arrays, row)
	}
	for _, child := range node.Children {
		tn.Children = append(tn.Children, convertNode(child))
	}
	return tn
}

func propertyValue(prop *ddl.Property) any {
	if prop.Ref != nil {
		var names []string
		for _, n := range prop.Ref.Names {
			names = append(names, string(n.Kind.Sigil())+n.ID)
		}
		return names
	}
	return plainValue(prop.Value)
}

func plainValue(v *ddl.Value) any {
	if v == nil {
		return nil
	}
	switch v.Type {
	case ddl.TypeBool:
		return v.Bool
	case ddl.TypeInt8, ddl.TypeInt16, ddl.TypeInt32, ddl.TypeInt64:
		return v.Int64
	case ddl.TypeUnsignedInt8, ddl.TypeUnsignedInt16, ddl.TypeUnsignedInt32, ddl.TypeUnsignedInt64:
		return v.Uint64
	case ddl.TypeFloat:
		return v.Float32
	case ddl.TypeHalf, ddl.TypeDouble:
		return v.Float64
	case ddl.TypeString:
		return v.String
	}
	return nil
}

func outputJSON(doc *document.Document) error {
	var nodes []treeNode
	for _, child := range doc.TopLevel() {
		nodes = append(nodes, convertNode(child))
	}

	output := map[string]any{
		"filename":   doc.Filename(),
		"structures": nodes,
	}
	if metrics := doc.Metrics(); len(metrics) > 0 {
		props := make(map[string]any, len(metrics))
		for _, prop := range metrics {
			props[prop.Key] = propertyValue(prop)
		}
		output["metrics"] = props
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func outputYAML(doc *document.Document) error {
	var nodes []treeNode
	for _, child := range doc.TopLevel() {
		nodes = append(nodes, convertNode(child))
	}

	output := map[string]any{
		"filename":   doc.Filename(),
		"structures": nodes,
	}

	data, err := yaml.Marshal(output)
	if err != nil {
		return fmt.Errorf("failed to marshal tree: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}

func outputHuman(doc *document.Document) error {
	fmt.Printf("Parsed file: %s\n", doc.Filename())
	fmt.Printf("=====================================\n\n")

	if metrics := doc.Metrics(); len(metrics) > 0 {
		color.Cyan("Metrics:")
		f := formatter.New()
		for _, prop := range metrics {
			fmt.Printf("  %s\n", f.EmitProperty(prop))
		}
		fmt.Println()
	}

	total := 0
	typeCounts := make(map[string]int)
	for _, child := range doc.TopLevel() {
		printNode(child, 0)
		for _, node := range child.AllNodes() {
			total++
			typeCounts[node.Type]++
		}
	}

	fmt.Printf("\nSummary:\n")
	fmt.Printf("--------\n")
	fmt.Printf("Total structures: %d\n", total)
	for nodeType, count := range typeCounts {
		fmt.Printf("%s: %d\n", nodeType, count)
	}
	return nil
}

func printNode(node *ddl.Node, depth int) {
	indent := ""
	for i := 0; i < depth; i++ {
		indent += "  "
	}

	fmt.Printf("%s%s", indent, color.GreenString(node.Type))
	if node.Name != "" {
		fmt.Printf(" %s", color.YellowString("$"+node.Name))
	}
	if len(node.Properties) > 0 {
		fmt.Printf(" [%d properties]", len(node.Properties))
	}
	if len(node.Values) > 0 {
		fmt.Printf(" [%d values]", len(node.Values))
	}
	if len(node.Arrays) > 0 {
		fmt.Printf(" [%d array elements]", len(node.Arrays))
	}
	fmt.Println()

	for _, child := range node.Children {
		printNode(child, depth+1)
	}
}
