// Package formatter serializes a parsed node tree back to OpenDDL text.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cpp-pm/openddl-parser/pkg/ddl"
)

// Formatter emits OpenDDL text from a node tree.
type Formatter struct {
	indentSize int
	useSpaces  bool
}

// New creates a formatter with four-space indentation.
func New() *Formatter {
	return &Formatter{
		indentSize: 4,
		useSpaces:  true,
	}
}

// EmitTree serializes the whole document below the root node.
func (f *Formatter) EmitTree(root *ddl.Node) string {
	var result strings.Builder
	for _, child := range root.Children {
		result.WriteString(f.emitNode(child, 0))
	}
	return result.String()
}

// EmitNode serializes one structure and its subtree.
func (f *Formatter) EmitNode(node *ddl.Node) string {
	return f.emitNode(node, 0)
}

func (f *Formatter) emitNode(node *ddl.Node, depth int) string {
	var result strings.Builder
	indent := f.getIndent(depth)

	result.WriteString(indent)
	result.WriteString(node.Type)
	if len(node.Properties) > 0 {
		result.WriteString(" (")
		for i, prop := range node.Properties {
			if i > 0 {
				result.WriteString(", ")
			}
			result.WriteString(f.emitProperty(prop))
		}
		result.WriteString(")")
	}
	if node.Name != "" {
		// parsed names lose their sigil; emitted names default to global
		result.WriteString(" $")
		result.WriteString(node.Name)
	}

	switch {
	case len(node.Values) > 0:
		result.WriteString(" {")
		result.WriteString(payloadType(node.Values))
		result.WriteString(" {")
		result.WriteString(f.emitValueChain(node.Values))
		result.WriteString("}}\n")
	case len(node.Arrays) > 0:
		result.WriteString(" {")
		result.WriteString(payloadType(node.Arrays[0].Values))
		result.WriteString("[")
		result.WriteString(strconv.Itoa(arrayPayloadLen(node.Arrays)))
		result.WriteString("] {")
		for i, elem := range node.Arrays {
			if i > 0 {
				result.WriteString(", ")
			}
			result.WriteString("{")
			result.WriteString(f.emitValueChain(elem.Values))
			result.WriteString("}")
		}
		result.WriteString("}}\n")
	case len(node.Children) > 0:
		result.WriteString(" {\n")
		for _, child := range node.Children {
			result.WriteString(f.emitNode(child, depth+1))
		}
		result.WriteString(indent)
		result.WriteString("}\n")
	default:
		result.WriteString(" {}\n")
	}
	return result.String()
}

// EmitProperty serializes one key = value property pair.
func (f *Formatter) EmitProperty(prop *ddl.Property) string {
	return f.emitProperty(prop)
}

func (f *Formatter) emitProperty(prop *ddl.Property) string {
	if prop.Ref != nil {
		return fmt.Sprintf("%s = %s", prop.Key, f.emitReference(prop.Ref))
	}
	return fmt.Sprintf("%s = %s", prop.Key, f.emitValue(prop.Value))
}

func (f *Formatter) emitReference(ref *ddl.Reference) string {
	var result strings.Builder
	result.WriteString("ref {")
	for i, name := range ref.Names {
		if i > 0 {
			result.WriteString(", ")
		}
		result.WriteByte(name.Kind.Sigil())
		result.WriteString(name.ID)
	}
	result.WriteString("}")
	return result.String()
}

func (f *Formatter) emitValueChain(values []*ddl.Value) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, f.emitValue(v))
	}
	return strings.Join(parts, ", ")
}

func (f *Formatter) emitValue(v *ddl.Value) string {
	if v == nil {
		return ""
	}
	switch v.Type {
	case ddl.TypeBool:
		return strconv.FormatBool(v.Bool)
	case ddl.TypeInt8, ddl.TypeInt16, ddl.TypeInt32, ddl.TypeInt64:
		return strconv.FormatInt(v.Int64, 10)
	case ddl.TypeUnsignedInt8, ddl.TypeUnsignedInt16, ddl.TypeUnsignedInt32, ddl.TypeUnsignedInt64:
		return strconv.FormatUint(v.Uint64, 10)
	case ddl.TypeFloat:
		return strconv.FormatFloat(float64(v.Float32), 'g', -1, 32)
	case ddl.TypeHalf, ddl.TypeDouble:
		return strconv.FormatFloat(v.Float64, 'g', -1, 64)
	case ddl.TypeString:
		return "\"" + v.String + "\""
	case ddl.TypeRef:
		if v.Ref != nil {
			return f.emitReference(v.Ref)
		}
	}
	return ""
}

// payloadType names the primitive type token of a value chain. Mixed chains
// take the first value's type; an empty chain falls back to int32.
func payloadType(values []*ddl.Value) string {
	if len(values) == 0 {
		return ddl.TypeInt32.String()
	}
	return values[0].Type.String()
}

func arrayPayloadLen(arrays []*ddl.DataArray) int {
	max := 0
	for _, elem := range arrays {
		if len(elem.Values) > max {
			max = len(elem.Values)
		}
	}
	if max < 2 {
		// a declared length of 1 would reparse as a scalar payload
		max = 2
	}
	return max
}

func (f *Formatter) getIndent(depth int) string {
	if f.useSpaces {
		return strings.Repeat(" ", depth*f.indentSize)
	}
	return strings.Repeat("\t", depth)
}
