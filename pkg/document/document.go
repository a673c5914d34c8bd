// Package document provides a high-level abstraction over parsed OpenDDL
// buffers. It hides the parser session behind a simple load-and-query API.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpp-pm/openddl-parser/pkg/ddl"
	"github.com/cpp-pm/openddl-parser/pkg/formatter"
	"github.com/cpp-pm/openddl-parser/pkg/parser"
	"github.com/cpp-pm/openddl-parser/pkg/sink"
)

// Document represents one parsed OpenDDL buffer with its node tree and
// provides lookup operations over it.
type Document struct {
	filename  string
	parser    *parser.Parser
	formatter *formatter.Formatter
	nodeCache map[string]*ddl.Node
}

// NewFromFile loads and parses a file. The parser owns a private copy of the
// content.
func NewFromFile(filename string) (*Document, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for %s: %w", filename, err)
	}

	return NewFromBuffer(absPath, content)
}

// NewFromBuffer parses content under the given name. The buffer is copied,
// so the caller's storage stays untouched.
func NewFromBuffer(name string, content []byte) (*Document, error) {
	p := parser.NewFromBuffer(content, true)
	if err := p.Parse(); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	doc := &Document{
		filename:  name,
		parser:    p,
		formatter: formatter.New(),
		nodeCache: make(map[string]*ddl.Node),
	}
	doc.buildNodeCache()
	return doc, nil
}

// SetSink routes the parser's diagnostics for subsequent operations.
func (d *Document) SetSink(s sink.Sink) {
	d.parser.SetSink(s)
}

// buildNodeCache indexes every node by its slash-joined path for quick
// lookup. A segment is the node's name when present, its type tag otherwise.
// The first node to claim a path keeps it.
func (d *Document) buildNodeCache() {
	root := d.parser.Root()
	if root == nil {
		return
	}
	for _, node := range root.AllNodes() {
		if node == root {
			continue
		}
		path := NodePath(node)
		if _, exists := d.nodeCache[path]; !exists {
			d.nodeCache[path] = node
		}
	}
}

// NodePath returns the slash-joined path of a node below the root.
func NodePath(node *ddl.Node) string {
	var segments []string
	for current := node; current != nil && current.Parent != nil; current = current.Parent {
		segment := current.Name
		if segment == "" {
			segment = current.Type
		}
		segments = append([]string{segment}, segments...)
	}
	return strings.Join(segments, "/")
}

// Filename returns the document's source name.
func (d *Document) Filename() string {
	return d.filename
}

// Root returns the document's root node.
func (d *Document) Root() *ddl.Node {
	return d.parser.Root()
}

// Context returns the underlying parse session context.
func (d *Document) Context() *ddl.Context {
	return d.parser.Context()
}

// Metrics returns the property chain attached through the reserved Metric
// header, if any.
func (d *Document) Metrics() []*ddl.Property {
	ctx := d.parser.Context()
	if ctx == nil {
		return nil
	}
	return ctx.Properties
}

// FindNode finds a node by its slash-joined path (e.g. "GeometryNode/mesh").
func (d *Document) FindNode(path string) *ddl.Node {
	return d.nodeCache[strings.Trim(path, "/")]
}

// NodesByName returns all nodes carrying the given name, regardless of
// nesting depth.
func (d *Document) NodesByName(name string) []*ddl.Node {
	root := d.parser.Root()
	if root == nil {
		return nil
	}
	var found []*ddl.Node
	for _, node := range root.AllNodes() {
		if node != root && node.Name == name {
			found = append(found, node)
		}
	}
	return found
}

// NodesByType returns all nodes with the given type tag, at any depth.
func (d *Document) NodesByType(nodeType string) []*ddl.Node {
	root := d.parser.Root()
	if root == nil {
		return nil
	}
	var found []*ddl.Node
	for _, child := range root.Children {
		found = append(found, child.NodesByType(nodeType)...)
	}
	return found
}

// TopLevel returns the document's top-level structures in input order.
func (d *Document) TopLevel() []*ddl.Node {
	root := d.parser.Root()
	if root == nil {
		return nil
	}
	return root.Children
}

// Emit serializes the document back to OpenDDL text.
func (d *Document) Emit() string {
	root := d.parser.Root()
	if root == nil {
		return ""
	}
	return d.formatter.EmitTree(root)
}

// EmitNode serializes one subtree back to OpenDDL text.
func (d *Document) EmitNode(node *ddl.Node) string {
	return d.formatter.EmitNode(node)
}
