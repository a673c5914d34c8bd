// Package ddl defines the in-memory document model produced by the parser:
// a tree of typed, optionally named nodes carrying properties and primitive
// data payloads.
package ddl

// Node is one structure in the parsed document. A node owns its children;
// the Parent pointer is a non-owning back reference. A node carries at most
// one of Values (scalar payload, declared length 1) and Arrays (array
// payload, declared length > 1), never both.
type Node struct {
	Type       string
	Name       string
	Properties []*Property
	Values     []*Value
	Arrays     []*DataArray
	Children   []*Node
	Parent     *Node
}

// NewNode creates a node with the given type tag and name and attaches it to
// parent if parent is non-nil.
func NewNode(nodeType, name string, parent *Node) *Node {
	node := &Node{
		Type: nodeType,
		Name: name,
	}
	if parent != nil {
		node.AttachParent(parent)
	}
	return node
}

// AttachParent makes parent the owner of the node, appending it to parent's
// child sequence exactly once. Attaching the same node twice is a caller
// error; the operation is not idempotent.
func (n *Node) AttachParent(parent *Node) {
	n.Parent = parent
	parent.Children = append(parent.Children, n)
}

// SetProperties replaces the node's property chain.
func (n *Node) SetProperties(props []*Property) {
	n.Properties = props
}

// SetValues attaches a scalar data payload.
func (n *Node) SetValues(values []*Value) {
	n.Values = values
}

// SetArrays attaches an array data payload.
func (n *Node) SetArrays(arrays []*DataArray) {
	n.Arrays = arrays
}

// FindChild returns the first direct child with the given name, or nil.
func (n *Node) FindChild(name string) *Node {
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// NodesByType returns the node and all descendants whose type tag matches,
// in depth-first order.
func (n *Node) NodesByType(nodeType string) []*Node {
	var nodes []*Node
	if n.Type == nodeType {
		nodes = append(nodes, n)
	}
	for _, child := range n.Children {
		nodes = append(nodes, child.NodesByType(nodeType)...)
	}
	return nodes
}

// AllNodes returns the node and all descendants in depth-first order.
func (n *Node) AllNodes() []*Node {
	nodes := []*Node{n}
	for _, child := range n.Children {
		nodes = append(nodes, child.AllNodes()...)
	}
	return nodes
}
