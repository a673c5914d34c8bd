package ddl

// Context is the per-session holder of the parsed document: the root node,
// the property list attached through the reserved Metric header, and the flat
// registry of every node created during the session. Exactly one Context
// exists per parse; a new parse replaces it wholesale, so references into a
// previous session's tree must not be retained.
type Context struct {
	Root       *Node
	Properties []*Property

	nodes []*Node
}

// NewContext creates a session context with a fresh root node of type "root".
func NewContext() *Context {
	ctx := &Context{}
	ctx.Root = ctx.NewNode("root", "", nil)
	return ctx
}

// NewNode creates a node owned by this session and records it in the
// session registry.
func (c *Context) NewNode(nodeType, name string, parent *Node) *Node {
	node := NewNode(nodeType, name, parent)
	c.nodes = append(c.nodes, node)
	return node
}

// SetProperties attaches the Metric-scoped property chain.
func (c *Context) SetProperties(props []*Property) {
	c.Properties = props
}

// Nodes returns every node created during the session, in creation order.
func (c *Context) Nodes() []*Node {
	return c.nodes
}

// Clear drops the whole session tree at once. The registry and root are
// released together; individual nodes are never freed piecemeal.
func (c *Context) Clear() {
	c.Root = nil
	c.Properties = nil
	c.nodes = nil
}
