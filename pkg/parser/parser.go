// Package parser implements the OpenDDL text parser: buffer normalization,
// token scanning, the recursive-descent grammar and construction of the node
// tree. A Parser is a single-session, single-threaded object; concurrent use
// must be serialized by the caller.
package parser

import (
	"errors"
	"fmt"

	"github.com/cpp-pm/openddl-parser/pkg/ddl"
	"github.com/cpp-pm/openddl-parser/pkg/sink"
)

// version identifies the grammar/implementation revision.
const version = "0.1.0"

// Version returns the fixed version string. It is queryable without a live
// session.
func Version() string {
	return version
}

// ErrEmptyBuffer is returned by Parse when no input has been set.
var ErrEmptyBuffer = errors.New("parser: empty input buffer")

// Parser holds one parse session: the working buffer, the diagnostic sink,
// the stack of nodes currently open for children, and the session Context.
// Parsing again replaces the Context wholesale; references into the previous
// session's tree must not be kept.
type Parser struct {
	buf        []byte
	ownsBuffer bool
	logSink    sink.Sink
	stack      []*ddl.Node
	ctx        *ddl.Context
}

// New creates a parser with the default diagnostic sink and no buffer.
func New() *Parser {
	return &Parser{logSink: sink.Default()}
}

// NewFromBuffer creates a parser over the given buffer. When owns is set the
// parser works on a private copy, so the caller's storage is never mutated;
// otherwise the buffer is borrowed and normalized in place.
func NewFromBuffer(buf []byte, owns bool) *Parser {
	p := New()
	p.SetBuffer(buf, owns)
	return p
}

// SetSink installs a diagnostic sink. Passing nil restores the default. The
// sink may be swapped at any time, including between parses.
func (p *Parser) SetSink(s sink.Sink) {
	if s == nil {
		s = sink.Default()
	}
	p.logSink = s
}

// Sink returns the currently installed diagnostic sink.
func (p *Parser) Sink() sink.Sink {
	return p.logSink
}

// SetBuffer installs the input buffer, replacing any previous one. When owns
// is set a private copy is taken.
func (p *Parser) SetBuffer(buf []byte, owns bool) {
	p.ownsBuffer = owns
	if owns {
		p.buf = make([]byte, len(buf))
		copy(p.buf, buf)
	} else {
		p.buf = buf
	}
}

// Buffer returns the working buffer. After a parse this is the normalized
// form.
func (p *Parser) Buffer() []byte {
	return p.buf
}

// BufferSize returns the working buffer's logical length.
func (p *Parser) BufferSize() int {
	return len(p.buf)
}

// Clear drops the buffer and the whole session tree at once.
func (p *Parser) Clear() {
	p.buf = nil
	p.stack = nil
	if p.ctx != nil {
		p.ctx.Clear()
		p.ctx = nil
	}
}

// Parse runs the grammar over the buffer and builds the node tree. It fails
// only on empty input; malformed content is reported through the sink and
// absorbed best-effort, the cursor always making forward progress until the
// buffer is consumed.
func (p *Parser) Parse() error {
	if len(p.buf) == 0 {
		return ErrEmptyBuffer
	}

	p.buf = normalizeBuffer(p.buf)

	p.ctx = ddl.NewContext()
	p.stack = p.stack[:0]
	p.pushNode(p.ctx.Root)

	current, end := 0, len(p.buf)
	for current < end {
		next := p.parseNextNode(current, end)
		if next <= current {
			// stuck cursor on malformed input; force advance
			next = current + 1
		}
		current = next
	}
	return nil
}

// Root returns the root node of the last parse, or nil before any parse.
func (p *Parser) Root() *ddl.Node {
	if p.ctx == nil {
		return nil
	}
	return p.ctx.Root
}

// Context returns the session context of the last parse, or nil.
func (p *Parser) Context() *ddl.Context {
	return p.ctx
}

func (p *Parser) pushNode(node *ddl.Node) {
	if node == nil {
		return
	}
	p.stack = append(p.stack, node)
}

func (p *Parser) popNode() *ddl.Node {
	if len(p.stack) == 0 {
		return nil
	}
	node := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return node
}

// top returns the innermost open node, or nil on an empty stack.
func (p *Parser) top() *ddl.Node {
	if len(p.stack) == 0 {
		return nil
	}
	return p.stack[len(p.stack)-1]
}

func (p *Parser) logInvalidToken(in int, expected string) {
	offending := "<end of buffer>"
	if in < len(p.buf) {
		offending = string(p.buf[in : in+1])
	}
	p.logSink.Log(sink.SeverityError, fmt.Sprintf("Invalid token %s, %s expected.", offending, expected))
}
