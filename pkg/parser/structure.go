package parser

import (
	"strconv"

	"github.com/cpp-pm/openddl-parser/pkg/ddl"
	"github.com/cpp-pm/openddl-parser/pkg/sink"
)

// metricToken is the one reserved header identifier: its properties attach
// to the session Context instead of a node.
const metricToken = "Metric"

// primitiveTypeTokens maps the fixed keyword set to storage kinds, in table
// order. Matching is a prefix comparison at the cursor, tried in order.
var primitiveTypeTokens = []struct {
	token string
	vtype ddl.ValueType
}{
	{"bool", ddl.TypeBool},
	{"int8", ddl.TypeInt8},
	{"int16", ddl.TypeInt16},
	{"int32", ddl.TypeInt32},
	{"int64", ddl.TypeInt64},
	{"unsigned_int8", ddl.TypeUnsignedInt8},
	{"unsigned_int16", ddl.TypeUnsignedInt16},
	{"unsigned_int32", ddl.TypeUnsignedInt32},
	{"unsigned_int64", ddl.TypeUnsignedInt64},
	{"half", ddl.TypeHalf},
	{"float", ddl.TypeFloat},
	{"double", ddl.TypeDouble},
	{"string", ddl.TypeString},
	{"ref", ddl.TypeRef},
}

func hasPrefixAt(buf []byte, in, end int, prefix string) bool {
	if in+len(prefix) > end {
		return false
	}
	return string(buf[in:in+len(prefix)]) == prefix
}

// parsePrimitiveDataType recognizes a primitive type token, optionally
// followed by a [N] array length declaration. Without a declaration the
// length is 1. A declaration with no closing bracket invalidates the type.
func parsePrimitiveDataType(buf []byte, in, end int) (ddl.ValueType, int, int) {
	if in >= end {
		return ddl.TypeNone, 0, in
	}

	vtype := ddl.TypeNone
	for _, prim := range primitiveTypeTokens {
		if hasPrefixAt(buf, in, end, prim.token) {
			vtype = prim.vtype
			in += len(prim.token)
			break
		}
	}
	if vtype == ddl.TypeNone {
		return ddl.TypeNone, 0, in
	}

	arrayLen := 1
	if in < end && buf[in] == '[' {
		in++
		start := in
		for in < end && buf[in] != ']' {
			in++
		}
		if in >= end {
			return ddl.TypeNone, 0, in
		}
		n, err := strconv.Atoi(string(buf[start:in]))
		if err != nil {
			n = 0
		}
		arrayLen = n
		in++ // closing bracket
	}
	return vtype, arrayLen, in
}

// parseNextNode runs one header+structure production and rebalances the
// open-node stack afterwards, so a structure's node stops collecting
// children once its body is done.
func (p *Parser) parseNextNode(in, end int) int {
	depth := len(p.stack)
	in = p.parseHeader(in, end)
	in = p.parseStructure(in, end)
	if len(p.stack) > depth {
		p.popNode()
	}
	return in
}

// parseHeader parses "identifier (properties) $name". Without an identifier
// the production is degenerate: no node, cursor unchanged past the
// whitespace skip. Once an identifier is accepted the node is created and
// pushed unconditionally; later body failures do not retract it.
func (p *Parser) parseHeader(in, end int) int {
	if in >= end {
		return in
	}

	id, in, ok := parseIdentifier(p.buf, in, end)
	if !ok {
		return in
	}

	in = getNextToken(p.buf, in, end)
	var props []*ddl.Property
	if in < end && p.buf[in] == '(' {
		in++
		for in < end && p.buf[in] != ')' {
			var prop *ddl.Property
			prop, in = parseProperty(p.buf, in, end)
			in = getNextToken(p.buf, in, end)
			if in >= end {
				break
			}
			if p.buf[in] != ',' && p.buf[in] != ')' {
				p.logInvalidToken(in, ")")
				return in
			}
			if prop != nil {
				props = append(props, prop)
			}
			if p.buf[in] == ',' {
				in++
			}
		}
		if in < end {
			in++ // closing paren
		}
	}

	// Properties attach before the new node is pushed: to the Context for
	// the reserved Metric header, to the enclosing open node otherwise.
	if len(props) > 0 {
		if id == metricToken {
			p.ctx.SetProperties(props)
		} else if current := p.top(); current != nil {
			current.SetProperties(props)
		}
	}

	node := p.ctx.NewNode(id, "", p.top())
	p.pushNode(node)

	name, in := parseName(p.buf, in, end)
	if name != nil {
		node.Name = name.ID
	}
	return in
}

// parseStructure parses the brace-delimited body of a structure: either a
// primitive-typed data payload or any number of nested child structures.
// The cursor always advances past the closing brace, even on a reported
// mismatch, so malformed input can never stall the parse.
func (p *Parser) parseStructure(in, end int) int {
	if in >= end {
		return in
	}

	in = getNextToken(p.buf, in, end)
	if in >= end || p.buf[in] != '{' {
		p.logInvalidToken(in, "{")
		if in < end {
			in++
		}
		return in
	}
	in++

	in = getNextToken(p.buf, in, end)
	vtype, arrayLen, in := parsePrimitiveDataType(p.buf, in, end)
	if vtype != ddl.TypeNone {
		in = p.parseDataBody(in, end, vtype, arrayLen)
		in = getNextToken(p.buf, in, end)
		if in >= end || p.buf[in] != '}' {
			p.logInvalidToken(in, "}")
		}
	} else {
		for {
			in = getNextToken(p.buf, in, end)
			if in >= end || p.buf[in] == '}' {
				break
			}
			in = p.parseNextNode(in, end)
		}
	}

	if in < end {
		in++ // closing brace, consumed unconditionally
	}
	return in
}

// parseDataBody parses the payload after a primitive type declaration and
// attaches it to the current open node: one value chain for a declared
// length of 1, an array list for longer declarations. A declared length of
// zero is an error state; the payload stays empty.
func (p *Parser) parseDataBody(in, end int, vtype ddl.ValueType, arrayLen int) int {
	in = getNextToken(p.buf, in, end)
	if in >= end || p.buf[in] != '{' {
		return in
	}

	switch {
	case arrayLen == 1:
		values, next := p.parseDataList(in, end, vtype)
		in = next
		if len(values) > 0 {
			if current := p.top(); current != nil {
				current.SetValues(values)
			}
		}
	case arrayLen > 1:
		arrays, next := p.parseDataArrayList(in, end, vtype)
		in = next
		if len(arrays) > 0 {
			if current := p.top(); current != nil {
				current.SetArrays(arrays)
			}
		}
	default:
		p.logSink.Log(sink.SeverityError, "0 for array is invalid.")
	}
	return in
}

// parseDataList parses one braced, comma-separated chain of literals. The
// declared type selects integer width; unrecognized tokens yield no value
// and are skipped.
func (p *Parser) parseDataList(in, end int, declared ddl.ValueType) ([]*ddl.Value, int) {
	in = getNextToken(p.buf, in, end)
	if in >= end || p.buf[in] != '{' {
		return nil, in
	}
	in++

	intType := ddl.TypeInt32
	if isIntegerValueType(declared) || isUnsignedValueType(declared) {
		intType = declared
	}

	var values []*ddl.Value
	for in < end && p.buf[in] != '}' {
		in = getNextToken(p.buf, in, end)
		if in >= end || p.buf[in] == '}' {
			break
		}

		var current *ddl.Value
		switch {
		case declared == ddl.TypeBool:
			current, in = parseBooleanLiteral(p.buf, in, end)
		case isIntegerToken(p.buf, in, end):
			current, in = parseIntegerLiteral(p.buf, in, end, intType)
		case isFloatToken(p.buf, in, end):
			current, in = parseFloatingLiteral(p.buf, in, end)
		case isStringQuote(p.buf[in]):
			current, in = parseStringLiteral(p.buf, in, end)
		case isHexLiteralStart(p.buf, in, end):
			current, in = parseHexaLiteral(p.buf, in, end)
		}
		if current != nil {
			values = append(values, current)
		}

		in = getNextSeparator(p.buf, in, end)
		if in >= end {
			break
		}
		c := p.buf[in]
		if c == ',' {
			in++
			continue
		}
		if c != '}' && !isSpace(c) && !isNewLine(c) {
			break
		}
	}
	if in < end && p.buf[in] == '}' {
		in++
	}
	return values, in
}

// parseDataArrayList parses the array payload of a length-N declaration.
// Each parsed sub-list becomes one array element in input order. Both the
// wrapped form { {..}, {..} } and a single flat list are accepted; the flat
// list yields one element.
func (p *Parser) parseDataArrayList(in, end int, declared ddl.ValueType) ([]*ddl.DataArray, int) {
	in = getNextToken(p.buf, in, end)
	if in >= end || p.buf[in] != '{' {
		return nil, in
	}

	var arrays []*ddl.DataArray

	peek := getNextToken(p.buf, in+1, end)
	if peek < end && p.buf[peek] == '{' {
		in = peek
		for in < end {
			var values []*ddl.Value
			values, in = p.parseDataList(in, end, declared)
			if len(values) > 0 {
				arrays = append(arrays, &ddl.DataArray{Values: values})
			}
			in = getNextToken(p.buf, in, end)
			if in >= end || p.buf[in] != ',' {
				break
			}
			in++
			in = getNextToken(p.buf, in, end)
		}
		if in < end && p.buf[in] == '}' {
			in++ // outer brace
		}
		return arrays, in
	}

	values, in := p.parseDataList(in, end, declared)
	if len(values) > 0 {
		arrays = append(arrays, &ddl.DataArray{Values: values})
	}
	return arrays, in
}
