package parser

import (
	"github.com/cpp-pm/openddl-parser/pkg/ddl"
)

// parseProperty parses one identifier = value pair inside a parenthesized
// property list. The value position is classified in order: integer, float,
// string, then reference; the first classifier that accepts the token wins.
// Returns nil when no identifier is present or no '=' follows it.
func parseProperty(buf []byte, in, end int) (*ddl.Property, int) {
	key, in, ok := parseIdentifier(buf, in, end)
	if !ok {
		return nil, in
	}

	in = getNextToken(buf, in, end)
	if in >= end || buf[in] != '=' {
		return nil, in
	}
	in++
	in = getNextToken(buf, in, end)
	if in >= end {
		return nil, in
	}

	var value *ddl.Value
	switch {
	case isIntegerToken(buf, in, end):
		value, in = parseIntegerLiteral(buf, in, end, ddl.TypeInt32)
	case isFloatToken(buf, in, end):
		value, in = parseFloatingLiteral(buf, in, end)
	case isStringQuote(buf[in]):
		value, in = parseStringLiteral(buf, in, end)
	default:
		var names []*ddl.Name
		names, in = parseReference(buf, in, end)
		if len(names) > 0 {
			return &ddl.Property{Key: key, Ref: &ddl.Reference{Names: names}}, in
		}
		return nil, in
	}

	if value == nil {
		return nil, in
	}
	return &ddl.Property{Key: key, Value: value}, in
}
