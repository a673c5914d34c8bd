package parser

import (
	"github.com/cpp-pm/openddl-parser/pkg/ddl"
)

// parseIdentifier recognizes a bare identifier at the cursor. Leading
// whitespace is skipped first. Identifiers may not start with a digit; in
// that case (and when the cursor sits on a separator) ok is false and the
// cursor is left right after the whitespace skip.
func parseIdentifier(buf []byte, in, end int) (id string, next int, ok bool) {
	in = getNextToken(buf, in, end)
	if in >= end {
		return "", in, false
	}
	if isNumeric(buf[in]) {
		return "", in, false
	}

	start := in
	for in < end && !isSeparator(buf[in]) && buf[in] != '(' && buf[in] != ')' {
		in++
	}
	if in == start {
		return "", in, false
	}
	return string(buf[start:in]), in, true
}

// parseName recognizes a $-prefixed global or %-prefixed local name. The
// sigil selects the kind; the identifier text is stored without it. Returns
// nil when the next significant byte is not a sigil.
func parseName(buf []byte, in, end int) (*ddl.Name, int) {
	in = getNextToken(buf, in, end)
	if in >= end {
		return nil, in
	}
	if buf[in] != '$' && buf[in] != '%' {
		return nil, in
	}

	kind := ddl.GlobalName
	if buf[in] == '%' {
		kind = ddl.LocalName
	}
	in++

	id, next, ok := parseIdentifier(buf, in, end)
	if !ok {
		return nil, next
	}
	return &ddl.Name{Kind: kind, ID: id}, next
}
