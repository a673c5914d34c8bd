package parser

import (
	"github.com/cpp-pm/openddl-parser/pkg/ddl"
)

const refToken = "ref"

// parseReference recognizes a ref{name, name, ...} sequence: the exact
// keyword "ref" followed by a braced, comma-separated list of names. Returns
// the names in input order; an empty slice when the cursor is not at a
// reference. Input that runs out before the closing brace simply stops at
// end, the names collected so far stand.
func parseReference(buf []byte, in, end int) ([]*ddl.Name, int) {
	in = getNextToken(buf, in, end)
	tokEnd := getNextSeparator(buf, in, end)
	if string(buf[in:tokEnd]) != refToken {
		return nil, in
	}
	in = tokEnd

	in = getNextToken(buf, in, end)
	if in >= end || buf[in] != '{' {
		return nil, in
	}
	in++

	var names []*ddl.Name
	name, next := parseName(buf, in, end)
	in = next
	if name != nil {
		names = append(names, name)
	}
	for in < end && buf[in] != '}' {
		in = getNextSeparator(buf, in, end)
		if in >= end || buf[in] != ',' {
			break
		}
		in++
		name, in = parseName(buf, in, end)
		if name != nil {
			names = append(names, name)
		}
	}
	in = getNextToken(buf, in, end)
	if in < end && buf[in] == '}' {
		in++
	}
	return names, in
}
