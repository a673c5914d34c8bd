package parser

import (
	"errors"
	"strconv"

	"github.com/cpp-pm/openddl-parser/pkg/ddl"
)

// Literal parsers. Each one consumes the token at the cursor and returns a
// typed value, or nil when the token is not of its kind. Malformed tokens
// yield nil with the cursor at the token's end, so callers can always keep
// advancing.

const (
	boolTrueToken  = "true"
	boolFalseToken = "false"
)

func isIntegerValueType(t ddl.ValueType) bool {
	switch t {
	case ddl.TypeInt8, ddl.TypeInt16, ddl.TypeInt32, ddl.TypeInt64:
		return true
	}
	return false
}

func isUnsignedValueType(t ddl.ValueType) bool {
	switch t {
	case ddl.TypeUnsignedInt8, ddl.TypeUnsignedInt16, ddl.TypeUnsignedInt32, ddl.TypeUnsignedInt64:
		return true
	}
	return false
}

// parseBooleanLiteral accepts exactly "true" or "false", case-sensitive.
func parseBooleanLiteral(buf []byte, in, end int) (*ddl.Value, int) {
	in = getNextToken(buf, in, end)
	start := in
	in = getNextSeparator(buf, in, end)

	switch string(buf[start:in]) {
	case boolTrueToken:
		return ddl.NewBoolValue(true), in
	case boolFalseToken:
		return ddl.NewBoolValue(false), in
	}
	return nil, in
}

// parseIntegerLiteral parses a decimal integer token into the declared
// width. A leading minus is allowed when followed by a digit. Out-of-range
// input is truncated by the native conversion, nothing more.
func parseIntegerLiteral(buf []byte, in, end int, integerType ddl.ValueType) (*ddl.Value, int) {
	signed := isIntegerValueType(integerType)
	unsigned := isUnsignedValueType(integerType)
	if !signed && !unsigned {
		return nil, in
	}

	in = getNextToken(buf, in, end)
	start := in
	in = getNextSeparator(buf, in, end)
	if start >= end {
		return nil, in
	}
	ok := isNumeric(buf[start])
	if !ok && buf[start] == '-' && start+1 < in && isNumeric(buf[start+1]) {
		ok = true
	}
	if !ok {
		return nil, in
	}

	token := string(buf[start:in])
	if unsigned {
		v, err := strconv.ParseUint(token, 10, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, in
		}
		return ddl.NewUnsignedIntValue(integerType, v), in
	}
	v, err := strconv.ParseInt(token, 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, in
	}
	return ddl.NewIntValue(integerType, v), in
}

// parseFloatingLiteral parses a decimal floating point token, stored at
// single precision. A leading minus is allowed when followed by a digit.
func parseFloatingLiteral(buf []byte, in, end int) (*ddl.Value, int) {
	in = getNextToken(buf, in, end)
	start := in
	in = getNextSeparator(buf, in, end)
	if start >= end {
		return nil, in
	}

	ok := isNumeric(buf[start])
	if !ok && buf[start] == '-' && start+1 < in && isNumeric(buf[start+1]) {
		ok = true
	}
	if !ok {
		return nil, in
	}

	v, err := strconv.ParseFloat(string(buf[start:in]), 32)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, in
	}
	return ddl.NewFloatValue(float32(v)), in
}

// parseStringLiteral parses a double-quoted string. The interior bytes are
// taken verbatim; there is no escape processing. An unterminated literal
// consumes to end of buffer.
func parseStringLiteral(buf []byte, in, end int) (*ddl.Value, int) {
	in = getNextToken(buf, in, end)
	if in >= end || !isStringQuote(buf[in]) {
		return nil, in
	}
	in++
	start := in
	for in < end && !isStringQuote(buf[in]) {
		in++
	}
	v := ddl.NewStringValue(string(buf[start:in]))
	if in < end {
		in++ // closing quote
	}
	return v, in
}

// parseHexaLiteral parses a 0x/0X-prefixed literal. Every byte up to the
// next separator must be a hex digit, otherwise the token is rejected. The
// value accumulates base 16, most significant digit first, into a 32-bit
// signed integer.
func parseHexaLiteral(buf []byte, in, end int) (*ddl.Value, int) {
	in = getNextToken(buf, in, end)
	if !isHexLiteralStart(buf, in, end) {
		return nil, in
	}
	in += 2

	start := in
	in = getNextSeparator(buf, in, end)
	if in == start {
		return nil, in
	}
	for i := start; i < in; i++ {
		if !isHexDigit(buf[i]) {
			return nil, in
		}
	}

	var value int32
	for i := start; i < in; i++ {
		value = value*16 + int32(hexToDecimal(buf[i]))
	}
	return ddl.NewIntValue(ddl.TypeInt32, int64(value)), in
}

func hexToDecimal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 0
}
