package parser

// Character predicates used by the scanner and the literal parsers. All of
// them are pure; the multi-byte ones take the buffer window so they never
// look past end.

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func isNewLine(c byte) bool {
	return c == '\n' || c == '\r'
}

func isSeparator(c byte) bool {
	if isSpace(c) || isNewLine(c) {
		return true
	}
	switch c {
	case '{', '}', '(', ')', ',':
		return true
	}
	return false
}

func isNumeric(c byte) bool {
	return c >= '0' && c <= '9'
}

func isStringQuote(c byte) bool {
	return c == '"'
}

func isHexDigit(c byte) bool {
	return isNumeric(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isCommentOpener(buf []byte, in, end int) bool {
	return in+1 < end && buf[in] == '/' && buf[in+1] == '/'
}

func isHexLiteralStart(buf []byte, in, end int) bool {
	return in+1 < end && buf[in] == '0' && (buf[in+1] == 'x' || buf[in+1] == 'X')
}

// isIntegerToken reports whether the token at the cursor is a plain decimal
// integer: an optional leading minus followed by digits only, up to the next
// separator.
func isIntegerToken(buf []byte, in, end int) bool {
	j := in
	if j < end && buf[j] == '-' {
		j++
	}
	if j >= end || !isNumeric(buf[j]) {
		return false
	}
	for ; j < end && !isSeparator(buf[j]); j++ {
		if !isNumeric(buf[j]) {
			return false
		}
	}
	return true
}

// isFloatToken reports whether the token at the cursor is a decimal floating
// point literal: an optional leading minus, digits, and at most one dot.
func isFloatToken(buf []byte, in, end int) bool {
	j := in
	if j < end && buf[j] == '-' {
		j++
	}
	if j >= end || !isNumeric(buf[j]) {
		return false
	}
	dots := 0
	for ; j < end && !isSeparator(buf[j]); j++ {
		if buf[j] == '.' {
			dots++
			if dots > 1 {
				return false
			}
			continue
		}
		if !isNumeric(buf[j]) {
			return false
		}
	}
	return true
}
