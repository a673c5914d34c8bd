package parser

// Cursor primitives over the normalized buffer. Both operate on a
// [current, end) half-open range, never advance past end, and are no-ops
// when the cursor already sits on what they are looking for.

// getNextToken advances the cursor past whitespace and line ends to the next
// significant byte. Structural bytes ({, }, (, ), comma) count as token
// starts; the grammar productions inspect and consume them explicitly.
func getNextToken(buf []byte, in, end int) int {
	for in < end && (isSpace(buf[in]) || isNewLine(buf[in])) {
		in++
	}
	return in
}

// getNextSeparator advances the cursor until it sits on a separator.
func getNextSeparator(buf []byte, in, end int) int {
	for in < end && !isSeparator(buf[in]) {
		in++
	}
	return in
}
