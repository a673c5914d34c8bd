package parser

// normalizeBuffer strips every //-style line comment from buf in place,
// shifting the remaining bytes left and replacing each removed span with a
// single newline. The returned slice shares buf's backing array; its length
// marks the new logical end. Buffers without comments come back unchanged,
// byte for byte.
func normalizeBuffer(buf []byte) []byte {
	writeIdx := 0
	end := len(buf)
	for readIdx := 0; readIdx < end; readIdx++ {
		if isCommentOpener(buf, readIdx, end) {
			for readIdx < end && !isNewLine(buf[readIdx]) {
				readIdx++
			}
			// readIdx sits on the line end (or at end); the loop increment
			// consumes it, the write below stands in for it.
			buf[writeIdx] = '\n'
			writeIdx++
			continue
		}
		buf[writeIdx] = buf[readIdx]
		writeIdx++
	}
	return buf[:writeIdx]
}
