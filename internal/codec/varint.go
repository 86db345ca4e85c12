package codec

// PutUvarint appends n to dst as an unsigned base-128 varint (7 payload bits
// per byte, high bit set on every byte but the last) and returns the
// extended slice. This is the variable-width length encoding used by the
// compact array/object layouts (head bytes 0x13/0x14).
//
// The encoding is adapted from the teacher codebase's VarStringEncoder.WriteVarint,
// dropping the zigzag step since container lengths are never negative.
func PutUvarint(dst []byte, n uint64) []byte {
	for n >= 0x80 {
		dst = append(dst, byte(n)|0x80)
		n >>= 7
	}

	return append(dst, byte(n))
}

// UvarintSize returns the number of bytes PutUvarint would emit for n.
func UvarintSize(n uint64) int {
	size := 1
	for n >= 0x80 {
		n >>= 7
		size++
	}

	return size
}

// ReadUvarint decodes an unsigned base-128 varint from the start of b,
// reading from the front (low-order byte first) like the compact array's
// leading length field, and returns the value plus the number of bytes
// consumed. It returns (0, 0) if b ends before a terminating byte is found.
func ReadUvarint(b []byte) (uint64, int) {
	var v uint64
	var shift uint

	for i, c := range b {
		v |= uint64(c&0x7f) << shift
		if c < 0x80 {
			return v, i + 1
		}
		shift += 7
	}

	return 0, 0
}

// PutUvarintFromEnd appends the trailing element-count field used by the
// compact container layouts (head bytes 0x13/0x14). The count is written as
// a normal forward uvarint immediately followed by a single byte giving that
// varint's length, so a reader positioned at the end of the container can
// find the count without scanning forward from the start: read the last
// byte to learn how many bytes precede it, then decode those bytes as a
// forward uvarint.
func PutUvarintFromEnd(dst []byte, n uint64) []byte {
	before := len(dst)
	dst = PutUvarint(dst, n)
	countLen := len(dst) - before

	return append(dst, byte(countLen))
}

// ReadUvarintFromEnd decodes a trailing element-count field written by
// PutUvarintFromEnd, given the full byte range ending at the container's
// last byte. It returns the value and the total number of trailing bytes
// consumed (including the final length byte).
func ReadUvarintFromEnd(b []byte) (uint64, int) {
	if len(b) == 0 {
		return 0, 0
	}

	countLen := int(b[len(b)-1])
	if countLen <= 0 || countLen >= len(b) {
		return 0, 0
	}

	v, _ := ReadUvarint(b[len(b)-1-countLen : len(b)-1])

	return v, countLen + 1
}
