package format

import (
	"fmt"

	"github.com/vpack-go/vpack/internal/codec"
)

// Head byte constants, hex values per the authoritative tag table.
const (
	HeadArrayEmpty         byte = 0x01
	HeadArrayNoIndexBase   byte = 0x02 // .. 0x05
	HeadArrayNoIndexMax    byte = 0x05
	HeadArrayIndexBase     byte = 0x06 // .. 0x09
	HeadArrayIndexMax      byte = 0x09
	HeadObjectEmpty        byte = 0x0a
	HeadObjectSortedBase   byte = 0x0b // .. 0x0e
	HeadObjectSortedMax    byte = 0x0e
	HeadObjectUnsortedBase byte = 0x0f // .. 0x12
	HeadObjectUnsortedMax  byte = 0x12
	HeadArrayCompact       byte = 0x13
	HeadObjectCompact      byte = 0x14
	HeadNull               byte = 0x18
	HeadFalse              byte = 0x19
	HeadTrue               byte = 0x1a
	HeadDouble             byte = 0x1b
	HeadMinKey             byte = 0x1e
	HeadMaxKey             byte = 0x1f
	HeadIntBase            byte = 0x20 // .. 0x27
	HeadIntMax             byte = 0x27
	HeadUIntBase           byte = 0x28 // .. 0x2f
	HeadUIntMax            byte = 0x2f
	HeadSmallIntPosBase    byte = 0x30 // .. 0x39, value = head-0x30 (0..9)
	HeadSmallIntPosMax     byte = 0x39
	HeadSmallIntNegBase    byte = 0x3a // .. 0x3f, value = head-0x40 (-6..-1)
	HeadSmallIntNegMax     byte = 0x3f
	HeadStringShortBase    byte = 0x40 // .. 0xbe, length = head-0x40
	HeadStringShortMax     byte = 0xbe
	HeadStringLong         byte = 0xbf
)

// MaxShortStringLen is the longest string length encodable in the short
// string family (head 0x40..0xbe); spec §8 boundary behavior fixes the
// short/long transition at length 127 in practice, but the head byte
// family itself spans up to 0xbe-0x40 = 126 (0..126); any length from 127
// upward must use the long string form, which this module's Builder always
// chooses past that point.
const MaxShortStringLen = int(HeadStringShortMax - HeadStringShortBase)

// TypeOf returns the ValueType that a given head byte maps to. It never
// inspects any byte beyond the head.
func TypeOf(head byte) ValueType {
	switch {
	case head == 0x00:
		return None
	case head == HeadArrayEmpty, (head >= HeadArrayNoIndexBase && head <= HeadArrayNoIndexMax),
		(head >= HeadArrayIndexBase && head <= HeadArrayIndexMax), head == HeadArrayCompact:
		return Array
	case head == HeadObjectEmpty, (head >= HeadObjectSortedBase && head <= HeadObjectSortedMax),
		(head >= HeadObjectUnsortedBase && head <= HeadObjectUnsortedMax), head == HeadObjectCompact:
		return Object
	case head == HeadNull:
		return Null
	case head == HeadFalse, head == HeadTrue:
		return Bool
	case head == HeadDouble:
		return Double
	case head == HeadMinKey:
		return MinKey
	case head == HeadMaxKey:
		return MaxKey
	case head >= HeadIntBase && head <= HeadIntMax:
		return Int
	case head >= HeadUIntBase && head <= HeadUIntMax:
		return UInt
	case head >= HeadSmallIntPosBase && head <= HeadSmallIntNegMax:
		return SmallInt
	case head >= HeadStringShortBase && head <= HeadStringShortMax, head == HeadStringLong:
		return String
	default:
		return Illegal
	}
}

// IsIndexed reports whether the container head carries a trailing offset
// index table (head families 0x06..0x09 for arrays, 0x0b..0x12 for objects).
func IsIndexed(head byte) bool {
	return (head >= HeadArrayIndexBase && head <= HeadArrayIndexMax) ||
		(head >= HeadObjectSortedBase && head <= HeadObjectUnsortedMax)
}

// IsSortedObject reports whether the object head's index table is ordered
// by lexicographic key comparison (0x0b..0x0e) as opposed to insertion
// order (0x0f..0x12).
func IsSortedObject(head byte) bool {
	return head >= HeadObjectSortedBase && head <= HeadObjectSortedMax
}

// IsCompact reports whether head is one of the variable-width-length
// container layouts (0x13 array, 0x14 object) that carry no offset index.
func IsCompact(head byte) bool {
	return head == HeadArrayCompact || head == HeadObjectCompact
}

// LengthFieldWidth returns the width in bytes (1, 2, 4, or 8) of the
// length/index-entry field for a container head, or 0 if head is not one
// of the fixed-width-length container families (0x02..0x12).
func LengthFieldWidth(head byte) int {
	switch {
	case head >= HeadArrayNoIndexBase && head <= HeadArrayNoIndexMax:
		return 1 << (head - HeadArrayNoIndexBase)
	case head >= HeadArrayIndexBase && head <= HeadArrayIndexMax:
		return 1 << (head - HeadArrayIndexBase)
	case head >= HeadObjectSortedBase && head <= HeadObjectSortedMax:
		return 1 << (head - HeadObjectSortedBase)
	case head >= HeadObjectUnsortedBase && head <= HeadObjectUnsortedMax:
		return 1 << (head - HeadObjectUnsortedBase)
	default:
		return 0
	}
}

// fixedSize holds the byte_size of every head byte whose size does not
// depend on a lookahead read: the constant-size scalars plus the two empty
// container heads. A zero entry means "compute dynamically".
var fixedSize = buildFixedSizeTable()

func buildFixedSizeTable() [256]int {
	var t [256]int
	t[HeadArrayEmpty] = 1
	t[HeadObjectEmpty] = 1
	t[HeadNull] = 1
	t[HeadFalse] = 1
	t[HeadTrue] = 1
	t[HeadDouble] = 9
	t[HeadMinKey] = 1
	t[HeadMaxKey] = 1
	for h := HeadIntBase; h <= HeadIntMax; h++ {
		t[h] = 1 + int(h-0x1f)
	}
	for h := HeadUIntBase; h <= HeadUIntMax; h++ {
		t[h] = 1 + int(h-0x27)
	}
	for h := HeadSmallIntPosBase; h <= HeadSmallIntNegMax; h++ {
		t[h] = 1
	}
	for h := HeadStringShortBase; h <= HeadStringShortMax; h++ {
		t[h] = 1 + int(h-0x40)
	}

	return t
}

// ByteSize returns the total byte size of the value starting at s[0], which
// must be a valid head byte. s must contain at least the head byte plus, for
// dynamically-sized heads, enough of the lookahead region (up to 8 bytes for
// fixed-width container/string length fields, or however many bytes the
// compact varint length needs) for the computation to complete; when that is
// not the case it reports false, which callers turn into ErrMalformedInput.
// ByteSize depends on at most the head byte and the next 8
// bytes of s (spec §3 invariant 1, §8 quantified invariant 1).
func ByteSize(s []byte) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}

	head := s[0]
	if n := fixedSize[head]; n != 0 {
		return n, true
	}

	switch {
	case head == HeadStringLong:
		if len(s) < 9 {
			return 0, false
		}

		n := codec.ReadUintLE(s[1:9], 8)

		return 1 + 8 + int(n), true

	case head == HeadArrayCompact || head == HeadObjectCompact:
		n, consumed := codec.ReadUvarint(s[1:])
		if consumed == 0 {
			return 0, false
		}

		return int(n), true

	case head <= HeadObjectUnsortedMax:
		w := LengthFieldWidth(head)
		if w == 0 || len(s) < 1+w {
			return 0, false
		}

		n := codec.ReadUintLE(s[1:1+w], w)

		return int(n), true

	default:
		return 0, false
	}
}

// ErrUnknownHead formats a diagnostic for an illegal/unrecognized head byte.
func ErrUnknownHead(head byte) error {
	return fmt.Errorf("format: head byte 0x%02x is not a recognized value type", head)
}
