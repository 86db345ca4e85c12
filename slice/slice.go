// Package slice implements the zero-copy reader half of the VPack format:
// a Slice is an immutable view over a caller-owned byte region that exposes
// typed accessors, indexed/keyed container access, and iteration, all
// without allocating or copying the underlying bytes.
//
// A Slice owns nothing. Its validity is exactly the validity of the backing
// []byte it was constructed over; the format package's tag table is the
// single source of truth this package dispatches against, so a Slice and a
// builder.Builder writing to the same bytes can never disagree about what a
// head byte means.
package slice

import (
	"fmt"

	"github.com/vpack-go/vpack/errs"
	"github.com/vpack-go/vpack/format"
)

// Slice is a read-only view over a VPack-encoded value. The zero value is
// not valid; construct one with New.
type Slice struct {
	b []byte
}

// New constructs a Slice over b, validating that b starts with a recognized
// head byte and that the declared byte size does not exceed len(b). It does
// not copy b; the returned Slice aliases it.
func New(b []byte) (Slice, error) {
	if len(b) == 0 {
		return Slice{}, fmt.Errorf("slice: %w: empty buffer", errs.ErrMalformedInput)
	}

	if format.TypeOf(b[0]) == format.Illegal {
		return Slice{}, fmt.Errorf("slice: %w: %s", errs.ErrMalformedInput, format.ErrUnknownHead(b[0]))
	}

	size, ok := format.ByteSize(b)
	if !ok {
		return Slice{}, fmt.Errorf("slice: %w: truncated lookahead for head 0x%02x", errs.ErrMalformedInput, b[0])
	}

	if size > len(b) {
		return Slice{}, fmt.Errorf("slice: %w: declared size %d exceeds buffer length %d", errs.ErrMalformedInput, size, len(b))
	}

	return Slice{b: b[:size]}, nil
}

// unsafeNew wraps b without re-validating it. Used internally once a parent
// Slice has already established that the region it hands out starts at a
// valid head byte within bounds (e.g. container element access).
func unsafeNew(b []byte) Slice {
	return Slice{b: b}
}

// Bytes returns the raw bytes this Slice views, exactly byte_size() long.
// The caller must not mutate the returned slice.
func (s Slice) Bytes() []byte {
	return s.b
}

// head returns the leading byte, or 0 for a zero-value Slice.
func (s Slice) head() byte {
	if len(s.b) == 0 {
		return 0
	}

	return s.b[0]
}

// Type returns the ValueType this Slice's head byte encodes.
func (s Slice) Type() format.ValueType {
	return format.TypeOf(s.head())
}

// ByteSize returns the total number of bytes this value occupies, including
// the head byte. It depends only on the head byte and a bounded lookahead.
func (s Slice) ByteSize() int {
	return len(s.b)
}

func (s Slice) IsNone() bool     { return s.Type() == format.None }
func (s Slice) IsNull() bool     { return s.Type() == format.Null }
func (s Slice) IsBool() bool     { return s.Type() == format.Bool }
func (s Slice) IsDouble() bool   { return s.Type() == format.Double }
func (s Slice) IsArray() bool    { return s.Type() == format.Array }
func (s Slice) IsObject() bool   { return s.Type() == format.Object }
func (s Slice) IsSmallInt() bool { return s.Type() == format.SmallInt }
func (s Slice) IsInt() bool      { return s.Type() == format.Int }
func (s Slice) IsUInt() bool     { return s.Type() == format.UInt }
func (s Slice) IsString() bool   { return s.Type() == format.String }
func (s Slice) IsMinKey() bool   { return s.Type() == format.MinKey }
func (s Slice) IsMaxKey() bool   { return s.Type() == format.MaxKey }

// IsNumber reports whether the Slice holds any numeric type (Int, UInt,
// SmallInt, or Double) — any of these can satisfy GetInt/GetUInt/GetDouble
// with the numeric-widening rules those accessors document.
func (s Slice) IsNumber() bool {
	switch s.Type() {
	case format.Int, format.UInt, format.SmallInt, format.Double:
		return true
	default:
		return false
	}
}
