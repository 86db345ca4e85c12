package slice

import (
	"fmt"
	"unsafe"

	"github.com/vpack-go/vpack/errs"
	"github.com/vpack-go/vpack/format"
	"github.com/vpack-go/vpack/internal/codec"
)

// GetBool returns the boolean value of a Bool-typed Slice.
func (s Slice) GetBool() (bool, error) {
	switch s.head() {
	case format.HeadTrue:
		return true, nil
	case format.HeadFalse:
		return false, nil
	default:
		return false, fmt.Errorf("slice: GetBool: %w", errs.ErrWrongType)
	}
}

// GetDouble returns the float64 value of a Double-typed Slice, preserving
// the exact IEEE-754 bit pattern (including NaN payloads) the value was
// built with.
func (s Slice) GetDouble() (float64, error) {
	if s.head() != format.HeadDouble {
		return 0, fmt.Errorf("slice: GetDouble: %w", errs.ErrWrongType)
	}

	return codec.ReadFloat64LE(s.b[1:9]), nil
}

// GetSmallInt returns the value of a SmallInt-typed Slice, in the range
// -6..9.
func (s Slice) GetSmallInt() (int64, error) {
	h := s.head()

	switch {
	case h >= format.HeadSmallIntPosBase && h <= format.HeadSmallIntPosMax:
		return int64(h - format.HeadSmallIntPosBase), nil
	case h >= format.HeadSmallIntNegBase && h <= format.HeadSmallIntNegMax:
		return int64(h) - 0x40, nil
	default:
		return 0, fmt.Errorf("slice: GetSmallInt: %w", errs.ErrWrongType)
	}
}

// GetInt returns the value of an Int-typed Slice as a sign-extended int64.
// It also accepts SmallInt, widening it to int64, per spec §4.2.
func (s Slice) GetInt() (int64, error) {
	h := s.head()

	switch {
	case h >= format.HeadIntBase && h <= format.HeadIntMax:
		w := int(h - format.HeadIntBase + 1)

		return codec.ReadIntLE(s.b[1:1+w], w), nil
	case h >= format.HeadSmallIntPosBase && h <= format.HeadSmallIntNegMax:
		return s.GetSmallInt()
	default:
		return 0, fmt.Errorf("slice: GetInt: %w", errs.ErrWrongType)
	}
}

// GetUInt returns the value of a UInt-typed Slice as a zero-extended uint64.
// It also accepts non-negative SmallInt values.
func (s Slice) GetUInt() (uint64, error) {
	h := s.head()

	switch {
	case h >= format.HeadUIntBase && h <= format.HeadUIntMax:
		w := int(h - format.HeadUIntBase + 1)

		return codec.ReadUintLE(s.b[1:1+w], w), nil
	case h >= format.HeadSmallIntPosBase && h <= format.HeadSmallIntPosMax:
		return uint64(h - format.HeadSmallIntPosBase), nil
	default:
		return 0, fmt.Errorf("slice: GetUInt: %w", errs.ErrWrongType)
	}
}

// GetString returns the string value as a zero-copy view over the backing
// buffer: the returned string shares memory with the Slice and is only
// valid as long as the underlying bytes are. Use CopyString to escape the
// view's lifetime.
func (s Slice) GetString() (string, error) {
	h := s.head()

	switch {
	case h >= format.HeadStringShortBase && h <= format.HeadStringShortMax:
		n := int(h - format.HeadStringShortBase)

		return unsafeBytesToString(s.b[1 : 1+n]), nil
	case h == format.HeadStringLong:
		n := int(codec.ReadUintLE(s.b[1:9], 8))

		return unsafeBytesToString(s.b[9 : 9+n]), nil
	default:
		return "", fmt.Errorf("slice: GetString: %w", errs.ErrWrongType)
	}
}

// CopyString returns the string value as a freshly allocated copy,
// independent of the Slice's backing buffer.
func (s Slice) CopyString() (string, error) {
	v, err := s.GetString()
	if err != nil {
		return "", err
	}

	return string([]byte(v)), nil
}

// StringLen returns the length in bytes of a String-typed Slice's payload,
// without materializing the string.
func (s Slice) StringLen() (int, error) {
	h := s.head()

	switch {
	case h >= format.HeadStringShortBase && h <= format.HeadStringShortMax:
		return int(h - format.HeadStringShortBase), nil
	case h == format.HeadStringLong:
		return int(codec.ReadUintLE(s.b[1:9], 8)), nil
	default:
		return 0, fmt.Errorf("slice: StringLen: %w", errs.ErrWrongType)
	}
}

// unsafeBytesToString aliases b as a string with no copy, the same
// unsafe.Pointer-based conversion the teacher codebase uses for its raw
// zero-copy numeric decoders. The returned string must not outlive b, and
// b must not be mutated while the string is alive — both hold here because
// a Slice never mutates its backing buffer and the caller owns b's
// lifetime.
func unsafeBytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}

	return unsafe.String(unsafe.SliceData(b), len(b))
}
