package slice

import (
	"fmt"
	"sort"

	"github.com/vpack-go/vpack/errs"
	"github.com/vpack-go/vpack/format"
	"github.com/vpack-go/vpack/internal/codec"
)

// containerLayout describes where a container's fixed-width header fields,
// payload, and (if present) index table live, relative to the start of the
// container (offset 0 is the head byte). It is computed once per accessor
// call; Slice itself stays a plain, stateless []byte view.
type containerLayout struct {
	width            int // w: 0 for compact/empty layouts
	headerSize       int // bytes before the payload starts
	payloadStart     int
	payloadEnd       int // exclusive; start of the index table (or end of container for no-index layouts)
	count            int
	indexed          bool
	compact          bool
	elementWidth     int // uniform element width for no-index arrays (0x02..0x05); 0 otherwise
}

func (s Slice) layout() (containerLayout, error) {
	h := s.head()

	if h == format.HeadArrayEmpty || h == format.HeadObjectEmpty {
		return containerLayout{headerSize: 1, payloadStart: 1, payloadEnd: 1, count: 0}, nil
	}

	if format.IsCompact(h) {
		total, consumed := codec.ReadUvarint(s.b[1:])
		if consumed == 0 {
			return containerLayout{}, fmt.Errorf("slice: layout: %w: truncated compact length", errs.ErrMalformedInput)
		}

		count, trailing := codec.ReadUvarintFromEnd(s.b)
		if trailing == 0 {
			return containerLayout{}, fmt.Errorf("slice: layout: %w: truncated compact count", errs.ErrMalformedInput)
		}

		return containerLayout{
			headerSize:   1 + consumed,
			payloadStart: 1 + consumed,
			payloadEnd:   int(total) - trailing,
			count:        int(count),
			compact:      true,
		}, nil
	}

	w := format.LengthFieldWidth(h)
	if w == 0 {
		return containerLayout{}, fmt.Errorf("slice: layout: %w: head 0x%02x is not a container", errs.ErrWrongType, h)
	}

	total := int(codec.ReadUintLE(s.b[1:1+w], w))

	if format.IsIndexed(h) {
		count := int(codec.ReadUintLE(s.b[1+w:1+2*w], w))
		headerSize := 1 + 2*w
		indexTableStart := total - count*w

		return containerLayout{
			width:        w,
			headerSize:   headerSize,
			payloadStart: headerSize,
			payloadEnd:   indexTableStart,
			count:        count,
			indexed:      true,
		}, nil
	}

	// No-index array (0x02..0x05): element count and per-element width are
	// derived, not stored, since every element has identical encoded width.
	headerSize := 1 + w
	elemWidth := 0
	count := 0

	if total > headerSize {
		first, ok := format.ByteSize(s.b[headerSize:])
		if !ok || first == 0 {
			return containerLayout{}, fmt.Errorf("slice: layout: %w: cannot size first element", errs.ErrMalformedInput)
		}

		elemWidth = first
		count = (total - headerSize) / elemWidth
	}

	return containerLayout{
		width:        w,
		headerSize:   headerSize,
		payloadStart: headerSize,
		payloadEnd:   total,
		count:        count,
		elementWidth: elemWidth,
	}, nil
}

// Length returns the number of elements in an Array or number of attributes
// in an Object.
func (s Slice) Length() (int, error) {
	if !s.IsArray() && !s.IsObject() {
		return 0, fmt.Errorf("slice: Length: %w", errs.ErrWrongType)
	}

	l, err := s.layout()
	if err != nil {
		return 0, err
	}

	return l.count, nil
}

// nthOffset returns the byte offset, relative to the container start, of
// the index-th element (array element, or object key-value pair).
func (s Slice) nthOffset(l containerLayout, index int) (int, error) {
	if index < 0 || index >= l.count {
		return 0, fmt.Errorf("slice: %w: index %d, length %d", errs.ErrIndexOutOfRange, index, l.count)
	}

	switch {
	case l.compact:
		offset := l.payloadStart
		for current := 0; current < index; current++ {
			sz, ok := format.ByteSize(s.b[offset:l.payloadEnd])
			if !ok {
				return 0, fmt.Errorf("slice: nthOffset: %w", errs.ErrMalformedInput)
			}

			offset += sz

			if s.IsObject() {
				// skip the value half of this key-value pair too
				sz, ok = format.ByteSize(s.b[offset:l.payloadEnd])
				if !ok {
					return 0, fmt.Errorf("slice: nthOffset: %w", errs.ErrMalformedInput)
				}

				offset += sz
			}
		}

		return offset, nil

	case l.indexed:
		entryOffset := l.payloadEnd + index*l.width

		return int(codec.ReadUintLE(s.b[entryOffset:entryOffset+l.width], l.width)), nil

	default:
		return l.payloadStart + index*l.elementWidth, nil
	}
}

// At returns the element at index i of an Array.
func (s Slice) At(i int) (Slice, error) {
	if !s.IsArray() {
		return Slice{}, fmt.Errorf("slice: At: %w", errs.ErrWrongType)
	}

	l, err := s.layout()
	if err != nil {
		return Slice{}, err
	}

	offset, err := s.nthOffset(l, i)
	if err != nil {
		return Slice{}, err
	}

	return unsafeNew(s.b[offset:]).sized()
}

// KeyAt returns the key at index i of an Object, in the object's stored
// (sorted or insertion) order.
func (s Slice) KeyAt(i int) (Slice, error) {
	if !s.IsObject() {
		return Slice{}, fmt.Errorf("slice: KeyAt: %w", errs.ErrWrongType)
	}

	l, err := s.layout()
	if err != nil {
		return Slice{}, err
	}

	offset, err := s.nthOffset(l, i)
	if err != nil {
		return Slice{}, err
	}

	return unsafeNew(s.b[offset:]).sized()
}

// ValueAt returns the value at index i of an Object, in the object's stored
// (sorted or insertion) order.
func (s Slice) ValueAt(i int) (Slice, error) {
	key, err := s.KeyAt(i)
	if err != nil {
		return Slice{}, err
	}

	l, err := s.layout()
	if err != nil {
		return Slice{}, err
	}

	offset, err := s.nthOffset(l, i)
	if err != nil {
		return Slice{}, err
	}

	return unsafeNew(s.b[offset+len(key.b):]).sized()
}

// sized re-derives byte_size for a Slice constructed via unsafeNew (which
// aliases the remainder of a parent buffer, not an exact-length region) and
// trims it down to the value's real extent.
func (s Slice) sized() (Slice, error) {
	size, ok := format.ByteSize(s.b)
	if !ok {
		return Slice{}, fmt.Errorf("slice: %w", errs.ErrMalformedInput)
	}

	if size > len(s.b) {
		return Slice{}, fmt.Errorf("slice: %w", errs.ErrMalformedInput)
	}

	return Slice{b: s.b[:size]}, nil
}

var noneSlice = unsafeNew([]byte{0x00})

// Get looks up attribute key inside an Object. A missing key returns a
// None-typed Slice rather than an error (spec §4.2), so callers can chain
// IsNone() checks without branching on error.
func (s Slice) Get(key string) (Slice, error) {
	if !s.IsObject() {
		return Slice{}, fmt.Errorf("slice: Get: %w", errs.ErrWrongType)
	}

	l, err := s.layout()
	if err != nil {
		return Slice{}, err
	}

	if l.count == 0 {
		return noneSlice, nil
	}

	if format.IsSortedObject(s.head()) {
		return s.getSorted(l, key)
	}

	return s.getLinear(l, key)
}

// GetStrict looks up attribute key the same way Get does, but returns
// errs.ErrKeyNotFound instead of a None-typed Slice when the key is
// absent, for callers that want a missing key to fail loudly rather than
// be chained through IsNone checks.
func (s Slice) GetStrict(key string) (Slice, error) {
	v, err := s.Get(key)
	if err != nil {
		return Slice{}, err
	}

	if v.IsNone() {
		return Slice{}, fmt.Errorf("slice: GetStrict %q: %w", key, errs.ErrKeyNotFound)
	}

	return v, nil
}

// LookupSorted looks up attribute key using the binary-search path alone,
// for a caller that knows its object is always built sorted and wants a
// loud error rather than a silent linear-scan fallback should that
// assumption ever break.
func (s Slice) LookupSorted(key string) (Slice, error) {
	if !s.IsObject() {
		return Slice{}, fmt.Errorf("slice: LookupSorted: %w", errs.ErrWrongType)
	}

	if !format.IsSortedObject(s.head()) {
		return Slice{}, fmt.Errorf("slice: LookupSorted: %w", errs.ErrNeedSortedObject)
	}

	l, err := s.layout()
	if err != nil {
		return Slice{}, err
	}

	if l.count == 0 {
		return noneSlice, nil
	}

	return s.getSorted(l, key)
}

func (s Slice) getLinear(l containerLayout, key string) (Slice, error) {
	for i := 0; i < l.count; i++ {
		offset, err := s.nthOffset(l, i)
		if err != nil {
			return Slice{}, err
		}

		k, err := unsafeNew(s.b[offset:]).sized()
		if err != nil {
			return Slice{}, err
		}

		kv, err := k.GetString()
		if err != nil {
			return Slice{}, err
		}

		if kv == key {
			return unsafeNew(s.b[offset+len(k.b):]).sized()
		}
	}

	return noneSlice, nil
}

// getSorted performs a binary search over the index table of a sorted
// object (head 0x0b..0x0e), per spec §4.2 and §8 invariant 5.
func (s Slice) getSorted(l containerLayout, key string) (Slice, error) {
	var searchErr error

	i := sort.Search(l.count, func(i int) bool {
		offset, err := s.nthOffset(l, i)
		if err != nil {
			searchErr = err

			return true
		}

		k, err := unsafeNew(s.b[offset:]).sized()
		if err != nil {
			searchErr = err

			return true
		}

		kv, err := k.GetString()
		if err != nil {
			searchErr = err

			return true
		}

		return kv >= key
	})

	if searchErr != nil {
		return Slice{}, searchErr
	}

	if i >= l.count {
		return noneSlice, nil
	}

	offset, err := s.nthOffset(l, i)
	if err != nil {
		return Slice{}, err
	}

	k, err := unsafeNew(s.b[offset:]).sized()
	if err != nil {
		return Slice{}, err
	}

	kv, err := k.GetString()
	if err != nil {
		return Slice{}, err
	}

	if kv != key {
		return noneSlice, nil
	}

	return unsafeNew(s.b[offset+len(k.b):]).sized()
}
