package builder

import (
	"fmt"
	"sort"

	"github.com/vpack-go/vpack/errs"
	"github.com/vpack-go/vpack/format"
	"github.com/vpack-go/vpack/internal/codec"
	"github.com/vpack-go/vpack/slice"
)

// emitEmpty rewrites a container with zero elements down to the one-byte
// empty head (spec §3: 0x01 empty array, 0x0a empty object), discarding
// the reserved placeholder header entirely.
func emitEmpty(buf []byte, start int, isObject bool) []byte {
	buf = buf[:start]

	if isObject {
		return append(buf, format.HeadObjectEmpty)
	}

	return append(buf, format.HeadArrayEmpty)
}

// emitCompactObject rewrites a single-attribute object down to the
// compact 0x14 shorthand: a varint total size, the key-value payload
// unchanged, and a trailing varint count (always 1) written from the end
// (spec §3 invariant 4, SPEC_FULL.md's resolved compact-object question).
//
// The varint total size includes its own encoded length, so the width is
// solved iteratively: guess a width, compute the total it implies, and
// stop once the total's own varint size matches the guess.
func emitCompactObject(buf []byte, start int) ([]byte, error) {
	payloadStart := start + containerPlaceholderSize
	payloadLen := len(buf) - payloadStart

	const trailingSize = 2 // UvarintSize(1) + 1 length byte

	varintLen := 1
	total := 0

	for {
		total = 1 + varintLen + payloadLen + trailingSize

		need := codec.UvarintSize(uint64(total))
		if need == varintLen {
			break
		}

		varintLen = need
	}

	header := make([]byte, 0, 1+varintLen)
	header = append(header, format.HeadObjectCompact)
	header = codec.PutUvarint(header, uint64(total))

	newPayloadStart := start + len(header)
	copy(buf[newPayloadStart:newPayloadStart+payloadLen], buf[payloadStart:payloadStart+payloadLen])
	copy(buf[start:start+len(header)], header)

	buf = buf[:newPayloadStart+payloadLen]
	buf = codec.PutUvarintFromEnd(buf, 1)

	return buf, nil
}

// emitGeneral rewrites a container with two or more children (or any
// array with at least one) down to its minimal-width variant: non-indexed
// equal-width arrays (0x02..0x05), indexed arrays (0x06..0x09), or sorted/
// unsorted objects (0x0b..0x12). It chooses the narrowest width w whose
// length/count/index fields can all represent their values, shifts the
// payload left to remove the placeholder's unused slack, and appends the
// index table (sorted by key, for sorted objects).
func emitGeneral(buf []byte, f *frame) ([]byte, error) {
	n := len(f.childOffsets)
	payloadStart := f.start + containerPlaceholderSize
	payloadLen := len(buf) - payloadStart

	uniform := true
	if !f.object {
		uniform = uniformElementWidth(f.childOffsets, len(buf))
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}

	if f.object && f.sorted {
		var sortErr error

		sort.Slice(order, func(a, c int) bool {
			ka, err := keyStringAt(buf, f.childOffsets[order[a]])
			if err != nil {
				sortErr = err

				return false
			}

			kc, err := keyStringAt(buf, f.childOffsets[order[c]])
			if err != nil {
				sortErr = err

				return false
			}

			return ka < kc
		})

		if sortErr != nil {
			return nil, sortErr
		}
	}

	indexed := f.object || !uniform

	var w, headerSize, total int

	if !indexed {
		w = 1

		for {
			total = (1 + w) + payloadLen

			need := codec.WidthFor(uint64(total))
			if need <= w {
				break
			}

			w = need
		}

		headerSize = 1 + w
	} else {
		w = 1

		for {
			total = (1 + 2*w) + payloadLen + n*w

			need := codec.WidthFor(uint64(total))
			if nw := codec.WidthFor(uint64(n)); nw > need {
				need = nw
			}

			if need <= w {
				break
			}

			w = need
		}

		headerSize = 1 + 2*w
	}

	delta := containerPlaceholderSize - headerSize
	if delta > 0 {
		copy(buf[f.start+headerSize:f.start+headerSize+payloadLen], buf[payloadStart:payloadStart+payloadLen])
	}

	buf = buf[:f.start+headerSize+payloadLen]

	relOffsets := make([]int, n)
	for i, abs := range f.childOffsets {
		relOffsets[i] = abs - delta - f.start
	}

	base := headByteFamily(f.object, f.sorted, indexed)
	buf[f.start] = base + widthIndex(w)
	codec.PutUintLE(buf[f.start+1:f.start+1+w], uint64(total), w)

	if indexed {
		codec.PutUintLE(buf[f.start+1+w:f.start+1+2*w], uint64(n), w)

		var tmp [8]byte
		for _, idx := range order {
			codec.PutUintLE(tmp[:w], uint64(relOffsets[idx]), w)
			buf = append(buf, tmp[:w]...)
		}
	}

	return buf, nil
}

func headByteFamily(isObject, sorted, indexed bool) byte {
	switch {
	case isObject && sorted:
		return format.HeadObjectSortedBase
	case isObject:
		return format.HeadObjectUnsortedBase
	case indexed:
		return format.HeadArrayIndexBase
	default:
		return format.HeadArrayNoIndexBase
	}
}

func widthIndex(w int) byte {
	switch w {
	case 1:
		return 0
	case 2:
		return 1
	case 4:
		return 2
	default:
		return 3
	}
}

// uniformElementWidth reports whether every array element spans the same
// number of bytes (spec §4.3: "arrays of uniform-width elements ... ->
// 0x02..0x05"), computing each element's width from consecutive recorded
// start offsets.
func uniformElementWidth(offsets []int, bufEnd int) bool {
	n := len(offsets)
	if n == 0 {
		return true
	}

	width := func(i int) int {
		if i == n-1 {
			return bufEnd - offsets[i]
		}

		return offsets[i+1] - offsets[i]
	}

	w0 := width(0)

	for i := 1; i < n; i++ {
		if width(i) != w0 {
			return false
		}
	}

	return true
}

func keyStringAt(buf []byte, offset int) (string, error) {
	s, err := slice.New(buf[offset:])
	if err != nil {
		return "", fmt.Errorf("builder: keyStringAt: %w", err)
	}

	v, err := s.GetString()
	if err != nil {
		return "", fmt.Errorf("builder: keyStringAt: %w", errs.ErrWrongType)
	}

	return v, nil
}
