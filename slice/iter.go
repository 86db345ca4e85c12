package slice

import "iter"

// Elements returns a lazy sequence over an Array's elements, in stored
// order. It stops early (yielding nothing further) if an element cannot be
// decoded; callers that need to distinguish "empty" from "decode error"
// should call Length first.
//
// The offset of each successive element is resolved via the index table
// (indexed arrays) or the uniform element width (non-indexed arrays) — for
// those layouts it is never recomputed by re-scanning prior elements. A
// compact array (0x13) has neither, so each element's offset is found by
// walking the payload from its start.
func (s Slice) Elements() iter.Seq[Slice] {
	return func(yield func(Slice) bool) {
		if !s.IsArray() {
			return
		}

		l, err := s.layout()
		if err != nil {
			return
		}

		for i := 0; i < l.count; i++ {
			offset, err := s.nthOffset(l, i)
			if err != nil {
				return
			}

			elem, err := unsafeNew(s.b[offset:]).sized()
			if err != nil {
				return
			}

			if !yield(elem) {
				return
			}
		}
	}
}

// Entries returns a lazy sequence over an Object's (key, value) pairs, in
// the object's stored (sorted or insertion) order.
func (s Slice) Entries() iter.Seq2[string, Slice] {
	return func(yield func(string, Slice) bool) {
		if !s.IsObject() {
			return
		}

		l, err := s.layout()
		if err != nil {
			return
		}

		for i := 0; i < l.count; i++ {
			offset, err := s.nthOffset(l, i)
			if err != nil {
				return
			}

			key, err := unsafeNew(s.b[offset:]).sized()
			if err != nil {
				return
			}

			k, err := key.GetString()
			if err != nil {
				return
			}

			val, err := unsafeNew(s.b[offset+len(key.b):]).sized()
			if err != nil {
				return
			}

			if !yield(k, val) {
				return
			}
		}
	}
}
