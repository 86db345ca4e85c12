// Package errs collects the sentinel errors returned across the vpack
// module, following the teacher codebase's convention: call sites wrap a
// sentinel with fmt.Errorf("...: %w", errs.ErrX, ctx) rather than
// constructing ad hoc errors.New values inline.
package errs

import "errors"

var (
	// ErrWrongType is returned when a typed getter is called on a Slice
	// whose head byte is not in the accepted set for that getter.
	ErrWrongType = errors.New("vpack: value has the wrong type for this accessor")

	// ErrIndexOutOfRange is returned by Slice.At when the requested index
	// is not less than Slice.Length.
	ErrIndexOutOfRange = errors.New("vpack: array index out of range")

	// ErrKeyNotFound is returned by lookups that are asked to fail loudly
	// instead of returning a None-typed Slice.
	ErrKeyNotFound = errors.New("vpack: object key not found")

	// ErrBuilderClosed is returned by Builder operations attempted after
	// the top-level container has already been closed.
	ErrBuilderClosed = errors.New("vpack: builder already closed")

	// ErrNoOpenContainer is returned by Builder.Close when there is no
	// open container to close.
	ErrNoOpenContainer = errors.New("vpack: no open container to close")

	// ErrNotAnObject is returned by Builder.AddKey when the top-of-stack
	// container is not an object.
	ErrNotAnObject = errors.New("vpack: keyed add requires an open object container")

	// ErrDuplicateKey is returned by Builder.AddKey when the same key is
	// added twice to the same object.
	ErrDuplicateKey = errors.New("vpack: duplicate object key")

	// ErrMalformedInput is returned by Slice construction/decoding over
	// bytes whose head byte is reserved/illegal, or whose declared length
	// exceeds the buffer, or whose lookahead is truncated.
	ErrMalformedInput = errors.New("vpack: malformed input")

	// ErrNeedSortedObject is returned by binary-search key lookup when
	// asked to operate on an unsorted object layout.
	ErrNeedSortedObject = errors.New("vpack: binary search requires a sorted object layout")

	// ErrEmptyKey is returned when an object key is the empty string.
	ErrEmptyKey = errors.New("vpack: object key must not be empty")
)
