package pool

import "sync"

// offsetSlicePool reuses []int slices sized for holding the byte offsets of
// a container's child values. The Builder's frames do not draw from it
// (they keep their own plain []int offset lists); it is available to
// callers that want to avoid one such allocation per container.
var offsetSlicePool = sync.Pool{
	New: func() any { s := make([]int, 0, 16); return &s },
}

// GetOffsetSlice retrieves an empty, zero-length []int from the pool with at
// least the requested capacity. The caller must call the returned cleanup
// function (typically via defer) to return the slice to the pool.
func GetOffsetSlice(capacityHint int) ([]int, func()) {
	ptr, _ := offsetSlicePool.Get().(*[]int)
	slice := (*ptr)[:0]

	if cap(slice) < capacityHint {
		slice = make([]int, 0, capacityHint)
	}
	*ptr = slice

	return slice, func() { offsetSlicePool.Put(ptr) }
}

// PutOffsetSlice returns a []int obtained some other way (not via
// GetOffsetSlice) to the pool, e.g. one grown and reassigned by the caller
// past GetOffsetSlice's original backing array.
func PutOffsetSlice(s []int) {
	s = s[:0]
	offsetSlicePool.Put(&s)
}
