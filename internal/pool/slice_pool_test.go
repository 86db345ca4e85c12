package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetOffsetSlice(t *testing.T) {
	t.Run("returns empty slice with requested capacity", func(t *testing.T) {
		slice, cleanup := GetOffsetSlice(100)
		defer cleanup()

		require.Equal(t, 0, len(slice))
		require.GreaterOrEqual(t, cap(slice), 100)
	})

	t.Run("reuses pooled slice when capacity sufficient", func(t *testing.T) {
		slice1, cleanup1 := GetOffsetSlice(50)
		slice1 = append(slice1, 1, 2, 3)
		ptr1 := &slice1[0]
		cleanup1()

		slice2, cleanup2 := GetOffsetSlice(50)
		defer cleanup2()
		slice2 = append(slice2, 9)
		ptr2 := &slice2[0]

		require.Equal(t, ptr1, ptr2, "should reuse same underlying array")
	})

	t.Run("allocates new slice when capacity insufficient", func(t *testing.T) {
		_, cleanup1 := GetOffsetSlice(4)
		cleanup1()

		slice2, cleanup2 := GetOffsetSlice(1000)
		defer cleanup2()

		require.Equal(t, 0, len(slice2))
		require.GreaterOrEqual(t, cap(slice2), 1000)
	})

	t.Run("cleanup returns slice to pool without panicking", func(t *testing.T) {
		slice, cleanup := GetOffsetSlice(16)
		require.NotNil(t, slice)

		require.NotPanics(t, cleanup)
	})

	t.Run("append grows and tracks offsets correctly", func(t *testing.T) {
		slice, cleanup := GetOffsetSlice(2)
		defer cleanup()

		for i := range 10 {
			slice = append(slice, i*3)
		}

		require.Equal(t, 10, len(slice))
		for i, v := range slice {
			require.Equal(t, i*3, v)
		}
	})
}

func TestPutOffsetSlice(t *testing.T) {
	s := make([]int, 5, 32)
	require.NotPanics(t, func() { PutOffsetSlice(s) })
}

func TestOffsetSlicePoolConcurrency(t *testing.T) {
	const goroutines = 100
	done := make(chan bool, goroutines)

	for range goroutines {
		go func() {
			slice, cleanup := GetOffsetSlice(50)
			defer cleanup()

			for j := range 50 {
				slice = append(slice, j)
			}

			done <- true
		}()
	}

	for range goroutines {
		<-done
	}
}
