package collision

import (
	"testing"

	"github.com/vpack-go/vpack/errs"
	"github.com/stretchr/testify/require"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.AttributeNames())
}

func TestTracker_TrackAttribute_Success(t *testing.T) {
	tracker := NewTracker()

	err := tracker.TrackAttribute("name", 0x1234567890abcdef)
	require.NoError(t, err)
	require.Equal(t, 1, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"name"}, tracker.AttributeNames())

	err = tracker.TrackAttribute("age", 0xfedcba0987654321)
	require.NoError(t, err)
	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"name", "age"}, tracker.AttributeNames())
}

func TestTracker_TrackAttribute_EmptyName(t *testing.T) {
	tracker := NewTracker()

	err := tracker.TrackAttribute("", 0x1234567890abcdef)

	require.ErrorIs(t, err, errs.ErrEmptyKey)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
}

func TestTracker_TrackAttribute_Collision(t *testing.T) {
	tracker := NewTracker()

	err := tracker.TrackAttribute("name", 0x1234567890abcdef)
	require.NoError(t, err)
	require.False(t, tracker.HasCollision())

	// Different name, same hash bucket: not an error, flags a collision.
	err = tracker.TrackAttribute("nickname", 0x1234567890abcdef)
	require.NoError(t, err)
	require.True(t, tracker.HasCollision())
	require.Equal(t, 2, tracker.Count())
	require.Equal(t, []string{"name", "nickname"}, tracker.AttributeNames())
}

func TestTracker_TrackAttribute_Duplicate(t *testing.T) {
	tracker := NewTracker()

	err := tracker.TrackAttribute("name", 0x1234567890abcdef)
	require.NoError(t, err)

	err = tracker.TrackAttribute("name", 0x1234567890abcdef)
	require.ErrorIs(t, err, errs.ErrDuplicateKey)
	require.False(t, tracker.HasCollision())
	require.Equal(t, 1, tracker.Count())
}

func TestTracker_AttributeNames_PreservesOrder(t *testing.T) {
	tracker := NewTracker()

	attrs := []struct {
		name string
		hash uint64
	}{
		{"a", 0x0001},
		{"b", 0x0002},
		{"c", 0x0003},
		{"d", 0x0004},
	}

	for _, a := range attrs {
		require.NoError(t, tracker.TrackAttribute(a.name, a.hash))
	}

	names := tracker.AttributeNames()
	require.Equal(t, 4, len(names))
	require.Equal(t, "a", names[0])
	require.Equal(t, "b", names[1])
	require.Equal(t, "c", names[2])
	require.Equal(t, "d", names[3])
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()

	_ = tracker.TrackAttribute("name", 0x1234567890abcdef)
	_ = tracker.TrackAttribute("age", 0xfedcba0987654321)
	require.Equal(t, 2, tracker.Count())

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.AttributeNames())

	err := tracker.TrackAttribute("id", 0x1111111111111111)
	require.NoError(t, err)
	require.Equal(t, 1, tracker.Count())
	require.Equal(t, []string{"id"}, tracker.AttributeNames())
}

func TestTracker_Reset_PreservesCapacity(t *testing.T) {
	tracker := NewTracker()

	for i := 0; i < 100; i++ {
		_ = tracker.TrackAttribute("attr", uint64(i))
	}

	initialCap := cap(tracker.namesList)

	tracker.Reset()

	require.Equal(t, 0, len(tracker.namesList))
	require.GreaterOrEqual(t, cap(tracker.namesList), initialCap)
}

func TestTracker_HasCollision_Persists(t *testing.T) {
	tracker := NewTracker()

	_ = tracker.TrackAttribute("name", 0x1234567890abcdef)
	require.False(t, tracker.HasCollision())

	_ = tracker.TrackAttribute("nickname", 0x1234567890abcdef)
	require.True(t, tracker.HasCollision())

	_ = tracker.TrackAttribute("age", 0xfedcba0987654321)
	require.True(t, tracker.HasCollision())
}

func TestTracker_MultipleCollisions(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.TrackAttribute("attr1", 0x0001))

	require.NoError(t, tracker.TrackAttribute("attr2", 0x0001))
	require.True(t, tracker.HasCollision())

	require.NoError(t, tracker.TrackAttribute("attr3", 0x0002))
	require.NoError(t, tracker.TrackAttribute("attr4", 0x0002))
	require.True(t, tracker.HasCollision())

	require.Equal(t, 4, tracker.Count())
}
