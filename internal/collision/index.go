// Package collision tracks attribute-name hash collisions for the Builder's
// optional hashed object index (see builder.WithHashedIndex). A sorted
// object index only ever stores an attribute's byte offset; the tracker
// detects when two distinct keys within the same object hash to the same
// value, which the Builder reports through HasIndexCollision. The encoded
// bytes of the object do not change either way.
package collision

import (
	"github.com/vpack-go/vpack/errs"
)

// Tracker tracks attribute names and their hashes while a hashed-index
// object is being built, flagging whenever two different keys collide on
// the same hash value.
type Tracker struct {
	names        map[uint64]string // hash -> first attribute name claiming it
	namesList    []string          // attribute names in insertion order
	hasCollision bool
}

// NewTracker creates a new, empty collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:     make(map[uint64]string),
		namesList: make([]string, 0),
	}
}

// TrackAttribute records an attribute name and its hash. It returns
// errs.ErrEmptyKey for an empty name and errs.ErrDuplicateKey if the exact
// same name was already tracked under the same hash for this object. When a
// different name hashes to a value already claimed by another name,
// TrackAttribute does not error: it records the collision, which
// HasCollision then reports.
func (t *Tracker) TrackAttribute(name string, hash uint64) error {
	if name == "" {
		return errs.ErrEmptyKey
	}

	if existing, exists := t.names[hash]; exists {
		if existing == name {
			return errs.ErrDuplicateKey
		}

		t.hasCollision = true
	}

	t.names[hash] = name
	t.namesList = append(t.namesList, name)

	return nil
}

// HasCollision reports whether any two tracked attribute names have
// collided on the same hash value.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// AttributeNames returns the tracked attribute names in insertion order.
func (t *Tracker) AttributeNames() []string {
	return t.namesList
}

// Count returns the number of tracked attribute names.
func (t *Tracker) Count() int {
	return len(t.namesList)
}

// Reset clears all tracked state, preserving the map/slice capacity so the
// tracker can be reused for the next hashed-index object without
// reallocating.
func (t *Tracker) Reset() {
	for k := range t.names {
		delete(t.names, k)
	}
	t.namesList = t.namesList[:0]
	t.hasCollision = false
}
