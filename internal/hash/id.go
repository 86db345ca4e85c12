// Package hash computes the xxHash64 bucket for an attribute name, used by
// the Builder's optional hashed object index (see builder.WithHashedIndex)
// and by internal/collision to detect when two attribute names land on the
// same bucket.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given attribute name.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
