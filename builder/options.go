package builder

import "github.com/vpack-go/vpack/internal/options"

// config holds the resolved settings a New Builder is constructed with. It
// follows the teacher codebase's generic functional-options pattern
// (internal/options) rather than a long constructor parameter list.
type config struct {
	sortedObjects        bool
	reservedCapacity     int
	hashedIndexThreshold int
}

func newConfig() *config {
	return &config{sortedObjects: true}
}

// Option configures a Builder at construction time.
type Option = options.Option[*config]

// WithSortedObjects controls whether closed Object containers use the
// sorted index-table layout (0x0b..0x0e, enabling binary-search lookup) or
// the insertion-order layout (0x0f..0x12). Default true, per spec §4.3
// ("Objects default to sorted").
func WithSortedObjects(sorted bool) Option {
	return options.NoError(func(c *config) { c.sortedObjects = sorted })
}

// WithReservedCapacity pre-reserves n bytes of buffer capacity up front, so
// a Builder expected to produce a large document (spec §5 exercises up to
// 4 GiB encoded size) doesn't pay for incremental reallocation.
func WithReservedCapacity(n int) Option {
	return options.NoError(func(c *config) { c.reservedCapacity = n })
}

// WithHashedIndex enables attribute-hash collision tracking for every
// object built while it is in effect. Every object frame accumulates a
// collision tracker as it is built (the final size isn't known until the
// object closes), but only an object whose final encoded payload size
// exceeds threshold bytes can actually flip Builder.HasIndexCollision —
// a collision found while closing a small object is discarded. This does
// not change the bytes a closed Object produces; it only makes
// HasIndexCollision observable for callers who want to know whether two
// attribute names in a large object landed on the same xxHash64 value.
func WithHashedIndex(threshold int) Option {
	return options.NoError(func(c *config) { c.hashedIndexThreshold = threshold })
}
