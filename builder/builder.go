// Package builder implements the writer half of the VPack format: a
// Builder owns a growable byte buffer and a stack of open containers,
// exposes Add/AddKey/Close to compose a balanced container tree, and
// back-patches each container's header and index table once its final
// byte size is known (spec §4.3).
//
// The state machine is grounded in the teacher codebase's stateful,
// growable-buffer encoders (blob/numeric_encoder.go): a config resolved
// once via internal/options, a buffer pulled from internal/pool, and an
// encoder that tracks per-region offsets as it goes rather than rescanning
// already-written bytes.
package builder

import (
	"fmt"

	"github.com/vpack-go/vpack/errs"
	"github.com/vpack-go/vpack/format"
	"github.com/vpack-go/vpack/internal/codec"
	"github.com/vpack-go/vpack/internal/collision"
	"github.com/vpack-go/vpack/internal/hash"
	"github.com/vpack-go/vpack/internal/options"
	"github.com/vpack-go/vpack/internal/pool"
	"github.com/vpack-go/vpack/slice"
)

// containerPlaceholderSize is the number of bytes Add reserves when it
// opens a container: 1 head byte + an 8-byte length field + an 8-byte
// count field, the widest header any container variant needs. close()
// shrinks this down to the narrowest layout that fits and shifts the
// payload left to remove the unused slack (spec §4.3 step 5, "shifts
// payload to remove unused padding").
const containerPlaceholderSize = 1 + 8 + 8

// frame is one entry in the Builder's stack of open containers (spec
// §4.3): the start offset in the buffer, whether it is an array or
// object, whether an object is to be sorted, and the per-element/per-key
// start offsets used to build the index table on close.
type frame struct {
	start            int
	object           bool
	sorted           bool
	childOffsets     []int
	seenKeys         map[string]struct{}
	collisionTracker *collision.Tracker
}

// Builder incrementally composes a single well-formed VPack document into
// a contiguous byte buffer. It is not safe for concurrent use (spec §5):
// a Builder carries no internal synchronization, matching the single-
// writer model the growable buffer it wraps assumes.
type Builder struct {
	buf                  *pool.ByteBuffer
	stack                []*frame
	sealed               bool
	defaultSorted        bool
	hashedIndexThreshold int
	collisionSeen        bool
	large                bool

	// hashAttribute computes the hash AddKey feeds to an open frame's
	// collisionTracker. It defaults to hash.ID but is swappable in tests
	// so a forced collision doesn't depend on finding two real strings
	// whose xxHash64 values happen to match.
	hashAttribute func(string) uint64
}

// New constructs an empty Builder. A reserved capacity beyond
// pool.DocumentBufferMaxThreshold draws its backing buffer from the
// large-document pool instead, since the small pool would discard
// (rather than retain) a buffer that big on Release anyway.
func New(opts ...Option) *Builder {
	cfg := newConfig()
	_ = options.Apply(cfg, opts...) // every builder.Option is NoError-backed; Apply cannot fail here

	large := cfg.reservedCapacity > pool.DocumentBufferMaxThreshold

	var buf *pool.ByteBuffer
	if large {
		buf = pool.GetLargeDocumentBuffer()
	} else {
		buf = pool.GetDocumentBuffer()
	}

	if cfg.reservedCapacity > 0 {
		buf.Grow(cfg.reservedCapacity)
	}

	return &Builder{
		buf:                  buf,
		defaultSorted:        cfg.sortedObjects,
		hashedIndexThreshold: cfg.hashedIndexThreshold,
		large:                large,
		hashAttribute:        hash.ID,
	}
}

// Reserve ensures the Builder's buffer has room for at least n more bytes
// without changing its current content (it does nothing when that room is
// already there), letting a caller that knows the
// approximate final size avoid incremental reallocation mid-build.
func (b *Builder) Reserve(n int) {
	b.buf.Grow(n)
}

// Bytes returns the raw bytes written so far. Before Close has sealed the
// top-level value, this view includes open containers' placeholder
// headers and is not a valid Slice.
func (b *Builder) Bytes() []byte {
	return b.buf.Bytes()
}

// Size returns the number of bytes written so far.
func (b *Builder) Size() int {
	return b.buf.Len()
}

// Slice returns a Slice over the sealed top-level value. It fails if the
// Builder has not yet closed every open container and written exactly one
// top-level value.
func (b *Builder) Slice() (slice.Slice, error) {
	if !b.sealed {
		return slice.Slice{}, fmt.Errorf("builder: Slice: %w: no sealed top-level value yet", errs.ErrNoOpenContainer)
	}

	return slice.New(b.buf.Bytes())
}

// HasIndexCollision reports whether any WithHashedIndex-tracked object
// closed so far had two distinct attribute names land on the same
// xxHash64 bucket.
func (b *Builder) HasIndexCollision() bool {
	return b.collisionSeen
}

// Release returns the Builder's backing buffer to the shared pool. Callers
// must not use the Builder, or any Slice/Bytes view derived from it, after
// calling Release.
func (b *Builder) Release() {
	if b.large {
		pool.PutLargeDocumentBuffer(b.buf)
	} else {
		pool.PutDocumentBuffer(b.buf)
	}

	b.buf = nil
}

// Add appends v as the next array element, or as the single top-level
// value if no container is open yet. It is an error to call Add while the
// top-of-stack container is an Object (use AddKey there).
func (b *Builder) Add(v Value) error {
	if err := b.checkUnkeyedAdd(); err != nil {
		return err
	}

	offset := b.buf.Len()
	if len(b.stack) > 0 {
		top := b.stack[len(b.stack)-1]
		top.childOffsets = append(top.childOffsets, offset)
	}

	if err := b.writeValue(v); err != nil {
		return err
	}

	if len(b.stack) == 0 {
		b.sealed = true
	}

	return nil
}

func (b *Builder) checkUnkeyedAdd() error {
	if b.sealed {
		return errs.ErrBuilderClosed
	}

	if len(b.stack) > 0 && b.stack[len(b.stack)-1].object {
		return fmt.Errorf("builder: Add: %w: open container is an object, use AddKey", errs.ErrNotAnObject)
	}

	return nil
}

// AddKey appends key as an encoded String, then recursively writes v as
// its value, recording the key's start offset so close() can build the
// index table (spec §4.3). It is only valid when the top-of-stack
// container is an Object.
func (b *Builder) AddKey(key string, v Value) error {
	if b.sealed {
		return errs.ErrBuilderClosed
	}

	if len(b.stack) == 0 || !b.stack[len(b.stack)-1].object {
		return fmt.Errorf("builder: AddKey: %w", errs.ErrNotAnObject)
	}

	if key == "" {
		return errs.ErrEmptyKey
	}

	top := b.stack[len(b.stack)-1]

	if _, exists := top.seenKeys[key]; exists {
		return fmt.Errorf("builder: AddKey %q: %w", key, errs.ErrDuplicateKey)
	}

	if top.collisionTracker != nil {
		_ = top.collisionTracker.TrackAttribute(key, b.hashAttribute(key))
	}

	top.seenKeys[key] = struct{}{}

	offset := b.buf.Len()
	top.childOffsets = append(top.childOffsets, offset)

	b.writeString(key)

	return b.writeValue(v)
}

// Close pops the top-of-stack container and back-patches it: it rewrites
// the head byte and length field(s), builds and appends the index table
// (sorting it by key first for a sorted object), and shifts the payload
// left to remove the placeholder's unused slack (spec §4.3).
func (b *Builder) Close() error {
	if len(b.stack) == 0 {
		return errs.ErrNoOpenContainer
	}

	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	buf := b.buf.B

	var err error

	switch {
	case len(f.childOffsets) == 0:
		buf = emitEmpty(buf, f.start, f.object)
	case f.object && len(f.childOffsets) == 1:
		buf, err = emitCompactObject(buf, f.start)
	default:
		buf, err = emitGeneral(buf, f)
	}

	if err != nil {
		return err
	}

	b.buf.B = buf

	if f.collisionTracker != nil {
		payloadLen := len(buf) - f.start
		if payloadLen > b.hashedIndexThreshold && f.collisionTracker.HasCollision() {
			b.collisionSeen = true
		}
	}

	if len(b.stack) == 0 {
		b.sealed = true
	}

	return nil
}

// pushFrame opens a new container frame. When hashed-index tracking is
// enabled, every object frame gets a collisionTracker regardless of how
// big it will turn out to be — the final payload size isn't known until
// Close back-patches the frame, so the threshold gate is applied there
// instead, against each tracker's accumulated verdict.
func (b *Builder) pushFrame(isObject bool) {
	start := b.buf.Len()

	var placeholder [containerPlaceholderSize]byte
	b.buf.MustWrite(placeholder[:])

	f := &frame{start: start, object: isObject, sorted: b.defaultSorted}

	if isObject {
		f.seenKeys = make(map[string]struct{})

		if b.hashedIndexThreshold > 0 {
			f.collisionTracker = collision.NewTracker()
		}
	}

	b.stack = append(b.stack, f)
}

func (b *Builder) writeValue(v Value) error {
	switch v.kind {
	case kindNull:
		b.buf.MustWrite([]byte{format.HeadNull})
	case kindBool:
		if v.b {
			b.buf.MustWrite([]byte{format.HeadTrue})
		} else {
			b.buf.MustWrite([]byte{format.HeadFalse})
		}
	case kindDouble:
		var tmp [9]byte
		tmp[0] = format.HeadDouble
		codec.PutFloat64LE(tmp[1:9], v.f)
		b.buf.MustWrite(tmp[:])
	case kindInt:
		b.writeInt(v.i)
	case kindUInt:
		b.writeUInt(v.u)
	case kindString:
		b.writeString(v.s)
	case kindMinKey:
		b.buf.MustWrite([]byte{format.HeadMinKey})
	case kindMaxKey:
		b.buf.MustWrite([]byte{format.HeadMaxKey})
	case kindArray:
		b.pushFrame(false)
	case kindObject:
		b.pushFrame(true)
	default:
		return fmt.Errorf("builder: writeValue: unknown value kind %d", v.kind)
	}

	return nil
}

// writeInt folds -6..9 into the one-byte SmallInt encoding and otherwise
// picks the narrowest Int width that round-trips v, per the Builder's
// general minimal-width convention (SPEC_FULL.md's resolved NegInt4/NegInt5
// open question).
func (b *Builder) writeInt(v int64) {
	if v >= -6 && v <= 9 {
		var head byte
		if v >= 0 {
			head = format.HeadSmallIntPosBase + byte(v)
		} else {
			head = byte(0x40 + v)
		}

		b.buf.MustWrite([]byte{head})

		return
	}

	w := signedWidth(v)

	var tmp [9]byte
	tmp[0] = format.HeadIntBase + byte(w-1)
	codec.PutUintLE(tmp[1:1+w], uint64(v), w)
	b.buf.MustWrite(tmp[:1+w])
}

func (b *Builder) writeUInt(v uint64) {
	if v <= 9 {
		b.buf.MustWrite([]byte{format.HeadSmallIntPosBase + byte(v)})

		return
	}

	w := codec.WidthFor(v)

	var tmp [9]byte
	tmp[0] = format.HeadUIntBase + byte(w-1)
	codec.PutUintLE(tmp[1:1+w], v, w)
	b.buf.MustWrite(tmp[:1+w])
}

func (b *Builder) writeString(s string) {
	n := len(s)

	if n <= format.MaxShortStringLen {
		var head [1]byte
		head[0] = format.HeadStringShortBase + byte(n)
		b.buf.MustWrite(head[:])
		b.buf.MustWrite([]byte(s))

		return
	}

	var head [9]byte
	head[0] = format.HeadStringLong
	codec.PutUintLE(head[1:9], uint64(n), 8)
	b.buf.MustWrite(head[:])
	b.buf.MustWrite([]byte(s))
}

func signedWidth(v int64) int {
	for _, w := range [4]int{1, 2, 4, 8} {
		if fitsSigned(v, w) {
			return w
		}
	}

	return 8
}

func fitsSigned(v int64, w int) bool {
	if w == 8 {
		return true
	}

	bits := uint(w * 8)
	minV := -(int64(1) << (bits - 1))
	maxV := (int64(1) << (bits - 1)) - 1

	return v >= minV && v <= maxV
}
