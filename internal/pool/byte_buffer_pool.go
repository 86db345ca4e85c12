// Package pool provides reusable buffers for the Builder's growable byte
// buffer, reducing allocation churn when many documents are built in
// sequence (e.g. one per incoming JSON record).
package pool

import "sync"

// Default and threshold sizes for the two pools below. DocumentBufferDefaultSize
// fits the common case of small, single-record documents; LargeDocumentBufferDefaultSize
// is sized for the multi-megabyte documents a Builder constructed with a large
// reserved capacity targets.
const (
	DocumentBufferDefaultSize       = 1024 * 16        // 16KiB
	DocumentBufferMaxThreshold      = 1024 * 128       // 128KiB
	LargeDocumentBufferDefaultSize  = 1024 * 1024       // 1MiB
	LargeDocumentBufferMaxThreshold = 1024 * 1024 * 8 // 8MiB
)

// ByteBuffer is a growable byte buffer with an amortized growth strategy,
// used as the Builder's backing store so repeated small appends (one per
// scalar or header byte) don't each trigger a reallocation.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the specified default size.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow grows the buffer to ensure it can hold requiredBytes more bytes without reallocating.
// If the buffer has sufficient capacity, Grow does nothing.
//
// The growth strategy is as follows:
//   - For small buffers (capacity up to 64KB), grow by DocumentBufferDefaultSize to minimize reallocations.
//   - For larger buffers, grow by 25% of current capacity to balance memory usage and reallocation cost.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return // Sufficient capacity
	}

	growBy := DocumentBufferDefaultSize
	if cap(bb.B) > 4*DocumentBufferDefaultSize {
		// For larger buffers, grow by 25% to balance memory and reallocation cost
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally to manage the buffers. The pool can be
// configured with a maximum size threshold to avoid retaining overly
// large buffers that could lead to memory bloat.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int // Optional maximum size threshold for buffers
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		// Discard overly large buffers to prevent memory bloat
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	documentDefaultPool      = NewByteBufferPool(DocumentBufferDefaultSize, DocumentBufferMaxThreshold)
	largeDocumentDefaultPool = NewByteBufferPool(LargeDocumentBufferDefaultSize, LargeDocumentBufferMaxThreshold)
)

// GetDocumentBuffer retrieves a ByteBuffer from the default document pool, for
// Builders expected to produce small-to-medium documents.
func GetDocumentBuffer() *ByteBuffer {
	return documentDefaultPool.Get()
}

// PutDocumentBuffer returns a ByteBuffer to the default document pool.
func PutDocumentBuffer(bb *ByteBuffer) {
	documentDefaultPool.Put(bb)
}

// GetLargeDocumentBuffer retrieves a ByteBuffer from the pool sized for large,
// pre-reserved documents.
func GetLargeDocumentBuffer() *ByteBuffer {
	return largeDocumentDefaultPool.Get()
}

// PutLargeDocumentBuffer returns a ByteBuffer to the large-document pool.
func PutLargeDocumentBuffer(bb *ByteBuffer) {
	largeDocumentDefaultPool.Put(bb)
}
