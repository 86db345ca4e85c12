package compress

import (
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/vpack-go/vpack/internal/codec"
)

// lz4CompressorPool reuses pierrec/lz4 block compressors across calls: an
// lz4.Compressor carries an internal match-finder table that is worth
// keeping warm rather than reallocating per document.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses a sealed document's bytes with the raw LZ4
// block format. Unlike the frame format, a block carries no length of its
// own, so Compress prefixes it with the original byte count encoded via
// internal/codec's uvarint (the same variable-width length field the
// compact container layouts use) — Decompress then allocates its
// destination buffer exactly once instead of guessing a size and retrying.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress implements Compressor.
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := codec.PutUvarint(make([]byte, 0, 10), uint64(len(data)))
	headerLen := len(dst)

	dst = append(dst, make([]byte, lz4.CompressBlockBound(len(data)))...)

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[headerLen:])
	if err != nil {
		return nil, fmt.Errorf("compress: lz4: %w", err)
	}

	return dst[:headerLen+n], nil
}

// Decompress implements Decompressor.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	originalLen, headerLen := codec.ReadUvarint(data)
	if headerLen == 0 {
		return nil, fmt.Errorf("compress: lz4: truncated length header")
	}

	dst := make([]byte, originalLen)

	n, err := lz4.UncompressBlock(data[headerLen:], dst)
	if err != nil {
		return nil, fmt.Errorf("compress: lz4: %w", err)
	}

	return dst[:n], nil
}
