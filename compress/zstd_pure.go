//go:build !cgo

package compress

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// newPooledZstdDecoder builds a fresh decoder for zstdDecoderPool's New
// hook. The klauspost/compress/zstd package documents its decoder as
// allocation-free after a warmup, so pooling one per goroutine beats
// building a new one per document.
func newPooledZstdDecoder() any {
	decoder, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(false),
	)
	if err != nil {
		panic(fmt.Sprintf("compress: zstd: failed to build pooled decoder: %v", err))
	}

	return decoder
}

// newPooledZstdEncoder builds a fresh encoder for zstdEncoderPool's New
// hook.
func newPooledZstdEncoder() any {
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderCRC(false),
	)
	if err != nil {
		panic(fmt.Sprintf("compress: zstd: failed to build pooled encoder: %v", err))
	}

	return encoder
}

var (
	zstdDecoderPool = sync.Pool{New: newPooledZstdDecoder}
	zstdEncoderPool = sync.Pool{New: newPooledZstdEncoder}
)

// Compress implements Compressor using a pooled, pure-Go encoder.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	encoder, _ := zstdEncoderPool.Get().(*zstd.Encoder)
	defer zstdEncoderPool.Put(encoder)

	// EncodeAll is stateless, so the pooled encoder can be returned
	// immediately after this call regardless of outcome.
	return encoder.EncodeAll(data, nil), nil
}

// Decompress implements Decompressor using a pooled, pure-Go decoder.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	decoder, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	defer zstdDecoderPool.Put(decoder)

	out, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("compress: zstd: %w", err)
	}

	return out, nil
}
