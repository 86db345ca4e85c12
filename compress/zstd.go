package compress

// ZstdCompressor wraps a sealed document buffer with Zstandard compression.
//
// This compressor is designed for scenarios where compression ratio is more
// important than compression speed: archival of built documents, network
// transmission where bandwidth is limited, or any case where decompression
// happens far less often than compression.
//
// Performance characteristics:
//   - Compression: ~5-20 ns/byte (depending on compression level)
//   - Decompression: ~2-5 ns/byte
//   - Memory usage: Moderate (the pure-Go build reuses pooled encoders/decoders)
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
//
// Example:
//
//	compressor := NewZstdCompressor()
//	compressed, err := compressor.Compress(data)
//	if err != nil {
//		return err
//	}
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
