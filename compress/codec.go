package compress

import "fmt"

// CompressionType identifies an algorithm for whole-document compression,
// applied to a sealed Builder buffer (see vpack.CompressDocument), entirely
// outside of the VPack byte format itself — a Slice only ever views raw,
// uncompressed VPack bytes.
type CompressionType uint8

const (
	CompressionNone CompressionType = iota
	CompressionZstd
	CompressionS2
	CompressionLZ4
)

// String returns the human-readable name of a CompressionType.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses a byte slice, typically a sealed VPack document
// buffer, into a smaller representation.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
//   - Internal buffers may be reused for efficiency
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor's transformation.
//
// Thread Safety: Decompressor implementations must be safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats reports the outcome of a single compress/decompress
// round for monitoring and algorithm selection.
type CompressionStats struct {
	Algorithm           CompressionType
	OriginalSize        int64
	CompressedSize      int64
	Ratio               float64
	CompressionTimeNs   int64
	DecompressionTimeNs int64
}

// CompressionRatio returns the ratio of compressed size to original size.
// Values less than 1.0 indicate successful compression.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec is a factory function that creates a Codec for the specified
// compression type.
func CreateCodec(compressionType CompressionType, target string) (Codec, error) {
	switch compressionType {
	case CompressionNone:
		return NewNoOpCompressor(), nil
	case CompressionZstd:
		return NewZstdCompressor(), nil
	case CompressionS2:
		return NewS2Compressor(), nil
	case CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NewNoOpCompressor(),
	CompressionZstd: NewZstdCompressor(),
	CompressionS2:   NewS2Compressor(),
	CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
