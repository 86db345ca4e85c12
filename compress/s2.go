package compress

import "github.com/klauspost/compress/s2"

// S2Compressor wraps a sealed document buffer with S2 compression, a
// Snappy-compatible format tuned for high-throughput round trips rather
// than Zstandard's ratio — a reasonable default when a document is
// compressed and decompressed far more often than it sits at rest.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress implements Compressor. The destination buffer is sized up
// front via s2.MaxEncodedLen so Encode never has to grow it mid-call.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, s2.MaxEncodedLen(len(data)))

	return s2.Encode(dst, data), nil
}

// Decompress implements Decompressor.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
