package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	tests := []struct {
		name     string
		cType    CompressionType
		expected string
	}{
		{name: "none compression", cType: CompressionNone, expected: "None"},
		{name: "zstd compression", cType: CompressionZstd, expected: "Zstd"},
		{name: "s2 compression", cType: CompressionS2, expected: "S2"},
		{name: "lz4 compression", cType: CompressionLZ4, expected: "LZ4"},
		{name: "unknown compression", cType: CompressionType(0xFF), expected: "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.cType.String())
		})
	}
}

func TestCompressionStats_Calculations(t *testing.T) {
	tests := []struct {
		name            string
		stats           CompressionStats
		expectedRatio   float64
		expectedSavings float64
	}{
		{
			name:            "good compression",
			stats:           CompressionStats{Algorithm: CompressionZstd, OriginalSize: 1000, CompressedSize: 300},
			expectedRatio:   0.3,
			expectedSavings: 70.0,
		},
		{
			name:            "no compression benefit",
			stats:           CompressionStats{Algorithm: CompressionNone, OriginalSize: 500, CompressedSize: 500},
			expectedRatio:   1.0,
			expectedSavings: 0.0,
		},
		{
			name:            "compression overhead",
			stats:           CompressionStats{Algorithm: CompressionS2, OriginalSize: 100, CompressedSize: 120},
			expectedRatio:   1.2,
			expectedSavings: -20.0,
		},
		{
			name:            "zero original size",
			stats:           CompressionStats{Algorithm: CompressionLZ4, OriginalSize: 0, CompressedSize: 100},
			expectedRatio:   0.0,
			expectedSavings: 100.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.expectedRatio, tt.stats.CompressionRatio(), 0.001)
			require.InDelta(t, tt.expectedSavings, tt.stats.SpaceSavings(), 0.001)
		})
	}
}

func TestNoOpCompressor_EmptyData(t *testing.T) {
	compressor := NewNoOpCompressor()

	compressed, err := compressor.Compress(nil)
	require.NoError(t, err)
	require.Nil(t, compressed)

	empty := []byte{}
	compressed, err = compressor.Compress(empty)
	require.NoError(t, err)
	require.Equal(t, empty, compressed)

	decompressed, err := compressor.Decompress(nil)
	require.NoError(t, err)
	require.Nil(t, decompressed)
}

func TestNoOpCompressor_RoundTrip(t *testing.T) {
	compressor := NewNoOpCompressor()

	data := []byte("a sealed VPack document's raw bytes")

	compressed, err := compressor.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, compressed)
	require.Same(t, &data[0], &compressed[0], "NoOp must not copy")

	decompressed, err := compressor.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, decompressed)
}

// getAllCodecs returns every codec this repo's CompressDocument/
// DecompressDocument surface can select, keyed by a short codec name (the
// no-op codec is keyed "NoOp").
func getAllCodecs() map[string]Codec {
	return map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"LZ4":  NewLZ4Compressor(),
		"S2":   NewS2Compressor(),
		"Zstd": NewZstdCompressor(),
	}
}

func TestAllCodecs_EmptyData(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)
			require.Nil(t, compressed, "compressing nil must return nil")

			decompressed, err := codec.Decompress(nil)
			require.NoError(t, err)
			require.Nil(t, decompressed, "decompressing nil must return nil")
		})
	}
}

func TestAllCodecs_RoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
	}{
		{name: "small_object", data: []byte(`{"id":1,"name":"widget"}`)},
		{name: "repeated_pattern", data: bytes.Repeat([]byte("ABCD"), 100)},
		{name: "binary_data", data: []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD, 0xFC}},
		{name: "single_byte", data: []byte{0x42}},
		{name: "medium_payload", data: bytes.Repeat([]byte(`{"attr":"value"}`), 256)},
		{name: "highly_compressible", data: make([]byte, 256*1024)},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			for _, tc := range testCases {
				t.Run(tc.name, func(t *testing.T) {
					compressed, err := codec.Compress(tc.data)
					require.NoError(t, err)
					require.NotNil(t, compressed)

					decompressed, err := codec.Decompress(compressed)
					require.NoError(t, err)
					require.Equal(t, tc.data, decompressed, "decompressed data must match original")
				})
			}
		})
	}
}

func TestAllCodecs_InvalidData(t *testing.T) {
	invalidInputs := []struct {
		name string
		data []byte
	}{
		{name: "random_bytes", data: []byte{0xFF, 0xFF, 0xFF, 0xFF}},
		{name: "corrupted_header", data: []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}},
	}

	for codecName, codec := range getAllCodecs() {
		t.Run(codecName, func(t *testing.T) {
			if codecName == "NoOp" {
				t.Skip("NoOp codec doesn't validate data")

				return
			}

			for _, input := range invalidInputs {
				t.Run(input.name, func(t *testing.T) {
					_, err := codec.Decompress(input.data)
					require.Error(t, err, "should return error for invalid compressed data")
				})
			}
		})
	}
}

func TestAllCodecs_InterfaceCompliance(t *testing.T) {
	for name, codec := range getAllCodecs() {
		t.Run(name, func(t *testing.T) {
			var _ Codec = codec
			require.NotNil(t, codec)
		})
	}
}
