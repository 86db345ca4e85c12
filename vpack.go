// Package vpack is the top-level entry point for building, reading, and
// optionally compressing VPack binary documents. It wires together
// builder (writer), slice (zero-copy reader), hash (structural equality),
// fromjson (JSON ingestion), and compress (whole-document compression)
// behind a small convenience surface, mirroring the way the teacher
// codebase's root package (mebo.go) fronts its own blob/encoding/section
// packages with a handful of top-level constructors and helpers.
package vpack

import (
	"fmt"

	"github.com/vpack-go/vpack/builder"
	"github.com/vpack-go/vpack/compress"
	"github.com/vpack-go/vpack/fromjson"
	"github.com/vpack-go/vpack/hash"
	"github.com/vpack-go/vpack/slice"
)

// NewBuilder constructs an empty Builder, forwarding any options.
func NewBuilder(opts ...builder.Option) *builder.Builder {
	return builder.New(opts...)
}

// Parse wraps raw VPack bytes in a Slice without copying them.
func Parse(data []byte) (slice.Slice, error) {
	return slice.New(data)
}

// ParseJSON parses JSON text into a sealed Builder holding the equivalent
// VPack document. The caller owns the returned Builder and must call
// Release once done with it.
func ParseJSON(text string) (*builder.Builder, error) {
	return fromjson.FromJSON(text)
}

// Equal reports whether a and b are structurally equal (hash.Equal).
func Equal(a, b slice.Slice) bool {
	return hash.Equal(a, b)
}

// Hash returns a's seeded structural hash (hash.Hash).
func Hash(a slice.Slice) uint64 {
	return hash.Hash(a)
}

// CompressDocument compresses a sealed document's bytes with the given
// algorithm, entirely outside of the VPack byte format itself: the
// returned bytes are only meaningful to DecompressDocument with the same
// algorithm, never directly to Parse.
func CompressDocument(data []byte, algo compress.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(algo)
	if err != nil {
		return nil, fmt.Errorf("vpack: CompressDocument: %w", err)
	}

	out, err := codec.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("vpack: CompressDocument: %w", err)
	}

	return out, nil
}

// DecompressDocument reverses CompressDocument, returning raw VPack bytes
// suitable for Parse.
func DecompressDocument(data []byte, algo compress.CompressionType) ([]byte, error) {
	codec, err := compress.GetCodec(algo)
	if err != nil {
		return nil, fmt.Errorf("vpack: DecompressDocument: %w", err)
	}

	out, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("vpack: DecompressDocument: %w", err)
	}

	return out, nil
}
