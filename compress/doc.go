// Package compress provides compression and decompression codecs for
// sealed VPack documents, applied outside the VPack byte format itself:
// a Slice always views raw, uncompressed bytes, so compression wraps a
// Builder's finished buffer and decompression must run before
// constructing a Slice over the result.
//
// # Overview
//
// The package supports four algorithms:
//   - None: no compression (fastest, largest)
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fastest decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
// **NoOp Compression** (CompressionNone)
//
//	codec := compress.NewNoOpCompressor()
//	compressed, _ := codec.Compress(data)   // Returns data unchanged
//	original, _ := codec.Decompress(compressed) // Returns data unchanged
//
// Use when the document is already small, CPU is more critical than
// storage, or the payload is incompressible.
//
// **Zstandard (Zstd)** (CompressionZstd)
//
//	codec := compress.NewZstdCompressor()
//	compressed, _ := codec.Compress(data)
//	original, _ := codec.Decompress(compressed)
//
// Best for cold storage, archival, and network transmission where
// bandwidth matters more than CPU time.
//
// **S2** (CompressionS2)
//
//	codec := compress.NewS2Compressor()
//	compressed, _ := codec.Compress(data)
//	original, _ := codec.Decompress(compressed)
//
// A balance of compression ratio and speed, suited to latency-sensitive
// document ingestion.
//
// **LZ4** (CompressionLZ4)
//
//	codec := compress.NewLZ4Compressor()
//	compressed, _ := codec.Compress(data)
//	original, _ := codec.Decompress(compressed)
//
// Favors very fast decompression over maximum compression ratio, useful
// when documents are read far more often than written.
//
// # Memory Management
//
// The pure-Go (non-cgo) Zstd codec pools its encoders and decoders, and the
// LZ4 codec pools its block compressors, via sync.Pool to avoid per-call
// allocation. LZ4 decompression, the cgo Zstd codec, S2 and NoOp keep no
// pooled state of their own.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use.
//
// # Integration
//
// vpack.CompressDocument/DecompressDocument wrap a Builder's sealed output
// with the codec selected via CreateCodec/GetCodec.
package compress
