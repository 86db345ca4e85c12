package compress

import (
	"fmt"
	"testing"
)

// generateBenchmarkData creates test data for benchmarks with a chosen
// compressibility profile, mirroring the payload shapes a sealed VPack
// document can take: all-zero (highly compressible), a repeated
// object-like pattern (compressible), and pseudo-random bytes
// (incompressible).
func generateBenchmarkData(size int, compressibility string) []byte {
	data := make([]byte, size)

	switch compressibility {
	case "highly_compressible":
		// already zero-filled
	case "compressible":
		pattern := []byte(`{"id":1,"name":"widget","tags":["a","b","c"]}`)
		for i := range data {
			data[i] = pattern[i%len(pattern)]
		}
	default:
		for i := range data {
			data[i] = byte((i*31 + i*i*7 + i*i*i*3) % 256)
		}
	}

	return data
}

// BenchmarkAllCodecs_RoundTrip benchmarks the full compress/decompress
// cycle for every registered codec across representative document sizes
// and compressibility profiles.
func BenchmarkAllCodecs_RoundTrip(b *testing.B) {
	sizes := []int{1024, 65536, 1048576} // 1KB, 64KB, 1MB

	compressibilities := []string{"highly_compressible", "compressible", "incompressible"}

	for codecName, codec := range getAllCodecs() {
		b.Run(codecName, func(b *testing.B) {
			for _, size := range sizes {
				for _, comp := range compressibilities {
					testName := fmt.Sprintf("%dKB_%s", size/1024, comp)
					b.Run(testName, func(b *testing.B) {
						data := generateBenchmarkData(size, comp)

						b.ResetTimer()
						b.ReportAllocs()
						b.SetBytes(int64(len(data)))

						for b.Loop() {
							compressed, err := codec.Compress(data)
							if err != nil {
								b.Fatal(err)
							}

							_, err = codec.Decompress(compressed)
							if err != nil {
								b.Fatal(err)
							}
						}
					})
				}
			}
		})
	}
}

// BenchmarkAllCodecs_CompressionRatio reports the achieved compression
// ratio alongside throughput for a 1 MiB payload per codec.
func BenchmarkAllCodecs_CompressionRatio(b *testing.B) {
	const size = 1048576

	for codecName, codec := range getAllCodecs() {
		b.Run(codecName, func(b *testing.B) {
			data := generateBenchmarkData(size, "compressible")

			compressed, err := codec.Compress(data)
			if err != nil {
				b.Fatal(err)
			}

			ratio := float64(len(compressed)) / float64(len(data)) * 100
			b.ReportMetric(ratio, "ratio%")

			b.ResetTimer()
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))

			for b.Loop() {
				_, err := codec.Compress(data)
				if err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkAllCodecs_SmallPayloads benchmarks the small-document sizes a
// single scalar or short-string value tends to produce.
func BenchmarkAllCodecs_SmallPayloads(b *testing.B) {
	sizes := []int{64, 256, 1024}

	for codecName, codec := range getAllCodecs() {
		b.Run(codecName, func(b *testing.B) {
			for _, size := range sizes {
				b.Run(fmt.Sprintf("%d_bytes", size), func(b *testing.B) {
					data := generateBenchmarkData(size, "compressible")

					b.ResetTimer()
					b.ReportAllocs()
					b.SetBytes(int64(len(data)))

					for b.Loop() {
						compressed, err := codec.Compress(data)
						if err != nil {
							b.Fatal(err)
						}

						_, err = codec.Decompress(compressed)
						if err != nil {
							b.Fatal(err)
						}
					}
				})
			}
		})
	}
}

// BenchmarkAllCodecs_Parallel exercises each codec's pooled compressor
// state (lz4.Compressor, the zstd encoder/decoder pools) under concurrent
// load, since a Builder's output may be compressed from multiple
// goroutines at once.
func BenchmarkAllCodecs_Parallel(b *testing.B) {
	data := generateBenchmarkData(65536, "compressible")

	for codecName, codec := range getAllCodecs() {
		b.Run(codecName+"_Compress", func(b *testing.B) {
			b.ResetTimer()
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))

			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					if _, err := codec.Compress(data); err != nil {
						b.Fatal(err)
					}
				}
			})
		})

		b.Run(codecName+"_Decompress", func(b *testing.B) {
			compressed, err := codec.Compress(data)
			if err != nil {
				b.Fatal(err)
			}

			b.ResetTimer()
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))

			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					if _, err := codec.Decompress(compressed); err != nil {
						b.Fatal(err)
					}
				}
			})
		})
	}
}
