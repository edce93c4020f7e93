// Package compress provides transport compression codecs for luxbin
// containers at rest.
//
// The core container formats (single-buffer and frame-sequence) are
// bit-exact and never compressed internally; this package operates one layer
// out, where the envelope package wraps a finished container for storage or
// transmission. Supported algorithms:
//
//   - None: passthrough (format.CompressionNone)
//   - Zstd: best ratio, moderate speed (format.CompressionZstd)
//   - S2: balanced ratio and speed (format.CompressionS2)
//   - LZ4: fastest decompression (format.CompressionLZ4)
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
// GetCodec returns a shared, concurrency-safe codec for a compression type;
// CreateCodec builds a fresh instance when isolation is preferred.
package compress
