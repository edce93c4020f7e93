// Package luxbin provides a lossless spectral byte-stream codec: buffers are
// encoded through wavelength-ordered symbol tables, and ordered sequences of
// same-shaped buffers compress further as keyframes plus sparse deltas.
//
// # Core Features
//
//   - Symbol-table encoding with automatic mode selection (bit-packed,
//     run-length, or raw fallback bounded to 10 bytes of overhead)
//   - Version-tagged binary containers; legacy v1 containers stay decodable
//   - Frame-sequence containers with keyframes, sparse deltas, and
//     scene-change promotion
//   - Storage envelopes with transport compression (Zstd, S2, LZ4) and
//     xxHash64 integrity digests
//   - Read-only compressibility analysis (entropy, density, top symbols)
//
// # Basic Usage
//
// Compressing and restoring a single buffer:
//
//	container, err := luxbin.Compress(data)
//	if err != nil {
//	    return err
//	}
//	restored, err := luxbin.Decompress(container)
//
// Compressing an ordered frame sequence with a keyframe every 10 frames:
//
//	container, err := luxbin.CompressFrames(frames, 10)
//	if err != nil {
//	    return err
//	}
//	restored, err := luxbin.DecompressFrames(container)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec,
// frames, envelope, and analysis packages, simplifying the most common use
// cases. For fine-grained control (reusable encoder instances, transport
// codec selection), use those packages directly.
//
// # Concurrency
//
// Compress, Decompress, and Analyze are pure functions, safe for concurrent
// use. CompressFrames and DecompressFrames create an independent
// encoder/decoder per call, so concurrent callers never share reference-frame
// state.
package luxbin

import (
	"github.com/Luxbin-labs/luxbin-photonic-codec/analysis"
	"github.com/Luxbin-labs/luxbin-photonic-codec/codec"
	"github.com/Luxbin-labs/luxbin-photonic-codec/envelope"
	"github.com/Luxbin-labs/luxbin-photonic-codec/format"
	"github.com/Luxbin-labs/luxbin-photonic-codec/frames"
)

// Compress encodes data into a single-buffer container.
func Compress(data []byte) ([]byte, error) {
	return codec.Compress(data)
}

// Decompress decodes a single-buffer container back into its original bytes.
func Decompress(container []byte) ([]byte, error) {
	return codec.Decompress(container)
}

// CompressFrames encodes an ordered frame sequence with the given keyframe interval.
func CompressFrames(framesIn [][]byte, keyframeInterval int) ([]byte, error) {
	return frames.Encode(framesIn, keyframeInterval)
}

// DecompressFrames decodes a frame-sequence container back into its frames.
func DecompressFrames(container []byte) ([][]byte, error) {
	return frames.Decode(container)
}

// Analyze computes a read-only compressibility report over data, including
// the topK most frequent byte values.
func Analyze(data []byte, topK int) analysis.Report {
	return analysis.Analyze(data, topK)
}

// PackEnvelope wraps a finished container in a storage envelope with the
// given transport compression and an integrity digest.
func PackEnvelope(container []byte, compressionType format.CompressionType) ([]byte, error) {
	return envelope.Pack(container, compressionType)
}

// UnpackEnvelope unwraps a storage envelope and returns the verified container.
func UnpackEnvelope(data []byte) ([]byte, error) {
	return envelope.Unpack(data)
}
