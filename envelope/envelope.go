// Package envelope wraps finished luxbin containers for storage or
// transmission: optional transport compression plus an integrity digest.
//
// The envelope never alters the container it carries; the core formats stay
// bit-exact. Wire layout (little-endian):
//
//	magic "LXBE"(4) | compression(1) | originalSize(4) | digest(8) | payload
//
// The digest is the xxHash64 of the uncompressed container, checked on
// Unpack before the container is returned.
package envelope

import (
	"bytes"
	"fmt"
	"math"

	"github.com/Luxbin-labs/luxbin-photonic-codec/compress"
	"github.com/Luxbin-labs/luxbin-photonic-codec/endian"
	"github.com/Luxbin-labs/luxbin-photonic-codec/errs"
	"github.com/Luxbin-labs/luxbin-photonic-codec/format"
	"github.com/Luxbin-labs/luxbin-photonic-codec/internal/hash"
	"github.com/Luxbin-labs/luxbin-photonic-codec/section"
)

// Pack wraps container in a storage envelope using the given transport
// compression.
//
// Returns:
//   - []byte: The envelope bytes
//   - error: Unknown compression type, container too large for the 4-byte
//     size field, or a transport codec failure
func Pack(container []byte, compressionType format.CompressionType) ([]byte, error) {
	if uint64(len(container)) > math.MaxUint32 {
		return nil, fmt.Errorf("container length %d exceeds envelope limit", len(container))
	}

	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompressionType, compressionType)
	}

	payload, err := codec.Compress(container)
	if err != nil {
		return nil, fmt.Errorf("envelope compression failed: %w", err)
	}

	engine := endian.GetLittleEndianEngine()
	out := make([]byte, 0, section.EnvelopeHeaderSize+len(payload))
	out = append(out, section.EnvelopeMagic[:]...)
	out = append(out, byte(compressionType))
	out = engine.AppendUint32(out, uint32(len(container)))
	out = engine.AppendUint64(out, hash.Digest(container))
	out = append(out, payload...)

	return out, nil
}

// Unpack unwraps a storage envelope and returns the verified container.
//
// Returns:
//   - []byte: The container, exactly originalSize bytes
//   - error: Format errors (bad magic, unknown compression type, truncated
//     payload, size or digest mismatch)
func Unpack(data []byte) ([]byte, error) {
	if len(data) < section.EnvelopeHeaderSize {
		return nil, errs.ErrInvalidHeaderSize
	}
	if !bytes.Equal(data[:section.MagicSize], section.EnvelopeMagic[:]) {
		return nil, errs.ErrInvalidMagic
	}

	engine := endian.GetLittleEndianEngine()
	compressionType := format.CompressionType(data[section.MagicSize])
	originalSize := engine.Uint32(data[5:9])
	digest := engine.Uint64(data[9:17])

	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return nil, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidCompressionType, byte(compressionType))
	}

	container, err := codec.Decompress(data[section.EnvelopeHeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("envelope decompression failed: %w", err)
	}
	if container == nil {
		container = []byte{}
	}

	if uint32(len(container)) != originalSize {
		return nil, fmt.Errorf("%w: envelope has %d of %d bytes", errs.ErrTruncatedPayload, len(container), originalSize)
	}
	if hash.Digest(container) != digest {
		return nil, errs.ErrChecksumMismatch
	}

	return container, nil
}

// Stats reports the transport compression achieved by an envelope without
// unpacking it.
func Stats(data []byte) (compress.CompressionStats, error) {
	if len(data) < section.EnvelopeHeaderSize {
		return compress.CompressionStats{}, errs.ErrInvalidHeaderSize
	}
	if !bytes.Equal(data[:section.MagicSize], section.EnvelopeMagic[:]) {
		return compress.CompressionStats{}, errs.ErrInvalidMagic
	}

	engine := endian.GetLittleEndianEngine()

	return compress.CompressionStats{
		Algorithm:      format.CompressionType(data[section.MagicSize]),
		OriginalSize:   int64(engine.Uint32(data[5:9])),
		CompressedSize: int64(len(data) - section.EnvelopeHeaderSize),
	}, nil
}
