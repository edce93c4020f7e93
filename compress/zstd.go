package compress

// ZstdCompressor provides Zstandard compression for luxbin containers at rest.
//
// This compressor is designed for scenarios where compression ratio matters
// more than compression speed:
//   - Cold storage and archival of frame-sequence containers
//   - Network transmission where bandwidth is limited
//   - Scenarios where decompression happens infrequently
//
// Two implementations exist behind build tags, mirroring the cgo and pure-Go
// Zstandard bindings; both produce interoperable streams.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
