package format

type (
	// Mode identifies the payload encoding of a single-buffer container.
	Mode uint8
	// Version identifies the container layout revision.
	Version uint8
	// CompressionType identifies the transport compression of a storage envelope.
	CompressionType uint8
)

const (
	ModeSymbolPacked Mode = 0   // ModeSymbolPacked represents a bit-packed symbol index stream.
	ModeSymbolRLE    Mode = 1   // ModeSymbolRLE represents run-length encoded symbol indices.
	ModeRaw          Mode = 255 // ModeRaw represents original bytes stored verbatim.

	VersionLegacy  Version = 1 // VersionLegacy is the v1 layout with per-symbol frequency fields.
	VersionCurrent Version = 2 // VersionCurrent is the current layout with value-only symbol tables.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (m Mode) String() string {
	switch m {
	case ModeSymbolPacked:
		return "SymbolPacked"
	case ModeSymbolRLE:
		return "SymbolRLE"
	case ModeRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

func (v Version) String() string {
	switch v {
	case VersionLegacy:
		return "Legacy"
	case VersionCurrent:
		return "Current"
	default:
		return "Unknown"
	}
}

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
