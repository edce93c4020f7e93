package section

// Single-buffer container magic marker ("LXB1").
var Magic = [MagicSize]byte{'L', 'X', 'B', '1'}

// Storage envelope magic marker ("LXBE").
var EnvelopeMagic = [MagicSize]byte{'L', 'X', 'B', 'E'}

// offsets and section sizes of the single-buffer container
const (
	MagicSize  = 4  // magic marker size in bytes
	HeaderSize = 10 // magic(4) + version(1) + mode(1) + originalLength(4)

	VersionOffset        = 4 // byte offset of the format version field
	ModeOffset           = 5 // byte offset of the mode field
	OriginalLengthOffset = 6 // byte offset of the original length field

	UniqueCountSize = 2 // symbol table length prefix in bytes
	RunCountSize    = 4 // RLE run count field in bytes
	RunLengthSize   = 2 // per-record run length field in bytes

	LegacyTableEntrySize = 5 // legacy layout: value(1) + stored frequency(4)
	LegacyIndexWidthSize = 1 // legacy layout: explicit index width byte
)

// offsets and section sizes of the frame-sequence container
const (
	SequenceHeaderSize  = 8  // frameCount(4) + keyframeInterval(4)
	KeyUnitHeaderSize   = 9  // tag(1) + compressedLength(4) + originalLength(4)
	DeltaUnitHeaderSize = 13 // tag(1) + changeCount(4) + positionsByteLength(4) + valuesCompressedLength(4)
	PositionSize        = 4  // delta positions are fixed-width uint32

	KeyUnitTag   = 'K' // unit tag for keyframes
	DeltaUnitTag = 'D' // unit tag for delta frames
)

// sizes of the storage envelope
const (
	EnvelopeHeaderSize = 17 // magic(4) + compression(1) + originalSize(4) + digest(8)
)
