package section

import (
	"bytes"

	"github.com/Luxbin-labs/luxbin-photonic-codec/endian"
	"github.com/Luxbin-labs/luxbin-photonic-codec/errs"
	"github.com/Luxbin-labs/luxbin-photonic-codec/format"
)

// ContainerHeader is the fixed-size header at the start of every
// single-buffer container.
//
// Wire layout (little-endian):
//
//	magic(4) | formatVersion(1) | mode(1) | originalLength(4)
type ContainerHeader struct {
	// Version is the container layout revision.
	Version format.Version // byte offset 4
	// Mode is the payload encoding mode.
	Mode format.Mode // byte offset 5
	// OriginalLength is the byte length of the uncompressed buffer.
	OriginalLength uint32 // byte offset 6-9
}

// NewContainerHeader creates a header for the current format version.
func NewContainerHeader(mode format.Mode, originalLength uint32) *ContainerHeader {
	return &ContainerHeader{
		Version:        format.VersionCurrent,
		Mode:           mode,
		OriginalLength: originalLength,
	}
}

// Parse parses the header from the start of data.
//
// It validates the magic marker and the minimum length, nothing more;
// version and mode dispatch belongs to the decoder.
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is shorter than HeaderSize,
//     ErrInvalidMagic if the magic marker is absent
func (h *ContainerHeader) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}
	if !bytes.Equal(data[:MagicSize], Magic[:]) {
		return errs.ErrInvalidMagic
	}

	engine := endian.GetLittleEndianEngine()
	h.Version = format.Version(data[VersionOffset])
	h.Mode = format.Mode(data[ModeOffset])
	h.OriginalLength = engine.Uint32(data[OriginalLengthOffset : OriginalLengthOffset+4])

	return nil
}

// AppendTo serializes the header and appends it to buf.
func (h *ContainerHeader) AppendTo(buf []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	buf = append(buf, Magic[:]...)
	buf = append(buf, byte(h.Version), byte(h.Mode))
	buf = engine.AppendUint32(buf, h.OriginalLength)

	return buf
}

// Bytes serializes the header into a new byte slice of HeaderSize bytes.
func (h *ContainerHeader) Bytes() []byte {
	return h.AppendTo(make([]byte, 0, HeaderSize))
}
