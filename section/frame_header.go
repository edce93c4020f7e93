package section

import (
	"github.com/Luxbin-labs/luxbin-photonic-codec/endian"
	"github.com/Luxbin-labs/luxbin-photonic-codec/errs"
)

// SequenceHeader is the fixed-size header of a frame-sequence container.
//
// Wire layout (little-endian):
//
//	frameCount(4) | keyframeInterval(4)
type SequenceHeader struct {
	FrameCount       uint32 // byte offset 0-3
	KeyframeInterval uint32 // byte offset 4-7
}

// Parse parses the sequence header from the start of data.
func (h *SequenceHeader) Parse(data []byte) error {
	if len(data) < SequenceHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()
	h.FrameCount = engine.Uint32(data[0:4])
	h.KeyframeInterval = engine.Uint32(data[4:8])

	return nil
}

// AppendTo serializes the sequence header and appends it to buf.
func (h *SequenceHeader) AppendTo(buf []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	buf = engine.AppendUint32(buf, h.FrameCount)
	buf = engine.AppendUint32(buf, h.KeyframeInterval)

	return buf
}

// KeyUnitHeader is the header of a keyframe unit, including its tag byte.
//
// Wire layout (little-endian):
//
//	tag('K', 1) | compressedLength(4) | originalLength(4)
type KeyUnitHeader struct {
	CompressedLength uint32 // byte offset 1-4
	OriginalLength   uint32 // byte offset 5-8
}

// Parse parses a key unit header from the start of data.
// The tag byte must be present and equal to KeyUnitTag.
func (h *KeyUnitHeader) Parse(data []byte) error {
	if len(data) < KeyUnitHeaderSize {
		return errs.ErrInvalidHeaderSize
	}
	if data[0] != KeyUnitTag {
		return errs.ErrUnknownUnitTag
	}

	engine := endian.GetLittleEndianEngine()
	h.CompressedLength = engine.Uint32(data[1:5])
	h.OriginalLength = engine.Uint32(data[5:9])

	return nil
}

// AppendTo serializes the key unit header, tag included, and appends it to buf.
func (h *KeyUnitHeader) AppendTo(buf []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	buf = append(buf, KeyUnitTag)
	buf = engine.AppendUint32(buf, h.CompressedLength)
	buf = engine.AppendUint32(buf, h.OriginalLength)

	return buf
}

// DeltaUnitHeader is the header of a delta unit, including its tag byte.
//
// Wire layout (little-endian):
//
//	tag('D', 1) | changeCount(4) | positionsByteLength(4) | valuesCompressedLength(4)
type DeltaUnitHeader struct {
	ChangeCount            uint32 // byte offset 1-4
	PositionsByteLength    uint32 // byte offset 5-8
	ValuesCompressedLength uint32 // byte offset 9-12
}

// Parse parses a delta unit header from the start of data.
// The tag byte must be present and equal to DeltaUnitTag.
func (h *DeltaUnitHeader) Parse(data []byte) error {
	if len(data) < DeltaUnitHeaderSize {
		return errs.ErrInvalidHeaderSize
	}
	if data[0] != DeltaUnitTag {
		return errs.ErrUnknownUnitTag
	}

	engine := endian.GetLittleEndianEngine()
	h.ChangeCount = engine.Uint32(data[1:5])
	h.PositionsByteLength = engine.Uint32(data[5:9])
	h.ValuesCompressedLength = engine.Uint32(data[9:13])

	return nil
}

// AppendTo serializes the delta unit header, tag included, and appends it to buf.
func (h *DeltaUnitHeader) AppendTo(buf []byte) []byte {
	engine := endian.GetLittleEndianEngine()

	buf = append(buf, DeltaUnitTag)
	buf = engine.AppendUint32(buf, h.ChangeCount)
	buf = engine.AppendUint32(buf, h.PositionsByteLength)
	buf = engine.AppendUint32(buf, h.ValuesCompressedLength)

	return buf
}
