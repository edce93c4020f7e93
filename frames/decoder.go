package frames

import (
	"fmt"

	"github.com/Luxbin-labs/luxbin-photonic-codec/codec"
	"github.com/Luxbin-labs/luxbin-photonic-codec/endian"
	"github.com/Luxbin-labs/luxbin-photonic-codec/errs"
	"github.com/Luxbin-labs/luxbin-photonic-codec/section"
)

// Decoder reconstructs the original frames from a frame-sequence container.
//
// Like the Encoder, a Decoder owns its reference-frame slot and is not safe
// for concurrent use; distinct instances are independent.
type Decoder struct {
	reference []byte
}

// NewDecoder creates a frame-sequence decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// DecodeAll decodes every frame of the container, in order.
//
// Decoding is strictly sequential: each Delta unit is applied to the
// reference state left by the preceding Key unit. Any malformed unit is a
// fatal format error and no frames are returned.
//
// Returns:
//   - [][]byte: The reconstructed frames, frameCount entries
//   - error: Format errors (unknown tag, truncated unit, delta without
//     reference, position outside the reference frame)
func (d *Decoder) DecodeAll(data []byte) ([][]byte, error) {
	var h section.SequenceHeader
	if err := h.Parse(data); err != nil {
		return nil, err
	}

	d.reference = nil
	body := data[section.SequenceHeaderSize:]
	out := make([][]byte, 0, h.FrameCount)

	for i := uint32(0); i < h.FrameCount; i++ {
		if len(body) == 0 {
			return nil, fmt.Errorf("%w: unit %d missing", errs.ErrTruncatedPayload, i)
		}

		var (
			frame    []byte
			consumed int
			err      error
		)
		switch body[0] {
		case section.KeyUnitTag:
			frame, consumed, err = d.decodeKeyUnit(body)
		case section.DeltaUnitTag:
			frame, consumed, err = d.decodeDeltaUnit(body)
		default:
			err = fmt.Errorf("%w: 0x%02x", errs.ErrUnknownUnitTag, body[0])
		}
		if err != nil {
			return nil, fmt.Errorf("unit %d: %w", i, err)
		}

		out = append(out, frame)
		body = body[consumed:]
	}

	return out, nil
}

// decodeKeyUnit decodes an embedded single-buffer container and replaces the
// reference frame.
func (d *Decoder) decodeKeyUnit(body []byte) (frame []byte, consumed int, err error) {
	var h section.KeyUnitHeader
	if err := h.Parse(body); err != nil {
		return nil, 0, err
	}

	end := section.KeyUnitHeaderSize + int(h.CompressedLength)
	if len(body) < end {
		return nil, 0, fmt.Errorf("%w: key unit payload", errs.ErrTruncatedPayload)
	}

	frame, err = codec.Decompress(body[section.KeyUnitHeaderSize:end])
	if err != nil {
		return nil, 0, err
	}
	if uint32(len(frame)) != h.OriginalLength {
		return nil, 0, fmt.Errorf("%w: key unit decoded %d bytes, header says %d",
			errs.ErrTruncatedPayload, len(frame), h.OriginalLength)
	}

	d.reference = frame

	return frame, end, nil
}

// decodeDeltaUnit applies stored positions and re-compressed values to the
// current reference frame. The reference length defines the output length.
func (d *Decoder) decodeDeltaUnit(body []byte) (frame []byte, consumed int, err error) {
	if d.reference == nil {
		return nil, 0, errs.ErrMissingReference
	}

	var h section.DeltaUnitHeader
	if err := h.Parse(body); err != nil {
		return nil, 0, err
	}
	if uint64(h.PositionsByteLength) != uint64(h.ChangeCount)*section.PositionSize {
		return nil, 0, fmt.Errorf("%w: %d position bytes for %d changes",
			errs.ErrTruncatedPayload, h.PositionsByteLength, h.ChangeCount)
	}

	end := section.DeltaUnitHeaderSize + int(h.PositionsByteLength) + int(h.ValuesCompressedLength)
	if len(body) < end {
		return nil, 0, fmt.Errorf("%w: delta unit payload", errs.ErrTruncatedPayload)
	}

	engine := endian.GetLittleEndianEngine()
	posBytes := body[section.DeltaUnitHeaderSize : section.DeltaUnitHeaderSize+int(h.PositionsByteLength)]
	positions := make([]uint32, h.ChangeCount)
	for i := range positions {
		p := engine.Uint32(posBytes[i*section.PositionSize:])
		if p >= uint32(len(d.reference)) {
			return nil, 0, fmt.Errorf("%w: position %d, reference length %d",
				errs.ErrPositionRange, p, len(d.reference))
		}
		positions[i] = p
	}

	values, err := codec.Decompress(body[section.DeltaUnitHeaderSize+int(h.PositionsByteLength) : end])
	if err != nil {
		return nil, 0, err
	}
	if uint32(len(values)) != h.ChangeCount {
		return nil, 0, fmt.Errorf("%w: %d values for %d changes",
			errs.ErrTruncatedPayload, len(values), h.ChangeCount)
	}

	return applyDelta(d.reference, positions, values), end, nil
}

// Decode is a convenience wrapper that decodes a container with a one-shot decoder.
func Decode(data []byte) ([][]byte, error) {
	return NewDecoder().DecodeAll(data)
}
