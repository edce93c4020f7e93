package frames

import (
	"fmt"
	"math"

	"github.com/Luxbin-labs/luxbin-photonic-codec/codec"
	"github.com/Luxbin-labs/luxbin-photonic-codec/endian"
	"github.com/Luxbin-labs/luxbin-photonic-codec/internal/pool"
	"github.com/Luxbin-labs/luxbin-photonic-codec/section"
)

// sceneChangeRatio is the changed-position fraction above which a delta frame
// is promoted to a keyframe.
const sceneChangeRatio = 0.5

// Encoder compresses an ordered list of frames into a frame-sequence container.
//
// The encoder owns a reference-frame slot that is replaced at every keyframe
// and read between keyframes. It is not safe for concurrent use; concurrent
// callers must use independent Encoder instances.
type Encoder struct {
	interval  int
	reference []byte
}

// NewEncoder creates a frame-sequence encoder with the given keyframe interval.
//
// Parameters:
//   - keyframeInterval: Every keyframeInterval-th frame becomes a keyframe; must be >= 1
//
// Returns:
//   - *Encoder: A new encoder instance
//   - error: Invalid keyframe interval
func NewEncoder(keyframeInterval int) (*Encoder, error) {
	if keyframeInterval < 1 {
		return nil, fmt.Errorf("keyframe interval must be >= 1, got %d", keyframeInterval)
	}

	return &Encoder{interval: keyframeInterval}, nil
}

// EncodeAll compresses the frames into a single frame-sequence container.
//
// Each call starts a fresh sequence; reference state never leaks between
// calls. The frames slice and its buffers are not retained.
//
// Returns:
//   - []byte: Complete frame-sequence container
//   - error: Frame count or a frame length exceeding the 4-byte field limits,
//     or a single-buffer compression error
func (e *Encoder) EncodeAll(framesIn [][]byte) ([]byte, error) {
	if uint64(len(framesIn)) > math.MaxUint32 {
		return nil, fmt.Errorf("frame count %d exceeds container limit", len(framesIn))
	}

	e.reference = nil

	buf := pool.GetSequenceBuffer()
	defer pool.PutSequenceBuffer(buf)

	h := section.SequenceHeader{
		FrameCount:       uint32(len(framesIn)),
		KeyframeInterval: uint32(e.interval),
	}
	buf.B = h.AppendTo(buf.B)

	for i, frame := range framesIn {
		if uint64(len(frame)) > math.MaxUint32 {
			return nil, fmt.Errorf("frame %d length %d exceeds container limit", i, len(frame))
		}

		if i%e.interval == 0 {
			if err := e.appendKeyUnit(buf, frame); err != nil {
				return nil, fmt.Errorf("frame %d: %w", i, err)
			}

			continue
		}

		positions, values := computeDelta(e.reference, frame)

		// A delta unit carries no length field, so a length change is only
		// representable as a keyframe; a scene change is promoted for size.
		forceKey := len(frame) != len(e.reference) ||
			(len(frame) > 0 && float64(len(positions))/float64(len(frame)) > sceneChangeRatio)
		if forceKey {
			if err := e.appendKeyUnit(buf, frame); err != nil {
				return nil, fmt.Errorf("frame %d: %w", i, err)
			}

			continue
		}

		if err := appendDeltaUnit(buf, positions, values); err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// appendKeyUnit writes a Key unit and replaces the reference frame.
func (e *Encoder) appendKeyUnit(buf *pool.ByteBuffer, frame []byte) error {
	compressed, err := codec.Compress(frame)
	if err != nil {
		return err
	}

	h := section.KeyUnitHeader{
		CompressedLength: uint32(len(compressed)),
		OriginalLength:   uint32(len(frame)),
	}
	buf.Grow(section.KeyUnitHeaderSize + len(compressed))
	buf.B = h.AppendTo(buf.B)
	buf.MustWrite(compressed)

	// Reference is cloned: later frames must not observe caller mutations.
	e.reference = append([]byte(nil), frame...)

	return nil
}

// appendDeltaUnit writes a Delta unit: positions verbatim, values
// re-compressed through the single-buffer codec.
func appendDeltaUnit(buf *pool.ByteBuffer, positions []uint32, values []byte) error {
	compressedValues, err := codec.Compress(values)
	if err != nil {
		return err
	}

	engine := endian.GetLittleEndianEngine()
	h := section.DeltaUnitHeader{
		ChangeCount:            uint32(len(positions)),
		PositionsByteLength:    uint32(len(positions) * section.PositionSize),
		ValuesCompressedLength: uint32(len(compressedValues)),
	}
	buf.Grow(section.DeltaUnitHeaderSize + len(positions)*section.PositionSize + len(compressedValues))
	buf.B = h.AppendTo(buf.B)
	for _, p := range positions {
		buf.B = engine.AppendUint32(buf.B, p)
	}
	buf.MustWrite(compressedValues)

	return nil
}

// Encode is a convenience wrapper that compresses frames with a one-shot encoder.
func Encode(framesIn [][]byte, keyframeInterval int) ([]byte, error) {
	e, err := NewEncoder(keyframeInterval)
	if err != nil {
		return nil, err
	}

	return e.EncodeAll(framesIn)
}
