package codec

import (
	"fmt"
	"math"

	"github.com/Luxbin-labs/luxbin-photonic-codec/encoding"
	"github.com/Luxbin-labs/luxbin-photonic-codec/endian"
	"github.com/Luxbin-labs/luxbin-photonic-codec/format"
	"github.com/Luxbin-labs/luxbin-photonic-codec/internal/pool"
	"github.com/Luxbin-labs/luxbin-photonic-codec/section"
)

// Compress encodes data into a single-buffer container.
//
// The encoder builds both the SymbolPacked and SymbolRLE candidates, keeps
// the smaller one (ties favor SymbolPacked), and falls back to Raw mode when
// the winner would not beat `len(data) + header` bytes. The result is always
// a freshly allocated slice; data is not retained.
//
// Parameters:
//   - data: Input buffer (empty input is valid and produces a minimal container)
//
// Returns:
//   - []byte: Complete container, at most len(data) + 10 bytes
//   - error: Input longer than 4GiB-1, which the 4-byte length field cannot represent
func Compress(data []byte) ([]byte, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("input length %d exceeds container limit", len(data))
	}

	originalLength := uint32(len(data))
	if originalLength == 0 {
		// Minimal container: decoders return an empty buffer on
		// originalLength == 0 before reading anything else.
		h := section.NewContainerHeader(format.ModeRaw, 0)

		return h.Bytes(), nil
	}

	table := encoding.BuildTable(data)
	n := table.Len()
	width := table.IndexWidth()

	symbolIndexSize := 1
	if n > 255 {
		symbolIndexSize = 2
	}

	tableSection := section.UniqueCountSize + n
	packedSize := section.HeaderSize + tableSection + (len(data)*width+7)/8

	runs := encoding.BuildRuns(data, table)
	rleSize := section.HeaderSize + tableSection + section.RunCountSize +
		len(runs)*(symbolIndexSize+section.RunLengthSize)

	mode := format.ModeSymbolPacked
	selectedSize := packedSize
	if rleSize < packedSize {
		mode = format.ModeSymbolRLE
		selectedSize = rleSize
	}

	// Raw fallback: structured encoding must beat verbatim bytes plus the
	// fixed header cost, or it is not worth the symbol table.
	if selectedSize >= len(data)+section.HeaderSize {
		return encodeRaw(data), nil
	}

	buf := pool.GetContainerBuffer()
	defer pool.PutContainerBuffer(buf)
	buf.Grow(selectedSize)

	engine := endian.GetLittleEndianEngine()
	h := section.NewContainerHeader(mode, originalLength)
	buf.B = h.AppendTo(buf.B)
	buf.B = engine.AppendUint16(buf.B, uint16(n))
	buf.MustWrite(table.Symbols())

	switch mode {
	case format.ModeSymbolPacked:
		appendPackedPayload(buf, data, table, width)
	default:
		appendRLEPayload(buf, runs, symbolIndexSize)
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

func encodeRaw(data []byte) []byte {
	h := section.NewContainerHeader(format.ModeRaw, uint32(len(data)))

	out := make([]byte, 0, section.HeaderSize+len(data))
	out = h.AppendTo(out)
	out = append(out, data...)

	return out
}

func appendPackedPayload(buf *pool.ByteBuffer, data []byte, table encoding.Table, width int) {
	w := encoding.NewBitWriter(len(data) * width)
	for _, b := range data {
		w.WriteBits(uint16(table.IndexOf(b)), width)
	}
	buf.MustWrite(w.Bytes())
}

func appendRLEPayload(buf *pool.ByteBuffer, runs []encoding.Run, symbolIndexSize int) {
	engine := endian.GetLittleEndianEngine()

	buf.B = engine.AppendUint32(buf.B, uint32(len(runs)))
	for _, r := range runs {
		if symbolIndexSize == 2 {
			buf.B = engine.AppendUint16(buf.B, r.Index)
		} else {
			buf.WriteByteValue(byte(r.Index))
		}
		buf.B = engine.AppendUint16(buf.B, r.Length)
	}
}
