package codec

import (
	"fmt"

	"github.com/Luxbin-labs/luxbin-photonic-codec/encoding"
	"github.com/Luxbin-labs/luxbin-photonic-codec/endian"
	"github.com/Luxbin-labs/luxbin-photonic-codec/errs"
	"github.com/Luxbin-labs/luxbin-photonic-codec/format"
	"github.com/Luxbin-labs/luxbin-photonic-codec/section"
)

// Decompress decodes a single-buffer container back into its original bytes.
//
// The version field selects the decoder: current containers go through the
// derived-width path, legacy (version 1) containers through the stored-width
// path. Both return a freshly allocated buffer.
//
// Returns:
//   - []byte: Decoded buffer of exactly originalLength bytes
//   - error: Format errors (bad magic, unsupported version, unknown mode,
//     truncated or inconsistent payload); no partial buffer is returned
func Decompress(container []byte) ([]byte, error) {
	var h section.ContainerHeader
	if err := h.Parse(container); err != nil {
		return nil, err
	}

	body := container[section.HeaderSize:]

	switch h.Version {
	case format.VersionCurrent:
		return decodeBody(&h, body)
	case format.VersionLegacy:
		return legacyDecoder{}.decodeBody(&h, body)
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnsupportedVersion, h.Version)
	}
}

func decodeBody(h *section.ContainerHeader, body []byte) ([]byte, error) {
	if h.OriginalLength == 0 {
		// Empty buffers short-circuit before any payload reads.
		return []byte{}, nil
	}

	switch h.Mode {
	case format.ModeRaw:
		return decodeRaw(h, body)
	case format.ModeSymbolPacked, format.ModeSymbolRLE:
		table, payload, err := readSymbolTable(body)
		if err != nil {
			return nil, err
		}
		if h.Mode == format.ModeSymbolPacked {
			return decodePacked(h, table, table.IndexWidth(), payload)
		}

		symbolIndexSize := 1
		if table.Len() > 255 {
			symbolIndexSize = 2
		}

		return decodeRLE(h, table, symbolIndexSize, payload)
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownMode, h.Mode)
	}
}

func decodeRaw(h *section.ContainerHeader, body []byte) ([]byte, error) {
	if uint32(len(body)) < h.OriginalLength {
		return nil, fmt.Errorf("%w: raw payload has %d of %d bytes", errs.ErrTruncatedPayload, len(body), h.OriginalLength)
	}

	out := make([]byte, h.OriginalLength)
	copy(out, body)

	return out, nil
}

// readSymbolTable reads the uniqueCount prefix and table bytes, returning the
// rebuilt table and the remaining payload. N is derived purely from the
// stored table, never from the original length.
func readSymbolTable(body []byte) (encoding.Table, []byte, error) {
	if len(body) < section.UniqueCountSize {
		return encoding.Table{}, nil, fmt.Errorf("%w: missing symbol count", errs.ErrTruncatedPayload)
	}

	engine := endian.GetLittleEndianEngine()
	n := int(engine.Uint16(body))
	body = body[section.UniqueCountSize:]

	if len(body) < n {
		return encoding.Table{}, nil, fmt.Errorf("%w: symbol table has %d of %d entries", errs.ErrTruncatedPayload, len(body), n)
	}

	symbols := make([]byte, n)
	copy(symbols, body[:n])

	return encoding.TableFromSymbols(symbols), body[n:], nil
}

func decodePacked(h *section.ContainerHeader, table encoding.Table, width int, payload []byte) ([]byte, error) {
	need := (int(h.OriginalLength)*width + 7) / 8
	if len(payload) < need {
		return nil, fmt.Errorf("%w: packed payload has %d of %d bytes", errs.ErrTruncatedPayload, len(payload), need)
	}

	r := encoding.NewBitReader(payload)
	out := make([]byte, 0, h.OriginalLength)
	for i := uint32(0); i < h.OriginalLength; i++ {
		idx, err := r.ReadBits(width)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", errs.ErrTruncatedPayload, err)
		}

		v, ok := table.ValueAt(int(idx))
		if !ok {
			return nil, fmt.Errorf("%w: index %d, table size %d", errs.ErrSymbolIndexRange, idx, table.Len())
		}
		out = append(out, v)
	}

	return out, nil
}

func decodeRLE(h *section.ContainerHeader, table encoding.Table, symbolIndexSize int, payload []byte) ([]byte, error) {
	if len(payload) < section.RunCountSize {
		return nil, fmt.Errorf("%w: missing run count", errs.ErrTruncatedPayload)
	}

	engine := endian.GetLittleEndianEngine()
	runCount := int(engine.Uint32(payload))
	payload = payload[section.RunCountSize:]

	recordSize := symbolIndexSize + section.RunLengthSize
	out := make([]byte, 0, h.OriginalLength)

	for rec := 0; rec < runCount && uint32(len(out)) < h.OriginalLength; rec++ {
		if len(payload) < recordSize {
			return nil, fmt.Errorf("%w: run record %d truncated", errs.ErrTruncatedPayload, rec)
		}

		var idx int
		if symbolIndexSize == 2 {
			idx = int(engine.Uint16(payload))
		} else {
			idx = int(payload[0])
		}
		runLength := int(engine.Uint16(payload[symbolIndexSize:]))
		payload = payload[recordSize:]

		v, ok := table.ValueAt(idx)
		if !ok {
			return nil, fmt.Errorf("%w: index %d, table size %d", errs.ErrSymbolIndexRange, idx, table.Len())
		}

		// Stop at originalLength even if the final run overshoots; trailing
		// run data beyond the declared length is ignored.
		for j := 0; j < runLength && uint32(len(out)) < h.OriginalLength; j++ {
			out = append(out, v)
		}
	}

	if uint32(len(out)) < h.OriginalLength {
		return nil, fmt.Errorf("%w: produced %d of %d bytes", errs.ErrRunDataExhausted, len(out), h.OriginalLength)
	}

	return out, nil
}
