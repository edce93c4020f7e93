package codec

import (
	"fmt"

	"github.com/Luxbin-labs/luxbin-photonic-codec/encoding"
	"github.com/Luxbin-labs/luxbin-photonic-codec/endian"
	"github.com/Luxbin-labs/luxbin-photonic-codec/errs"
	"github.com/Luxbin-labs/luxbin-photonic-codec/format"
	"github.com/Luxbin-labs/luxbin-photonic-codec/section"
)

// legacyDecoder decodes version 1 containers.
//
// The legacy layout differs from the current one in two ways:
//   - symbol table entries are 5 bytes: value(1) + stored frequency(4);
//     the frequency is present on disk but unused and is discarded
//   - an explicit indexWidth byte follows the table and governs both the
//     packed bit width and the RLE symbol index size (width > 8 means a
//     2-byte index); the width is never derived
//
// Writers no longer produce this layout; it exists for wire compatibility.
type legacyDecoder struct{}

func (d legacyDecoder) decodeBody(h *section.ContainerHeader, body []byte) ([]byte, error) {
	if h.OriginalLength == 0 {
		return []byte{}, nil
	}

	switch h.Mode {
	case format.ModeRaw:
		return decodeRaw(h, body)
	case format.ModeSymbolPacked, format.ModeSymbolRLE:
		table, width, payload, err := d.readSymbolTable(body)
		if err != nil {
			return nil, err
		}
		if h.Mode == format.ModeSymbolPacked {
			return decodePacked(h, table, width, payload)
		}

		symbolIndexSize := 1
		if width > 8 {
			symbolIndexSize = 2
		}

		return decodeRLE(h, table, symbolIndexSize, payload)
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownMode, h.Mode)
	}
}

// readSymbolTable reads the legacy 5-byte-entry table and the explicit
// indexWidth byte that follows it.
func (d legacyDecoder) readSymbolTable(body []byte) (encoding.Table, int, []byte, error) {
	if len(body) < section.UniqueCountSize {
		return encoding.Table{}, 0, nil, fmt.Errorf("%w: missing symbol count", errs.ErrTruncatedPayload)
	}

	engine := endian.GetLittleEndianEngine()
	n := int(engine.Uint16(body))
	body = body[section.UniqueCountSize:]

	tableBytes := n * section.LegacyTableEntrySize
	if len(body) < tableBytes+section.LegacyIndexWidthSize {
		return encoding.Table{}, 0, nil, fmt.Errorf("%w: legacy symbol table needs %d bytes, %d remain",
			errs.ErrTruncatedPayload, tableBytes+section.LegacyIndexWidthSize, len(body))
	}

	symbols := make([]byte, n)
	for i := 0; i < n; i++ {
		// value byte first; the 4-byte stored frequency is skipped.
		symbols[i] = body[i*section.LegacyTableEntrySize]
	}

	width := int(body[tableBytes])
	if width < 1 || width > encoding.MaxBitWidth {
		return encoding.Table{}, 0, nil, fmt.Errorf("%w: stored index width %d", errs.ErrTruncatedPayload, width)
	}

	payload := body[tableBytes+section.LegacyIndexWidthSize:]

	return encoding.TableFromSymbols(symbols), width, payload, nil
}
