package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Luxbin-labs/luxbin-photonic-codec/errs"
	"github.com/Luxbin-labs/luxbin-photonic-codec/format"
)

func TestContainerHeader_RoundTrip(t *testing.T) {
	h := NewContainerHeader(format.ModeSymbolRLE, 0xDEADBEEF)
	data := h.Bytes()
	require.Len(t, data, HeaderSize)

	var parsed ContainerHeader
	require.NoError(t, parsed.Parse(data))
	require.Equal(t, format.VersionCurrent, parsed.Version)
	require.Equal(t, format.ModeSymbolRLE, parsed.Mode)
	require.Equal(t, uint32(0xDEADBEEF), parsed.OriginalLength)
}

func TestContainerHeader_Layout(t *testing.T) {
	h := NewContainerHeader(format.ModeRaw, 1)
	data := h.Bytes()

	require.Equal(t, Magic[:], data[:MagicSize])
	require.Equal(t, byte(format.VersionCurrent), data[VersionOffset])
	require.Equal(t, byte(format.ModeRaw), data[ModeOffset])
	// originalLength is little-endian
	require.Equal(t, []byte{1, 0, 0, 0}, data[OriginalLengthOffset:])
}

func TestContainerHeader_Parse_TooShort(t *testing.T) {
	var h ContainerHeader
	err := h.Parse([]byte{'L', 'X', 'B'})
	require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
}

func TestContainerHeader_Parse_BadMagic(t *testing.T) {
	data := NewContainerHeader(format.ModeRaw, 0).Bytes()
	data[0] = 'X'

	var h ContainerHeader
	require.ErrorIs(t, h.Parse(data), errs.ErrInvalidMagic)
}
