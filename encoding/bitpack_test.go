package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitWriter_SingleBits(t *testing.T) {
	w := NewBitWriter(8)
	for _, bit := range []uint16{1, 0, 1, 1, 0, 0, 1, 0} {
		w.WriteBits(bit, 1)
	}

	require.Equal(t, 8, w.BitLen())
	require.Equal(t, []byte{0b10110010}, w.Bytes())
}

func TestBitWriter_ByteBoundaryOverlap(t *testing.T) {
	// Three 3-bit values straddle the first byte boundary.
	w := NewBitWriter(9)
	w.WriteBits(0b101, 3)
	w.WriteBits(0b011, 3)
	w.WriteBits(0b110, 3)

	require.Equal(t, 9, w.BitLen())
	require.Equal(t, 2, w.Len())
	// 101 011 11 | 0 0000000 (final byte zero-padded)
	require.Equal(t, []byte{0b10101111, 0b00000000}, w.Bytes())
}

func TestBitWriter_TruncatesWideValues(t *testing.T) {
	w := NewBitWriter(4)
	w.WriteBits(0xFF, 4) // only the low 4 bits survive
	require.Equal(t, []byte{0b11110000}, w.Bytes())
}

func TestBitWriter_Reset(t *testing.T) {
	w := NewBitWriter(16)
	w.WriteBits(0xAB, 8)
	w.Reset()
	require.Equal(t, 0, w.BitLen())
	require.Equal(t, 0, w.Len())

	w.WriteBits(0x1, 1)
	require.Equal(t, []byte{0x80}, w.Bytes())
}

func TestBitReader_RoundTrip(t *testing.T) {
	values := []uint16{5, 0, 7, 3, 1, 6, 2, 4}
	w := NewBitWriter(len(values) * 3)
	for _, v := range values {
		w.WriteBits(v, 3)
	}

	r := NewBitReader(w.Bytes())
	for _, want := range values {
		got, err := r.ReadBits(3)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestBitReader_RoundTripAllWidths(t *testing.T) {
	for width := 1; width <= 8; width++ {
		maxVal := uint16(1)<<uint(width) - 1
		w := NewBitWriter(int(maxVal+1) * width)
		for v := uint16(0); v <= maxVal; v++ {
			w.WriteBits(v, width)
		}

		r := NewBitReader(w.Bytes())
		for v := uint16(0); v <= maxVal; v++ {
			got, err := r.ReadBits(width)
			require.NoError(t, err)
			require.Equal(t, v, got, "width %d value %d", width, v)
		}
	}
}

func TestBitReader_Exhausted(t *testing.T) {
	r := NewBitReader([]byte{0xFF})
	_, err := r.ReadBits(8)
	require.NoError(t, err)
	require.Equal(t, 0, r.Remaining())

	_, err = r.ReadBits(1)
	require.Error(t, err)
}

func TestBitReader_InvalidWidth(t *testing.T) {
	r := NewBitReader([]byte{0xFF, 0xFF, 0xFF})
	_, err := r.ReadBits(0)
	require.Error(t, err)
	_, err = r.ReadBits(MaxBitWidth + 1)
	require.Error(t, err)
}
