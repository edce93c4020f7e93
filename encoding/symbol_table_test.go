package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistogram(t *testing.T) {
	counts := Histogram([]byte("AAAAABBBBBCCCCC"))
	require.Equal(t, 5, counts['A'])
	require.Equal(t, 5, counts['B'])
	require.Equal(t, 5, counts['C'])
	require.Equal(t, 0, counts['D'])
}

func TestBuildTable_WavelengthOrder(t *testing.T) {
	// Input order does not matter; the table is ordered by wavelength key,
	// which is ascending numeric order.
	table := BuildTable([]byte{200, 5, 100, 5, 200, 50})
	require.Equal(t, 4, table.Len())
	require.Equal(t, []byte{5, 50, 100, 200}, table.Symbols())

	require.Equal(t, 0, table.IndexOf(5))
	require.Equal(t, 3, table.IndexOf(200))
	require.Equal(t, -1, table.IndexOf(7))

	v, ok := table.ValueAt(2)
	require.True(t, ok)
	require.Equal(t, byte(100), v)

	_, ok = table.ValueAt(4)
	require.False(t, ok)
	_, ok = table.ValueAt(-1)
	require.False(t, ok)
}

func TestBuildTable_IndependentOfFrequencyOrder(t *testing.T) {
	// Same distinct values with very different frequencies yield the same table.
	a := BuildTable([]byte{1, 1, 1, 1, 2, 3})
	b := BuildTable([]byte{3, 3, 3, 3, 2, 1})
	require.Equal(t, a.Symbols(), b.Symbols())
}

func TestTableFromSymbols_RoundTrip(t *testing.T) {
	orig := BuildTable([]byte("the quick brown fox"))
	rebuilt := TableFromSymbols(orig.Symbols())
	require.Equal(t, orig.Symbols(), rebuilt.Symbols())
	for _, s := range orig.Symbols() {
		require.Equal(t, orig.IndexOf(s), rebuilt.IndexOf(s))
	}
}

func TestBuildTable_AllDistinct(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	table := BuildTable(data)
	require.Equal(t, 256, table.Len())
	require.Equal(t, 8, table.IndexWidth())
}

func TestIndexWidth(t *testing.T) {
	cases := []struct {
		n     int
		width int
	}{
		{1, 1}, // clamped: single-symbol tables still spend one bit
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{8, 3},
		{9, 4},
		{16, 4},
		{17, 5},
		{128, 7},
		{129, 8},
		{256, 8},
	}
	for _, c := range cases {
		require.Equal(t, c.width, IndexWidth(c.n), "n=%d", c.n)
	}
}
