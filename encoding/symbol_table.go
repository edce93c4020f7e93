package encoding

import (
	"math/bits"
	"slices"

	"github.com/Luxbin-labs/luxbin-photonic-codec/wavelength"
)

// Histogram counts occurrences of each byte value in data.
//
// A fixed 256-slot counting array keeps table construction allocation-free
// and independent of any shared state.
func Histogram(data []byte) [256]int {
	var counts [256]int
	for _, b := range data {
		counts[b]++
	}

	return counts
}

// Table is the ordered list of distinct byte values present in a buffer.
//
// Symbols are ordered by their wavelength key, which is monotonic in byte
// value, so the stored order is ascending numeric order. The table is
// rebuildable from its stored byte values alone; no frequency information
// is retained.
type Table struct {
	symbols []byte
	index   [256]int16 // -1 when the value is absent
}

// BuildTable constructs the symbol table for data, ordered by wavelength key.
func BuildTable(data []byte) Table {
	counts := Histogram(data)

	symbols := make([]byte, 0, 256)
	for v := 0; v < 256; v++ {
		if counts[v] > 0 {
			symbols = append(symbols, byte(v))
		}
	}

	// The counting loop already yields ascending numeric order; sorting by
	// wavelength key keeps the table order tied to the remapper contract.
	slices.SortFunc(symbols, func(a, b byte) int {
		ka, kb := wavelength.Key(a), wavelength.Key(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		default:
			return 0
		}
	})

	return TableFromSymbols(symbols)
}

// TableFromSymbols rebuilds a Table from stored symbol bytes, preserving
// their stored order. Used on the decode path.
func TableFromSymbols(symbols []byte) Table {
	t := Table{symbols: symbols}
	for i := range t.index {
		t.index[i] = -1
	}
	for i, v := range symbols {
		t.index[v] = int16(i)
	}

	return t
}

// Len returns the number of distinct symbols N.
func (t Table) Len() int {
	return len(t.symbols)
}

// Symbols returns the table's symbol bytes in stored order.
func (t Table) Symbols() []byte {
	return t.symbols
}

// IndexOf returns the symbol index of value, or -1 if value is not in the table.
func (t Table) IndexOf(value byte) int {
	return int(t.index[value])
}

// ValueAt returns the byte value stored at the given symbol index.
// ok is false when index is outside [0, N-1].
func (t Table) ValueAt(index int) (value byte, ok bool) {
	if index < 0 || index >= len(t.symbols) {
		return 0, false
	}

	return t.symbols[index], true
}

// IndexWidth returns the bit width of this table's symbol indices.
func (t Table) IndexWidth() int {
	return IndexWidth(len(t.symbols))
}

// IndexWidth returns max(1, ceil(log2(n))) for a table of n symbols.
//
// The minimum is clamped to 1: a single-symbol table still spends one bit per
// symbol rather than special-casing N=1. Encode and decode must both derive
// the width from this function or data corrupts silently.
func IndexWidth(n int) int {
	if n <= 2 {
		return 1
	}

	return bits.Len(uint(n - 1))
}
