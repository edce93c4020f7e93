// Package analysis provides read-only compressibility statistics over byte
// buffers.
//
// The report is purely descriptive: entropy, symbol counts, and the most
// frequent values with their wavelength positions. The codecs never consult
// it; mode selection is driven solely by candidate sizes.
package analysis

import (
	"math"
	"slices"

	"github.com/Luxbin-labs/luxbin-photonic-codec/encoding"
	"github.com/Luxbin-labs/luxbin-photonic-codec/wavelength"
)

// SymbolStat describes one byte value in an analyzed buffer.
type SymbolStat struct {
	// Value is the byte value.
	Value byte
	// Count is the number of occurrences in the buffer.
	Count int
	// Ratio is Count divided by the buffer length.
	Ratio float64
	// WavelengthNm is the value's wavelength key in nanometers.
	WavelengthNm float64
	// TableIndex is the value's position in the wavelength-ordered symbol table.
	TableIndex int
}

// Report summarizes the compressibility characteristics of a buffer.
type Report struct {
	// Length is the analyzed buffer length in bytes.
	Length int
	// UniqueSymbols is the number of distinct byte values present.
	UniqueSymbols int
	// Entropy is the Shannon entropy in bits per symbol, using observed
	// frequencies as probabilities. Zero for empty and single-value buffers.
	Entropy float64
	// Density is 1 - UniqueSymbols/256: how much of the value space is unused.
	Density float64
	// Top holds the most frequent values, highest count first. Ties break
	// toward the lower byte value so reports are deterministic.
	Top []SymbolStat
}

// Analyze computes a compressibility report for data, including the topK most
// frequent values. A topK of zero or less omits the per-symbol breakdown.
//
// Analyze is a pure function: it holds no state between calls and is safe to
// call from concurrent goroutines.
func Analyze(data []byte, topK int) Report {
	counts := encoding.Histogram(data)
	table := encoding.BuildTable(data)

	r := Report{
		Length:        len(data),
		UniqueSymbols: table.Len(),
		Density:       1.0 - float64(table.Len())/256.0,
	}
	if len(data) == 0 {
		return r
	}

	total := float64(len(data))
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		r.Entropy -= p * math.Log2(p)
	}

	if topK <= 0 {
		return r
	}

	stats := make([]SymbolStat, 0, table.Len())
	for _, v := range table.Symbols() {
		stats = append(stats, SymbolStat{
			Value:        v,
			Count:        counts[v],
			Ratio:        float64(counts[v]) / total,
			WavelengthNm: wavelength.Key(v),
			TableIndex:   table.IndexOf(v),
		})
	}

	slices.SortStableFunc(stats, func(a, b SymbolStat) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}

		return int(a.Value) - int(b.Value)
	})

	if topK < len(stats) {
		stats = stats[:topK]
	}
	r.Top = stats

	return r
}
