// Package wavelength maps byte values onto the visible light spectrum.
//
// The mapping assigns each of the 256 byte values a wavelength in nanometers,
// spread linearly across the visible band (380-780 nm). It is deterministic,
// strictly monotonic, and invertible, which is all the codec needs: the
// wavelength key orders symbol tables, nothing more. No physical optics are
// modeled here.
package wavelength

import "math"

const (
	// MinNm is the wavelength assigned to byte value 0.
	MinNm = 380.0
	// MaxNm is the wavelength assigned to byte value 255.
	MaxNm = 780.0

	spanNm = MaxNm - MinNm
)

// Key returns the wavelength in nanometers assigned to the given byte value.
//
// The mapping is strictly monotonic: Key(a) < Key(b) whenever a < b, so
// sorting byte values by Key is equivalent to sorting them numerically.
// Encode and decode do not need to agree on this formula, since symbol
// tables are transmitted explicitly.
func Key(value byte) float64 {
	return MinNm + spanNm*float64(value)/255.0
}

// Value returns the byte value whose wavelength is nearest to the given key,
// clamping keys outside the visible band to the nearest end.
func Value(key float64) byte {
	scaled := math.Round((key - MinNm) * 255.0 / spanNm)
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}

	return byte(scaled)
}
