// Package encoding provides the low-level primitives of the luxbin container
// formats: bit-level packing, wavelength-ordered symbol tables, and run-length
// coalescing.
//
// These primitives are format-agnostic building blocks. The codec package
// assembles them into the single-buffer container, and the frames package
// builds its sequence container on top of that.
//
// # Bit packing
//
// BitWriter and BitReader hide the byte-boundary overlap arithmetic behind a
// single reusable cursor, so encode and decode share one definition of the
// bit layout (MSB-first within each byte, final byte zero-padded):
//
//	w := encoding.NewBitWriter(len(data) * width)
//	for _, v := range data {
//	    w.WriteBits(uint16(table.IndexOf(v)), width)
//	}
//	payload := w.Bytes()
//
// # Symbol tables
//
// A Table holds the distinct byte values of a buffer ordered by their
// wavelength key. Index width is always derived from the table size with
// IndexWidth, never stored, so encode and decode agree bit-for-bit.
package encoding
