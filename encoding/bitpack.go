package encoding

import "fmt"

// MaxBitWidth is the widest value BitWriter and BitReader accept.
// Symbol indices never need more than 8 bits (N <= 256).
const MaxBitWidth = 16

// BitWriter packs values of arbitrary bit width contiguously into a byte
// slice, MSB-first within each byte. The final byte is zero-padded.
//
// The zero value is ready to use; NewBitWriter pre-sizes the buffer when the
// total bit count is known up front.
type BitWriter struct {
	buf   []byte
	nbits int
}

// NewBitWriter creates a BitWriter with capacity for the given number of bits.
func NewBitWriter(capacityBits int) *BitWriter {
	if capacityBits < 0 {
		capacityBits = 0
	}

	return &BitWriter{
		buf: make([]byte, 0, (capacityBits+7)/8),
	}
}

// WriteBits appends the low `width` bits of value, most significant bit first.
//
// width must be in [1, MaxBitWidth]; values wider than `width` bits are
// truncated to their low bits.
func (w *BitWriter) WriteBits(value uint16, width int) {
	for i := width - 1; i >= 0; i-- {
		if w.nbits&7 == 0 {
			w.buf = append(w.buf, 0)
		}
		if value>>uint(i)&1 != 0 {
			w.buf[w.nbits>>3] |= 0x80 >> uint(w.nbits&7)
		}
		w.nbits++
	}
}

// Bytes returns the packed bytes written so far. The returned slice aliases
// the writer's internal buffer and is valid until the next WriteBits call.
func (w *BitWriter) Bytes() []byte {
	return w.buf
}

// BitLen returns the number of bits written.
func (w *BitWriter) BitLen() int {
	return w.nbits
}

// Len returns the number of bytes needed to hold the written bits.
func (w *BitWriter) Len() int {
	return len(w.buf)
}

// Reset clears the writer for reuse, retaining the allocated buffer.
func (w *BitWriter) Reset() {
	w.buf = w.buf[:0]
	w.nbits = 0
}

// BitReader reads values of arbitrary bit width from a byte slice written by
// BitWriter, MSB-first within each byte.
type BitReader struct {
	data []byte
	pos  int // bit position
}

// NewBitReader creates a BitReader over the given packed bytes.
func NewBitReader(data []byte) *BitReader {
	return &BitReader{data: data}
}

// ReadBits reads the next `width` bits and returns them as the low bits of
// the result. It fails when fewer than `width` bits remain.
func (r *BitReader) ReadBits(width int) (uint16, error) {
	if width < 1 || width > MaxBitWidth {
		return 0, fmt.Errorf("bit width %d out of range [1, %d]", width, MaxBitWidth)
	}
	if r.pos+width > len(r.data)*8 {
		return 0, fmt.Errorf("bit stream exhausted: need %d bits, %d remain", width, len(r.data)*8-r.pos)
	}

	var v uint16
	for i := 0; i < width; i++ {
		v <<= 1
		if r.data[r.pos>>3]&(0x80>>uint(r.pos&7)) != 0 {
			v |= 1
		}
		r.pos++
	}

	return v, nil
}

// Remaining returns the number of unread bits.
func (r *BitReader) Remaining() int {
	return len(r.data)*8 - r.pos
}
