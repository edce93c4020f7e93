// Package codec implements the luxbin single-buffer container format.
//
// Compress builds a wavelength-ordered symbol table over the distinct byte
// values of the input, encodes the buffer as either a bit-packed symbol index
// stream (SymbolPacked) or run-length records (SymbolRLE), and keeps whichever
// candidate is smaller. When neither candidate beats storing the bytes
// verbatim, the container falls back to Raw mode, which bounds expansion to
// the fixed 10-byte header.
//
// # Container layout
//
// All multi-byte integers are little-endian:
//
//	magic(4) | version(1) | mode(1) | originalLength(4) | [uniqueCount(2) | symbolTable(N)] | payload
//
//   - SymbolPacked payload: ceil(originalLength * indexWidth / 8) packed bytes
//   - SymbolRLE payload: runCount(4) followed by run records, each
//     symbolIndex(1, or 2 when N > 255) + runLength(2)
//   - Raw payload: originalLength verbatim bytes, symbol table omitted
//
// Index width is always derived as max(1, ceil(log2(N))) on both sides; it is
// never stored in the current format.
//
// # Legacy containers
//
// Version 1 containers remain decodable. Their symbol table entries carry a
// 4-byte stored frequency that is parsed and discarded, and the index width
// is read from an explicit byte after the table instead of being derived.
// Legacy decoding lives in its own decoder type, selected by the version
// field, and never mixes with the current decode path.
//
// # Symmetry
//
// decompress(compress(b)) == b for every byte buffer b, including the empty
// buffer, and len(compress(b)) <= len(b) + 10 always holds. Compression is
// deterministic: equal inputs produce byte-identical containers.
package codec
