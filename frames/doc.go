// Package frames implements the luxbin frame-sequence container: an ordered
// list of same-shaped byte buffers compressed as keyframes and sparse deltas.
//
// Every keyframeInterval-th frame is a Key unit, a complete single-buffer
// container from the codec package. Frames in between are compared against
// the last keyframe and stored as Delta units: the positions that changed
// (raw little-endian uint32) and the new values at those positions, the
// values themselves re-compressed through the single-buffer codec. A frame
// that differs from its reference in more than half of its positions, or
// whose length differs from the reference, is promoted to a keyframe; that
// bounds the worst case to one full re-encode instead of an oversized
// position list.
//
// # Container layout
//
// All multi-byte integers are little-endian:
//
//	frameCount(4) | keyframeInterval(4) | units...
//
// Key unit:   'K' | compressedLength(4) | originalLength(4) | container bytes
// Delta unit: 'D' | changeCount(4) | positionsByteLength(4) | valuesCompressedLength(4) | positions | values container
//
// Decoding is strictly sequential: a Delta unit is only meaningful against
// the reference state left by the preceding Key unit, and a sequence that
// opens with a Delta unit is a format error.
//
// # Concurrency
//
// An Encoder or Decoder owns its reference-frame slot for the duration of a
// call and must not be shared between concurrent sequence operations.
// Distinct instances are fully independent; the package holds no global state.
package frames
