// Package errs defines the sentinel errors shared by the luxbin codec packages.
//
// All decode-side failures are format errors: the input is corrupted,
// truncated, or produced by an incompatible writer. They are fatal and never
// retried; callers can test for specific conditions with errors.Is.
package errs

import "errors"

var (
	// ErrInvalidMagic indicates the container does not start with the luxbin magic marker.
	ErrInvalidMagic = errors.New("invalid magic marker")

	// ErrUnsupportedVersion indicates a format version this decoder does not understand.
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrUnknownMode indicates a mode byte outside the known encoding modes.
	ErrUnknownMode = errors.New("unknown encoding mode")

	// ErrTruncatedPayload indicates the container ends before its declared payload.
	ErrTruncatedPayload = errors.New("truncated payload")

	// ErrInvalidHeaderSize indicates a header slice of the wrong length.
	ErrInvalidHeaderSize = errors.New("invalid header size")

	// ErrRunDataExhausted indicates RLE run records ran out before the declared
	// original length was reproduced.
	ErrRunDataExhausted = errors.New("run data exhausted before original length")

	// ErrSymbolIndexRange indicates a stored symbol index outside the symbol table.
	ErrSymbolIndexRange = errors.New("symbol index out of table range")

	// ErrMissingReference indicates a delta unit with no preceding keyframe.
	ErrMissingReference = errors.New("delta unit without reference frame")

	// ErrPositionRange indicates a delta position beyond the reference frame length.
	ErrPositionRange = errors.New("delta position out of reference range")

	// ErrUnknownUnitTag indicates a frame unit tag other than 'K' or 'D'.
	ErrUnknownUnitTag = errors.New("unknown frame unit tag")

	// ErrChecksumMismatch indicates an envelope whose payload digest does not match.
	ErrChecksumMismatch = errors.New("envelope checksum mismatch")

	// ErrInvalidCompressionType indicates an envelope compression byte outside the known set.
	ErrInvalidCompressionType = errors.New("invalid compression type")
)
