// Package errs defines the sentinel errors shared across the irstream
// packages. The set is closed: every failure a decoder operation can return
// wraps exactly one of these sentinels, so callers classify with errors.Is.
package errs

import "errors"

var (
	// ErrIncompleteStream indicates the reader was exhausted mid-frame.
	// Retrying after more bytes arrive may succeed only if the underlying
	// reader supports resumption.
	ErrIncompleteStream = errors.New("incomplete IR stream")

	// ErrCorruptedStream indicates a structural violation: a tag in an
	// illegal position, an unknown tag, a wrong magic number, or a negative
	// length. The stream is poisoned; no resynchronization is attempted.
	ErrCorruptedStream = errors.New("corrupted IR stream")

	// ErrDecode indicates well-formed framing whose message could not be
	// rendered: variable count mismatch, trailing escape, or a malformed
	// variable token.
	ErrDecode = errors.New("IR message decode error")

	// ErrEndOfStream indicates the stream terminator was observed cleanly
	// at a frame boundary.
	ErrEndOfStream = errors.New("end of IR stream")

	// ErrOutOfBounds indicates a seek target outside the reader's range.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrUnsupportedCompression indicates an unknown compression id.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
