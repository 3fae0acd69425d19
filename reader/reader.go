// Package reader provides the sequential, seekable byte source consumed by
// the IR stream decoder.
//
// The Reader interface mirrors the decoder's needs exactly: exact-length
// reads that either fully succeed or report an incomplete stream, plus
// absolute positioning for the preamble's seek form. A failed read may leave
// the position partially advanced; the decoder treats incompleteness as
// fatal for the current frame, so no partial-commit guarantee is needed.
package reader

import (
	"io"

	"github.com/logtide/irstream/errs"
)

// Reader is a sequential, seekable byte source.
//
// Implementations are not required to be safe for concurrent use; the
// decoder borrows a Reader for the duration of a call and is strictly
// single-threaded per stream.
type Reader interface {
	// TryReadExact reads exactly n bytes and returns them, or
	// errs.ErrIncompleteStream if the source cannot supply n bytes.
	// The returned slice is only valid until the next call; callers that
	// retain it must copy.
	TryReadExact(n int) ([]byte, error)

	// TryReadByte reads a single byte.
	TryReadByte() (byte, error)

	// TryReadFull fills dst entirely, or returns errs.ErrIncompleteStream.
	TryReadFull(dst []byte) error

	// Position returns the current absolute offset from the beginning of
	// the stream.
	Position() int64

	// TrySeekFromBegin moves the position to the given absolute offset.
	// Seeking beyond the end of the stream returns errs.ErrIncompleteStream.
	TrySeekFromBegin(offset int64) error
}

// BytesReader is a Reader over an in-memory byte slice.
//
// TryReadExact returns subslices of the underlying buffer without copying;
// the buffer must not be mutated while the reader is in use.
type BytesReader struct {
	data []byte
	pos  int
}

var _ Reader = (*BytesReader)(nil)

// NewBytesReader creates a Reader over data, positioned at offset 0.
func NewBytesReader(data []byte) *BytesReader {
	return &BytesReader{data: data}
}

// ReadFrom drains r into memory and returns a Reader over the result.
//
// IR streams are decoded front to back but the preamble's seek form needs
// random access, so non-seekable sources are materialized up front.
func ReadFrom(r io.Reader) (*BytesReader, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return NewBytesReader(data), nil
}

// TryReadExact reads exactly n bytes, advancing the position.
//
// Returns errs.ErrIncompleteStream without advancing if fewer than n bytes
// remain.
func (r *BytesReader) TryReadExact(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, errs.ErrIncompleteStream
	}

	b := r.data[r.pos : r.pos+n]
	r.pos += n

	return b, nil
}

// TryReadByte reads a single byte, advancing the position.
func (r *BytesReader) TryReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, errs.ErrIncompleteStream
	}

	b := r.data[r.pos]
	r.pos++

	return b, nil
}

// TryReadFull fills dst entirely, advancing the position.
func (r *BytesReader) TryReadFull(dst []byte) error {
	b, err := r.TryReadExact(len(dst))
	if err != nil {
		return err
	}
	copy(dst, b)

	return nil
}

// Position returns the current absolute offset.
func (r *BytesReader) Position() int64 {
	return int64(r.pos)
}

// TrySeekFromBegin moves the position to offset.
//
// Seeking to len(data) is legal (the position is then at end of stream);
// anything past that returns errs.ErrIncompleteStream, and a negative
// offset returns errs.ErrOutOfBounds.
func (r *BytesReader) TrySeekFromBegin(offset int64) error {
	if offset < 0 {
		return errs.ErrOutOfBounds
	}
	if offset > int64(len(r.data)) {
		return errs.ErrIncompleteStream
	}

	r.pos = int(offset)

	return nil
}

// Len returns the number of unread bytes.
func (r *BytesReader) Len() int {
	return len(r.data) - r.pos
}
