// Package irstream decodes the compact, tag-driven intermediate
// representation (IR) of structured log streams.
//
// An IR stream encodes each log message as a logtype template (static text
// with placeholder bytes), an ordered list of encoded variables (numeric
// tokens packed into fixed-width integers), and an ordered list of
// dictionary variables (verbatim strings). Two wire variants exist: the
// eight-byte encoding carries absolute millisecond timestamps and 64-bit
// encoded variables; the four-byte encoding carries delta-encoded
// timestamps and 32-bit encoded variables. All wire integers are
// big-endian.
//
// # Basic Usage
//
// Decoding a stream:
//
//	stream, err := irstream.OpenBuffer(data)
//	if err != nil {
//	    return err
//	}
//	for msg := range stream.All() {
//	    fmt.Printf("%d %s\n", msg.Timestamp, msg.Text)
//	}
//	if err := stream.Err(); err != nil {
//	    return err
//	}
//
// Stream handles the preamble, selects the right decoder for the stream's
// encoding, and accumulates four-byte timestamp deltas into absolute
// timestamps. For fine-grained control (seek-form preambles, raw deltas,
// custom readers), use the decoder and reader packages directly.
//
// # Package Structure
//
//   - protocol: wire constants (tags, magics, placeholders)
//   - reader: the sequential, seekable byte source
//   - decoder: preamble parsing, message state machine, rendering
//   - metadata: typed view over the JSON metadata blob
//   - compress: codecs for unwrapping compressed IR files
//   - errs: the closed sentinel error set
package irstream

import (
	"errors"
	"io"
	"iter"
	"strconv"

	"github.com/logtide/irstream/compress"
	"github.com/logtide/irstream/decoder"
	"github.com/logtide/irstream/errs"
	"github.com/logtide/irstream/metadata"
	"github.com/logtide/irstream/protocol"
	"github.com/logtide/irstream/reader"
)

// Stream decodes one IR stream front to back.
//
// Stream is not safe for concurrent use. Independent streams may be
// decoded concurrently from separate goroutines.
type Stream struct {
	r            *reader.BytesReader
	enc          protocol.Encoding
	metadataType byte
	metadataBlob []byte

	four  *decoder.FourByteDecoder
	eight *decoder.EightByteDecoder

	lastTimestamp int64
	err           error
}

// OpenBuffer opens an uncompressed IR stream held in memory.
//
// The preamble (magic number and metadata) is consumed immediately; the
// returned Stream is positioned at the first message frame. For four-byte
// streams whose metadata carries a reference timestamp, delta accumulation
// starts from it.
//
// Parameters:
//   - data: The raw stream bytes (must not be mutated while decoding)
//
// Returns:
//   - *Stream: Stream positioned at the first message frame
//   - error: errs.ErrIncompleteStream or errs.ErrCorruptedStream on a bad preamble
func OpenBuffer(data []byte) (*Stream, error) {
	r := reader.NewBytesReader(data)

	enc, err := decoder.EncodingType(r)
	if err != nil {
		return nil, err
	}

	metadataType, blob, err := decoder.DecodePreambleCopy(r)
	if err != nil {
		return nil, err
	}

	s := &Stream{
		r:            r,
		enc:          enc,
		metadataType: metadataType,
		metadataBlob: blob,
	}

	if enc == protocol.EncodingFourByte {
		s.four = decoder.NewFourByteDecoder()
		s.lastTimestamp = s.referenceTimestamp()
	} else {
		s.eight = decoder.NewEightByteDecoder()
	}

	return s, nil
}

// Open reads an IR file from r, unwrapping it with the given compression
// codec, and opens the decompressed stream.
func Open(r io.Reader, compressionType compress.CompressionType) (*Stream, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	raw, err := compress.DecompressStream(compressionType, data)
	if err != nil {
		return nil, err
	}

	return OpenBuffer(raw)
}

// referenceTimestamp extracts the delta-accumulation start from JSON
// metadata. Streams without one accumulate from zero.
func (s *Stream) referenceTimestamp() int64 {
	if s.metadataType != protocol.MetadataJSONEncoding {
		return 0
	}

	m, err := metadata.Parse(s.metadataBlob)
	if err != nil {
		return 0
	}

	ts, err := strconv.ParseInt(m.ReferenceTimestamp, 10, 64)
	if err != nil {
		return 0
	}

	return ts
}

// Encoding returns the stream's encoding variant.
func (s *Stream) Encoding() protocol.Encoding {
	return s.enc
}

// MetadataType returns the preamble's metadata type tag.
func (s *Stream) MetadataType() byte {
	return s.metadataType
}

// MetadataBytes returns the raw metadata blob.
func (s *Stream) MetadataBytes() []byte {
	return s.metadataBlob
}

// Metadata parses the metadata blob as JSON metadata.
//
// Returns an error for non-JSON metadata types or malformed blobs.
func (s *Stream) Metadata() (metadata.Metadata, error) {
	if s.metadataType != protocol.MetadataJSONEncoding {
		return metadata.Metadata{}, errors.New("metadata is not JSON encoded")
	}

	return metadata.Parse(s.metadataBlob)
}

// Next decodes the next message.
//
// Message.Timestamp is absolute for both encodings: four-byte deltas are
// accumulated onto the stream's running timestamp.
//
// Returns:
//   - decoder.Message: The decoded message on success
//   - error: errs.ErrEndOfStream at the stream terminator,
//     errs.ErrIncompleteStream, errs.ErrCorruptedStream, or errs.ErrDecode
func (s *Stream) Next() (decoder.Message, error) {
	var (
		msg decoder.Message
		err error
	)

	if s.enc == protocol.EncodingFourByte {
		msg, err = s.four.Next(s.r)
		if err != nil {
			return decoder.Message{}, err
		}
		s.lastTimestamp += msg.Timestamp
		msg.Timestamp = s.lastTimestamp
	} else {
		msg, err = s.eight.Next(s.r)
		if err != nil {
			return decoder.Message{}, err
		}
		s.lastTimestamp = msg.Timestamp
	}

	return msg, nil
}

// All returns an iterator over the stream's remaining messages.
//
// Iteration stops at the stream terminator or on the first error; check
// Err afterwards to distinguish the two.
func (s *Stream) All() iter.Seq[decoder.Message] {
	return func(yield func(decoder.Message) bool) {
		for {
			msg, err := s.Next()
			if err != nil {
				if !errors.Is(err, errs.ErrEndOfStream) {
					s.err = err
				}
				return
			}

			if !yield(msg) {
				return
			}
		}
	}
}

// Err returns the error that terminated a previous All iteration, or nil
// if iteration ended at the stream terminator.
func (s *Stream) Err() error {
	return s.err
}
