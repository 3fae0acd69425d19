package decoder

import (
	"bytes"
	"fmt"

	"github.com/logtide/irstream/errs"
	"github.com/logtide/irstream/protocol"
	"github.com/logtide/irstream/reader"
)

// EncodingType reads the stream's magic number and returns the encoding
// variant it selects.
//
// Exactly one of the two protocol magics must match; any other prefix is a
// corrupted stream. The returned encoding is fixed for the life of the
// stream and selects the tag set every later record is classified against.
func EncodingType(r reader.Reader) (protocol.Encoding, error) {
	magic, err := r.TryReadExact(protocol.MagicNumberLength)
	if err != nil {
		return 0, err
	}

	switch {
	case bytes.Equal(magic, protocol.FourByteEncodingMagicNumber):
		return protocol.EncodingFourByte, nil
	case bytes.Equal(magic, protocol.EightByteEncodingMagicNumber):
		return protocol.EncodingEightByte, nil
	default:
		return 0, fmt.Errorf("%w: unknown magic number % X", errs.ErrCorruptedStream, magic)
	}
}

// readMetadataInfo reads the metadata type byte and the length-tagged
// metadata size. Only the u8 and u16 length forms are legal in the preamble.
func readMetadataInfo(r reader.Reader) (metadataType byte, metadataSize uint16, err error) {
	metadataType, err = r.TryReadByte()
	if err != nil {
		return 0, 0, err
	}

	tag, err := r.TryReadByte()
	if err != nil {
		return 0, 0, err
	}

	switch tag {
	case protocol.MetadataLengthUByte:
		v, err := readUint8(r)
		if err != nil {
			return 0, 0, err
		}
		metadataSize = uint16(v)
	case protocol.MetadataLengthUShort:
		v, err := readUint16(r)
		if err != nil {
			return 0, 0, err
		}
		metadataSize = v
	default:
		return 0, 0, fmt.Errorf("%w: unexpected tag 0x%02X for metadata length", errs.ErrCorruptedStream, tag)
	}

	return metadataType, metadataSize, nil
}

// DecodePreamble reads the metadata framing that follows the magic number
// and seeks the reader past the metadata blob.
//
// The metadata type byte is opaque to the decoder and returned to the
// caller along with the blob's absolute start position and size, so the
// caller can revisit the blob later through the same seekable reader.
//
// Returns:
//   - metadataType: The metadata type tag (e.g. protocol.MetadataJSONEncoding)
//   - metadataPos: Absolute offset of the first metadata byte
//   - metadataSize: Size of the metadata blob in bytes
//   - error: errs.ErrIncompleteStream or errs.ErrCorruptedStream on failure
func DecodePreamble(r reader.Reader) (metadataType byte, metadataPos int64, metadataSize uint16, err error) {
	metadataType, metadataSize, err = readMetadataInfo(r)
	if err != nil {
		return 0, 0, 0, err
	}

	metadataPos = r.Position()
	if err := r.TrySeekFromBegin(metadataPos + int64(metadataSize)); err != nil {
		return 0, 0, 0, err
	}

	return metadataType, metadataPos, metadataSize, nil
}

// DecodePreambleCopy reads the metadata framing and copies the metadata
// blob into a caller-owned buffer.
//
// Returns:
//   - metadataType: The metadata type tag
//   - metadata: The metadata blob, owned by the caller
//   - error: errs.ErrIncompleteStream or errs.ErrCorruptedStream on failure
func DecodePreambleCopy(r reader.Reader) (metadataType byte, metadata []byte, err error) {
	metadataType, metadataSize, err := readMetadataInfo(r)
	if err != nil {
		return 0, nil, err
	}

	metadata = make([]byte, metadataSize)
	if err := r.TryReadFull(metadata); err != nil {
		return 0, nil, err
	}

	return metadataType, metadata, nil
}
