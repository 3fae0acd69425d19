package decoder

import (
	"fmt"

	"github.com/logtide/irstream/errs"
	"github.com/logtide/irstream/protocol"
	"github.com/logtide/irstream/reader"
)

// parseLogtype decodes the next logtype record. tag must be one of the
// logtype length tags; the indicated-width length is followed by that many
// template bytes.
//
// The returned slice aliases the reader's buffer when the reader supports
// zero-copy reads; callers that retain it must copy (the message decoder
// interns it instead).
func parseLogtype(r reader.Reader, tag byte) ([]byte, error) {
	var length int
	switch tag {
	case protocol.TagLogtypeStrLenUByte:
		v, err := readUint8(r)
		if err != nil {
			return nil, err
		}
		length = int(v)
	case protocol.TagLogtypeStrLenUShort:
		v, err := readUint16(r)
		if err != nil {
			return nil, err
		}
		length = int(v)
	case protocol.TagLogtypeStrLenInt:
		v, err := readInt32(r)
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: negative logtype length %d", errs.ErrCorruptedStream, v)
		}
		length = int(v)
	default:
		return nil, fmt.Errorf("%w: unexpected tag 0x%02X for logtype", errs.ErrCorruptedStream, tag)
	}

	return r.TryReadExact(length)
}

// parseDictionaryVar decodes the next dictionary-variable record.
// Symmetric to parseLogtype but over the variable-string tag set.
func parseDictionaryVar(r reader.Reader, tag byte) ([]byte, error) {
	var length int
	switch tag {
	case protocol.TagVarStrLenUByte:
		v, err := readUint8(r)
		if err != nil {
			return nil, err
		}
		length = int(v)
	case protocol.TagVarStrLenUShort:
		v, err := readUint16(r)
		if err != nil {
			return nil, err
		}
		length = int(v)
	case protocol.TagVarStrLenInt:
		v, err := readInt32(r)
		if err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: negative dictionary variable length %d", errs.ErrCorruptedStream, v)
		}
		length = int(v)
	default:
		return nil, fmt.Errorf("%w: unexpected tag 0x%02X for dictionary variable", errs.ErrCorruptedStream, tag)
	}

	return r.TryReadExact(length)
}

// parseEncodedVar decodes an encoded-variable payload: a 4-byte signed
// integer under the four-byte encoding, an 8-byte one under the eight-byte
// encoding. The value is returned sign-extended.
func parseEncodedVar(r reader.Reader, enc protocol.Encoding) (int64, error) {
	if enc == protocol.EncodingEightByte {
		return readInt64(r)
	}

	v, err := readInt32(r)
	if err != nil {
		return 0, err
	}

	return int64(v), nil
}

// parseTimestamp decodes a timestamp record.
//
// Under the eight-byte encoding, tag must be the absolute-timestamp tag and
// the payload is an 8-byte epoch-millisecond value. Under the four-byte
// encoding, tag selects the delta width (1, 2, or 4 byte signed) and the
// sign-extended delta is returned; accumulating deltas into an absolute
// timestamp is the caller's responsibility.
func parseTimestamp(r reader.Reader, enc protocol.Encoding, tag byte) (int64, error) {
	if enc == protocol.EncodingEightByte {
		if tag != protocol.TagTimestampVal {
			return 0, fmt.Errorf("%w: unexpected tag 0x%02X for timestamp", errs.ErrCorruptedStream, tag)
		}

		return readInt64(r)
	}

	switch tag {
	case protocol.TagTimestampDeltaByte:
		v, err := readInt8(r)
		return int64(v), err
	case protocol.TagTimestampDeltaShort:
		v, err := readInt16(r)
		return int64(v), err
	case protocol.TagTimestampDeltaInt:
		v, err := readInt32(r)
		return int64(v), err
	default:
		return 0, fmt.Errorf("%w: unexpected tag 0x%02X for timestamp delta", errs.ErrCorruptedStream, tag)
	}
}
