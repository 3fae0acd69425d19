package decoder

import (
	"github.com/logtide/irstream/reader"
)

// Fixed-width big-endian integer reads. Each read consumes exactly the
// integer's width or fails with errs.ErrIncompleteStream; the decoder
// treats a short read as fatal for the current frame.

func readUint8(r reader.Reader) (uint8, error) {
	b, err := r.TryReadByte()
	if err != nil {
		return 0, err
	}

	return b, nil
}

func readUint16(r reader.Reader) (uint16, error) {
	b, err := r.TryReadExact(2)
	if err != nil {
		return 0, err
	}

	return wireOrder.Uint16(b), nil
}

func readUint32(r reader.Reader) (uint32, error) {
	b, err := r.TryReadExact(4)
	if err != nil {
		return 0, err
	}

	return wireOrder.Uint32(b), nil
}

func readUint64(r reader.Reader) (uint64, error) {
	b, err := r.TryReadExact(8)
	if err != nil {
		return 0, err
	}

	return wireOrder.Uint64(b), nil
}

func readInt8(r reader.Reader) (int8, error) {
	v, err := readUint8(r)
	return int8(v), err
}

func readInt16(r reader.Reader) (int16, error) {
	v, err := readUint16(r)
	return int16(v), err
}

func readInt32(r reader.Reader) (int32, error) {
	v, err := readUint32(r)
	return int32(v), err
}

func readInt64(r reader.Reader) (int64, error) {
	v, err := readUint64(r)
	return int64(v), err
}
