package decoder

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/logtide/irstream/errs"
	"github.com/logtide/irstream/protocol"
	"github.com/logtide/irstream/reader"
)

func TestParseLogtype_AllLengthWidths(t *testing.T) {
	template := []byte("static text")

	// u8 length
	buf := append([]byte{byte(len(template))}, template...)
	got, err := parseLogtype(reader.NewBytesReader(buf), protocol.TagLogtypeStrLenUByte)
	require.NoError(t, err)
	require.Equal(t, template, got)

	// u16 length; minimal form is not required
	buf = binary.BigEndian.AppendUint16(nil, uint16(len(template)))
	buf = append(buf, template...)
	got, err = parseLogtype(reader.NewBytesReader(buf), protocol.TagLogtypeStrLenUShort)
	require.NoError(t, err)
	require.Equal(t, template, got)

	// i32 length
	buf = binary.BigEndian.AppendUint32(nil, uint32(len(template)))
	buf = append(buf, template...)
	got, err = parseLogtype(reader.NewBytesReader(buf), protocol.TagLogtypeStrLenInt)
	require.NoError(t, err)
	require.Equal(t, template, got)
}

func TestParseLogtype_NegativeLength(t *testing.T) {
	buf := binary.BigEndian.AppendUint32(nil, 0xFFFFFFFF) // -1 as int32
	_, err := parseLogtype(reader.NewBytesReader(buf), protocol.TagLogtypeStrLenInt)
	require.ErrorIs(t, err, errs.ErrCorruptedStream)
}

func TestParseLogtype_WrongTag(t *testing.T) {
	_, err := parseLogtype(reader.NewBytesReader([]byte{0x01}), protocol.TagVarStrLenUByte)
	require.ErrorIs(t, err, errs.ErrCorruptedStream)
}

func TestParseLogtype_IncompleteBody(t *testing.T) {
	buf := []byte{0x05, 'a', 'b'} // declares 5 bytes, supplies 2
	_, err := parseLogtype(reader.NewBytesReader(buf), protocol.TagLogtypeStrLenUByte)
	require.ErrorIs(t, err, errs.ErrIncompleteStream)
}

func TestParseDictionaryVar(t *testing.T) {
	buf := append([]byte{0x04}, []byte("WARN")...)
	got, err := parseDictionaryVar(reader.NewBytesReader(buf), protocol.TagVarStrLenUByte)
	require.NoError(t, err)
	require.Equal(t, []byte("WARN"), got)

	buf = binary.BigEndian.AppendUint32(nil, 0x80000000) // negative int32
	_, err = parseDictionaryVar(reader.NewBytesReader(buf), protocol.TagVarStrLenInt)
	require.ErrorIs(t, err, errs.ErrCorruptedStream)

	_, err = parseDictionaryVar(reader.NewBytesReader(nil), protocol.TagLogtypeStrLenUByte)
	require.ErrorIs(t, err, errs.ErrCorruptedStream)
}

func TestParseDictionaryVar_Empty(t *testing.T) {
	got, err := parseDictionaryVar(reader.NewBytesReader([]byte{0x00}), protocol.TagVarStrLenUByte)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestParseEncodedVar(t *testing.T) {
	buf := binary.BigEndian.AppendUint32(nil, 0x0000002A)
	v, err := parseEncodedVar(reader.NewBytesReader(buf), protocol.EncodingFourByte)
	require.NoError(t, err)
	require.Equal(t, int64(42), v)

	// Sign extension of a negative four-byte value.
	buf = binary.BigEndian.AppendUint32(nil, 0xFFFFFFD6) // -42
	v, err = parseEncodedVar(reader.NewBytesReader(buf), protocol.EncodingFourByte)
	require.NoError(t, err)
	require.Equal(t, int64(-42), v)

	buf = binary.BigEndian.AppendUint64(nil, uint64(1)<<40)
	v, err = parseEncodedVar(reader.NewBytesReader(buf), protocol.EncodingEightByte)
	require.NoError(t, err)
	require.Equal(t, int64(1)<<40, v)
}

func TestParseTimestamp_EightByte(t *testing.T) {
	buf := []byte{0x00, 0x00, 0x01, 0x83, 0x07, 0xF9, 0x5C, 0x00}
	ts, err := parseTimestamp(reader.NewBytesReader(buf), protocol.EncodingEightByte, protocol.TagTimestampVal)
	require.NoError(t, err)
	require.Equal(t, int64(0x18307F95C00), ts)

	// Delta tags are corrupted under the eight-byte encoding.
	_, err = parseTimestamp(reader.NewBytesReader(buf), protocol.EncodingEightByte, protocol.TagTimestampDeltaByte)
	require.ErrorIs(t, err, errs.ErrCorruptedStream)
}

func TestParseTimestamp_FourByteDeltas(t *testing.T) {
	ts, err := parseTimestamp(reader.NewBytesReader([]byte{0xFF}), protocol.EncodingFourByte, protocol.TagTimestampDeltaByte)
	require.NoError(t, err)
	require.Equal(t, int64(-1), ts)

	ts, err = parseTimestamp(reader.NewBytesReader([]byte{0x00, 0x05}), protocol.EncodingFourByte, protocol.TagTimestampDeltaShort)
	require.NoError(t, err)
	require.Equal(t, int64(5), ts)

	ts, err = parseTimestamp(reader.NewBytesReader([]byte{0xFF, 0xFF, 0xFF, 0x00}), protocol.EncodingFourByte, protocol.TagTimestampDeltaInt)
	require.NoError(t, err)
	require.Equal(t, int64(-256), ts)

	// The absolute-timestamp tag is corrupted under the four-byte encoding.
	_, err = parseTimestamp(reader.NewBytesReader(nil), protocol.EncodingFourByte, protocol.TagTimestampVal)
	require.ErrorIs(t, err, errs.ErrCorruptedStream)
}

func TestParseTimestamp_Incomplete(t *testing.T) {
	_, err := parseTimestamp(reader.NewBytesReader([]byte{0x00}), protocol.EncodingEightByte, protocol.TagTimestampVal)
	require.ErrorIs(t, err, errs.ErrIncompleteStream)

	_, err = parseTimestamp(reader.NewBytesReader([]byte{0x00}), protocol.EncodingFourByte, protocol.TagTimestampDeltaShort)
	require.ErrorIs(t, err, errs.ErrIncompleteStream)
}
