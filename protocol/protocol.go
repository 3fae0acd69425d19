// Package protocol defines the wire-level constants of the IR stream format:
// magic numbers, tag bytes, placeholder bytes, and the encoding variants.
//
// All values are version-fixed. The tag set is closed; a byte outside the
// set expected at a given parser position makes the stream corrupted.
// Every multi-byte integer on the wire is big-endian.
package protocol

// Encoding identifies the stream's encoding variant. It is determined once
// per stream by the magic number and fixed thereafter.
type Encoding uint8

const (
	// EncodingFourByte uses 32-bit encoded variables and delta-encoded
	// timestamps (1, 2, or 4 byte signed deltas).
	EncodingFourByte Encoding = 0x1
	// EncodingEightByte uses 64-bit encoded variables and absolute
	// millisecond timestamps.
	EncodingEightByte Encoding = 0x2
)

func (e Encoding) String() string {
	switch e {
	case EncodingFourByte:
		return "FourByte"
	case EncodingEightByte:
		return "EightByte"
	default:
		return "Unknown"
	}
}

// MagicNumberLength is the length of the stream's leading magic number.
const MagicNumberLength = 4

// Magic numbers. Exactly one must match the first MagicNumberLength bytes
// of a stream.
var (
	FourByteEncodingMagicNumber  = []byte{0xFD, 0x2F, 0xB5, 0x29}
	EightByteEncodingMagicNumber = []byte{0xFD, 0x2F, 0xB5, 0x30}
)

// Payload tag bytes. Each message frame is a sequence of tagged records:
// zero or more variable records, one logtype record, one timestamp record.
const (
	TagEndOfStream byte = 0x00 // stream terminator, no payload

	TagVarStrLenUByte  byte = 0x11 // dictionary variable, uint8 length prefix
	TagVarStrLenUShort byte = 0x12 // dictionary variable, uint16 length prefix
	TagVarStrLenInt    byte = 0x13 // dictionary variable, int32 length prefix

	TagVarFourByteEncoding  byte = 0x18 // encoded variable, 4-byte payload (four-byte encoding only)
	TagVarEightByteEncoding byte = 0x19 // encoded variable, 8-byte payload (eight-byte encoding only)

	TagLogtypeStrLenUByte  byte = 0x21 // logtype, uint8 length prefix
	TagLogtypeStrLenUShort byte = 0x22 // logtype, uint16 length prefix
	TagLogtypeStrLenInt    byte = 0x23 // logtype, int32 length prefix

	TagTimestampVal        byte = 0x30 // absolute timestamp, 8-byte payload (eight-byte encoding only)
	TagTimestampDeltaByte  byte = 0x31 // timestamp delta, int8 payload (four-byte encoding only)
	TagTimestampDeltaShort byte = 0x32 // timestamp delta, int16 payload (four-byte encoding only)
	TagTimestampDeltaInt   byte = 0x33 // timestamp delta, int32 payload (four-byte encoding only)
)

// Metadata tag bytes, used only inside the preamble.
const (
	MetadataJSONEncoding byte = 0x01 // metadata type: JSON blob
	MetadataLengthUByte  byte = 0x11 // metadata length as uint8
	MetadataLengthUShort byte = 0x12 // metadata length as uint16
)

// Variable placeholder bytes inside a logtype template. The byte following
// EscapeCharacter is always literal static text.
const (
	PlaceholderFloat      byte = 0x11
	PlaceholderInteger    byte = 0x12
	PlaceholderDictionary byte = 0x13
	EscapeCharacter       byte = 0x5C
)
