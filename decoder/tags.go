package decoder

import (
	"github.com/logtide/irstream/protocol"
)

// isVariableTag reports whether tag begins a variable record under enc.
// isEncodedVar distinguishes an encoded (fixed-width integer) variable from
// a dictionary (length-prefixed string) variable.
//
// The four-byte encoding only accepts the four-byte encoded-variable tag,
// and the eight-byte encoding only the eight-byte one; the dictionary
// variable tags are shared by both encodings.
func isVariableTag(enc protocol.Encoding, tag byte) (isEncodedVar, ok bool) {
	switch tag {
	case protocol.TagVarStrLenUByte, protocol.TagVarStrLenUShort, protocol.TagVarStrLenInt:
		return false, true
	}

	if enc == protocol.EncodingEightByte {
		if tag == protocol.TagVarEightByteEncoding {
			return true, true
		}
	} else {
		if tag == protocol.TagVarFourByteEncoding {
			return true, true
		}
	}

	return false, false
}

// isLogtypeTag reports whether tag begins a logtype record.
func isLogtypeTag(tag byte) bool {
	switch tag {
	case protocol.TagLogtypeStrLenUByte, protocol.TagLogtypeStrLenUShort, protocol.TagLogtypeStrLenInt:
		return true
	default:
		return false
	}
}
