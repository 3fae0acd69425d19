package decoder

import (
	"fmt"
	"strconv"

	"github.com/logtide/irstream/errs"
	"github.com/logtide/irstream/protocol"
)

// Encoded-variable token formatting. Integer tokens hold the value itself;
// float tokens pack the digits of the original textual literal together
// with its digit count, decimal point position, and sign:
//
//	four-byte token (MSB to LSB):
//	  1 bit : is negative
//	 25 bits: digits, as an integer
//	  3 bits: number of digits minus 1
//	  3 bits: decimal point position from the right minus 1
//
//	eight-byte token (MSB to LSB):
//	  1 bit : is negative
//	 55 bits: digits, as an integer
//	  4 bits: number of digits minus 1
//	  4 bits: decimal point position from the right minus 1
//
// Both formatters are total over tokens produced by a correct encoder.
// Arbitrary tokens may violate the packing (more digits than declared, or
// a decimal point outside the digit run); those fail with errs.ErrDecode.

// FormatIntegerVar returns the textual form of an encoded integer variable.
func FormatIntegerVar(token int64) string {
	return strconv.FormatInt(token, 10)
}

// FormatFloatVar returns the textual form of an encoded float variable
// under the given encoding.
func FormatFloatVar(enc protocol.Encoding, token int64) (string, error) {
	var (
		digits     uint64
		numDigits  int
		decimalPos int
		negative   bool
	)

	if enc == protocol.EncodingEightByte {
		v := uint64(token)
		decimalPos = int(v&0xF) + 1
		v >>= 4
		numDigits = int(v&0xF) + 1
		v >>= 4
		digits = v & ((1 << 55) - 1)
		v >>= 55
		negative = v != 0
	} else {
		v := uint32(token)
		decimalPos = int(v&0x7) + 1
		v >>= 3
		numDigits = int(v&0x7) + 1
		v >>= 3
		digits = uint64(v & 0x01FFFFFF)
		v >>= 25
		negative = v != 0
	}

	if decimalPos >= numDigits+1 {
		return "", fmt.Errorf("%w: float token decimal point position %d exceeds digit count %d",
			errs.ErrDecode, decimalPos, numDigits)
	}

	// One byte per digit, one for the decimal point, one for the sign.
	length := numDigits + 1
	if negative {
		length++
	}
	buf := make([]byte, length)

	i := length - 1
	for d := 0; d < decimalPos; d++ {
		buf[i] = byte('0' + digits%10)
		digits /= 10
		i--
	}
	buf[i] = '.'
	i--
	for d := decimalPos; d < numDigits; d++ {
		buf[i] = byte('0' + digits%10)
		digits /= 10
		i--
	}
	if negative {
		buf[i] = '-'
		i--
	}

	if digits != 0 || i >= 0 {
		return "", fmt.Errorf("%w: float token digits do not fit declared digit count %d",
			errs.ErrDecode, numDigits)
	}

	return string(buf), nil
}
