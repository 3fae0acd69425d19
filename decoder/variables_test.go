package decoder

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/logtide/irstream/errs"
	"github.com/logtide/irstream/protocol"
)

// fourByteFloatToken packs a float literal's properties into a four-byte
// encoded-variable token, the way the encoding side does.
func fourByteFloatToken(negative bool, digits uint32, numDigits, decimalPos int) int64 {
	var v uint32
	if negative {
		v = 1
	}
	v = v<<25 | digits
	v = v<<3 | uint32(numDigits-1)
	v = v<<3 | uint32(decimalPos-1)

	return int64(int32(v))
}

// eightByteFloatToken packs a float literal's properties into an eight-byte
// encoded-variable token.
func eightByteFloatToken(negative bool, digits uint64, numDigits, decimalPos int) int64 {
	var v uint64
	if negative {
		v = 1
	}
	v = v<<55 | digits
	v = v<<4 | uint64(numDigits-1)
	v = v<<4 | uint64(decimalPos-1)

	return int64(v)
}

func TestFormatIntegerVar(t *testing.T) {
	require.Equal(t, "42", FormatIntegerVar(42))
	require.Equal(t, "-42", FormatIntegerVar(-42))
	require.Equal(t, "0", FormatIntegerVar(0))
	require.Equal(t, "1099511627776", FormatIntegerVar(1<<40))
}

func TestFormatFloatVar_FourByte(t *testing.T) {
	cases := []struct {
		token    int64
		expected string
	}{
		{fourByteFloatToken(false, 1234, 4, 2), "12.34"},
		{fourByteFloatToken(true, 5, 2, 1), "-0.5"},
		{fourByteFloatToken(false, 5, 1, 1), ".5"},
		{fourByteFloatToken(false, 10, 2, 1), "1.0"},
		{fourByteFloatToken(true, 31415926, 8, 7), "-3.1415926"},
		{fourByteFloatToken(false, 0, 2, 1), "0.0"},
	}

	for _, c := range cases {
		got, err := FormatFloatVar(protocol.EncodingFourByte, c.token)
		require.NoError(t, err)
		require.Equal(t, c.expected, got)
	}
}

func TestFormatFloatVar_EightByte(t *testing.T) {
	cases := []struct {
		token    int64
		expected string
	}{
		{eightByteFloatToken(false, 123456789, 9, 4), "12345.6789"},
		{eightByteFloatToken(true, 1000000000000001, 16, 15), "-1.000000000000001"},
		{eightByteFloatToken(false, 25, 2, 2), ".25"},
	}

	for _, c := range cases {
		got, err := FormatFloatVar(protocol.EncodingEightByte, c.token)
		require.NoError(t, err)
		require.Equal(t, c.expected, got)
	}
}

func TestFormatFloatVar_MalformedTokens(t *testing.T) {
	// More digits than the declared digit count.
	_, err := FormatFloatVar(protocol.EncodingFourByte, fourByteFloatToken(false, 123456, 3, 1))
	require.ErrorIs(t, err, errs.ErrDecode)

	// Decimal point position beyond the digit run.
	_, err = FormatFloatVar(protocol.EncodingFourByte, fourByteFloatToken(false, 12, 2, 4))
	require.ErrorIs(t, err, errs.ErrDecode)

	_, err = FormatFloatVar(protocol.EncodingEightByte, eightByteFloatToken(false, 1, 1, 5))
	require.ErrorIs(t, err, errs.ErrDecode)
}
