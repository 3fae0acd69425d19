package decoder

import (
	"fmt"

	"github.com/logtide/irstream/errs"
	"github.com/logtide/irstream/internal/pool"
	"github.com/logtide/irstream/protocol"
)

// RenderMessage interpolates the encoded and dictionary variables into the
// logtype template and returns the reconstructed message text.
//
// The template is scanned left to right. Float and Integer placeholder
// bytes consume the next encoded variable through the token formatters;
// Dictionary placeholders consume the next dictionary variable verbatim.
// The byte following an escape byte is emitted as literal static text and
// never interpreted as a placeholder or another escape.
//
// Every variable must be consumed by exactly one placeholder. Too few
// variables for the template's placeholders, leftover variables after the
// scan, a trailing escape byte, and malformed float tokens all fail with
// errs.ErrDecode.
func RenderMessage(enc protocol.Encoding, logtype []byte, encodedVars []int64, dictVars [][]byte) (string, error) {
	buf := pool.GetMessageBuffer()
	defer pool.PutMessageBuffer(buf)

	if err := renderMessage(buf, enc, logtype, encodedVars, dictVars); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func renderMessage(buf *pool.ByteBuffer, enc protocol.Encoding, logtype []byte, encodedVars []int64, dictVars [][]byte) error {
	var (
		ei int // next encoded variable
		di int // next dictionary variable
		s  int // start of pending static text
	)

	for p := 0; p < len(logtype); p++ {
		switch logtype[p] {
		case protocol.PlaceholderFloat:
			if ei >= len(encodedVars) {
				return fmt.Errorf("%w: too few encoded variables for logtype", errs.ErrDecode)
			}
			text, err := FormatFloatVar(enc, encodedVars[ei])
			if err != nil {
				return err
			}
			buf.MustWrite(logtype[s:p])
			buf.MustWriteString(text)
			ei++
			s = p + 1

		case protocol.PlaceholderInteger:
			if ei >= len(encodedVars) {
				return fmt.Errorf("%w: too few encoded variables for logtype", errs.ErrDecode)
			}
			buf.MustWrite(logtype[s:p])
			buf.MustWriteString(FormatIntegerVar(encodedVars[ei]))
			ei++
			s = p + 1

		case protocol.PlaceholderDictionary:
			if di >= len(dictVars) {
				return fmt.Errorf("%w: too few dictionary variables for logtype", errs.ErrDecode)
			}
			buf.MustWrite(logtype[s:p])
			buf.MustWrite(dictVars[di])
			di++
			s = p + 1

		case protocol.EscapeCharacter:
			if p == len(logtype)-1 {
				return fmt.Errorf("%w: logtype ends with escape character", errs.ErrDecode)
			}
			buf.MustWrite(logtype[s:p])
			// The escaped byte is static text; skip over it so it is not
			// reinterpreted as a placeholder or another escape.
			s = p + 1
			p++
		}
	}

	buf.MustWrite(logtype[s:])

	if ei != len(encodedVars) {
		return fmt.Errorf("%w: %d encoded variables not consumed by logtype", errs.ErrDecode, len(encodedVars)-ei)
	}
	if di != len(dictVars) {
		return fmt.Errorf("%w: %d dictionary variables not consumed by logtype", errs.ErrDecode, len(dictVars)-di)
	}

	return nil
}
