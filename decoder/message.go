package decoder

import (
	"fmt"

	"github.com/logtide/irstream/errs"
	"github.com/logtide/irstream/protocol"
	"github.com/logtide/irstream/reader"
)

// Message is one decoded log event.
type Message struct {
	// Text is the reconstructed message with all variables interpolated.
	Text string
	// Logtype is the interned template the message was rendered from.
	Logtype string
	// Timestamp is the absolute epoch-millisecond timestamp under the
	// eight-byte encoding, or the signed timestamp delta under the
	// four-byte encoding. Accumulating deltas is the caller's
	// responsibility (irstream.Stream does it for the common case).
	Timestamp int64
}

// messageDecoder drives the per-message state machine for one encoding
// variant. The two exported decoders are thin instantiations; the state
// machine itself exists once.
//
// Within a frame, the ordered variable records appear before the logtype
// record and the timestamp record after it. Variable order across the
// encoded and dictionary lists is not preserved on the wire; the
// placeholder types inside the logtype drive pairing during rendering.
type messageDecoder struct {
	enc         protocol.Encoding
	cache       *logtypeCache
	encodedVars []int64
	dictVars    [][]byte
}

func newMessageDecoder(enc protocol.Encoding) messageDecoder {
	return messageDecoder{
		enc:   enc,
		cache: newLogtypeCache(),
	}
}

// decodeNext decodes one message frame from r.
//
// A leading end-of-stream tag returns errs.ErrEndOfStream without reading
// past it. Field-parser errors (incomplete, corrupted) propagate unchanged;
// rendering failures surface as errs.ErrDecode. On any error the reader is
// left wherever the failed parse stopped.
func (d *messageDecoder) decodeNext(r reader.Reader) (Message, error) {
	tag, err := r.TryReadByte()
	if err != nil {
		return Message{}, err
	}
	if tag == protocol.TagEndOfStream {
		return Message{}, errs.ErrEndOfStream
	}

	// Variable records, in wire order.
	d.encodedVars = d.encodedVars[:0]
	d.dictVars = d.dictVars[:0]
	for {
		isEncodedVar, ok := isVariableTag(d.enc, tag)
		if !ok {
			break
		}

		if isEncodedVar {
			v, err := parseEncodedVar(r, d.enc)
			if err != nil {
				return Message{}, err
			}
			d.encodedVars = append(d.encodedVars, v)
		} else {
			v, err := parseDictionaryVar(r, tag)
			if err != nil {
				return Message{}, err
			}
			d.dictVars = append(d.dictVars, v)
		}

		tag, err = r.TryReadByte()
		if err != nil {
			return Message{}, err
		}
	}

	// Logtype record. A tag that is neither a variable nor a logtype
	// length tag is corrupted at this position and is reported here.
	if !isLogtypeTag(tag) {
		return Message{}, fmt.Errorf("%w: unexpected tag 0x%02X at frame position for logtype", errs.ErrCorruptedStream, tag)
	}
	logtype, err := parseLogtype(r, tag)
	if err != nil {
		return Message{}, err
	}

	// Timestamp record: the absolute timestamp under the eight-byte
	// encoding, a delta under the four-byte encoding.
	tag, err = r.TryReadByte()
	if err != nil {
		return Message{}, err
	}
	ts, err := parseTimestamp(r, d.enc, tag)
	if err != nil {
		return Message{}, err
	}

	text, err := RenderMessage(d.enc, logtype, d.encodedVars, d.dictVars)
	if err != nil {
		return Message{}, err
	}

	return Message{
		Text:      text,
		Logtype:   d.cache.intern(logtype),
		Timestamp: ts,
	}, nil
}

// LogtypeCount returns the number of distinct logtype templates decoded so
// far.
func (d *messageDecoder) LogtypeCount() int {
	return d.cache.Len()
}

// FourByteDecoder decodes message frames of a four-byte encoded stream.
//
// Not safe for concurrent use; one decoder per stream.
type FourByteDecoder struct {
	messageDecoder
}

// NewFourByteDecoder creates a decoder for the four-byte encoding.
func NewFourByteDecoder() *FourByteDecoder {
	return &FourByteDecoder{messageDecoder: newMessageDecoder(protocol.EncodingFourByte)}
}

// Next decodes the next message. Message.Timestamp holds the signed
// timestamp delta for this message.
//
// Returns:
//   - Message: The decoded message on success
//   - error: errs.ErrEndOfStream at the stream terminator,
//     errs.ErrIncompleteStream, errs.ErrCorruptedStream, or errs.ErrDecode
func (d *FourByteDecoder) Next(r reader.Reader) (Message, error) {
	return d.decodeNext(r)
}

// EightByteDecoder decodes message frames of an eight-byte encoded stream.
//
// Not safe for concurrent use; one decoder per stream.
type EightByteDecoder struct {
	messageDecoder
}

// NewEightByteDecoder creates a decoder for the eight-byte encoding.
func NewEightByteDecoder() *EightByteDecoder {
	return &EightByteDecoder{messageDecoder: newMessageDecoder(protocol.EncodingEightByte)}
}

// Next decodes the next message. Message.Timestamp holds the absolute
// epoch-millisecond timestamp.
//
// Returns:
//   - Message: The decoded message on success
//   - error: errs.ErrEndOfStream at the stream terminator,
//     errs.ErrIncompleteStream, errs.ErrCorruptedStream, or errs.ErrDecode
func (d *EightByteDecoder) Next(r reader.Reader) (Message, error) {
	return d.decodeNext(r)
}
