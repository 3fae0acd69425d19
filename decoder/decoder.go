// Package decoder implements the IR stream decoder core: preamble parsing,
// the per-message state machine, and message rendering.
//
// A stream is decoded in three steps:
//
//	r := reader.NewBytesReader(data)
//	enc, err := decoder.EncodingType(r)          // magic number
//	typ, meta, err := decoder.DecodePreambleCopy(r)
//	d := decoder.NewFourByteDecoder()            // or NewEightByteDecoder
//	for {
//	    msg, err := d.Next(r)
//	    if errors.Is(err, errs.ErrEndOfStream) {
//	        break
//	    }
//	    ...
//	}
//
// The decoder is strictly single-threaded per stream. Errors are never
// recovered locally: once a call returns a corrupted-stream error the
// stream is poisoned, and the reader is left wherever the failed parse
// stopped.
package decoder

import (
	"github.com/logtide/irstream/endian"
)

// wireOrder is the byte order of every multi-byte integer on the wire.
var wireOrder = endian.GetBigEndianEngine()
