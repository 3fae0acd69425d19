// Package compress provides the stream codecs used to unwrap compressed IR
// files before decoding.
//
// The IR decoder itself never sees compression: it consumes a byte reader
// over the decompressed stream. This package supplies the unwrapping layer,
// typically zstd for archived streams, with s2 and lz4 available for
// pipelines that favor speed over ratio.
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs are stateless values obtained from GetCodec or the per-algorithm
// constructors, and all are safe for concurrent use. The zstd codec has a
// cgo implementation (valyala/gozstd) and a pure-Go one
// (klauspost/compress/zstd) selected by build tags.
package compress
