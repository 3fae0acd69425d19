package compress

// ZstdCompressor provides Zstandard compression for IR stream files.
//
// Zstd is the default wrapping for archived IR streams: the tag-driven
// format is highly repetitive (shared logtypes, small tag alphabet) and
// compresses well. Use this codec when storage ratio matters more than
// decode-path latency.
//
// Two implementations exist behind build tags: a cgo binding
// (valyala/gozstd) when cgo is available, and a pure-Go fallback
// (klauspost/compress/zstd) otherwise.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
// Returns:
//   - ZstdCompressor: New Zstd compressor instance
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
