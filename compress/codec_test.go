package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/logtide/irstream/errs"
)

// testPayload mimics an IR stream body: a small tag alphabet over
// repetitive template text, which every codec should shrink.
func testPayload() []byte {
	var buf bytes.Buffer
	for i := 0; i < 200; i++ {
		buf.WriteByte(0x21)
		buf.WriteByte(0x10)
		buf.WriteString("connection from host-")
		buf.WriteByte(byte('0' + i%10))
		buf.WriteString(" established")
	}

	return buf.Bytes()
}

func TestCompressionTypeString(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0xEE).String())
}

func TestParseCompressionType(t *testing.T) {
	cases := map[string]CompressionType{
		"":     CompressionNone,
		"none": CompressionNone,
		"zstd": CompressionZstd,
		"s2":   CompressionS2,
		"lz4":  CompressionLZ4,
	}
	for name, expected := range cases {
		got, err := ParseCompressionType(name)
		require.NoError(t, err)
		require.Equal(t, expected, got)
	}

	_, err := ParseCompressionType("gzip")
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestGetCodec(t *testing.T) {
	for _, ct := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(CompressionType(0xEE))
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestCodecRoundTrip(t *testing.T) {
	payload := testPayload()

	for _, ct := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err, "%s compress", ct)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err, "%s decompress", ct)
		require.Equal(t, payload, decompressed, "%s round trip", ct)
	}
}

func TestCodecRoundTrip_Empty(t *testing.T) {
	for _, ct := range []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, decompressed)
	}
}

func TestCompressionShrinksRepetitivePayload(t *testing.T) {
	payload := testPayload()

	for _, ct := range []CompressionType{CompressionZstd, CompressionS2, CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload), "%s should compress repetitive IR bytes", ct)
	}
}

func TestDecompressStream(t *testing.T) {
	payload := testPayload()

	codec, err := GetCodec(CompressionZstd)
	require.NoError(t, err)
	compressed, err := codec.Compress(payload)
	require.NoError(t, err)

	got, err := DecompressStream(CompressionZstd, compressed)
	require.NoError(t, err)
	require.Equal(t, payload, got)

	_, err = DecompressStream(CompressionType(0xEE), compressed)
	require.ErrorIs(t, err, errs.ErrUnsupportedCompression)
}

func TestZstdDecompress_Corrupted(t *testing.T) {
	codec, err := GetCodec(CompressionZstd)
	require.NoError(t, err)

	_, err = codec.Decompress([]byte("definitely not a zstd frame"))
	require.Error(t, err)
}
