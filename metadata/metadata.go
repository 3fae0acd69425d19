// Package metadata provides a typed view over the JSON metadata blob
// carried in the IR stream preamble.
//
// The decoder core treats the blob as opaque bytes; this package is the
// caller-side interpretation for the JSON metadata type
// (protocol.MetadataJSONEncoding). The field set is version-fixed by the
// encoder.
package metadata

import (
	"fmt"

	"github.com/goccy/go-json"
)

// JSON field names written by the encoder.
const (
	VersionKey                = "VERSION"
	ReferenceTimestampKey     = "REFERENCE_TIMESTAMP"
	TimestampPatternKey       = "TIMESTAMP_PATTERN"
	TimestampPatternSyntaxKey = "TIMESTAMP_PATTERN_SYNTAX"
	TimeZoneIDKey             = "TZ_ID"
)

// Metadata is the decoded JSON metadata blob.
type Metadata struct {
	// Version is the IR format version string.
	Version string `json:"VERSION"`
	// ReferenceTimestamp is the epoch-millisecond timestamp the four-byte
	// encoding's deltas accumulate from, encoded as a decimal string.
	// Empty for eight-byte streams.
	ReferenceTimestamp string `json:"REFERENCE_TIMESTAMP,omitempty"`
	// TimestampPattern is the pattern the original timestamps were
	// formatted with.
	TimestampPattern string `json:"TIMESTAMP_PATTERN,omitempty"`
	// TimestampPatternSyntax names the syntax TimestampPattern is
	// written in.
	TimestampPatternSyntax string `json:"TIMESTAMP_PATTERN_SYNTAX,omitempty"`
	// TimeZoneID is the IANA timezone id of the original timestamps.
	TimeZoneID string `json:"TZ_ID,omitempty"`
}

// Parse decodes a JSON metadata blob.
//
// Parameters:
//   - blob: The metadata bytes returned by decoder.DecodePreambleCopy
//
// Returns:
//   - Metadata: Decoded metadata
//   - error: JSON syntax or type errors
func Parse(blob []byte) (Metadata, error) {
	var m Metadata
	if err := json.Unmarshal(blob, &m); err != nil {
		return Metadata{}, fmt.Errorf("failed to parse metadata blob: %w", err)
	}

	return m, nil
}

// Bytes serializes the metadata back to its JSON wire form.
func (m Metadata) Bytes() ([]byte, error) {
	return json.Marshal(m)
}
