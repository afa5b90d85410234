// Package imaging detects and decodes logo image files.
//
// Format identification goes by leading magic bytes, never by file
// extension. Decoding dispatches through a small capability registry so
// callers can observe which formats the runtime actually supports.
package imaging

import "bytes"

// Format identifies a supported image file format.
type Format int

const (
	// FormatUnknown means the header matched no known signature.
	FormatUnknown Format = iota

	// FormatPNG is the Portable Network Graphics format.
	FormatPNG

	// FormatJPEG is the JPEG/JFIF format.
	FormatJPEG
)

// String returns the conventional lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	default:
		return "unknown"
	}
}

// HeaderLen is the number of leading bytes needed to identify any
// supported format (the PNG signature is the longest at 8 bytes).
const HeaderLen = 8

// signatures maps magic-byte prefixes to formats.
var signatures = []struct {
	format Format
	magic  []byte
}{
	{FormatPNG, []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}},
	{FormatJPEG, []byte{0xFF, 0xD8, 0xFF}},
}

// DetectFormat identifies the format of an image from its leading
// bytes. Returns FormatUnknown if no signature matches. The header may
// be shorter than HeaderLen; short headers that cannot contain a full
// signature never match.
func DetectFormat(header []byte) Format {
	for _, sig := range signatures {
		if len(header) >= len(sig.magic) && bytes.Equal(header[:len(sig.magic)], sig.magic) {
			return sig.format
		}
	}
	return FormatUnknown
}
