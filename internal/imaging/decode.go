package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
)

// Decode errors.
var (
	// ErrUnknownFormat is returned when asked to decode FormatUnknown.
	ErrUnknownFormat = errors.New("imaging: unknown image format")

	// ErrNoDecoder is returned when no decoder is registered for a
	// recognized format.
	ErrNoDecoder = errors.New("imaging: no decoder registered")

	// ErrDecode is returned when a well-signed file fails to decode.
	ErrDecode = errors.New("imaging: decode failed")
)

// DecodeFunc decodes an image from a reader.
type DecodeFunc func(io.Reader) (image.Image, error)

// Loader decodes images by detected format. Only two formats exist, so
// this is a fixed registry rather than an open plugin mechanism; its
// job is to make decoder availability explicit and testable.
type Loader struct {
	decoders map[Format]DecodeFunc
}

// NewLoader returns a loader with both standard decoders registered.
// PNG support is unconditional; JPEG can be removed with WithoutFormat.
func NewLoader() *Loader {
	return &Loader{
		decoders: map[Format]DecodeFunc{
			FormatPNG:  png.Decode,
			FormatJPEG: jpeg.Decode,
		},
	}
}

// WithoutFormat returns a copy of the loader with the decoder for the
// given format removed. Used to model runtimes lacking a capability.
func (l *Loader) WithoutFormat(f Format) *Loader {
	out := &Loader{decoders: make(map[Format]DecodeFunc, len(l.decoders))}
	for k, v := range l.decoders {
		if k != f {
			out.decoders[k] = v
		}
	}
	return out
}

// Supports reports whether a decoder is registered for the format.
func (l *Loader) Supports(f Format) bool {
	_, ok := l.decoders[f]
	return ok
}

// Decode decodes image data of a known format into pixels.
//
// Returns ErrUnknownFormat for FormatUnknown, ErrNoDecoder when the
// format is recognized but its decoder is absent, and ErrDecode when
// the decoder rejects the data (corrupt file past a valid signature).
func (l *Loader) Decode(f Format, r io.Reader) (image.Image, error) {
	if f == FormatUnknown {
		return nil, ErrUnknownFormat
	}
	decode, ok := l.decoders[f]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoDecoder, f)
	}
	img, err := decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, f, err)
	}
	return img, nil
}
