package encoder

import (
	"errors"
	"image"
)

// ErrTooLarge is returned when an image exceeds what a format can store.
var ErrTooLarge = errors.New("image too large for format")

// ErrTransparent is returned by encoders for formats without an alpha
// channel when given an image that is not fully opaque.
var ErrTransparent = errors.New("format cannot store transparency")

// Encoder encodes an image to a specific format.
type Encoder interface {
	// Format returns the encoder identifier (e.g. "JPEG", "WEBP").
	Format() string

	// Encode converts the image to bytes at the given quality (1-100).
	// Encoders without a quality knob ignore it; 0 selects the default.
	Encode(img image.Image, quality int) ([]byte, error)

	// Extension returns the canonical file extension without dot.
	Extension() string
}
