// Package format holds the closed set of target encodings and the
// per-format policy the converter consults.
package format

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupported is returned by Parse for tokens outside the table.
var ErrUnsupported = errors.New("unsupported format")

// Format is a lowercase target token as selected by the user. It doubles
// as the output file extension.
type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	JPG  Format = "jpg" // alias of JPEG
	WEBP Format = "webp"
	ICO  Format = "ico"
	TGA  Format = "tga"
	BMP  Format = "bmp"
	GIF  Format = "gif"
	TIFF Format = "tiff"
)

// Default is the preselected target.
const Default = PNG

// Spec describes how a format is encoded.
type Spec struct {
	Encoder string // encoder identifier, e.g. "JPEG"
	Alpha   bool   // encoder can store a transparency channel
	Flatten bool   // alpha-incompatible: flatten onto white before encoding
}

var table = map[Format]Spec{
	PNG:  {Encoder: "PNG", Alpha: true},
	JPEG: {Encoder: "JPEG", Flatten: true},
	JPG:  {Encoder: "JPEG", Flatten: true},
	WEBP: {Encoder: "WEBP", Alpha: true},
	ICO:  {Encoder: "ICO", Alpha: true},
	TGA:  {Encoder: "TGA", Alpha: true},
	BMP:  {Encoder: "BMP", Flatten: true},
	GIF:  {Encoder: "GIF", Alpha: true},
	TIFF: {Encoder: "TIFF", Alpha: true},
}

// canonical is the order formats are offered in.
var canonical = []Format{PNG, JPEG, WEBP, ICO, TGA, BMP, GIF, TIFF}

// Parse normalizes a user token (".JPG", " Tiff ") into a Format.
func Parse(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")))
	if _, ok := table[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupported, s)
	}
	return f, nil
}

// Lookup returns the Spec for f. The second result is false for formats
// outside the table.
func Lookup(f Format) (Spec, bool) {
	s, ok := table[f]
	return s, ok
}

// EncoderID maps a format to its encoder identifier ("jpg" -> "JPEG").
func (f Format) EncoderID() string {
	return table[f].Encoder
}

// Flatten reports whether images with alpha must be composited onto an
// opaque background before encoding as f.
func (f Format) Flatten() bool {
	return table[f].Flatten
}

// Extension returns the output file extension without dot.
func (f Format) Extension() string { return string(f) }

// All returns the supported formats in canonical order. The jpg alias is
// not listed.
func All() []Format {
	out := make([]Format, len(canonical))
	copy(out, canonical)
	return out
}

// Names returns All as uppercase display names.
func Names() []string {
	names := make([]string, 0, len(canonical))
	for _, f := range canonical {
		names = append(names, strings.ToUpper(string(f)))
	}
	return names
}
