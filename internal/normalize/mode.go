package normalize

import "image"

// ColorMode is the channel layout of a decoded image.
type ColorMode int

const (
	ModeUnknown ColorMode = iota
	ModeRGB
	ModeRGBA
	ModeL  // grayscale
	ModeLA // grayscale + alpha
	ModePalette
	ModeCMYK
)

func (m ColorMode) String() string {
	switch m {
	case ModeRGB:
		return "RGB"
	case ModeRGBA:
		return "RGBA"
	case ModeL:
		return "L"
	case ModeLA:
		return "LA"
	case ModePalette:
		return "P"
	case ModeCMYK:
		return "CMYK"
	}
	return "unknown"
}

// HasAlpha reports whether the layout carries an alpha channel.
func (m ColorMode) HasAlpha() bool {
	return m == ModeRGBA || m == ModeLA
}

// ModeOf classifies an image by its concrete type.
//
// Go decoders return *image.RGBA for opaque truecolor sources (PNG without
// alpha, 24-bit BMP) and *image.NRGBA whenever the file has an alpha
// channel, so the premultiplied types only count as RGBA when some pixel
// is actually translucent. Gray+alpha PNGs decode to NRGBA and are
// reported as RGBA.
func ModeOf(img image.Image) ColorMode {
	switch m := img.(type) {
	case *image.Paletted:
		return ModePalette
	case *image.Gray, *image.Gray16:
		return ModeL
	case *image.CMYK:
		return ModeCMYK
	case *image.YCbCr:
		return ModeRGB
	case *image.NYCbCrA, *image.NRGBA, *image.NRGBA64:
		return ModeRGBA
	case *image.RGBA:
		if m.Opaque() {
			return ModeRGB
		}
		return ModeRGBA
	case *image.RGBA64:
		if m.Opaque() {
			return ModeRGB
		}
		return ModeRGBA
	case nil:
		return ModeUnknown
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return ModeRGB
	}
	return ModeRGBA
}
