package encoder

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality matches the usual library default for JPEG writers.
const DefaultJPEGQuality = 75

// ImagingEncoder covers the formats imaging writes natively:
// PNG, JPEG, GIF, TIFF and BMP.
type ImagingEncoder struct {
	id     string
	ext    string
	format imaging.Format
	// opaqueOnly rejects images with transparent pixels instead of
	// letting the writer blacken them or keep the alpha channel.
	opaqueOnly bool
}

// NewImagingEncoder returns an encoder for one of imaging's formats.
func NewImagingEncoder(f imaging.Format) *ImagingEncoder {
	ext := map[imaging.Format]string{
		imaging.PNG:  "png",
		imaging.JPEG: "jpeg",
		imaging.GIF:  "gif",
		imaging.TIFF: "tiff",
		imaging.BMP:  "bmp",
	}[f]
	return &ImagingEncoder{
		id:         f.String(),
		ext:        ext,
		format:     f,
		opaqueOnly: f == imaging.JPEG || f == imaging.BMP,
	}
}

func (e *ImagingEncoder) Format() string    { return e.id }
func (e *ImagingEncoder) Extension() string { return e.ext }

func (e *ImagingEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}

	if e.opaqueOnly && !opaque(img) {
		return nil, fmt.Errorf("%s: %w", e.ext, ErrTransparent)
	}

	var buf bytes.Buffer
	buf.Grow(256 * 1024)

	err := imaging.Encode(&buf, img, e.format, imaging.JPEGQuality(quality))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", e.ext, err)
	}
	return buf.Bytes(), nil
}

func opaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
