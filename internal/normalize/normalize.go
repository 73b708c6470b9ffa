// Package normalize prepares a decoded image for a target encoder:
// flattening transparency for formats that cannot store it and expanding
// palette images to full color.
package normalize

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/AnyUserName/imagify/internal/format"
)

// Image is a decoded raster and its color mode. It lives for one
// iteration of the batch loop.
type Image struct {
	Pixels image.Image
	Mode   ColorMode
}

// New wraps a decoded image, classifying its mode.
func New(img image.Image) Image {
	return Image{Pixels: img, Mode: ModeOf(img)}
}

// Bounds returns the image dimensions.
func (i Image) Bounds() image.Rectangle {
	return i.Pixels.Bounds()
}

// Background is the canvas color alpha images are flattened onto.
var Background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Normalize returns img in a color mode f can encode. The first matching
// rule wins:
//
//  1. alpha-incompatible target and an alpha mode: composite onto white
//  2. palette mode: expand to RGBA, whatever the target
//  3. otherwise the image is returned unchanged
//
// The input is never modified.
func Normalize(img Image, f format.Format) Image {
	switch {
	case f.Flatten() && img.Mode.HasAlpha():
		return Image{Pixels: Flatten(img.Pixels), Mode: ModeRGB}
	case img.Mode == ModePalette:
		return Image{Pixels: imaging.Clone(img.Pixels), Mode: ModeRGBA}
	}
	return img
}

// Flatten composites src onto a white canvas of the same size, using the
// source alpha as the blend mask. The result is fully opaque.
func Flatten(src image.Image) *image.RGBA {
	b := src.Bounds()
	bg := imaging.New(b.Dx(), b.Dy(), Background)
	out := imaging.Overlay(bg, src, image.Pt(0, 0), 1.0)
	// Every pixel has A=255, so the non-premultiplied bytes are also valid
	// premultiplied ones.
	return &image.RGBA{Pix: out.Pix, Stride: out.Stride, Rect: out.Rect}
}
