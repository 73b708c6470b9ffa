package normalize

import (
	"bytes"
	"image"
	"image/color"
	"image/color/palette"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnyUserName/imagify/internal/format"
)

func transparent(w, h int) *image.NRGBA {
	return image.NewNRGBA(image.Rect(0, 0, w, h))
}

func halfAlpha(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := uint8(0)
			if x >= w/2 {
				a = 255
			}
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 10, B: 30, A: a})
		}
	}
	return img
}

func paletted(w, h int) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, w, h), palette.Plan9)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetColorIndex(x, y, uint8((x+y)%len(palette.Plan9)))
		}
	}
	return img
}

func TestModeOf(t *testing.T) {
	opaque := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := 3; i < len(opaque.Pix); i += 4 {
		opaque.Pix[i] = 255
	}
	cases := []struct {
		name string
		img  image.Image
		want ColorMode
	}{
		{"nrgba", transparent(2, 2), ModeRGBA},
		{"rgba opaque", opaque, ModeRGB},
		{"rgba translucent", image.NewRGBA(image.Rect(0, 0, 2, 2)), ModeRGBA},
		{"ycbcr", image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio420), ModeRGB},
		{"nycbcra", image.NewNYCbCrA(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio444), ModeRGBA},
		{"gray", image.NewGray(image.Rect(0, 0, 2, 2)), ModeL},
		{"gray16", image.NewGray16(image.Rect(0, 0, 2, 2)), ModeL},
		{"paletted", paletted(2, 2), ModePalette},
		{"cmyk", image.NewCMYK(image.Rect(0, 0, 2, 2)), ModeCMYK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ModeOf(tc.img))
		})
	}
}

func TestNormalizeFlattensTransparentForJPEG(t *testing.T) {
	for _, f := range []format.Format{format.JPEG, format.JPG, format.BMP} {
		t.Run(string(f), func(t *testing.T) {
			src := New(transparent(10, 10))
			require.Equal(t, ModeRGBA, src.Mode)

			out := Normalize(src, f)
			assert.Equal(t, ModeRGB, out.Mode)
			assert.False(t, out.Mode.HasAlpha())
			assert.Equal(t, image.Rect(0, 0, 10, 10), out.Bounds())

			for y := 0; y < 10; y++ {
				for x := 0; x < 10; x++ {
					r, g, b, a := out.Pixels.At(x, y).RGBA()
					require.Equal(t, [4]uint32{0xffff, 0xffff, 0xffff, 0xffff}, [4]uint32{r, g, b, a},
						"pixel (%d,%d)", x, y)
				}
			}
		})
	}
}

func TestNormalizeFlattenKeepsOpaquePixels(t *testing.T) {
	out := Normalize(New(halfAlpha(8, 4)), format.JPEG)
	rgba, ok := out.Pixels.(*image.RGBA)
	require.True(t, ok, "flattened image should be *image.RGBA, got %T", out.Pixels)
	assert.True(t, rgba.Opaque())

	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, rgba.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{R: 200, G: 10, B: 30, A: 255}, rgba.RGBAAt(7, 3))
}

func TestNormalizeFlattensLuminanceAlpha(t *testing.T) {
	src := Image{Pixels: transparent(3, 3), Mode: ModeLA}
	out := Normalize(src, format.BMP)
	assert.Equal(t, ModeRGB, out.Mode)
	r, g, b, _ := out.Pixels.At(1, 1).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})
}

func TestNormalizeKeepsAlphaForCapableFormats(t *testing.T) {
	src := New(transparent(4, 4))
	for _, f := range []format.Format{format.PNG, format.WEBP, format.ICO, format.TGA, format.GIF, format.TIFF} {
		out := Normalize(src, f)
		assert.Equal(t, ModeRGBA, out.Mode, f)
		assert.Same(t, src.Pixels, out.Pixels, f)
	}
}

func TestNormalizeExpandsPaletteForEveryFormat(t *testing.T) {
	src := New(paletted(6, 6))
	for _, f := range append(format.All(), format.JPG) {
		out := Normalize(src, f)
		assert.Equal(t, ModeRGBA, out.Mode, f)
		_, ok := out.Pixels.(*image.NRGBA)
		assert.True(t, ok, "%s: got %T", f, out.Pixels)
		assert.Equal(t, src.Pixels.At(2, 3), color.Palette(palette.Plan9).Convert(out.Pixels.At(2, 3)), f)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, f := range append(format.All(), format.JPG) {
		src := New(paletted(5, 5))
		if f.Flatten() {
			src = New(halfAlpha(5, 5))
		}
		once := Normalize(src, f)
		twice := Normalize(once, f)
		assert.Same(t, once.Pixels, twice.Pixels, f)
		assert.Equal(t, once.Mode, twice.Mode, f)
	}
}

func TestNormalizeOpaqueSourcesEncodable(t *testing.T) {
	targets := map[format.Format]imaging.Format{
		format.JPEG: imaging.JPEG,
		format.BMP:  imaging.BMP,
		format.PNG:  imaging.PNG,
		format.GIF:  imaging.GIF,
		format.TIFF: imaging.TIFF,
	}
	srcs := []image.Image{
		image.NewYCbCr(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio420),
		image.NewGray(image.Rect(0, 0, 4, 4)),
		image.NewCMYK(image.Rect(0, 0, 4, 4)),
	}
	for _, s := range srcs {
		for f, enc := range targets {
			out := Normalize(New(s), f)
			var buf bytes.Buffer
			assert.NoError(t, imaging.Encode(&buf, out.Pixels, enc), "%T as %s", s, f)
		}
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	src := halfAlpha(4, 4)
	before := append([]uint8(nil), src.Pix...)
	Normalize(New(src), format.JPEG)
	assert.Equal(t, before, src.Pix)
}
