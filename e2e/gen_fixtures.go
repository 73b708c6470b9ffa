//go:build ignore

// gen_fixtures creates a small mixed selection for the convert smoke test.
// Usage: go run gen_fixtures.go <output_dir>
package main

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: gen_fixtures <output_dir>")
		os.Exit(1)
	}
	dir := os.Args[1]
	must(os.MkdirAll(filepath.Join(dir, "album"), 0o755))

	// Opaque photo (JPEG, 400x225)
	must(imaging.Save(gradient(400, 225), filepath.Join(dir, "banner.jpg"), imaging.JPEGQuality(85)))

	// Transparent logo, flattened onto white for JPEG/BMP targets
	must(imaging.Save(alphaGradient(100, 100), filepath.Join(dir, "logo.png")))

	// Palette images found by directory expansion
	for i := 1; i <= 2; i++ {
		writeGIF(filepath.Join(dir, "album", fmt.Sprintf("frame-%d.gif", i)), paletted(64, 64, uint8(i)))
	}

	// Not an image; reported as failed
	must(os.WriteFile(filepath.Join(dir, "notes.png"), []byte("%PDF-1.4 not really a png"), 0o644))

	fmt.Fprintf(os.Stderr, "[gen_fixtures] created 5 fixtures in %s\n", dir)
}

func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / w),
				G: uint8(y * 255 / h),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

func alphaGradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: 220, G: 60, B: 30,
				A: uint8(x * 255 / w),
			})
		}
	}
	return img
}

func paletted(w, h int, seed uint8) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, w, h), palette.Plan9)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetColorIndex(x, y, uint8(x+y)*seed)
		}
	}
	return img
}

func writeGIF(path string, img *image.Paletted) {
	f, err := os.Create(path)
	must(err)
	defer f.Close()
	must(gif.Encode(f, img, nil))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
