package encoder

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
)

// TGAEncoder writes uncompressed true-color Targa: 24-bit when the image
// is opaque, 32-bit with an 8-bit alpha channel otherwise.
type TGAEncoder struct{}

func (e *TGAEncoder) Format() string    { return "TGA" }
func (e *TGAEncoder) Extension() string { return "tga" }

const (
	tgaTrueColor = 2
	tgaTopLeft   = 0x20 // image descriptor bit 5: rows stored top to bottom
)

func (e *TGAEncoder) Encode(img image.Image, _ int) ([]byte, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w > 0xffff || h > 0xffff {
		return nil, fmt.Errorf("tga: %dx%d: %w", w, h, ErrTooLarge)
	}

	bpp := 4
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		bpp = 3
	}

	var hdr [18]byte
	hdr[2] = tgaTrueColor
	binary.LittleEndian.PutUint16(hdr[12:], uint16(w))
	binary.LittleEndian.PutUint16(hdr[14:], uint16(h))
	hdr[16] = byte(bpp * 8)
	hdr[17] = tgaTopLeft
	if bpp == 4 {
		hdr[17] |= 8 // alpha bits
	}

	var buf bytes.Buffer
	buf.Grow(len(hdr) + w*h*bpp)
	buf.Write(hdr[:])

	row := make([]byte, w*bpp)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := 0
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			row[i+0] = c.B
			row[i+1] = c.G
			row[i+2] = c.R
			if bpp == 4 {
				row[i+3] = c.A
			}
			i += bpp
		}
		buf.Write(row)
	}
	return buf.Bytes(), nil
}
