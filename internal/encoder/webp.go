package encoder

import (
	"bytes"
	"fmt"
	"image"

	"github.com/chai2010/webp"
)

// DefaultWebPQuality is used when no quality is configured.
const DefaultWebPQuality = 80

// WebPEncoder encodes lossy WebP in-process with libwebp bindings.
type WebPEncoder struct{}

func (e *WebPEncoder) Format() string    { return "WEBP" }
func (e *WebPEncoder) Extension() string { return "webp" }

func (e *WebPEncoder) Encode(img image.Image, quality int) ([]byte, error) {
	if quality <= 0 || quality > 100 {
		quality = DefaultWebPQuality
	}
	b := img.Bounds()
	if b.Dx() > 16383 || b.Dy() > 16383 {
		return nil, fmt.Errorf("webp: %dx%d: %w", b.Dx(), b.Dy(), ErrTooLarge)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, fmt.Errorf("webp: %w", err)
	}
	return buf.Bytes(), nil
}
