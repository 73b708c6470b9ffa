package encoder

import (
	"bytes"
	"fmt"
	"image"

	ico "github.com/biessek/golang-ico"
	"github.com/disintegration/imaging"
)

// MaxIconSize is the largest edge an ICO directory entry can describe.
const MaxIconSize = 256

// ICOEncoder writes a single-entry Windows icon. Larger images are fitted
// into MaxIconSize keeping the aspect ratio.
type ICOEncoder struct{}

func (e *ICOEncoder) Format() string    { return "ICO" }
func (e *ICOEncoder) Extension() string { return "ico" }

func (e *ICOEncoder) Encode(img image.Image, _ int) ([]byte, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("ico: empty image")
	}
	if b.Dx() > MaxIconSize || b.Dy() > MaxIconSize {
		img = imaging.Fit(img, MaxIconSize, MaxIconSize, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("ico: %w", err)
	}
	return buf.Bytes(), nil
}
