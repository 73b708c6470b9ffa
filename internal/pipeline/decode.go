package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"

	"github.com/AnyUserName/imagify/internal/normalize"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// sniffLen is the header size filetype needs to match every known type.
const sniffLen = 262

// decodeFile opens, sniffs and decodes one source. The file is closed
// before returning.
func decodeFile(path string) (normalize.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return normalize.Image{}, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return normalize.Image{}, &DecodeError{Path: path, Err: err}
	}
	head = head[:n]

	// Unknown headers still go to the decoder; only positively identified
	// non-images are rejected here.
	if kind, _ := filetype.Match(head); kind != filetype.Unknown && !filetype.IsImage(head) {
		return normalize.Image{}, &DecodeError{
			Path: path,
			Err:  fmt.Errorf("%w: detected %s", ErrNotImage, kind.MIME.Value),
		}
	}

	img, err := imaging.Decode(io.MultiReader(bytes.NewReader(head), f))
	if err != nil {
		return normalize.Image{}, &DecodeError{Path: path, Err: err}
	}
	return normalize.New(img), nil
}
