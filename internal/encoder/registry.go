package encoder

import (
	"fmt"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/AnyUserName/imagify/internal/format"
)

// Registry holds one encoder per encoder identifier.
type Registry struct {
	encoders map[string]Encoder
}

// NewRegistry creates a registry with an encoder for every supported
// format.
func NewRegistry() *Registry {
	r := &Registry{
		encoders: make(map[string]Encoder),
	}

	all := []Encoder{
		NewImagingEncoder(imaging.PNG),
		NewImagingEncoder(imaging.JPEG),
		&WebPEncoder{},
		&ICOEncoder{},
		&TGAEncoder{},
		NewImagingEncoder(imaging.BMP),
		NewImagingEncoder(imaging.GIF),
		NewImagingEncoder(imaging.TIFF),
	}
	for _, enc := range all {
		r.Register(enc)
	}

	return r
}

// Register adds enc, replacing any encoder with the same identifier.
func (r *Registry) Register(enc Encoder) {
	r.encoders[strings.ToUpper(enc.Format())] = enc
}

// Get returns the encoder for f, or nil if none is registered.
func (r *Registry) Get(f format.Format) Encoder {
	id := f.EncoderID()
	if id == "" {
		return nil
	}
	return r.encoders[id]
}

// Available returns the encoder identifiers in canonical format order.
func (r *Registry) Available() []string {
	var result []string
	for _, f := range format.All() {
		if _, ok := r.encoders[f.EncoderID()]; ok {
			result = append(result, f.EncoderID())
		}
	}
	return result
}

// String returns a summary of available encoders.
func (r *Registry) String() string {
	avail := r.Available()
	if len(avail) == 0 {
		return "no encoders available"
	}
	return fmt.Sprintf("encoders: %s", strings.Join(avail, ", "))
}
