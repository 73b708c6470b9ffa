package pipeline

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/AnyUserName/imagify/internal/encoder"
	"github.com/AnyUserName/imagify/internal/format"
	"github.com/AnyUserName/imagify/internal/normalize"
)

// process handles a single source: decode, normalize, encode, and on an
// encode failure one PNG fallback. Panics are contained and reported as
// failures so the batch keeps going.
func (c *Converter) process(req ConversionRequest) (o Outcome) {
	defer func() {
		if r := recover(); r != nil {
			o = failure(req, fmt.Errorf("unexpected error: %v", r))
		}
	}()

	img, err := decodeFile(req.SourcePath)
	if err != nil {
		return failure(req, err)
	}

	norm := normalize.Normalize(img, req.TargetFormat)
	if norm.Mode != img.Mode {
		c.log.WithField("source", req.SourcePath).
			Debugf("converting from %s to %s for %s", img.Mode, norm.Mode, req.TargetFormat.EncoderID())
	}

	enc := c.registry.Get(req.TargetFormat)
	if enc == nil {
		return failure(req, fmt.Errorf("%w: %s", ErrNoEncoder, req.TargetFormat))
	}

	outPath := req.OutputPath()
	err = c.write(enc, norm.Pixels, outPath)
	if err == nil {
		return Outcome{Source: req.SourcePath, Target: req.TargetFormat, Status: StatusSaved, Path: outPath}
	}

	c.log.WithField("source", req.SourcePath).WithError(err).
		Warnf("failed saving as %s, trying PNG fallback", enc.Format())

	fbPath := req.FallbackPath()
	fb := c.registry.Get(format.PNG)
	if fb == nil {
		return failure(req, errors.Join(err, fmt.Errorf("%w: %s", ErrNoEncoder, format.PNG)))
	}
	if fbErr := c.write(fb, norm.Pixels, fbPath); fbErr != nil {
		return failure(req, errors.Join(err, fbErr))
	}
	return Outcome{Source: req.SourcePath, Target: req.TargetFormat, Status: StatusFallback, Path: fbPath, Err: err}
}

// write encodes img and stores it at path, replacing any existing file.
func (c *Converter) write(enc encoder.Encoder, img image.Image, path string) error {
	data, err := enc.Encode(img, c.cfg.Quality)
	if err != nil {
		return &EncodeError{Encoder: enc.Format(), Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &EncodeError{Encoder: enc.Format(), Path: path, Err: err}
	}
	return nil
}

func failure(req ConversionRequest, err error) Outcome {
	return Outcome{Source: req.SourcePath, Target: req.TargetFormat, Status: StatusFailed, Err: err}
}
