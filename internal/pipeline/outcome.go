package pipeline

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AnyUserName/imagify/internal/format"
)

var (
	// ErrNotImage marks sources sniffed as a known non-image type.
	ErrNotImage = errors.New("not an image")
	// ErrNoEncoder is returned when the registry has no encoder for the target.
	ErrNoEncoder = errors.New("no encoder registered")
)

// DecodeError reports a source that could not be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode %s: %v", e.Path, e.Err) }
func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports an encoder or write failure for one output file.
type EncodeError struct {
	Encoder string
	Path    string
	Err     error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s as %s: %v", e.Path, e.Encoder, e.Err)
}
func (e *EncodeError) Unwrap() error { return e.Err }

// ConversionRequest is one source image bound for a target format.
type ConversionRequest struct {
	SourcePath   string
	TargetFormat format.Format
	DestDir      string
}

// OutputPath is DestDir/<stem>.<format>.
func (r ConversionRequest) OutputPath() string {
	return filepath.Join(r.DestDir, Stem(r.SourcePath)+"."+r.TargetFormat.Extension())
}

// FallbackPath is DestDir/<stem>_fallback.png.
func (r ConversionRequest) FallbackPath() string {
	return filepath.Join(r.DestDir, Stem(r.SourcePath)+"_fallback.png")
}

// Stem returns the file name without its final extension. Names made of a
// leading dot and no other dot (".hidden") are kept whole.
func Stem(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(strings.TrimLeft(base, "."))
	return base[:len(base)-len(ext)]
}

// Status is the per-item result kind.
type Status int

const (
	StatusSaved Status = iota + 1
	StatusFallback
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSaved:
		return "saved"
	case StatusFallback:
		return "fallback"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Outcome is the result of converting one source.
type Outcome struct {
	Source string
	Target format.Format
	Status Status
	// Path is the file written; empty when the item failed.
	Path string
	// Err is the failure reason, or for a fallback the encode error that
	// triggered it.
	Err error
}

// Succeeded reports whether a file was written for this item.
func (o Outcome) Succeeded() bool {
	return o.Status == StatusSaved || o.Status == StatusFallback
}

// BatchResult aggregates a batch.
type BatchResult struct {
	AnySucceeded bool
	Total        int
	Saved        int
	Fallback     int
	Failed       int
}

func (r *BatchResult) add(o Outcome) {
	r.Total++
	switch o.Status {
	case StatusSaved:
		r.Saved++
	case StatusFallback:
		r.Fallback++
	default:
		r.Failed++
	}
	r.AnySucceeded = r.AnySucceeded || o.Succeeded()
}

// Sink receives per-item outcomes as they happen and the aggregate once
// the batch ends.
type Sink interface {
	Item(o Outcome)
	Done(r BatchResult)
}

// NopSink discards events.
type NopSink struct{}

func (NopSink) Item(Outcome)     {}
func (NopSink) Done(BatchResult) {}

// Multi fans events out to several sinks in order.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

type multiSink []Sink

func (m multiSink) Item(o Outcome) {
	for _, s := range m {
		s.Item(o)
	}
}

func (m multiSink) Done(r BatchResult) {
	for _, s := range m {
		s.Done(r)
	}
}
