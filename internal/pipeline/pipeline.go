package pipeline

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/AnyUserName/imagify/internal/encoder"
	"github.com/AnyUserName/imagify/internal/format"
)

// Config holds the parameters shared by every item of a batch.
type Config struct {
	DestDir string
	Quality int // 0 = encoder default
}

// Converter converts batches of images, one at a time, in input order.
type Converter struct {
	cfg      Config
	registry *encoder.Registry
	log      logrus.FieldLogger
	sink     Sink
}

// Option customizes a Converter.
type Option func(*Converter)

// WithRegistry replaces the default encoder registry.
func WithRegistry(r *encoder.Registry) Option {
	return func(c *Converter) { c.registry = r }
}

// WithLogger sets the logger for progress and diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Converter) { c.log = l }
}

// WithSink sets the receiver of per-item outcomes.
func WithSink(s Sink) Option {
	return func(c *Converter) { c.sink = s }
}

// New creates a configured converter. Without options it logs nowhere
// and uses every built-in encoder.
func New(cfg Config, opts ...Option) *Converter {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	c := &Converter{
		cfg:      cfg,
		registry: encoder.NewRegistry(),
		log:      quiet,
		sink:     NopSink{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConvertAll converts every path to target and writes the results into
// the destination directory. Per-item failures never stop the batch;
// AnySucceeded is true when at least one file was written, fallbacks
// included. Existing outputs with the same name are overwritten.
func (c *Converter) ConvertAll(paths []string, target format.Format) BatchResult {
	var result BatchResult

	if len(paths) == 0 {
		c.log.Warn("no images to convert")
		c.sink.Done(result)
		return result
	}

	c.log.WithField("count", len(paths)).
		Infof("starting conversion to %s", strings.ToUpper(string(target)))

	for _, p := range paths {
		req := ConversionRequest{
			SourcePath:   p,
			TargetFormat: target,
			DestDir:      c.cfg.DestDir,
		}
		o := c.process(req)
		result.add(o)
		c.logOutcome(o)
		c.sink.Item(o)
	}

	c.log.WithFields(logrus.Fields{
		"saved":    result.Saved,
		"fallback": result.Fallback,
		"failed":   result.Failed,
	}).Info("conversion finished")
	c.sink.Done(result)
	return result
}

func (c *Converter) logOutcome(o Outcome) {
	entry := c.log.WithField("source", o.Source)
	switch o.Status {
	case StatusSaved:
		entry.Infof("saved: %s", o.Path)
	case StatusFallback:
		entry.WithError(o.Err).Warnf("saved fallback image as %s", o.Path)
	default:
		entry.WithError(o.Err).Error("failed to convert")
	}
}
