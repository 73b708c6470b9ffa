package report

import (
	"github.com/AnyUserName/imagify/internal/format"
	"github.com/AnyUserName/imagify/internal/hasher"
	"github.com/AnyUserName/imagify/internal/pipeline"
)

// Builder collects pipeline outcomes into a Report. It implements
// pipeline.Sink.
type Builder struct {
	r *Report
}

// NewBuilder starts a report for a batch converting to f.
func NewBuilder(f format.Format, destDir string) *Builder {
	return &Builder{r: New(string(f), destDir)}
}

// Item records one outcome, hashing the written file if there is one.
func (b *Builder) Item(o pipeline.Outcome) {
	it := Item{
		Source: o.Source,
		Status: o.Status.String(),
		Path:   o.Path,
	}
	if o.Err != nil {
		it.Error = o.Err.Error()
	}
	if o.Path != "" {
		sum, n, err := hasher.FileHash(o.Path)
		if err != nil {
			if it.Error == "" {
				it.Error = "hash: " + err.Error()
			}
		} else {
			it.Hash, it.Size = sum, n
		}
	}
	b.r.Items = append(b.r.Items, it)
}

// Done finalizes the statistics.
func (b *Builder) Done(pipeline.BatchResult) {
	b.r.ComputeStats()
}

// Report returns the collected report.
func (b *Builder) Report() *Report {
	return b.r
}
