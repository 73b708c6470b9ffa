package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// New creates an empty report for a batch targeting format.
func New(format, destDir string) *Report {
	return &Report{
		Version:     SupportedVersion,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Format:      format,
		DestDir:     destDir,
		Items:       []Item{},
	}
}

// ComputeStats recalculates aggregate statistics from items.
func (r *Report) ComputeStats() {
	var s Stats
	s.Total = len(r.Items)
	for _, it := range r.Items {
		switch it.Status {
		case "saved":
			s.Saved++
		case "fallback":
			s.Fallback++
		default:
			s.Failed++
		}
		s.OutputBytes += it.Size
	}
	r.Stats = s
}

// WriteJSON serializes the report to a JSON file.
func WriteJSON(r *Report, path string) error {
	r.ComputeStats()

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	return os.WriteFile(path, data, 0o644)
}

// ReadJSON loads a report written by WriteJSON.
func ReadJSON(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &r, nil
}
