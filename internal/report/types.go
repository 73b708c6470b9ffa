// Package report records the outcome of a conversion batch as JSON and
// checks a recorded batch against the files on disk.
package report

// Report is the top-level record of one batch.
type Report struct {
	Version     int    `json:"version"`
	GeneratedAt string `json:"generated_at"`
	Format      string `json:"format"`
	DestDir     string `json:"dest_dir"`
	Items       []Item `json:"items"`
	Stats       Stats  `json:"stats"`
}

// Item is the outcome of one source image.
type Item struct {
	Source string `json:"source"`
	Status string `json:"status"`          // "saved", "fallback", "failed"
	Path   string `json:"path,omitempty"`  // written file
	Size   int64  `json:"size,omitempty"`  // bytes on disk
	Hash   string `json:"hash,omitempty"`  // first 16 hex chars of xxhash64
	Error  string `json:"error,omitempty"` // failure or fallback reason
}

// Stats aggregates the batch.
type Stats struct {
	Total       int   `json:"total"`
	Saved       int   `json:"saved"`
	Fallback    int   `json:"fallback"`
	Failed      int   `json:"failed"`
	OutputBytes int64 `json:"output_bytes"`
}

// SupportedVersion is the current schema version.
const SupportedVersion = 1
