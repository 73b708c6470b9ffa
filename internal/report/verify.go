package report

import (
	"fmt"
	"os"

	"github.com/AnyUserName/imagify/internal/hasher"
)

// Verify checks a report for internal consistency and that every written
// file is still on disk with the recorded size and hash. It returns one
// message per problem.
func Verify(r *Report) []string {
	var errs []string

	if r.Version != SupportedVersion {
		errs = append(errs, fmt.Sprintf("unsupported report version: %d", r.Version))
	}

	for i, it := range r.Items {
		switch it.Status {
		case "saved", "fallback":
		case "failed":
			if it.Path != "" {
				errs = append(errs, fmt.Sprintf("item[%d] %s: failed item has a path", i, it.Source))
			}
			continue
		default:
			errs = append(errs, fmt.Sprintf("item[%d] %s: unknown status %q", i, it.Source, it.Status))
			continue
		}

		if it.Path == "" {
			errs = append(errs, fmt.Sprintf("item[%d] %s: missing path", i, it.Source))
			continue
		}

		info, err := os.Stat(it.Path)
		if err != nil {
			errs = append(errs, fmt.Sprintf("item[%d] %s: file not found: %s", i, it.Source, it.Path))
			continue
		}
		// A later item with the same output name replaced this file.
		if overwritten(r.Items[i+1:], it.Path) {
			continue
		}
		if it.Size > 0 && info.Size() != it.Size {
			errs = append(errs, fmt.Sprintf("item[%d] %s: size mismatch: report=%d, disk=%d",
				i, it.Source, it.Size, info.Size()))
			continue
		}
		if it.Hash != "" {
			sum, _, err := hasher.FileHash(it.Path)
			if err != nil {
				errs = append(errs, fmt.Sprintf("item[%d] %s: hash: %v", i, it.Source, err))
			} else if sum != it.Hash {
				errs = append(errs, fmt.Sprintf("item[%d] %s: hash mismatch: report=%s, disk=%s",
					i, it.Source, it.Hash, sum))
			}
		}
	}

	want := *r
	want.ComputeStats()
	if want.Stats != r.Stats {
		errs = append(errs, fmt.Sprintf("stats mismatch: recorded %+v, items give %+v", r.Stats, want.Stats))
	}

	return errs
}

func overwritten(later []Item, path string) bool {
	for _, it := range later {
		if it.Path == path {
			return true
		}
	}
	return false
}
