package dirsize

import (
	"fmt"
	"time"

	"github.com/filetug/sizetug/pkg/fsutils"
)

// Entry is one direct child of the scanned root.
type Entry struct {
	// Name is the base name within the root.
	Name string `json:"name"`
	// Size is the aggregated size in bytes, never negative.
	Size int64 `json:"size"`
	// IsDir reports whether Size is a recursive sum.
	IsDir bool `json:"is_dir"`
}

// MB returns the size in binary megabytes.
func (e Entry) MB() float64 {
	return fsutils.ToMB(e.Size)
}

// SizeText returns the size in megabytes formatted with two decimals.
func (e Entry) SizeText() string {
	return fsutils.FormatMB(e.Size)
}

// SkippedPath records a path left out of a size total.
type SkippedPath struct {
	Path string `json:"path"`
	Err  error  `json:"-"`
}

func (s SkippedPath) Error() string {
	return fmt.Sprintf("%s: %v", s.Path, s.Err)
}

func (s SkippedPath) Unwrap() error {
	return s.Err
}

// Result is the outcome of a Scan.
type Result struct {
	Root    string        `json:"root"`
	Entries []Entry       `json:"entries"`
	Skipped []SkippedPath `json:"-"`
	// FileCount is the number of regular files summed.
	FileCount int64         `json:"file_count"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Total returns the sum of all entry sizes.
func (r *Result) Total() (total int64) {
	if r == nil {
		return 0
	}
	for _, e := range r.Entries {
		total += e.Size
	}
	return total
}
