// Package report prints a scan result for non-interactive use.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/filetug/sizetug/pkg/dirsize"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

type jsonEntry struct {
	Name  string `json:"name"`
	IsDir bool   `json:"is_dir"`
	Size  int64  `json:"size"`
	MB    string `json:"mb"`
}

type jsonReport struct {
	Root      string      `json:"root"`
	Total     int64       `json:"total"`
	FileCount int64       `json:"file_count"`
	Elapsed   string      `json:"elapsed"`
	Entries   []jsonEntry `json:"entries"`
	Skipped   []string    `json:"skipped,omitempty"`
}

// PrintJSON outputs the result in JSON format.
func PrintJSON(result *dirsize.Result, writer io.Writer) error {
	r := jsonReport{
		Root:      result.Root,
		Total:     result.Total(),
		FileCount: result.FileCount,
		Elapsed:   result.Elapsed.String(),
		Entries:   make([]jsonEntry, 0, len(result.Entries)),
	}
	for _, e := range result.Entries {
		r.Entries = append(r.Entries, jsonEntry{Name: e.Name, IsDir: e.IsDir, Size: e.Size, MB: e.SizeText()})
	}
	for _, s := range result.Skipped {
		r.Skipped = append(r.Skipped, s.Error())
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	if _, err = fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}
	return nil
}

// PrintTable outputs the result as an aligned text table.
func PrintTable(result *dirsize.Result, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', tabwriter.AlignRight)
	total := result.Total()

	_, _ = fmt.Fprintf(w, "Name\tSize (MB)\tSize\t\n")
	for _, e := range result.Entries {
		name := e.Name
		if e.IsDir {
			name += "/"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t\n", name, e.SizeText(), humanize.IBytes(uint64(e.Size)))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	w = tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)
	_, _ = fmt.Fprintf(w, "\nRoot:\t%s\n", result.Root)
	_, _ = fmt.Fprintf(w, "Total size:\t%s (%d bytes)\n", humanize.IBytes(uint64(total)), total)
	_, _ = fmt.Fprintf(w, "Total files:\t%d\n", result.FileCount)
	if n := len(result.Skipped); n > 0 {
		_, _ = fmt.Fprintf(w, "Skipped:\t%d\n", n)
		for _, s := range result.Skipped {
			_, _ = fmt.Fprintf(w, "  %s\n", s.Error())
		}
	}
	_, _ = fmt.Fprintf(w, "Elapsed:\t%v\n", result.Elapsed)
	return w.Flush()
}

// Print writes result in the named output format.
func Print(result *dirsize.Result, output string, writer io.Writer) error {
	switch output {
	case "json":
		return PrintJSON(result, writer)
	case "table", "":
		return PrintTable(result, writer)
	default:
		return fmt.Errorf("unknown output format: %s", output)
	}
}

// Progress returns a hook that keeps one "Scanning…" line updated on w.
// The returned done func clears the line.
func Progress(w io.Writer) (hook func(files, bytes int64), done func()) {
	_, _ = fmt.Fprint(w, "\033[?25l")
	hook = func(files, bytes int64) {
		msg := fmt.Sprintf("Scanning… %d files, %s", files, humanize.IBytes(uint64(bytes)))
		_, _ = fmt.Fprintf(w, "\r\033[2K%s\r", msg)
	}
	done = func() {
		_, _ = fmt.Fprint(w, "\r\033[2K\r\033[?25h")
	}
	return hook, done
}
