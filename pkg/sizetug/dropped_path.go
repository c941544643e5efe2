package sizetug

import (
	"net/url"
	"path/filepath"
	"strings"

	"github.com/filetug/sizetug/pkg/fsutils"
)

// ParseDroppedPath cleans text typed or pasted into the path field.
// Terminals paste a dropped file as a quoted or escaped path, some as a
// file:// URL.
func ParseDroppedPath(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}
	if len(text) >= 2 {
		first, last := text[0], text[len(text)-1]
		if (first == '"' || first == '\'') && last == first {
			text = text[1 : len(text)-1]
		}
	}
	if strings.HasPrefix(text, "file://") {
		if u, err := url.Parse(text); err == nil {
			text = u.Path
		}
	} else if filepath.Separator == '/' && strings.Contains(text, `\ `) {
		text = strings.ReplaceAll(text, `\ `, " ")
	}
	if text == "" {
		return ""
	}
	return filepath.Clean(fsutils.ExpandHome(text))
}
