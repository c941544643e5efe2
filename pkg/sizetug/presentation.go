package sizetug

import (
	"fmt"

	"github.com/filetug/sizetug/pkg/dirsize"
)

// Cell addresses a table cell; row 0 is the header.
type Cell struct {
	Row, Col int
}

// NoCell is used while the pointer is outside the table.
var NoCell = Cell{Row: -1, Col: -1}

func (c Cell) IsNone() bool {
	return c.Row < 0 || c.Col < 0
}

// PresentationState is the mutable view state of the window.
type PresentationState struct {
	Hover Cell
	Sort  dirsize.SortState
}

func NewPresentationState(sort dirsize.SortState) PresentationState {
	return PresentationState{Hover: NoCell, Sort: sort}
}

// SetHover moves the hover to c and reports whether it changed.
func (p *PresentationState) SetHover(c Cell) bool {
	if c.IsNone() {
		c = NoCell
	}
	if p.Hover == c {
		return false
	}
	p.Hover = c
	return true
}

func (p *PresentationState) ClearHover() bool {
	return p.SetHover(NoCell)
}

// ToggleSort applies the sort trigger for key and returns the new state.
func (p *PresentationState) ToggleSort(key dirsize.SortKey) dirsize.SortState {
	p.Sort = p.Sort.Toggle(key)
	return p.Sort
}

// Tooltip describes the entry under the hover, or returns "" when the hover
// is not on a data row.
func (p *PresentationState) Tooltip(session *Session) string {
	if p.Hover.IsNone() || p.Hover.Row == 0 {
		return ""
	}
	entry, ok := session.Entry(p.Hover.Row - 1)
	if !ok {
		return ""
	}
	kind := "File"
	if entry.IsDir {
		kind = "Folder"
	}
	return fmt.Sprintf("%s: %s  Size: %s MB", kind, entry.Name, entry.SizeText())
}
