package sizetug

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/filetug/sizetug/pkg/dirsize"
)

var _ tview.TableContent = (*EntryRows)(nil)

const (
	nameColIndex = 0
	sizeColIndex = 1
)

const dirEmoji = "📁"
const fileEmoji = "📄"

// EntryRows renders session entries below a header row.
type EntryRows struct {
	tview.TableContentReadOnly
	session *Session
	state   *PresentationState
	// headerClicked is called with the column's sort key.
	headerClicked func(key dirsize.SortKey)
}

func NewEntryRows(session *Session, state *PresentationState, headerClicked func(key dirsize.SortKey)) *EntryRows {
	return &EntryRows{
		session:       session,
		state:         state,
		headerClicked: headerClicked,
	}
}

func (r *EntryRows) GetRowCount() int {
	return r.session.Len() + 1
}

func (r *EntryRows) GetColumnCount() int {
	return 2
}

func (r *EntryRows) GetCell(row, col int) *tview.TableCell {
	if row == 0 {
		return r.getHeaderCell(col)
	}
	entry, ok := r.session.Entry(row - 1)
	if !ok {
		return nil
	}
	var cell *tview.TableCell
	switch col {
	case nameColIndex:
		color := GetColorByFileExt(entry.Name)
		prefix := fileEmoji
		if entry.IsDir {
			color = Style.DirColor
			prefix = dirEmoji
		}
		cell = tview.NewTableCell(prefix + entry.Name)
		cell.SetTextColor(color)
		cell.SetExpansion(1)
	case sizeColIndex:
		cell = tview.NewTableCell(entry.SizeText())
		cell.SetAlign(tview.AlignRight)
		cell.SetTextColor(GetSizeColor(entry.Size))
	default:
		return nil
	}
	cell.SetReference(entry)
	if r.state != nil && r.state.Hover == (Cell{Row: row, Col: col}) {
		cell.SetBackgroundColor(Style.HoverBackground)
	}
	return cell
}

func (r *EntryRows) getHeaderCell(col int) *tview.TableCell {
	var (
		title string
		key   dirsize.SortKey
	)
	switch col {
	case nameColIndex:
		title, key = "Name", dirsize.ByName
	case sizeColIndex:
		title, key = "Size (MB)", dirsize.BySize
	default:
		return nil
	}
	if r.state != nil && r.state.Sort.Key == key {
		if r.state.Sort.Direction == dirsize.Descending {
			title += " ▼"
		} else {
			title += " ▲"
		}
	}
	cell := tview.NewTableCell(title)
	cell.SetTextColor(Style.TableHeaderColor)
	cell.SetAttributes(tcell.AttrBold)
	cell.SetSelectable(false)
	if col == sizeColIndex {
		cell.SetAlign(tview.AlignRight)
	} else {
		cell.SetExpansion(1)
	}
	cell.SetClickedFunc(func() bool {
		if r.headerClicked != nil {
			r.headerClicked(key)
		}
		return true
	})
	return cell
}
