package sizetug

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/filetug/sizetug/pkg/dirsize"
	"github.com/filetug/sizetug/pkg/sizetug/stapp"
)

const (
	pageMain    = "main"
	pageHelp    = "help"
	pageMenu    = "menu"
	pageConfirm = "confirm"
)

var logErr = func(v ...any) {
	log.Println(v...)
}

// Window is the whole sizetug screen: path input, entries table, status
// line and hotkey bar, with overlays stacked as pages.
type Window struct {
	*tview.Pages
	app     stapp.App
	ctx     context.Context
	session *Session
	state   PresentationState
	rows    *EntryRows

	layout     *tview.Flex
	input      *tview.InputField
	sortButton *tview.Button
	table      *tview.Table
	status     *tview.TextView
	bottom     *bottom

	initialFocus tview.Primitive
	statusText   string
	tooltip      string
}

type windowOptions struct {
	initialPath string
	sort        dirsize.SortState
}

type WindowOption func(o *windowOptions)

// WithInitialPath scans path as soon as the window is created.
func WithInitialPath(path string) WindowOption {
	return func(o *windowOptions) {
		o.initialPath = path
	}
}

// WithSort sets the order applied after every scan.
func WithSort(state dirsize.SortState) WindowOption {
	return func(o *windowOptions) {
		o.sort = state
	}
}

func NewWindow(ctx context.Context, app stapp.App, session *Session, options ...WindowOption) *Window {
	o := windowOptions{sort: dirsize.LargestFirst}
	for _, option := range options {
		option(&o)
	}

	w := &Window{
		Pages:   tview.NewPages(),
		app:     app,
		ctx:     ctx,
		session: session,
		state:   NewPresentationState(o.sort),
	}
	w.rows = NewEntryRows(session, &w.state, w.sortBy)

	w.input = tview.NewInputField().
		SetLabel("Path: ").
		SetPlaceholder("Drag or type a path").
		SetFieldBackgroundColor(tcell.ColorDarkSlateGray).
		SetDoneFunc(w.inputDone)

	w.sortButton = tview.NewButton("Sort largest first").SetSelectedFunc(w.sortLargestFirst)

	w.table = tview.NewTable().
		SetContent(w.rows).
		SetFixed(1, 0).
		SetSelectable(true, false).
		SetSelectedFunc(func(row, _ int) {
			w.openRow(row)
		})
	w.table.SetBorder(true).SetBorderColor(Style.BlurBorderColor)
	w.table.SetTitleAlign(tview.AlignLeft)
	w.table.SetFocusFunc(func() {
		w.table.SetBorderColor(Style.FocusedBorderColor)
	})
	w.table.SetBlurFunc(func() {
		w.table.SetBorderColor(Style.BlurBorderColor)
	})
	w.table.SetInputCapture(w.tableKeys)

	w.status = tview.NewTextView().SetDynamicColors(true)
	w.bottom = newBottom(w.menuItems())

	top := tview.NewFlex().
		AddItem(w.input, 0, 1, true).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(w.sortButton, len("Sort largest first")+4, 0, false)

	w.layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(top, 1, 0, true).
		AddItem(w.table, 0, 1, false).
		AddItem(w.status, 1, 0, false).
		AddItem(w.bottom, 1, 0, false)

	w.AddPage(pageMain, w.layout, true, true)
	w.SetInputCapture(w.globalKeys)
	w.SetMouseCapture(w.captureMouse)

	w.renderTitle()
	w.showInfo("Type or drop a folder path and press Enter")

	w.initialFocus = w.input
	if o.initialPath != "" {
		w.input.SetText(o.initialPath)
		if w.load(o.initialPath) {
			w.initialFocus = w.table
		}
	}
	return w
}

func (w *Window) menuItems() []MenuItem {
	return []MenuItem{
		{Title: "F1 Help", HotKeys: []string{"F1"}, Action: w.showHelp},
		{Title: "Name", HotKeys: []string{"N"}, Action: func() { w.sortBy(dirsize.ByName) }},
		{Title: "Size", HotKeys: []string{"S"}, Action: func() { w.sortBy(dirsize.BySize) }},
		{Title: "Largest", HotKeys: []string{"L"}, Action: w.sortLargestFirst},
		{Title: "Reset", HotKeys: []string{"R"}, Action: w.reset},
		{Title: "Delete", HotKeys: []string{"D"}, Action: w.confirmDelete},
		{Title: "Quit", HotKeys: []string{"Q"}, Action: w.app.Stop},
	}
}

func (w *Window) inputDone(key tcell.Key) {
	switch key {
	case tcell.KeyEnter:
		if w.load(w.input.GetText()) {
			w.app.SetFocus(w.table)
		}
	case tcell.KeyTab, tcell.KeyBacktab:
		w.app.SetFocus(w.table)
	default:
	}
}

// load scans text as a path and reports whether it succeeded.
func (w *Window) load(text string) bool {
	path := ParseDroppedPath(text)
	if path == "" {
		w.showError(errors.New("enter a folder path to scan"))
		return false
	}
	w.input.SetText(path)
	w.state.ClearHover()
	w.tooltip = ""

	result, err := w.session.Load(w.ctx, path)
	if err != nil {
		w.renderTitle()
		w.showError(err)
		return false
	}
	w.session.Sort(w.state.Sort)
	w.table.ScrollToBeginning()
	w.table.Select(1, 0)
	w.renderTitle()

	text = fmt.Sprintf("%d items, %s in %d files, scanned in %s",
		len(result.Entries), humanize.IBytes(uint64(result.Total())), result.FileCount,
		result.Elapsed.Round(time.Millisecond))
	if n := len(result.Skipped); n > 0 {
		for _, skipped := range result.Skipped {
			logErr("skipped:", skipped.Error())
		}
		w.showWarning(fmt.Sprintf("%s; %d paths skipped", text, n))
	} else {
		w.showInfo(text)
	}
	return true
}

func (w *Window) sortBy(key dirsize.SortKey) {
	w.session.Sort(w.state.ToggleSort(key))
	w.renderTitle()
	w.updateTooltip()
}

func (w *Window) sortLargestFirst() {
	w.state.Sort = dirsize.LargestFirst
	w.session.Sort(w.state.Sort)
	w.renderTitle()
	w.updateTooltip()
}

// openRow opens the entry shown at table row; row 0 is the header.
func (w *Window) openRow(row int) {
	if row < 1 {
		return
	}
	path, err := w.session.Open(w.ctx, row-1)
	if err != nil {
		w.showError(err)
		return
	}
	w.showInfo("Opened " + path)
}

func (w *Window) reset() {
	w.closeOverlays()
	w.session.Reset()
	w.input.SetText("")
	w.state.ClearHover()
	w.tooltip = ""
	w.table.ScrollToBeginning()
	w.table.Select(0, 0)
	w.renderTitle()
	w.showInfo("Cleared")
	w.app.SetFocus(w.input)
}

func (w *Window) confirmDelete() {
	w.closeOverlays()
	root := w.session.Root()
	if root == "" {
		w.showError(ErrNoRoot)
		return
	}
	modal := tview.NewModal().
		SetText(fmt.Sprintf("Delete %s and everything inside it?\nThis cannot be undone.", root)).
		AddButtons([]string{"Cancel", "Delete"}).
		SetDoneFunc(func(_ int, label string) {
			w.closeOverlays()
			if label == "Delete" {
				w.deleteRoot()
			}
		})
	w.AddPage(pageConfirm, modal, true, true)
	w.app.SetFocus(modal)
}

func (w *Window) deleteRoot() {
	root, err := w.session.Delete(w.ctx)
	if err != nil {
		w.showError(err)
		return
	}
	w.input.SetText("")
	w.state.ClearHover()
	w.tooltip = ""
	w.table.Select(0, 0)
	w.renderTitle()
	w.showInfo("Deleted " + root)
	w.app.SetFocus(w.input)
}

func (w *Window) showContextMenu() {
	w.closeOverlays()
	list := tview.NewList().
		ShowSecondaryText(false).
		AddItem("Reset", "", 'r', w.reset).
		AddItem("Delete folder", "", 'd', w.confirmDelete).
		AddItem("Cancel", "", 'c', w.closeOverlays)
	list.SetDoneFunc(w.closeOverlays)
	list.SetBorder(true).SetTitle(" Actions ")
	w.AddPage(pageMenu, centered(list, 30, 5), true, true)
	w.app.SetFocus(list)
}

func (w *Window) showHelp() {
	w.closeOverlays()
	modal, _, button := createHelpModal(w.closeOverlays)
	w.AddPage(pageHelp, modal, true, true)
	w.app.SetFocus(button)
}

func (w *Window) hasOverlay() bool {
	return w.HasPage(pageHelp) || w.HasPage(pageMenu) || w.HasPage(pageConfirm)
}

func (w *Window) closeOverlays() {
	if !w.hasOverlay() {
		return
	}
	for _, name := range []string{pageHelp, pageMenu, pageConfirm} {
		w.RemovePage(name)
	}
	w.app.SetFocus(w.table)
}

func (w *Window) globalKeys(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyF1:
		if w.HasPage(pageHelp) {
			w.closeOverlays()
		} else {
			w.showHelp()
		}
		return nil
	case tcell.KeyEscape:
		if w.hasOverlay() {
			w.closeOverlays()
			return nil
		}
	default:
	}
	return event
}

func (w *Window) tableKeys(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyTab, tcell.KeyBacktab:
		w.app.SetFocus(w.input)
		return nil
	case tcell.KeyDelete:
		w.confirmDelete()
		return nil
	case tcell.KeyRune:
		switch event.Rune() {
		case 'n':
			w.sortBy(dirsize.ByName)
		case 's':
			w.sortBy(dirsize.BySize)
		case 'S', 'l', 'L':
			w.sortLargestFirst()
		case 'r':
			w.reset()
		case 'd':
			w.confirmDelete()
		case 'm':
			w.showContextMenu()
		case '/':
			w.app.SetFocus(w.input)
		case 'q':
			w.app.Stop()
		default:
			return event
		}
		return nil
	default:
		return event
	}
}

func (w *Window) captureMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if event == nil || w.hasOverlay() {
		return action, event
	}
	cell := w.cellAt(event.Position())
	switch action {
	case tview.MouseMove:
		if w.state.SetHover(cell) {
			w.updateTooltip()
			return tview.MouseConsumed, nil
		}
	case tview.MouseLeftDoubleClick:
		if cell.Row > 0 {
			w.table.Select(cell.Row, 0)
			w.openRow(cell.Row)
			return tview.MouseConsumed, nil
		}
	case tview.MouseRightClick:
		if !cell.IsNone() {
			w.showContextMenu()
			return tview.MouseConsumed, nil
		}
	default:
	}
	return action, event
}

// cellAt maps screen coordinates to a table cell, or NoCell outside it.
func (w *Window) cellAt(x, y int) Cell {
	ix, iy, width, height := w.table.GetInnerRect()
	if x < ix || y < iy || x >= ix+width || y >= iy+height {
		return NoCell
	}
	row, col := w.table.CellAt(x, y)
	if row < 0 || col < 0 || row >= w.rows.GetRowCount() || col >= w.rows.GetColumnCount() {
		return NoCell
	}
	return Cell{Row: row, Col: col}
}

func (w *Window) updateTooltip() {
	w.tooltip = w.state.Tooltip(w.session)
	w.renderStatus()
}

func (w *Window) renderTitle() {
	title := " No folder loaded "
	if root := w.session.Root(); root != "" {
		title = fmt.Sprintf(" %s:%s (%s) ", tview.Escape(w.session.Host()), tview.Escape(root), w.state.Sort)
	}
	w.table.SetTitle(title)
}

func (w *Window) showInfo(text string) {
	w.statusText = fmt.Sprintf("[%s]%s[-]", colorTag(Style.InfoColor), tview.Escape(text))
	w.renderStatus()
}

func (w *Window) showWarning(text string) {
	w.statusText = fmt.Sprintf("[%s]%s[-]", colorTag(Style.WarningColor), tview.Escape(text))
	w.renderStatus()
}

func (w *Window) showError(err error) {
	logErr(err)
	w.statusText = fmt.Sprintf("[%s]%s[-]", colorTag(Style.ErrorColor), tview.Escape(err.Error()))
	w.renderStatus()
}

func (w *Window) renderStatus() {
	if w.tooltip != "" {
		w.status.SetText(tview.Escape(w.tooltip))
		return
	}
	w.status.SetText(w.statusText)
}
