package sizetug

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpText = `Enter in path - Scan the directory
Enter / Double-click - Open in file manager
n / click Name - Sort by name
s / click Size - Sort by size
S, L - Sort largest first
Right-click / m - Actions menu
r - Reset
d / Del - Delete the scanned folder
Tab - Switch between path and table
F1 - Help   Esc - Close   q - Quit`

func createHelpModal(onClose func()) (modal tview.Primitive, helpView *tview.TextView, button *tview.Button) {
	helpView = tview.NewTextView().
		SetDynamicColors(true).
		SetText(helpText)
	helpView.SetBackgroundColor(tcell.ColorDarkBlue)

	closeOnKey := func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyF1 {
			onClose()
			return nil
		}
		return event
	}
	helpView.SetInputCapture(closeOnKey)

	button = tview.NewButton("Close").SetSelectedFunc(onClose)
	button.SetBackgroundColor(tcell.ColorDarkBlue)
	button.SetInputCapture(closeOnKey)

	helpFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(helpView, 0, 1, false).
		AddItem(button, 1, 0, true)
	helpFlex.SetBorder(true).
		SetTitle(" SizeTug - Help ").
		SetTitleAlign(tview.AlignCenter)
	helpFlex.SetBackgroundColor(tcell.ColorDarkBlue)

	modal = centered(helpFlex, 50, 14)
	return modal, helpView, button
}

// centered places p in the middle of the screen with a fixed size.
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewGrid().
		SetColumns(0, width, 0).
		SetRows(0, height, 0).
		AddItem(p, 1, 1, 1, 1, 0, 0, true)
}
