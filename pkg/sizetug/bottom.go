package sizetug

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type MenuItem struct {
	Title   string
	HotKeys []string
	Action  func()
}

// bottom is the clickable hotkey bar under the table.
type bottom struct {
	*tview.TextView
	menuItems []MenuItem
}

func newBottom(menuItems []MenuItem) *bottom {
	b := &bottom{
		menuItems: menuItems,
		TextView: tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true).
			SetTextColor(tcell.ColorSlateGray),
	}
	b.SetHighlightedFunc(b.highlighted)
	b.render()
	return b
}

func (b *bottom) render() {
	b.SetText(renderMenuItems(b.menuItems))
}

func renderMenuItems(menuItems []MenuItem) string {
	const separator = "┊"
	if len(menuItems) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, mi := range menuItems {
		if i > 0 {
			sb.WriteString(separator)
		}
		title := mi.Title
		for _, key := range mi.HotKeys {
			hotkeyText := fmt.Sprintf("[%s]%s[-]", colorTag(Style.HotkeyColor), key)
			title = strings.Replace(title, key, hotkeyText, 1)
		}
		_, _ = fmt.Fprintf(&sb, `["%s"]%s[""]`, regionID(mi), title)
	}
	return sb.String()
}

func regionID(mi MenuItem) string {
	if len(mi.HotKeys) == 0 {
		return mi.Title
	}
	return mi.HotKeys[0]
}

func (b *bottom) highlighted(added, _, _ []string) {
	if len(added) == 0 {
		return
	}
	region := added[0]
	// A region stays highlighted after a click; clear it so the next click fires again.
	b.Highlight()
	for _, mi := range b.menuItems {
		if regionID(mi) == region && mi.Action != nil {
			mi.Action()
			return
		}
	}
}
