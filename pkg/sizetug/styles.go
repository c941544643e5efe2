package sizetug

import (
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
)

type Styles struct {
	FocusedBorderColor tcell.Color
	BlurBorderColor    tcell.Color

	TableHeaderColor tcell.Color
	HoverBackground  tcell.Color
	DirColor         tcell.Color
	HotkeyColor      tcell.Color

	InfoColor    tcell.Color
	WarningColor tcell.Color
	ErrorColor   tcell.Color
}

var Style = Styles{
	FocusedBorderColor: tcell.ColorCornflowerBlue,
	BlurBorderColor:    tcell.ColorGray,

	TableHeaderColor: tcell.ColorWhiteSmoke,
	HoverBackground:  tcell.ColorDarkSlateGray,
	DirColor:         tcell.ColorLightSkyBlue,
	HotkeyColor:      tcell.ColorYellow,

	InfoColor:    tcell.ColorLightGray,
	WarningColor: tcell.ColorGold,
	ErrorColor:   tcell.ColorOrangeRed,
}

var fileColors = map[string]tcell.Color{
	"exe":  tcell.ColorRed,
	"go":   tcell.ColorAqua,
	"js":   tcell.ColorYellow,
	"json": tcell.ColorGold,
	"yaml": tcell.ColorLightYellow,
	"yml":  tcell.ColorLightYellow,
	"md":   tcell.ColorBisque,
	"py":   tcell.ColorLightGreen,
	"txt":  tcell.ColorWhite,
	"jpg":  tcell.ColorMediumPurple,
	"jpeg": tcell.ColorMediumPurple,
	"png":  tcell.ColorMediumPurple,
	"mov":  tcell.ColorLightSalmon,
	"mp4":  tcell.ColorLightSalmon,
	"mkv":  tcell.ColorLightSalmon,
	"iso":  tcell.ColorOrange,
	"zip":  tcell.ColorOrange,
	"gz":   tcell.ColorOrange,
	"log":  tcell.ColorRosyBrown,
}

// GetColorByFileExt picks the name colour for a file entry.
func GetColorByFileExt(name string) tcell.Color {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if color, ok := fileColors[ext]; ok {
		return color
	}
	return tcell.ColorWhiteSmoke
}

// GetSizeColor highlights big entries: TB red, GB yellow, MB green.
func GetSizeColor(size int64) tcell.Color {
	switch {
	case size >= 1024*1024*1024*1024:
		return tcell.ColorOrangeRed
	case size >= 1024*1024*1024:
		return tcell.ColorYellow
	case size >= 1024*1024:
		return tcell.ColorLightGreen
	case size > 0:
		return tcell.ColorWhiteSmoke
	default:
		return tcell.ColorGray
	}
}

// colorTag formats c for tview's dynamic colour tags.
func colorTag(c tcell.Color) string {
	return c.CSS()
}
