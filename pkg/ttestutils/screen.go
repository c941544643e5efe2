// Package ttestutils draws tview primitives on a simulation screen for tests.
package ttestutils

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// TB is the part of testing.TB the helpers use.
type TB interface {
	Helper()
	Fatalf(format string, args ...any)
}

var NewSimulationScreen = tcell.NewSimulationScreen

// NewSimScreen creates an initialised simulation screen of the given size.
func NewSimScreen(t TB, charset string, width, height int) tcell.SimulationScreen {
	t.Helper()
	s := NewSimulationScreen(charset)
	if err := s.Init(); err != nil {
		t.Fatalf("failed to init simulation screen: %v", err)
		return nil
	}
	s.SetSize(width, height)
	return s
}

// ReadLine reads a full line from the screen.
func ReadLine(screen tcell.Screen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		str, _, _ := screen.Get(x, y)
		if str == "" {
			b.WriteRune(' ')
			continue
		}
		b.WriteString(str)
	}
	return b.String()
}

// Draw renders p full-screen and returns the screen lines.
func Draw(screen tcell.Screen, p tview.Primitive) []string {
	width, height := screen.Size()
	p.SetRect(0, 0, width, height)
	screen.Clear()
	p.Draw(screen)
	screen.Show()
	lines := make([]string, height)
	for y := range lines {
		lines[y] = ReadLine(screen, y, width)
	}
	return lines
}

// FindLine returns the index of the first line containing text, or -1.
func FindLine(lines []string, text string) int {
	for i, line := range lines {
		if strings.Contains(line, text) {
			return i
		}
	}
	return -1
}
