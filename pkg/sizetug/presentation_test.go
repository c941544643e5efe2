package sizetug

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/filetug/sizetug/pkg/dirsize"
)

func TestPresentationState_Hover(t *testing.T) {
	t.Parallel()
	p := NewPresentationState(dirsize.LargestFirst)
	assert.True(t, p.Hover.IsNone())

	assert.True(t, p.SetHover(Cell{Row: 1, Col: 0}))
	assert.False(t, p.SetHover(Cell{Row: 1, Col: 0}))
	assert.True(t, p.SetHover(Cell{Row: 2, Col: 1}))
	assert.True(t, p.ClearHover())
	assert.False(t, p.ClearHover())
	assert.False(t, p.SetHover(Cell{Row: -1, Col: 3}))
}

func TestPresentationState_ToggleSort(t *testing.T) {
	t.Parallel()
	p := NewPresentationState(dirsize.SortState{})

	state := p.ToggleSort(dirsize.BySize)
	assert.Equal(t, dirsize.SortState{Key: dirsize.BySize, Direction: dirsize.Descending}, state)
	state = p.ToggleSort(dirsize.BySize)
	assert.Equal(t, dirsize.Ascending, state.Direction)
	state = p.ToggleSort(dirsize.ByName)
	assert.Equal(t, dirsize.SortState{Key: dirsize.ByName, Direction: dirsize.Descending}, state)
	assert.Equal(t, state, p.Sort)
}

func TestPresentationState_Tooltip(t *testing.T) {
	t.Parallel()
	s := &Session{root: "/x", entries: []dirsize.Entry{
		{Name: "docs", Size: 3 << 20, IsDir: true},
		{Name: "a.txt", Size: 1 << 19},
	}}
	p := NewPresentationState(dirsize.LargestFirst)
	assert.Equal(t, "", p.Tooltip(s))

	p.SetHover(Cell{Row: 0, Col: 1})
	assert.Equal(t, "", p.Tooltip(s))

	p.SetHover(Cell{Row: 1, Col: 1})
	assert.Equal(t, "Folder: docs  Size: 3.00 MB", p.Tooltip(s))

	p.SetHover(Cell{Row: 2, Col: 0})
	assert.Equal(t, "File: a.txt  Size: 0.50 MB", p.Tooltip(s))

	p.SetHover(Cell{Row: 3, Col: 0})
	assert.Equal(t, "", p.Tooltip(s))
}
