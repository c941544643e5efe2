package dirsize

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortKey selects the column entries are ordered by.
type SortKey int

const (
	// Unsorted keeps the directory listing order.
	Unsorted SortKey = iota
	ByName
	BySize
)

func (k SortKey) String() string {
	switch k {
	case ByName:
		return "name"
	case BySize:
		return "size"
	default:
		return ""
	}
}

// ParseSortKey accepts "name", "size" or an empty string for Unsorted.
func ParseSortKey(s string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Unsorted, nil
	case "name":
		return ByName, nil
	case "size":
		return BySize, nil
	default:
		return Unsorted, fmt.Errorf("unknown sort key %q: must be name or size", s)
	}
}

type Direction int

const (
	Descending Direction = iota
	Ascending
)

func (d Direction) String() string {
	if d == Ascending {
		return "asc"
	}
	return "desc"
}

// SortState is the active ordering of the entry list.
type SortState struct {
	Key       SortKey
	Direction Direction
}

// LargestFirst orders by size, biggest entries on top.
var LargestFirst = SortState{Key: BySize, Direction: Descending}

// Toggle returns the state after the sort trigger for key fires: the same key
// flips direction, a new key starts descending.
func (s SortState) Toggle(key SortKey) SortState {
	if s.Key == key {
		if s.Direction == Descending {
			s.Direction = Ascending
		} else {
			s.Direction = Descending
		}
		return s
	}
	return SortState{Key: key, Direction: Descending}
}

func (s SortState) String() string {
	if s.Key == Unsorted {
		return "unsorted"
	}
	return s.Key.String() + " " + s.Direction.String()
}

// Sort orders entries in place. The sort is stable: equal keys keep their
// current relative order in both directions.
func Sort(entries []Entry, state SortState) {
	var compare func(a, b Entry) int
	switch state.Key {
	case ByName:
		compare = func(a, b Entry) int { return strings.Compare(a.Name, b.Name) }
	case BySize:
		compare = func(a, b Entry) int { return cmp.Compare(a.Size, b.Size) }
	default:
		return
	}
	if state.Direction == Descending {
		asc := compare
		compare = func(a, b Entry) int { return asc(b, a) }
	}
	slices.SortStableFunc(entries, compare)
}
