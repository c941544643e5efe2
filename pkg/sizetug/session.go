package sizetug

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/filetug/sizetug/pkg/dirsize"
	"github.com/filetug/sizetug/pkg/files"
	"github.com/filetug/sizetug/pkg/opener"
)

var (
	ErrNoRoot       = errors.New("no directory loaded")
	ErrPathNotFound = errors.New("path does not exist")
	ErrNoSuchEntry  = errors.New("no such entry")
)

// Session holds the loaded root and its entries. All methods run on the
// caller's goroutine; the UI calls them from its event loop.
type Session struct {
	store   files.Store
	opener  opener.Opener
	options dirsize.Options

	root    string
	entries []dirsize.Entry
	last    *dirsize.Result
}

func NewSession(store files.Store, o opener.Opener, options dirsize.Options) *Session {
	return &Session{
		store:   store,
		opener:  o,
		options: options,
	}
}

func (s *Session) Root() string {
	return s.root
}

// Host names the machine the store reads from.
func (s *Session) Host() string {
	return s.store.RootTitle()
}

func (s *Session) Len() int {
	return len(s.entries)
}

// Entries returns the current entries in display order. Callers must not
// modify the slice.
func (s *Session) Entries() []dirsize.Entry {
	return s.entries
}

func (s *Session) Entry(i int) (dirsize.Entry, bool) {
	if i < 0 || i >= len(s.entries) {
		return dirsize.Entry{}, false
	}
	return s.entries[i], true
}

// LastScan returns the result of the most recent successful Load.
func (s *Session) LastScan() *dirsize.Result {
	return s.last
}

// Load replaces the root with path and rescans it. The previous entries are
// dropped before scanning; on failure the session is left empty. Entries come
// back in directory listing order.
func (s *Session) Load(ctx context.Context, path string) (*dirsize.Result, error) {
	s.clear()
	result, err := dirsize.Scan(ctx, s.store, path, s.options)
	if err != nil {
		return nil, err
	}
	s.root = result.Root
	s.entries = result.Entries
	s.last = result
	return result, nil
}

// Sort reorders the entries in place.
func (s *Session) Sort(state dirsize.SortState) {
	dirsize.Sort(s.entries, state)
}

// Path returns the full path of the entry at index i.
func (s *Session) Path(i int) (string, error) {
	if s.root == "" {
		return "", ErrNoRoot
	}
	entry, ok := s.Entry(i)
	if !ok {
		return "", fmt.Errorf("%w: index %d", ErrNoSuchEntry, i)
	}
	dirEntry := files.NewDirEntry(entry.Name, entry.IsDir)
	return files.NewEntryWithDirPath(dirEntry, s.root).FullName(), nil
}

// Open shows the entry at index i in the platform file manager.
func (s *Session) Open(ctx context.Context, i int) (string, error) {
	path, err := s.Path(i)
	if err != nil {
		return "", err
	}
	if _, err = s.store.Stat(ctx, path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return path, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
		return path, err
	}
	if err = s.opener.Open(ctx, path); err != nil {
		return path, fmt.Errorf("opening %s: %w", path, err)
	}
	return path, nil
}

// Delete removes the whole loaded root from disk and resets the session.
// If removal fails the session keeps its root and entries.
func (s *Session) Delete(ctx context.Context) (string, error) {
	root := s.root
	if root == "" {
		return "", ErrNoRoot
	}
	if err := s.store.RemoveAll(ctx, root); err != nil {
		return root, fmt.Errorf("deleting %s: %w", root, err)
	}
	s.Reset()
	return root, nil
}

// Reset forgets the root and its entries without touching the filesystem.
func (s *Session) Reset() {
	s.clear()
}

func (s *Session) clear() {
	s.root = ""
	s.entries = nil
	s.last = nil
}
