package osfile

import (
	"context"
	"os"
	"strings"

	"github.com/filetug/sizetug/pkg/files"
)

var osReadDir = os.ReadDir
var osHostname = os.Hostname
var osStat = os.Stat
var osRemoveAll = os.RemoveAll

var _ files.Store = (*Store)(nil)

type Store struct {
	title string
}

func (s Store) RootTitle() string {
	return strings.TrimSuffix(s.title, ".local")
}

func (s Store) ReadDir(ctx context.Context, name string) ([]os.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osReadDir(name)
}

// Stat follows symlinks.
func (s Store) Stat(ctx context.Context, name string) (os.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return osStat(name)
}

func (s Store) RemoveAll(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if name == "" {
		return os.ErrInvalid
	}
	return osRemoveAll(name)
}

// NewStore returns a store for the local file system titled with the host name.
func NewStore() *Store {
	var store Store
	var err error
	if store.title, err = osHostname(); err != nil {
		store.title = err.Error()
	}
	return &store
}
