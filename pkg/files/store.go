package files

//go:generate mockgen -source=store.go -destination=store_mock.go -package=files

import (
	"context"
	"os"
)

// Store gives read and delete access to a tree of entries.
type Store interface {
	RootTitle() string
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
	Stat(ctx context.Context, name string) (os.FileInfo, error)
	RemoveAll(ctx context.Context, name string) error
}
