package dirsize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charlievieth/fastwalk"

	"github.com/filetug/sizetug/pkg/files"
)

// DefaultProgressEvery is how many files are counted between progress calls.
const DefaultProgressEvery = 512

// ErrNotADirectory is returned when the scan root is not a directory.
var ErrNotADirectory = errors.New("not a directory")

// Options configures a Scan.
type Options struct {
	// HideDotfiles drops direct children whose name starts with a dot.
	HideDotfiles bool
	// Progress, when set, receives running file and byte counts.
	Progress func(files, bytes int64)
	// ProgressEvery overrides DefaultProgressEvery.
	ProgressEvery int64
}

var walkTree = fastwalk.Walk

var now = time.Now

var evalSymlinks = filepath.EvalSymlinks

// Scan lists the direct children of root and computes the size of each.
// Only a failure to read root itself is returned as an error.
//
// store serves the root listing and the per-child Stat. The recursive walk
// under a child directory and symlink resolution read the local file system.
func Scan(ctx context.Context, store files.Store, root string, opts Options) (*Result, error) {
	if root == "" {
		return nil, fmt.Errorf("scanning: %w", os.ErrInvalid)
	}
	root = filepath.Clean(root)
	start := now()

	info, err := store.Stat(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("accessing path %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path %q: %w", root, ErrNotADirectory)
	}

	children, err := store.ReadDir(ctx, root)
	if err != nil {
		return nil, fmt.Errorf("listing %q: %w", root, err)
	}

	c := newCollector(opts.Progress, opts.ProgressEvery)
	result := &Result{
		Root:    root,
		Entries: make([]Entry, 0, len(children)),
	}

	for _, child := range children {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		name := child.Name()
		if opts.HideDotfiles && strings.HasPrefix(name, ".") {
			continue
		}
		fullPath := filepath.Join(root, name)

		entry, ok := scanChild(ctx, store, c, child, fullPath)
		if !ok {
			continue
		}
		result.Entries = append(result.Entries, entry)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result.FileCount, _ = c.snapshot()
	result.Skipped = c.skipped
	result.Elapsed = now().Sub(start)
	return result, nil
}

// scanChild returns false when the child is neither a file nor a directory.
func scanChild(ctx context.Context, store files.Store, c *collector, child os.DirEntry, fullPath string) (Entry, bool) {
	name := child.Name()
	isDir := child.IsDir()
	isRegular := child.Type().IsRegular()

	var info os.FileInfo
	walkRoot := fullPath
	if child.Type()&os.ModeSymlink != 0 {
		// A symlinked child counts as its target.
		target, err := store.Stat(ctx, fullPath)
		if err != nil {
			c.skip(fullPath, err)
			return Entry{}, false
		}
		info = target
		isDir = target.IsDir()
		isRegular = target.Mode().IsRegular()
		if isDir {
			// The walk does not follow links, so start it at the target.
			if walkRoot, err = evalSymlinks(fullPath); err != nil {
				c.skip(fullPath, err)
				return Entry{}, false
			}
		}
	}

	switch {
	case isDir:
		return Entry{Name: name, Size: dirSize(ctx, c, walkRoot), IsDir: true}, true
	case isRegular:
		if info == nil {
			var err error
			if info, err = child.Info(); err != nil || info == nil {
				if err == nil {
					err = fs.ErrInvalid
				}
				c.skip(fullPath, err)
				return Entry{}, false
			}
		}
		size := max(info.Size(), 0)
		c.addFile(size)
		return Entry{Name: name, Size: size}, true
	default:
		return Entry{}, false
	}
}

// dirSize sums regular files under dir without following symlinks.
func dirSize(ctx context.Context, c *collector, dir string) int64 {
	var total atomic.Int64
	conf := &fastwalk.Config{
		Follow:     false,
		NumWorkers: 1,
	}
	err := walkTree(conf, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			c.skip(path, err)
			return nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			c.skip(path, err)
			return nil
		}
		size := max(info.Size(), 0)
		total.Add(size)
		c.addFile(size)
		return nil
	})
	if err != nil {
		c.skip(dir, err)
	}
	return total.Load()
}
