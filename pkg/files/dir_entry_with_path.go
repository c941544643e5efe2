package files

import (
	"os"
	"path/filepath"
)

// EntryWithDirPath binds a directory entry to the directory it was listed from.
type EntryWithDirPath struct {
	os.DirEntry
	Dir string
}

func (c EntryWithDirPath) DirPath() string {
	return c.Dir
}

func (c EntryWithDirPath) FullName() string {
	name := c.Name()
	return filepath.Join(c.Dir, name)
}

func (c EntryWithDirPath) String() string {
	return c.FullName()
}

func NewEntryWithDirPath(entry os.DirEntry, dir string) EntryWithDirPath {
	if parent, _ := filepath.Split(entry.Name()); parent != "" {
		panic("dir entry name can not have path: " + entry.Name())
	}
	return EntryWithDirPath{
		Dir:      dir,
		DirEntry: entry,
	}
}
