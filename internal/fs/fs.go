package fs

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FS is a directory tree that remembers where it is rooted.
type FS interface {
	fs.FS
	RootDir() string
}

var _ FS = (*rootDirFS)(nil)

func New(entry string) FS {
	return &rootDirFS{entry: entry, FS: os.DirFS(entry)}
}

// Wrap attaches a root name to an arbitrary fs.FS, e.g. an embed.FS or fstest.MapFS.
func Wrap(name string, fsys fs.FS) FS {
	return &rootDirFS{entry: name, FS: fsys}
}

// Dirs opens every path as an FS, failing on the first one that is not a directory.
func Dirs(paths ...string) ([]FS, error) {
	dirs := make([]FS, 0, len(paths))
	for _, pth := range paths {
		abs, err := filepath.Abs(pth)
		if err != nil {
			return nil, fmt.Errorf("filepath.Abs: %w", err)
		}

		info, err := os.Stat(abs)
		if err != nil {
			return nil, fmt.Errorf("os.Stat: %w", err)
		}

		if !info.IsDir() {
			return nil, fmt.Errorf("%s is not a directory", abs)
		}

		dirs = append(dirs, New(abs))
	}

	return dirs, nil
}

type rootDirFS struct {
	fs.FS
	entry string
}

func (r rootDirFS) RootDir() string {
	return r.entry
}
