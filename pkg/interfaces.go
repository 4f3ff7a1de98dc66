package pkg

import (
	"io/fs"
	"os"
	"syscall"

	"dirsheet/pkg/sheet"
)

// DirectoryLister lists the entries of a single directory in the order the
// filesystem reports them. A listing that fails after it started returns
// the entries read so far with an ErrEntry error.
type DirectoryLister interface {
	ReadDir(path string) ([]fs.DirEntry, error)
}

// LineExtractor reads the leading lines of one file
type LineExtractor interface {
	Extract(path string, maxLines int) ([]string, error)
}

// OSLister lists directories through the operating system without sorting
type OSLister struct{}

// ReadDir returns the entries of path in directory order. A path that
// exists but is not a directory fails with syscall.ENOTDIR.
func (OSLister) ReadDir(path string) ([]fs.DirEntry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &fs.PathError{Op: "readdir", Path: path, Err: syscall.ENOTDIR}
	}

	dir, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	entries, err := dir.ReadDir(-1)
	if err != nil {
		return entries, NewEntryError("read_dir", path, err)
	}
	return entries, nil
}

// FileExtractor reads lines from regular files on disk
type FileExtractor struct{}

func (FileExtractor) Extract(path string, maxLines int) ([]string, error) {
	return sheet.Extract(path, maxLines)
}
