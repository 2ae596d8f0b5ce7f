// Package fsx contains small file system helpers used by the
// loader, the report reader and the run history store.
package fsx

import (
	"io"
	"io/fs"
	"os"
	"syscall"
)

// OpenFile opens a regular file for reading. When the path names a
// directory, it returns an *os.PathError wrapping syscall.EISDIR.
func OpenFile(pathname string) (fs.File, error) {
	return openWithFS(osFS{}, pathname)
}

// ReadFile is like [os.ReadFile] but uses [OpenFile].
func ReadFile(pathname string) ([]byte, error) {
	file, err := OpenFile(pathname)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// RegularFileExists returns whether pathname exists and is a regular file.
func RegularFileExists(pathname string) bool {
	info, err := os.Stat(pathname)
	return err == nil && info.Mode().IsRegular()
}

func openWithFS(fsys fs.FS, pathname string) (fs.File, error) {
	file, err := fsys.Open(pathname)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, &os.PathError{
			Op:   "openFile",
			Path: pathname,
			Err:  syscall.EISDIR,
		}
	}
	return file, nil
}

// osFS opens paths using the operating system.
type osFS struct{}

var _ fs.FS = osFS{}

// Open implements fs.FS.
func (osFS) Open(pathname string) (fs.File, error) {
	return os.Open(pathname)
}
