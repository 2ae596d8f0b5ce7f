package fsx

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestOpenFileRejectsDirectories(t *testing.T) {
	_, err := OpenFile(t.TempDir())
	if !errors.Is(err, syscall.EISDIR) {
		t.Fatal("unexpected error", err)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.csv")
	if err := os.WriteFile(path, []byte("date,Israel\n"), 0600); err != nil {
		t.Fatal(err)
	}

	t.Run("regular file", func(t *testing.T) {
		data, err := ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff("date,Israel\n", string(data)); diff != "" {
			t.Fatal(diff)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadFile(filepath.Join(dir, "missing.csv"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatal("unexpected error", err)
		}
	})
}

func TestRegularFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.sqlite3")
	if RegularFileExists(path) {
		t.Fatal("should not exist yet")
	}
	if err := os.WriteFile(path, nil, 0600); err != nil {
		t.Fatal(err)
	}
	if !RegularFileExists(path) {
		t.Fatal("should exist")
	}
	if RegularFileExists(dir) {
		t.Fatal("a directory is not a regular file")
	}
}

func TestOpenWithFS(t *testing.T) {
	fsys := fstest.MapFS{
		"dir/file.txt": &fstest.MapFile{Data: []byte("x")},
	}
	if _, err := openWithFS(fsys, "dir"); !errors.Is(err, syscall.EISDIR) {
		t.Fatal("unexpected error", err)
	}
	file, err := openWithFS(fsys, "dir/file.txt")
	if err != nil {
		t.Fatal(err)
	}
	file.Close()
}
