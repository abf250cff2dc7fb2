// Package fs abstracts the filesystem the repository lives on.
//
// Every path handed to an FS is slash separated and rooted at "/", which is
// the working-tree root. The OS implementation confines all access to a base
// directory; the memory implementation is used by tests.
package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// FS abstracts filesystem operations.
type FS interface {
	Open(path string) (io.ReadSeekCloser, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, perm os.FileMode) error
	WriteFileAtomic(path string, data []byte, perm os.FileMode) error
	MkdirAll(path string, perm os.FileMode) error
	Remove(path string) error
	Rename(oldPath, newPath string) error
	Stat(path string) (os.FileInfo, error)
	ReadDir(path string) ([]os.FileInfo, error)
	Walk(root string, fn filepath.WalkFunc) error
	IsNotExist(err error) bool
	Exists(path string) bool
	IsDir(path string) bool

	// Afero exposes the backing afero filesystem for libraries that accept one.
	Afero() afero.Fs
}

// aferoFS implements FS on top of an afero.Fs.
type aferoFS struct {
	fs afero.Fs
}

func (a *aferoFS) Afero() afero.Fs { return a.fs }

func (a *aferoFS) Open(path string) (io.ReadSeekCloser, error) {
	return a.fs.Open(path)
}

func (a *aferoFS) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(a.fs, path)
}

func (a *aferoFS) WriteFile(path string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(a.fs, path, data, perm)
}

// WriteFileAtomic writes data to a temp file next to path and renames it into place.
func (a *aferoFS) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := afero.TempFile(a.fs, dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer a.fs.Remove(tmpPath) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := a.fs.Chmod(tmpPath, perm); err != nil {
		return err
	}
	return a.fs.Rename(tmpPath, path)
}

func (a *aferoFS) MkdirAll(path string, perm os.FileMode) error {
	return a.fs.MkdirAll(path, perm)
}

func (a *aferoFS) Remove(path string) error {
	return a.fs.Remove(path)
}

func (a *aferoFS) Rename(oldPath, newPath string) error {
	return a.fs.Rename(oldPath, newPath)
}

func (a *aferoFS) Stat(path string) (os.FileInfo, error) {
	return a.fs.Stat(path)
}

func (a *aferoFS) ReadDir(path string) ([]os.FileInfo, error) {
	return afero.ReadDir(a.fs, path)
}

func (a *aferoFS) Walk(root string, fn filepath.WalkFunc) error {
	return afero.Walk(a.fs, root, fn)
}

func (a *aferoFS) IsNotExist(err error) bool {
	return os.IsNotExist(err)
}

func (a *aferoFS) Exists(path string) bool {
	ok, err := afero.Exists(a.fs, path)
	return err == nil && ok
}

func (a *aferoFS) IsDir(path string) bool {
	ok, err := afero.IsDir(a.fs, path)
	return err == nil && ok
}
