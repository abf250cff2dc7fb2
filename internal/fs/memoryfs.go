package fs

import "github.com/spf13/afero"

// NewMemoryFS returns an empty in-memory FS, for tests.
func NewMemoryFS() FS {
	return &aferoFS{fs: afero.NewMemMapFs()}
}
