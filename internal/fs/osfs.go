package fs

import "github.com/spf13/afero"

// NewOSFS returns an FS rooted at the given directory on disk.
// The path "/" of the returned FS is root.
func NewOSFS(root string) FS {
	return &aferoFS{fs: afero.NewBasePathFs(afero.NewOsFs(), root)}
}
