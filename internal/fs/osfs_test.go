package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/minigit/internal/fs"
)

func TestOSFS_RootedAtBaseDir(t *testing.T) {
	dir := t.TempDir()
	o := fs.NewOSFS(dir)

	require.NoError(t, o.MkdirAll("/sub", 0o755))
	require.NoError(t, o.WriteFile("/sub/f.txt", []byte("on disk"), 0o644))

	data, err := os.ReadFile(filepath.Join(dir, "sub", "f.txt"))
	require.NoError(t, err)
	assert.Equal(t, "on disk", string(data))
}

func TestOSFS_WriteFileAtomic(t *testing.T) {
	dir := t.TempDir()
	o := fs.NewOSFS(dir)

	require.NoError(t, o.WriteFileAtomic("/HEAD", []byte("main"), 0o644))

	data, err := os.ReadFile(filepath.Join(dir, "HEAD"))
	require.NoError(t, err)
	assert.Equal(t, "main", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestOSFS_NotExist(t *testing.T) {
	o := fs.NewOSFS(t.TempDir())

	_, err := o.ReadFile("/missing")
	require.Error(t, err)
	assert.True(t, o.IsNotExist(err))
	assert.False(t, o.Exists("/missing"))
}
