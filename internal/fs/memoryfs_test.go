package fs_test

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/minigit/internal/fs"
)

func TestMemoryFS_WriteReadFile(t *testing.T) {
	m := fs.NewMemoryFS()
	require.NoError(t, m.MkdirAll("/dir/sub", 0o755))

	content := []byte("hello world")
	require.NoError(t, m.WriteFile("/dir/sub/file.txt", content, 0o644))

	read, err := m.ReadFile("/dir/sub/file.txt")
	require.NoError(t, err)
	assert.Equal(t, content, read)
}

func TestMemoryFS_OpenAndClose(t *testing.T) {
	m := fs.NewMemoryFS()
	require.NoError(t, m.WriteFile("/d/f", []byte("abc"), 0o644))

	f, err := m.Open("/d/f")
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(data))
}

func TestMemoryFS_Remove(t *testing.T) {
	m := fs.NewMemoryFS()
	require.NoError(t, m.WriteFile("/d/f", []byte("x"), 0o644))
	require.True(t, m.Exists("/d/f"))

	require.NoError(t, m.Remove("/d/f"))
	assert.False(t, m.Exists("/d/f"))

	err := m.Remove("/missing")
	require.Error(t, err)
	assert.True(t, m.IsNotExist(err))
}

func TestMemoryFS_Rename(t *testing.T) {
	m := fs.NewMemoryFS()
	require.NoError(t, m.WriteFile("/dir/f", []byte("data"), 0o644))

	require.NoError(t, m.Rename("/dir/f", "/dir/f2"))
	assert.False(t, m.Exists("/dir/f"))
	assert.True(t, m.Exists("/dir/f2"))
}

func TestMemoryFS_StatAndIsDir(t *testing.T) {
	m := fs.NewMemoryFS()
	require.NoError(t, m.MkdirAll("/a/b", 0o755))
	require.NoError(t, m.WriteFile("/a/b/f.txt", []byte("x"), 0o644))

	info, err := m.Stat("/a/b/f.txt")
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	assert.True(t, m.IsDir("/a/b"))
	assert.False(t, m.IsDir("/a/b/f.txt"))
	assert.False(t, m.IsDir("/nope"))
}

func TestMemoryFS_WriteFileAtomic(t *testing.T) {
	m := fs.NewMemoryFS()
	require.NoError(t, m.MkdirAll("/meta", 0o755))
	require.NoError(t, m.WriteFile("/meta/HEAD", []byte("old"), 0o644))

	require.NoError(t, m.WriteFileAtomic("/meta/HEAD", []byte("new"), 0o644))

	data, err := m.ReadFile("/meta/HEAD")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	// no temp files left behind
	entries, err := m.ReadDir("/meta")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "HEAD", entries[0].Name())
}

func TestMemoryFS_Walk(t *testing.T) {
	m := fs.NewMemoryFS()
	require.NoError(t, m.WriteFile("/a.txt", []byte("a"), 0o644))
	require.NoError(t, m.WriteFile("/sub/b.txt", []byte("b"), 0o644))

	var files []string
	err := m.Walk("/", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, filepath.ToSlash(path))
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	assert.Equal(t, []string{"/a.txt", "/sub/b.txt"}, files)
}
