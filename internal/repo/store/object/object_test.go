package object_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/minigit/internal/config"
	"github.com/keshon/minigit/internal/errors"
	"github.com/keshon/minigit/internal/fs"
	"github.com/keshon/minigit/internal/repo/store/object"
)

func newStore(t *testing.T, algo string) (*object.Store, fs.FS, *config.RepoConfig) {
	t.Helper()
	fsys := fs.NewMemoryFS()
	cfg := config.NewRepoConfig("/")
	cfg.HashFormat = algo
	s, err := object.NewStore(fsys, cfg, nil)
	require.NoError(t, err)
	require.NoError(t, s.CreateLayout())
	return s, fsys, cfg
}

func TestPutIsIdempotent(t *testing.T) {
	s, _, _ := newStore(t, "sha1")

	id1, err := s.Put(object.Blobs, []byte("hello"))
	require.NoError(t, err)
	id2, err := s.Put(object.Blobs, []byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, id1, id2)
	assert.Equal(t, "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d", id1)

	ids, err := s.List(object.Blobs)
	require.NoError(t, err)
	assert.Equal(t, []string{id1}, ids)
}

func TestSha256Format(t *testing.T) {
	s, _, _ := newStore(t, "sha256")

	id, err := s.Put(object.Blobs, []byte("hello"))
	require.NoError(t, err)
	assert.Equal(t, "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824", id)
}

func TestGet(t *testing.T) {
	s, _, _ := newStore(t, "sha1")

	id, err := s.Put(object.Commits, []byte("record"))
	require.NoError(t, err)

	data, err := s.Get(object.Commits, id)
	require.NoError(t, err)
	assert.Equal(t, "record", string(data))

	// kinds are separate keyspaces
	_, err = s.Get(object.Blobs, id)
	assert.True(t, errors.IsKind(err, errors.NotFound))
	assert.True(t, s.Has(object.Commits, id))
	assert.False(t, s.Has(object.Blobs, id))
}

func TestGetDetectsCorruption(t *testing.T) {
	s, fsys, cfg := newStore(t, "sha1")

	id, err := s.Put(object.Blobs, []byte("original"))
	require.NoError(t, err)
	require.NoError(t, fsys.WriteFile(cfg.BlobsDir()+"/"+id, []byte("tampered"), 0o644))

	_, err = s.Get(object.Blobs, id)
	assert.True(t, errors.IsKind(err, errors.Corrupt))
}

func TestGetRejectsPathLikeIDs(t *testing.T) {
	s, _, _ := newStore(t, "sha1")

	_, err := s.Get(object.Blobs, "../HEAD")
	assert.True(t, errors.IsKind(err, errors.NotFound))
}

func TestResolve(t *testing.T) {
	s, _, _ := newStore(t, "sha1")

	a, err := s.Put(object.Commits, []byte("a"))
	require.NoError(t, err)
	b, err := s.Put(object.Commits, []byte("b"))
	require.NoError(t, err)

	got, err := s.Resolve(object.Commits, a)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	got, err = s.Resolve(object.Commits, b[:8])
	require.NoError(t, err)
	assert.Equal(t, b, got)

	_, err = s.Resolve(object.Commits, "")
	assert.True(t, errors.IsKind(err, errors.NotFound))

	_, err = s.Resolve(object.Commits, "zz")
	assert.True(t, errors.IsKind(err, errors.NotFound))

	_, err = s.Resolve(object.Commits, "0000000")
	assert.True(t, errors.IsKind(err, errors.NotFound))
}

func TestResolveAmbiguousPrefix(t *testing.T) {
	s, _, _ := newStore(t, "sha1")

	// store enough commits that some pair shares a first hex digit
	seen := map[byte]string{}
	var shared string
	for i := 0; shared == ""; i++ {
		id, err := s.Put(object.Commits, []byte{byte(i)})
		require.NoError(t, err)
		if _, ok := seen[id[0]]; ok {
			shared = id[:1]
		}
		seen[id[0]] = id
	}

	_, err := s.Resolve(object.Commits, shared)
	assert.True(t, errors.IsKind(err, errors.NotFound))
}

func TestUnsupportedFormat(t *testing.T) {
	cfg := config.NewRepoConfig("/")
	cfg.HashFormat = "md5"
	_, err := object.NewStore(fs.NewMemoryFS(), cfg, nil)
	assert.Error(t, err)
}
