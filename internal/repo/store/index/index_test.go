package index_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/minigit/internal/errors"
	"github.com/keshon/minigit/internal/fs"
	"github.com/keshon/minigit/internal/repo/store/index"
)

const (
	idA = "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	idB = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
)

func TestStageAdd(t *testing.T) {
	ix := index.New()

	assert.True(t, ix.StageAdd("f.txt", idA, "", false))
	assert.True(t, ix.IsStagedAdd("f.txt"))

	// same digest again is no change
	assert.False(t, ix.StageAdd("f.txt", idA, "", false))

	// different digest replaces
	assert.True(t, ix.StageAdd("f.txt", idB, "", false))
	got, ok := ix.StagedDigest("f.txt")
	require.True(t, ok)
	assert.Equal(t, idB, got)
}

func TestStageAddMatchingCommitIsNoop(t *testing.T) {
	ix := index.New()

	assert.False(t, ix.StageAdd("f.txt", idA, idA, true))
	assert.True(t, ix.Empty())
}

func TestStageAddMatchingCommitReplacesStaged(t *testing.T) {
	ix := index.New()
	ix.StageAdd("f.txt", idB, idA, true)

	assert.True(t, ix.StageAdd("f.txt", idA, idA, true))
	got, _ := ix.StagedDigest("f.txt")
	assert.Equal(t, idA, got)
}

func TestStageAddCancelsRemoval(t *testing.T) {
	ix := index.New()
	require.NoError(t, ix.StageRemove("f.txt", true))
	require.True(t, ix.IsStagedRemove("f.txt"))

	assert.True(t, ix.StageAdd("f.txt", idB, idA, true))
	assert.False(t, ix.IsStagedRemove("f.txt"))
	assert.False(t, ix.IsStagedAdd("f.txt"))
	assert.True(t, ix.Empty())
}

func TestStageRemove(t *testing.T) {
	ix := index.New()

	err := ix.StageRemove("ghost", false)
	assert.True(t, errors.IsKind(err, errors.NothingToRemove))

	// staged only: dropped, no removal recorded
	ix.StageAdd("new.txt", idA, "", false)
	require.NoError(t, ix.StageRemove("new.txt", false))
	assert.True(t, ix.Empty())

	// staged and tracked: both
	ix.StageAdd("old.txt", idB, idA, true)
	require.NoError(t, ix.StageRemove("old.txt", true))
	assert.False(t, ix.IsStagedAdd("old.txt"))
	assert.Equal(t, []string{"old.txt"}, ix.Removals())

	// recorded once
	require.NoError(t, ix.StageRemove("old.txt", true))
	assert.Equal(t, []string{"old.txt"}, ix.Removals())
}

func TestRemovalsKeepOrder(t *testing.T) {
	ix := index.New()
	for _, p := range []string{"z", "a", "m"} {
		require.NoError(t, ix.StageRemove(p, true))
	}
	assert.Equal(t, []string{"z", "a", "m"}, ix.Removals())

	ix.UnstageRemove("a")
	assert.Equal(t, []string{"z", "m"}, ix.Removals())
}

func TestApply(t *testing.T) {
	ix := index.New()
	ix.StageAdd("new", idB, "", false)
	ix.StageAdd("keep", idB, idA, true)
	require.NoError(t, ix.StageRemove("gone", true))

	out := ix.Apply(map[string]string{"keep": idA, "gone": idA, "other": idA})
	assert.Equal(t, map[string]string{"new": idB, "keep": idB, "other": idA}, out)
}

func TestSaveLoad(t *testing.T) {
	fsys := fs.NewMemoryFS()

	empty, err := index.Load(fsys, "/.minigit/index")
	require.NoError(t, err)
	assert.True(t, empty.Empty())

	ix := index.New()
	ix.StageAdd("dir/with space.txt", idA, "", false)
	ix.StageAdd("b", idB, "", false)
	require.NoError(t, ix.StageRemove("x", true))
	require.NoError(t, ix.StageRemove("c", true))
	require.NoError(t, ix.Save(fsys, "/.minigit/index"))

	got, err := index.Load(fsys, "/.minigit/index")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "dir/with space.txt"}, got.Additions())
	assert.Equal(t, []string{"x", "c"}, got.Removals())
	assert.Equal(t, ix.Encode(), got.Encode())
}

func TestDecodeRejectsCorruption(t *testing.T) {
	ix := index.New()
	ix.StageAdd("f", idA, "", false)
	data := ix.Encode()
	data[len("minigit-index 1\nadd ")] = 'c'

	_, err := index.Decode(data)
	assert.True(t, errors.IsKind(err, errors.Corrupt))

	_, err = index.Decode([]byte("nonsense"))
	assert.True(t, errors.IsKind(err, errors.Corrupt))
}
