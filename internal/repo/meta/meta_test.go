package meta_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/minigit/internal/config"
	"github.com/keshon/minigit/internal/errors"
	"github.com/keshon/minigit/internal/fs"
	"github.com/keshon/minigit/internal/repo/meta"
	"github.com/keshon/minigit/internal/repo/store/object"
)

func newMeta(t *testing.T) *meta.MetaContext {
	t.Helper()
	fsys := fs.NewMemoryFS()
	cfg := config.NewRepoConfig("/")
	objects, err := object.NewStore(fsys, cfg, nil)
	require.NoError(t, err)
	require.NoError(t, objects.CreateLayout())

	mc, err := meta.NewMeta(fsys, cfg, objects, nil)
	require.NoError(t, err)
	require.NoError(t, mc.CreateMetaStructure())
	return mc
}

// HEAD
func TestHeadRef(t *testing.T) {
	mc := newMeta(t)
	require.True(t, mc.IsMetaExists())

	cur, err := mc.GetCurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBranch, cur)

	require.NoError(t, mc.SetHeadRef("feature"))
	cur, err = mc.GetCurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "feature", cur)
}

func TestHeadRefAcceptsLegacyForm(t *testing.T) {
	mc := newMeta(t)
	require.NoError(t, mc.FS.WriteFile(mc.Config.HeadFile(), []byte("ref: branches/dev"), 0o644))

	cur, err := mc.GetHeadRef()
	require.NoError(t, err)
	assert.Equal(t, "dev", cur)
}

// Branches
func TestBranchCreationAndListing(t *testing.T) {
	mc := newMeta(t)

	require.NoError(t, mc.SetBranchHead("main", "c1"))
	require.NoError(t, mc.CreateBranch("feature", "c1"))

	err := mc.CreateBranch("feature", "c2")
	assert.True(t, errors.IsKind(err, errors.BranchExists))

	names, err := mc.ListBranches()
	require.NoError(t, err)
	assert.Equal(t, []string{"feature", "main"}, names)

	head, err := mc.GetBranchHead("feature")
	require.NoError(t, err)
	assert.Equal(t, "c1", head)

	_, err = mc.GetBranchHead("nope")
	assert.True(t, errors.IsKind(err, errors.NoSuchBranch))
}

func TestDeleteBranch(t *testing.T) {
	mc := newMeta(t)
	require.NoError(t, mc.SetBranchHead("main", "c1"))
	require.NoError(t, mc.CreateBranch("old", "c1"))

	err := mc.DeleteBranch("main", "main")
	assert.True(t, errors.IsKind(err, errors.CannotDeleteCurrent))

	err = mc.DeleteBranch("ghost", "main")
	assert.True(t, errors.IsKind(err, errors.NoSuchBranchToRemove))

	require.NoError(t, mc.DeleteBranch("old", "main"))
	assert.False(t, mc.BranchExists("old"))
}

func TestInvalidBranchNames(t *testing.T) {
	for _, name := range []string{"", ".hidden", "a/b", "..", `a\b`} {
		assert.False(t, meta.ValidBranchName(name), name)
	}
	assert.True(t, meta.ValidBranchName("feature-1"))
}

// Commits
func TestRootCommitUsesEpoch(t *testing.T) {
	c := meta.NewCommit(config.InitialCommitMessage, "", nil, time.Now())
	assert.True(t, c.IsRoot())
	assert.Equal(t, int64(0), c.Timestamp().Unix())

	now := time.Unix(1700000000, 42)
	child := meta.NewCommit("next", "abc", nil, now)
	assert.True(t, child.Timestamp().Equal(now))
}

func TestCommitEncodeDecode(t *testing.T) {
	tracked := map[string]string{
		"b.txt":          "2222222222222222222222222222222222222222",
		"dir/a b.txt":    "1111111111111111111111111111111111111111",
		"weird\n\"name\"": "3333333333333333333333333333333333333333",
	}
	c := meta.NewCommit("line one\nline two", "abcdef", tracked, time.Unix(10, 5))

	got, err := meta.DecodeCommit(c.Encode())
	require.NoError(t, err)
	assert.Equal(t, c.Message(), got.Message())
	assert.Equal(t, c.Parent(), got.Parent())
	assert.True(t, c.Timestamp().Equal(got.Timestamp()))
	assert.Equal(t, tracked, got.Tracked())
	assert.Equal(t, []string{"b.txt", "dir/a b.txt", "weird\n\"name\""}, got.Paths())

	// deterministic
	assert.Equal(t, c.Encode(), got.Encode())
}

func TestDecodeCommitRejectsTampering(t *testing.T) {
	c := meta.NewCommit("msg", "", nil, time.Now())
	data := c.Encode()
	data[len("minigit-commit 1\nmessage \"")] = 'X'

	_, err := meta.DecodeCommit(data)
	assert.True(t, errors.IsKind(err, errors.Corrupt))

	_, err = meta.DecodeCommit([]byte("garbage"))
	assert.True(t, errors.IsKind(err, errors.Corrupt))
}

func TestTrackedIsCopied(t *testing.T) {
	src := map[string]string{"f": "1111111111111111111111111111111111111111"}
	c := meta.NewCommit("m", "p", src, time.Now())
	src["g"] = "x"

	out := c.Tracked()
	out["h"] = "y"

	assert.Equal(t, []string{"f"}, c.Paths())
}

func TestHistoryWalksToRoot(t *testing.T) {
	mc := newMeta(t)

	root := meta.NewCommit(config.InitialCommitMessage, "", nil, time.Now())
	rootID, err := mc.WriteCommit(root)
	require.NoError(t, err)
	assert.Equal(t, rootID, root.ID())

	c1 := meta.NewCommit("one", rootID, nil, time.Unix(100, 0))
	id1, err := mc.WriteCommit(c1)
	require.NoError(t, err)
	c2 := meta.NewCommit("two", id1, nil, time.Unix(200, 0))
	id2, err := mc.WriteCommit(c2)
	require.NoError(t, err)

	var msgs []string
	var ids []string
	for c, err := range mc.History(id2) {
		require.NoError(t, err)
		msgs = append(msgs, c.Message())
		ids = append(ids, c.ID())
	}
	assert.Equal(t, []string{"two", "one", config.InitialCommitMessage}, msgs)
	assert.Equal(t, []string{id2, id1, rootID}, ids)

	all, err := mc.AllCommitIDs()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	got, err := mc.ResolveCommit(id1[:8])
	require.NoError(t, err)
	assert.Equal(t, "one", got.Message())
}

func TestHistoryStopsEarly(t *testing.T) {
	mc := newMeta(t)
	rootID, err := mc.WriteCommit(meta.NewCommit("root", "", nil, time.Now()))
	require.NoError(t, err)
	id, err := mc.WriteCommit(meta.NewCommit("child", rootID, nil, time.Now()))
	require.NoError(t, err)

	n := 0
	for range mc.History(id) {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestHistoryReportsMissingParent(t *testing.T) {
	mc := newMeta(t)
	id, err := mc.WriteCommit(meta.NewCommit("orphan", "0123456789012345678901234567890123456789", nil, time.Now()))
	require.NoError(t, err)

	var lastErr error
	n := 0
	for c, err := range mc.History(id) {
		if err != nil {
			lastErr = err
			break
		}
		assert.NotNil(t, c)
		n++
	}
	assert.Equal(t, 1, n)
	assert.True(t, errors.IsKind(lastErr, errors.NotFound))
}
