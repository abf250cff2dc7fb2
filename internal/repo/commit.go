package repo

import (
	"go.uber.org/zap"

	"github.com/keshon/minigit/internal/errors"
	"github.com/keshon/minigit/internal/repo/meta"
	"github.com/keshon/minigit/internal/repo/store/object"
)

// Commit records the staged changes on top of the current head, advances the
// current branch and clears the index.
func (r *Repository) Commit(message string) (*meta.Commit, error) {
	if message == "" {
		return nil, errors.E("commit", errors.EmptyMessage, "", nil)
	}
	ix, err := r.loadIndex()
	if err != nil {
		return nil, err
	}
	if ix.Empty() {
		return nil, errors.E("commit", errors.NothingToCommit, "", nil)
	}

	branch, head, err := r.head()
	if err != nil {
		return nil, err
	}
	for _, p := range ix.Additions() {
		id, _ := ix.StagedDigest(p)
		if !r.Objects.Has(object.Blobs, id) {
			return nil, errors.E("commit", errors.NotFound, p, errors.New("staged blob missing from object store"))
		}
	}

	c := meta.NewCommit(message, head.ID(), ix.Apply(head.Tracked()), r.Now())
	id, err := r.Meta.WriteCommit(c)
	if err != nil {
		return nil, err
	}
	if err := r.Meta.SetBranchHead(branch, id); err != nil {
		return nil, err
	}
	ix.Clear()
	if err := r.saveIndex(ix); err != nil {
		return nil, err
	}

	r.Logger.Debug("committed", zap.String("branch", branch), zap.String("id", id))
	return c, nil
}
