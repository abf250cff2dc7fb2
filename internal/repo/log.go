package repo

import (
	"iter"

	"github.com/keshon/minigit/internal/errors"
	"github.com/keshon/minigit/internal/repo/meta"
)

// Log yields the commits of the current branch, newest first, down to the root.
func (r *Repository) Log() iter.Seq2[*meta.Commit, error] {
	return func(yield func(*meta.Commit, error) bool) {
		branch, err := r.Meta.GetCurrentBranch()
		if err != nil {
			yield(nil, err)
			return
		}
		head, err := r.Meta.GetBranchHead(branch)
		if err != nil {
			yield(nil, err)
			return
		}
		for c, err := range r.Meta.History(head) {
			if !yield(c, err) || err != nil {
				return
			}
		}
	}
}

// GlobalLog yields every stored commit, reachable or not, ordered by id.
func (r *Repository) GlobalLog() iter.Seq2[*meta.Commit, error] {
	return func(yield func(*meta.Commit, error) bool) {
		ids, err := r.Meta.AllCommitIDs()
		if err != nil {
			yield(nil, err)
			return
		}
		for _, id := range ids {
			c, err := r.Meta.GetCommit(id)
			if !yield(c, err) || err != nil {
				return
			}
		}
	}
}

// Find returns the ids of all commits whose message is exactly message.
func (r *Repository) Find(message string) ([]string, error) {
	var ids []string
	for c, err := range r.GlobalLog() {
		if err != nil {
			return nil, err
		}
		if c.Message() == message {
			ids = append(ids, c.ID())
		}
	}
	if len(ids) == 0 {
		return nil, errors.E("find", errors.NoMatchingCommit, "", nil)
	}
	return ids, nil
}
