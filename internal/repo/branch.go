package repo

import (
	"github.com/keshon/minigit/internal/errors"
	"github.com/keshon/minigit/internal/repo/meta"
)

// Branch creates a branch pointing at the current head commit. HEAD is not moved.
func (r *Repository) Branch(name string) error {
	_, head, err := r.head()
	if err != nil {
		return err
	}
	if !meta.ValidBranchName(name) {
		return errors.E("branch", errors.Other, name, errors.New("invalid branch name"))
	}
	return r.Meta.CreateBranch(name, head.ID())
}

// RemoveBranch deletes a branch pointer. Its commits stay in the store.
func (r *Repository) RemoveBranch(name string) error {
	current, err := r.Meta.GetCurrentBranch()
	if err != nil {
		return err
	}
	return r.Meta.DeleteBranch(name, current)
}

// Branches returns all branch names, sorted, and the current one.
func (r *Repository) Branches() ([]string, string, error) {
	current, err := r.Meta.GetCurrentBranch()
	if err != nil {
		return nil, "", err
	}
	names, err := r.Meta.ListBranches()
	if err != nil {
		return nil, "", err
	}
	return names, current, nil
}
