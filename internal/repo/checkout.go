package repo

import (
	"go.uber.org/zap"

	"github.com/keshon/minigit/internal/errors"
	"github.com/keshon/minigit/internal/repo/meta"
	"github.com/keshon/minigit/internal/util"
)

// CheckoutBranch switches the working tree and HEAD to the named branch.
func (r *Repository) CheckoutBranch(name string) error {
	current, head, err := r.head()
	if err != nil {
		return err
	}
	if name == current {
		return errors.E("checkout", errors.AlreadyOnBranch, name, nil)
	}
	targetID, err := r.Meta.GetBranchHead(name)
	if err != nil {
		return err
	}
	target, err := r.Meta.GetCommit(targetID)
	if err != nil {
		return err
	}

	if err := r.switchTo(head, target); err != nil {
		return err
	}
	if err := r.Meta.SetHeadRef(name); err != nil {
		return err
	}
	r.Logger.Debug("switched branch", zap.String("from", current), zap.String("to", name))
	return nil
}

// CheckoutFile restores name from the head commit of the current branch.
func (r *Repository) CheckoutFile(name string) error {
	_, head, err := r.head()
	if err != nil {
		return err
	}
	return r.restoreFrom(head, name)
}

// CheckoutFileAt restores name from the commit commitID resolves to.
func (r *Repository) CheckoutFileAt(commitID, name string) error {
	c, err := r.resolveCommit("checkout", commitID)
	if err != nil {
		return err
	}
	return r.restoreFrom(c, name)
}

func (r *Repository) restoreFrom(c *meta.Commit, name string) error {
	rel := util.CleanRelPath(name)
	id, ok := c.BlobID(rel)
	if !ok {
		return errors.E("checkout", errors.FileNotInCommit, name, nil)
	}
	if err := r.Tree.RestoreFile(rel, id); err != nil {
		return err
	}
	r.Logger.Debug("file restored", zap.String("path", rel), zap.String("commit", c.ID()))
	return nil
}

// switchTo reconciles the working tree from one commit to another and clears
// the index. Nothing is touched if the reconciler finds a conflict.
func (r *Repository) switchTo(from, to *meta.Commit) error {
	ix, err := r.loadIndex()
	if err != nil {
		return err
	}
	if err := r.Tree.Reconcile(from.Tracked(), to.Tracked(), ix); err != nil {
		return err
	}
	ix.Clear()
	return r.saveIndex(ix)
}
