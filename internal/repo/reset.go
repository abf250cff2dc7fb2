package repo

import "go.uber.org/zap"

// Reset checks out the commit commitID resolves to and moves the current
// branch to it.
func (r *Repository) Reset(commitID string) error {
	target, err := r.resolveCommit("reset", commitID)
	if err != nil {
		return err
	}
	branch, head, err := r.head()
	if err != nil {
		return err
	}
	if err := r.switchTo(head, target); err != nil {
		return err
	}
	if err := r.Meta.SetBranchHead(branch, target.ID()); err != nil {
		return err
	}
	r.Logger.Debug("branch reset", zap.String("branch", branch), zap.String("to", target.ID()))
	return nil
}
