package repo

import (
	"go.uber.org/zap"

	"github.com/keshon/minigit/internal/util"
)

// Remove unstages name and, if the current commit tracks it, marks it for
// removal and deletes the working copy.
func (r *Repository) Remove(name string) error {
	rel := util.CleanRelPath(name)

	ix, err := r.loadIndex()
	if err != nil {
		return err
	}
	_, head, err := r.head()
	if err != nil {
		return err
	}

	_, tracked := head.BlobID(rel)
	if err := ix.StageRemove(rel, tracked); err != nil {
		return err
	}
	if err := r.saveIndex(ix); err != nil {
		return err
	}
	if tracked {
		if err := r.Tree.Delete(rel); err != nil {
			return err
		}
	}
	r.Logger.Debug("file removed", zap.String("path", rel), zap.Bool("tracked", tracked))
	return nil
}
