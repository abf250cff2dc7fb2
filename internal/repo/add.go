package repo

import (
	"go.uber.org/zap"

	"github.com/keshon/minigit/internal/errors"
	"github.com/keshon/minigit/internal/repo/store/object"
	"github.com/keshon/minigit/internal/util"
)

// Add stages the working copy of name.
//
// A file marked for removal is restored to tracked instead. A file equal to
// its committed version is not staged.
func (r *Repository) Add(name string) error {
	rel := util.CleanRelPath(name)
	if rel == "" || r.Tree.IsControlPath(rel) || !r.Tree.Exists(rel) {
		return errors.E("add", errors.FileNotFound, name, nil)
	}

	ix, err := r.loadIndex()
	if err != nil {
		return err
	}
	if ix.IsStagedRemove(rel) {
		ix.UnstageRemove(rel)
		r.Logger.Debug("removal unstaged", zap.String("path", rel))
		return r.saveIndex(ix)
	}

	_, head, err := r.head()
	if err != nil {
		return err
	}
	data, err := r.Tree.Read(rel)
	if err != nil {
		return errors.Wrapf(err, "read %q", rel)
	}
	id, err := r.Objects.Put(object.Blobs, data)
	if err != nil {
		return err
	}

	committedID, committed := head.BlobID(rel)
	if !ix.StageAdd(rel, id, committedID, committed) {
		return nil
	}
	r.Logger.Debug("file staged", zap.String("path", rel), zap.String("blob", id))
	return r.saveIndex(ix)
}
