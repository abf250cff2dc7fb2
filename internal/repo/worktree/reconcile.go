package worktree

import (
	"path"
	"strings"

	"go.uber.org/zap"

	"github.com/keshon/minigit/internal/errors"
	"github.com/keshon/minigit/internal/repo/store/object"
	"github.com/keshon/minigit/internal/util"
)

// Staging is the part of the index the planner consults.
type Staging interface {
	IsStagedAdd(path string) bool
	IsStagedRemove(path string) bool
}

// Plan is the set of working-tree changes that moves the tree from one
// snapshot to another. A Plan is only produced once every check has passed.
type Plan struct {
	Deletes []string
	Writes  []Write
}

// Write is a file the plan overwrites or creates.
type Write struct {
	Path string
	Data []byte
}

// Plan validates switching from source to target without touching the
// working tree. It fails with UntrackedFileConflict when the switch would
// overwrite an untracked file or delete unsaved modifications, and with a
// storage error when a target blob cannot be read.
func (t *Tree) Plan(source, target map[string]string, staged Staging) (*Plan, error) {
	files, err := t.Files()
	if err != nil {
		return nil, err
	}
	onDisk := make(map[string]bool, len(files))

	deletes := map[string]bool{}
	for _, p := range files {
		onDisk[p] = true
		srcID, inSource := source[p]
		tgtID, inTarget := target[p]

		switch {
		case !inSource && !staged.IsStagedAdd(p) && inTarget:
			if same, err := t.sameContent(p, tgtID); err != nil {
				return nil, err
			} else if !same {
				return nil, t.conflict(p, "untracked file would be overwritten")
			}
		case inSource && !inTarget:
			if !staged.IsStagedAdd(p) && !staged.IsStagedRemove(p) {
				if same, err := t.sameContent(p, srcID); err != nil {
					return nil, err
				} else if !same {
					return nil, t.conflict(p, "modified file would be deleted")
				}
			}
			deletes[p] = true
		}
	}

	plan := &Plan{Deletes: util.SortedKeys(deletes)}
	for _, p := range util.SortedKeys(target) {
		if err := t.checkPathFree(p, onDisk, deletes); err != nil {
			return nil, err
		}
		id := target[p]
		if onDisk[p] {
			if same, err := t.sameContent(p, id); err != nil {
				return nil, err
			} else if same {
				continue
			}
		}
		data, err := t.Objects.Get(object.Blobs, id)
		if err != nil {
			return nil, errors.Wrapf(err, "load blob of %q", p)
		}
		plan.Writes = append(plan.Writes, Write{Path: p, Data: data})
	}

	t.Log.Debug("reconcile plan",
		zap.Int("deletes", len(plan.Deletes)),
		zap.Int("writes", len(plan.Writes)))
	return plan, nil
}

// Apply performs a plan: deletions first, then writes.
func (t *Tree) Apply(plan *Plan) error {
	for _, p := range plan.Deletes {
		if err := t.Delete(p); err != nil {
			return err
		}
	}
	for _, w := range plan.Writes {
		if err := t.Write(w.Path, w.Data); err != nil {
			return err
		}
	}
	return nil
}

// Reconcile plans and, only if the whole plan is valid, applies the switch
// from source to target.
func (t *Tree) Reconcile(source, target map[string]string, staged Staging) error {
	plan, err := t.Plan(source, target, staged)
	if err != nil {
		return err
	}
	return t.Apply(plan)
}

// RestoreFile overwrites name with the stored blob id, whatever is on disk.
func (t *Tree) RestoreFile(name, id string) error {
	data, err := t.Objects.Get(object.Blobs, id)
	if err != nil {
		return errors.Wrapf(err, "load blob of %q", name)
	}
	if t.FS.IsDir(t.Config.WorkPath(name)) {
		return t.conflict(name, "directory in the way")
	}
	return t.Write(name, data)
}

// checkPathFree fails when a directory sits where p must be written, or a
// file that survives the plan sits where one of p's parent directories must be.
func (t *Tree) checkPathFree(p string, onDisk, deletes map[string]bool) error {
	if t.FS.IsDir(t.Config.WorkPath(p)) && !emptiedBy(p, onDisk, deletes) {
		return t.conflict(p, "directory in the way")
	}
	for dir := path.Dir(p); dir != "." && dir != "/"; dir = path.Dir(dir) {
		if onDisk[dir] && !deletes[dir] {
			return t.conflict(dir, "file in the way of directory")
		}
	}
	return nil
}

// emptiedBy reports whether every file under dir is deleted by the plan, so
// pruning leaves dir free for a file of the same name.
func emptiedBy(dir string, onDisk, deletes map[string]bool) bool {
	prefix := dir + "/"
	for p := range onDisk {
		if strings.HasPrefix(p, prefix) && !deletes[p] {
			return false
		}
	}
	return true
}

func (t *Tree) sameContent(p, id string) (bool, error) {
	got, ok, err := t.Digest(p)
	if err != nil {
		return false, err
	}
	return ok && got == id, nil
}

func (t *Tree) conflict(p, why string) error {
	t.Log.Debug("reconcile conflict", zap.String("path", p), zap.String("reason", why))
	return errors.E("reconcile", errors.UntrackedFileConflict, p, errors.New(why))
}

