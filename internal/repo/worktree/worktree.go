// Package worktree reads and rewrites the files of the working directory.
package worktree

import (
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/keshon/minigit/internal/config"
	"github.com/keshon/minigit/internal/errors"
	"github.com/keshon/minigit/internal/fs"
	"github.com/keshon/minigit/internal/repo/store/object"
)

// Tree is the working directory of a repository. File names are slash
// separated and relative to the working-tree root.
type Tree struct {
	FS      fs.FS
	Config  *config.RepoConfig
	Objects *object.Store
	Log     *zap.Logger
}

// New returns the working tree described by cfg.
func New(fsys fs.FS, cfg *config.RepoConfig, objects *object.Store, log *zap.Logger) *Tree {
	if log == nil {
		log = zap.NewNop()
	}
	return &Tree{FS: fsys, Config: cfg, Objects: objects, Log: log}
}

// Files returns every regular file of the working tree, sorted.
// The control directory is skipped.
func (t *Tree) Files() ([]string, error) {
	var files []string
	root := t.Config.WorkTree
	control := t.Config.RepoRoot()

	err := t.FS.Walk(root, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		p = path.Clean(filepath.ToSlash(p))
		if info.IsDir() {
			if p == control {
				return filepath.SkipDir
			}
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if rel := t.rel(p); rel != "" {
			files = append(files, rel)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "scan working tree")
	}
	sort.Strings(files)
	return files, nil
}

// Exists reports whether name is a regular file on disk.
func (t *Tree) Exists(name string) bool {
	fi, err := t.FS.Stat(t.Config.WorkPath(name))
	return err == nil && fi.Mode().IsRegular()
}

// IsControlPath reports whether name lies inside the control directory.
func (t *Tree) IsControlPath(name string) bool {
	return name == config.RepoDir || strings.HasPrefix(name, config.RepoDir+"/")
}

// Read returns the content of name.
func (t *Tree) Read(name string) ([]byte, error) {
	return t.FS.ReadFile(t.Config.WorkPath(name))
}

// Digest returns the id the current content of name would be stored under.
// ok is false when the file is missing.
func (t *Tree) Digest(name string) (id string, ok bool, err error) {
	data, err := t.Read(name)
	if err != nil {
		if t.FS.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, errors.Wrapf(err, "read %q", name)
	}
	return t.Objects.Sum(data), true, nil
}

// Write replaces the content of name, creating parent directories.
func (t *Tree) Write(name string, data []byte) error {
	p := t.Config.WorkPath(name)
	if err := t.FS.MkdirAll(path.Dir(p), 0o755); err != nil {
		return errors.Wrapf(err, "create parent of %q", name)
	}
	if err := t.FS.WriteFile(p, data, 0o644); err != nil {
		return errors.Wrapf(err, "write %q", name)
	}
	return nil
}

// Delete removes name if present and prunes directories it leaves empty.
func (t *Tree) Delete(name string) error {
	p := t.Config.WorkPath(name)
	if err := t.FS.Remove(p); err != nil && !t.FS.IsNotExist(err) {
		return errors.Wrapf(err, "remove %q", name)
	}
	t.pruneEmptyDirs(path.Dir(p))
	return nil
}

// pruneEmptyDirs removes dir and its ancestors while they are empty,
// stopping at the working-tree root.
func (t *Tree) pruneEmptyDirs(dir string) {
	root := path.Clean(t.Config.WorkTree)
	for dir != root && strings.HasPrefix(dir, root) && dir != "." && dir != "/" {
		entries, err := t.FS.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			return
		}
		if err := t.FS.Remove(dir); err != nil {
			return
		}
		dir = path.Dir(dir)
	}
}

func (t *Tree) rel(p string) string {
	root := path.Clean(t.Config.WorkTree)
	if root == "/" {
		return strings.TrimPrefix(p, "/")
	}
	return strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
}
