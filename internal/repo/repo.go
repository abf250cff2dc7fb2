// Package repo is the repository engine. A Repository is opened once per
// invocation and every command operates on it.
package repo

import (
	"time"

	"go.uber.org/zap"

	"github.com/keshon/minigit/internal/config"
	"github.com/keshon/minigit/internal/errors"
	"github.com/keshon/minigit/internal/fs"
	"github.com/keshon/minigit/internal/repo/meta"
	"github.com/keshon/minigit/internal/repo/store/index"
	"github.com/keshon/minigit/internal/repo/store/object"
	"github.com/keshon/minigit/internal/repo/worktree"
)

// Repository represents an initialized repository.
type Repository struct {
	FS      fs.FS
	Config  *config.RepoConfig
	Objects *object.Store
	Meta    *meta.MetaContext
	Tree    *worktree.Tree
	Logger  *zap.Logger

	// Now stamps new commits.
	Now func() time.Time
}

// newRepository wires the stores of a repository rooted at "/" of fsys.
func newRepository(fsys fs.FS, hashFormat string, log *zap.Logger) (*Repository, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cfg := config.NewRepoConfig("/")
	if hashFormat != "" {
		cfg.HashFormat = hashFormat
	}

	objects, err := object.NewStore(fsys, cfg, log)
	if err != nil {
		return nil, err
	}
	mc, err := meta.NewMeta(fsys, cfg, objects, log)
	if err != nil {
		return nil, err
	}
	return &Repository{
		FS:      fsys,
		Config:  cfg,
		Objects: objects,
		Meta:    mc,
		Tree:    worktree.New(fsys, cfg, objects, log),
		Logger:  log,
		Now:     time.Now,
	}, nil
}

// IsInitialized reports whether fsys holds a control directory.
func IsInitialized(fsys fs.FS) bool {
	return fsys.IsDir(config.NewRepoConfig("/").RepoRoot())
}

// Init creates a repository: object store, branches, HEAD on the default
// branch, an empty index and the root commit. The object format from
// settings is recorded so later invocations hash the same way.
func Init(fsys fs.FS, settings *config.Settings, log *zap.Logger) (*Repository, error) {
	if IsInitialized(fsys) {
		return nil, errors.E("init", errors.AlreadyInitialized, "", nil)
	}
	if settings == nil {
		settings = &config.Settings{ObjectFormat: config.DefaultHash}
	}

	r, err := newRepository(fsys, settings.ObjectFormat, log)
	if err != nil {
		return nil, err
	}

	if err := fsys.MkdirAll(r.Config.RepoRoot(), 0o755); err != nil {
		return nil, errors.Wrapf(err, "create %q", r.Config.RepoRoot())
	}
	if err := r.Objects.CreateLayout(); err != nil {
		return nil, err
	}
	if err := r.Meta.CreateMetaStructure(); err != nil {
		return nil, err
	}
	if err := index.New().Save(fsys, r.Config.IndexFile()); err != nil {
		return nil, err
	}
	if err := settings.Save(fsys, r.Config); err != nil {
		return nil, err
	}

	root := meta.NewCommit(config.InitialCommitMessage, "", nil, r.Now())
	id, err := r.Meta.WriteCommit(root)
	if err != nil {
		return nil, err
	}
	if err := r.Meta.SetBranchHead(config.DefaultBranch, id); err != nil {
		return nil, err
	}

	r.Logger.Debug("repository initialized", zap.String("root_commit", id), zap.String("object_format", r.Config.HashFormat))
	return r, nil
}

// Open opens the repository on fsys.
func Open(fsys fs.FS, settings *config.Settings, log *zap.Logger) (*Repository, error) {
	if !IsInitialized(fsys) {
		return nil, errors.E("open", errors.NotInitialized, "", nil)
	}
	format := ""
	if settings != nil {
		format = settings.ObjectFormat
	}
	r, err := newRepository(fsys, format, log)
	if err != nil {
		return nil, err
	}
	if !r.Meta.IsMetaExists() {
		return nil, errors.E("open", errors.NotInitialized, r.Config.HeadFile(), nil)
	}
	return r, nil
}

// head returns the current branch and its head commit.
func (r *Repository) head() (string, *meta.Commit, error) {
	branch, err := r.Meta.GetCurrentBranch()
	if err != nil {
		return "", nil, err
	}
	id, err := r.Meta.GetBranchHead(branch)
	if err != nil {
		return "", nil, err
	}
	c, err := r.Meta.GetCommit(id)
	if err != nil {
		return "", nil, err
	}
	return branch, c, nil
}

func (r *Repository) loadIndex() (*index.Index, error) {
	return index.Load(r.FS, r.Config.IndexFile())
}

func (r *Repository) saveIndex(ix *index.Index) error {
	return ix.Save(r.FS, r.Config.IndexFile())
}

// resolveCommit expands a commit id or unique prefix; anything that does not
// name exactly one stored commit is NoSuchCommit.
func (r *Repository) resolveCommit(op, prefix string) (*meta.Commit, error) {
	c, err := r.Meta.ResolveCommit(prefix)
	if errors.IsKind(err, errors.NotFound) {
		return nil, errors.E(op, errors.NoSuchCommit, prefix, err)
	}
	return c, err
}
