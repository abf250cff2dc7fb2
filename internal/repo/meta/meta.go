package meta

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/keshon/minigit/internal/config"
	"github.com/keshon/minigit/internal/fs"
	"github.com/keshon/minigit/internal/repo/store/object"
)

// MetaContext holds the history side of a repository: commits, branches and HEAD.
type MetaContext struct {
	FS      fs.FS
	Config  *config.RepoConfig
	Objects *object.Store
	Log     *zap.Logger
}

// NewMeta returns a MetaContext over an existing object store.
func NewMeta(fsys fs.FS, cfg *config.RepoConfig, objects *object.Store, log *zap.Logger) (*MetaContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil RepoConfig provided")
	}
	if objects == nil {
		return nil, fmt.Errorf("nil object store provided")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &MetaContext{FS: fsys, Config: cfg, Objects: objects, Log: log}, nil
}

// CreateMetaStructure creates the branches directory and points HEAD at the default branch.
func (mc *MetaContext) CreateMetaStructure() error {
	if err := mc.FS.MkdirAll(mc.Config.BranchesDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create dir %q: %w", mc.Config.BranchesDir(), err)
	}
	return mc.SetHeadRef(config.DefaultBranch)
}

// IsMetaExists reports whether HEAD is present.
func (mc *MetaContext) IsMetaExists() bool {
	fi, err := mc.FS.Stat(mc.Config.HeadFile())
	return err == nil && fi.Mode().IsRegular()
}
