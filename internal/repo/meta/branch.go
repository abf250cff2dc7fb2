package meta

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/keshon/minigit/internal/errors"
)

// ValidBranchName reports whether name can be stored as a branch pointer file.
func ValidBranchName(name string) bool {
	return name != "" && !strings.HasPrefix(name, ".") && !strings.ContainsAny(name, "/\\\x00\n")
}

// GetCurrentBranch returns the name of the branch HEAD points at.
func (mc *MetaContext) GetCurrentBranch() (string, error) {
	return mc.GetHeadRef()
}

// ListBranches returns all branch names sorted.
func (mc *MetaContext) ListBranches() ([]string, error) {
	entries, err := mc.FS.ReadDir(mc.Config.BranchesDir())
	if err != nil {
		return nil, fmt.Errorf("failed to read branches directory %q: %w", mc.Config.BranchesDir(), err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !ValidBranchName(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// BranchExists checks for branch existence.
func (mc *MetaContext) BranchExists(name string) bool {
	return ValidBranchName(name) && mc.FS.Exists(mc.Config.BranchFile(name))
}

// GetBranchHead returns the head commit id of the named branch.
func (mc *MetaContext) GetBranchHead(name string) (string, error) {
	if !ValidBranchName(name) {
		return "", errors.E("branch", errors.NoSuchBranch, name, nil)
	}
	data, err := mc.FS.ReadFile(mc.Config.BranchFile(name))
	if err != nil {
		if mc.FS.IsNotExist(err) {
			return "", errors.E("branch", errors.NoSuchBranch, name, nil)
		}
		return "", fmt.Errorf("failed to read branch %q: %w", name, err)
	}
	id := strings.TrimSpace(string(data))
	if id == "" {
		return "", errors.E("branch", errors.Corrupt, name, fmt.Errorf("empty branch pointer"))
	}
	return id, nil
}

// SetBranchHead points the named branch at id, creating it if needed.
func (mc *MetaContext) SetBranchHead(name, id string) error {
	if !ValidBranchName(name) {
		return fmt.Errorf("invalid branch name %q", name)
	}
	if err := mc.FS.WriteFileAtomic(mc.Config.BranchFile(name), []byte(id+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write branch %q: %w", name, err)
	}
	mc.Log.Debug("branch moved", zap.String("branch", name), zap.String("head", id))
	return nil
}

// CreateBranch creates a new branch pointing at head.
func (mc *MetaContext) CreateBranch(name, head string) error {
	if mc.BranchExists(name) {
		return errors.E("branch", errors.BranchExists, name, nil)
	}
	return mc.SetBranchHead(name, head)
}

// DeleteBranch removes the named branch pointer. Commits are left alone.
func (mc *MetaContext) DeleteBranch(name, current string) error {
	if !mc.BranchExists(name) {
		return errors.E("rm-branch", errors.NoSuchBranchToRemove, name, nil)
	}
	if name == current {
		return errors.E("rm-branch", errors.CannotDeleteCurrent, name, nil)
	}
	if err := mc.FS.Remove(mc.Config.BranchFile(name)); err != nil {
		return fmt.Errorf("failed to remove branch %q: %w", name, err)
	}
	mc.Log.Debug("branch removed", zap.String("branch", name))
	return nil
}
