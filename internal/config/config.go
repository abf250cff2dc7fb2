package config

import "path"

const (
	RepoDir     = ".minigit"
	ObjectsDir  = "objects"
	CommitsDir  = "commits"
	BlobsDir    = "blobs"
	BranchesDir = "branches"
	HeadFile    = "HEAD"
	IndexFile   = "index"
	ConfigFile  = "config.yaml"
)

const (
	DefaultBranch        = "main"
	InitialCommitMessage = "initial commit"
)

const (
	DefaultHash = "sha1" // "sha1" | "sha256"
)

// RepoConfig resolves every on-disk location of a repository from the
// working-tree root. Paths are slash separated, as used by fs.FS.
type RepoConfig struct {
	WorkTree   string
	HashFormat string
}

// NewRepoConfig returns the layout of a repository whose working tree is root.
func NewRepoConfig(root string) *RepoConfig {
	if root == "" {
		root = "/"
	}
	return &RepoConfig{WorkTree: root, HashFormat: DefaultHash}
}

func (c *RepoConfig) RepoRoot() string    { return path.Join(c.WorkTree, RepoDir) }
func (c *RepoConfig) ObjectsDir() string  { return path.Join(c.RepoRoot(), ObjectsDir) }
func (c *RepoConfig) CommitsDir() string  { return path.Join(c.ObjectsDir(), CommitsDir) }
func (c *RepoConfig) BlobsDir() string    { return path.Join(c.ObjectsDir(), BlobsDir) }
func (c *RepoConfig) BranchesDir() string { return path.Join(c.RepoRoot(), BranchesDir) }
func (c *RepoConfig) HeadFile() string    { return path.Join(c.RepoRoot(), HeadFile) }
func (c *RepoConfig) IndexFile() string   { return path.Join(c.RepoRoot(), IndexFile) }
func (c *RepoConfig) ConfigFile() string  { return path.Join(c.RepoRoot(), ConfigFile) }

// BranchFile returns the pointer file of the named branch.
func (c *RepoConfig) BranchFile(name string) string {
	return path.Join(c.BranchesDir(), name)
}

// WorkPath maps a repository-relative file name to its location in the working tree.
func (c *RepoConfig) WorkPath(name string) string {
	return path.Join(c.WorkTree, name)
}
