// Package object is the content-addressed object store.
//
// Every object lives at objects/<kind>/<id>, where id is the lowercase hex
// digest of its bytes. Storing the same bytes twice is a no-op.
package object

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/keshon/minigit/internal/config"
	"github.com/keshon/minigit/internal/errors"
	"github.com/keshon/minigit/internal/fs"
)

// Kind selects a keyspace of the store.
type Kind string

const (
	Blobs   Kind = config.BlobsDir
	Commits Kind = config.CommitsDir
)

// Store persists objects under the repository objects directory.
type Store struct {
	FS     fs.FS
	Config *config.RepoConfig
	Log    *zap.Logger

	sum func([]byte) string
}

// NewStore returns a store using the hash format named in cfg.
func NewStore(fsys fs.FS, cfg *config.RepoConfig, log *zap.Logger) (*Store, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil RepoConfig provided")
	}
	sum, err := hasher(cfg.HashFormat)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{FS: fsys, Config: cfg, Log: log, sum: sum}, nil
}

func hasher(algo string) (func([]byte) string, error) {
	switch algo {
	case "", "sha1":
		return func(b []byte) string {
			h := sha1.Sum(b)
			return hex.EncodeToString(h[:])
		}, nil
	case "sha256":
		return func(b []byte) string {
			h := sha256.Sum256(b)
			return hex.EncodeToString(h[:])
		}, nil
	default:
		return nil, fmt.Errorf("unsupported object format %q", algo)
	}
}

// CreateLayout creates the per-kind directories.
func (s *Store) CreateLayout() error {
	for _, k := range []Kind{Blobs, Commits} {
		if err := s.FS.MkdirAll(s.dir(k), 0o755); err != nil {
			return errors.Wrapf(err, "create object dir %q", s.dir(k))
		}
	}
	return nil
}

// Sum returns the id data would be stored under.
func (s *Store) Sum(data []byte) string {
	return s.sum(data)
}

// Put stores data and returns its id. Existing objects are left untouched.
func (s *Store) Put(kind Kind, data []byte) (string, error) {
	id := s.sum(data)
	p := s.path(kind, id)
	if s.FS.Exists(p) {
		return id, nil
	}
	if err := s.FS.WriteFileAtomic(p, data, 0o644); err != nil {
		return "", errors.Wrapf(err, "write %s object %s", kind, id)
	}
	s.Log.Debug("object written", zap.String("kind", string(kind)), zap.String("id", id), zap.Int("size", len(data)))
	return id, nil
}

// Get returns the bytes stored under id, verifying they still hash to id.
func (s *Store) Get(kind Kind, id string) ([]byte, error) {
	if !validID(id) {
		return nil, errors.E("get", errors.NotFound, id, nil)
	}
	data, err := s.FS.ReadFile(s.path(kind, id))
	if err != nil {
		if s.FS.IsNotExist(err) {
			return nil, errors.E("get", errors.NotFound, id, nil)
		}
		return nil, errors.Wrapf(err, "read %s object %s", kind, id)
	}
	if got := s.sum(data); got != id {
		return nil, errors.E("get", errors.Corrupt, id, fmt.Errorf("content hashes to %s", got))
	}
	return data, nil
}

// Has reports whether id is stored.
func (s *Store) Has(kind Kind, id string) bool {
	return validID(id) && s.FS.Exists(s.path(kind, id))
}

// List returns every id of kind, sorted.
func (s *Store) List(kind Kind) ([]string, error) {
	entries, err := s.FS.ReadDir(s.dir(kind))
	if err != nil {
		if s.FS.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "list %s", kind)
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !validID(e.Name()) {
			continue
		}
		ids = append(ids, e.Name())
	}
	sort.Strings(ids)
	return ids, nil
}

// Resolve expands an id prefix to the one stored id it matches.
// No match, an empty prefix or an ambiguous prefix are NotFound.
func (s *Store) Resolve(kind Kind, prefix string) (string, error) {
	prefix = strings.ToLower(prefix)
	if prefix == "" || !isHex(prefix) {
		return "", errors.E("resolve", errors.NotFound, prefix, nil)
	}
	if len(prefix) == s.idLen() && s.Has(kind, prefix) {
		return prefix, nil
	}
	ids, err := s.List(kind)
	if err != nil {
		return "", err
	}
	match := ""
	for _, id := range ids {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		if match != "" {
			return "", errors.E("resolve", errors.NotFound, prefix, fmt.Errorf("ambiguous id prefix"))
		}
		match = id
	}
	if match == "" {
		return "", errors.E("resolve", errors.NotFound, prefix, nil)
	}
	return match, nil
}

func (s *Store) idLen() int { return len(s.sum(nil)) }

func (s *Store) dir(kind Kind) string {
	return path.Join(s.Config.ObjectsDir(), string(kind))
}

func (s *Store) path(kind Kind, id string) string {
	return path.Join(s.dir(kind), id)
}

func validID(id string) bool {
	return len(id) >= 40 && isHex(id)
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
