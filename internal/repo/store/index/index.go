// Package index is the staging area: files staged for addition (path -> blob
// id) and files staged for removal (ordered, unique). A path is never in both.
package index

import (
	"bufio"
	"bytes"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/keshon/minigit/internal/errors"
	"github.com/keshon/minigit/internal/fs"
	"github.com/keshon/minigit/internal/util"
)

const header = "minigit-index 1"

// Index is the in-memory staging area.
type Index struct {
	additions map[string]string
	removals  []string
}

// New returns an empty index.
func New() *Index {
	return &Index{additions: map[string]string{}}
}

// StageAdd stages path with blob id.
//
// A pending removal of path is cancelled instead and nothing is added.
// Otherwise, content equal to the committed version is not staged unless path
// is already staged (then it is replaced). It reports whether the index changed.
func (ix *Index) StageAdd(path, id, committedID string, committed bool) bool {
	if ix.IsStagedRemove(path) {
		ix.UnstageRemove(path)
		return true
	}
	staged, isStaged := ix.additions[path]
	if committed && committedID == id && !isStaged {
		return false
	}
	if isStaged && staged == id {
		return false
	}
	ix.additions[path] = id
	return true
}

// StageRemove unstages a staged addition of path and, when tracked, records
// the removal. It fails with NothingToRemove if path is neither.
func (ix *Index) StageRemove(path string, tracked bool) error {
	_, staged := ix.additions[path]
	if !staged && !tracked {
		return errors.E("rm", errors.NothingToRemove, path, nil)
	}
	delete(ix.additions, path)
	if tracked && !ix.IsStagedRemove(path) {
		ix.removals = append(ix.removals, path)
	}
	return nil
}

// UnstageRemove drops path from the removal list.
func (ix *Index) UnstageRemove(path string) {
	ix.removals = slices.DeleteFunc(ix.removals, func(p string) bool { return p == path })
}

// Clear empties the index.
func (ix *Index) Clear() {
	ix.additions = map[string]string{}
	ix.removals = nil
}

func (ix *Index) IsStagedAdd(path string) bool {
	_, ok := ix.additions[path]
	return ok
}

func (ix *Index) IsStagedRemove(path string) bool {
	return slices.Contains(ix.removals, path)
}

// StagedDigest returns the blob id staged for path.
func (ix *Index) StagedDigest(path string) (string, bool) {
	id, ok := ix.additions[path]
	return id, ok
}

// Additions returns the staged paths, sorted.
func (ix *Index) Additions() []string {
	return util.SortedKeys(ix.additions)
}

// Removals returns the paths staged for removal, in the order they were staged.
func (ix *Index) Removals() []string {
	return slices.Clone(ix.removals)
}

// Empty reports whether nothing is staged.
func (ix *Index) Empty() bool {
	return len(ix.additions) == 0 && len(ix.removals) == 0
}

// Apply returns tracked with the staged additions and removals applied.
func (ix *Index) Apply(tracked map[string]string) map[string]string {
	out := make(map[string]string, len(tracked)+len(ix.additions))
	for p, id := range tracked {
		out[p] = id
	}
	for p, id := range ix.additions {
		out[p] = id
	}
	for _, p := range ix.removals {
		delete(out, p)
	}
	return out
}

// Encode serializes the index.
func (ix *Index) Encode() []byte {
	var b bytes.Buffer
	b.WriteString(header + "\n")
	for _, p := range ix.Additions() {
		fmt.Fprintf(&b, "add %s %s\n", ix.additions[p], strconv.Quote(p))
	}
	for _, p := range ix.removals {
		fmt.Fprintf(&b, "remove %s\n", strconv.Quote(p))
	}
	return fmt.Appendf(b.Bytes(), "checksum %016x\n", xxh3.Hash(b.Bytes()))
}

// Decode parses the output of Encode.
func Decode(data []byte) (*Index, error) {
	trimmed := bytes.TrimSuffix(data, []byte("\n"))
	cut := bytes.LastIndexByte(trimmed, '\n')
	if cut < 0 {
		return nil, errors.E("decode index", errors.Corrupt, "", fmt.Errorf("missing checksum"))
	}
	body := data[:cut+1]
	want, ok := strings.CutPrefix(string(trimmed[cut+1:]), "checksum ")
	if !ok {
		return nil, errors.E("decode index", errors.Corrupt, "", fmt.Errorf("missing checksum"))
	}
	if got := fmt.Sprintf("%016x", xxh3.Hash(body)); got != want {
		return nil, errors.E("decode index", errors.Corrupt, "", fmt.Errorf("checksum mismatch"))
	}

	ix := New()
	sc := bufio.NewScanner(bytes.NewReader(body))
	sc.Buffer(make([]byte, 64*1024), len(body)+1)
	if !sc.Scan() || sc.Text() != header {
		return nil, errors.E("decode index", errors.Corrupt, "", fmt.Errorf("unknown index version"))
	}
	for sc.Scan() {
		line := sc.Text()
		switch {
		case strings.HasPrefix(line, "add "):
			id, quoted, ok := strings.Cut(strings.TrimPrefix(line, "add "), " ")
			if !ok {
				return nil, errors.E("decode index", errors.Corrupt, "", fmt.Errorf("bad entry %q", line))
			}
			p, err := strconv.Unquote(quoted)
			if err != nil {
				return nil, errors.E("decode index", errors.Corrupt, "", err)
			}
			ix.additions[p] = id
		case strings.HasPrefix(line, "remove "):
			p, err := strconv.Unquote(strings.TrimPrefix(line, "remove "))
			if err != nil {
				return nil, errors.E("decode index", errors.Corrupt, "", err)
			}
			if !ix.IsStagedRemove(p) {
				ix.removals = append(ix.removals, p)
			}
		default:
			return nil, errors.E("decode index", errors.Corrupt, "", fmt.Errorf("bad entry %q", line))
		}
	}
	for _, p := range ix.removals {
		if ix.IsStagedAdd(p) {
			return nil, errors.E("decode index", errors.Corrupt, p, fmt.Errorf("path both added and removed"))
		}
	}
	return ix, nil
}

// Load reads the index file at path. A missing file is an empty index.
func Load(fsys fs.FS, path string) (*Index, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		if fsys.IsNotExist(err) {
			return New(), nil
		}
		return nil, errors.Wrap(err, "read index")
	}
	return Decode(data)
}

// Save writes the index file at path atomically.
func (ix *Index) Save(fsys fs.FS, path string) error {
	if err := fsys.WriteFileAtomic(path, ix.Encode(), 0o644); err != nil {
		return errors.Wrap(err, "write index")
	}
	return nil
}
