package meta

import (
	"bufio"
	"bytes"
	"fmt"
	"iter"
	"maps"
	"strconv"
	"strings"
	"time"

	"github.com/zeebo/xxh3"
	"go.uber.org/zap"

	"github.com/keshon/minigit/internal/errors"
	"github.com/keshon/minigit/internal/repo/store/object"
	"github.com/keshon/minigit/internal/util"
)

const commitHeader = "minigit-commit 1"

// Commit is an immutable snapshot: a message, a timestamp, an optional
// parent and the set of tracked files (path -> blob id).
type Commit struct {
	id        string
	message   string
	timestamp time.Time
	parent    string
	tracked   map[string]string
}

// NewCommit builds a commit. A commit without parent is the root commit and
// is stamped with the Unix epoch; every other commit is stamped with now.
func NewCommit(message, parent string, tracked map[string]string, now time.Time) *Commit {
	ts := now
	if parent == "" {
		ts = time.Unix(0, 0)
	}
	t := make(map[string]string, len(tracked))
	maps.Copy(t, tracked)
	return &Commit{message: message, timestamp: ts, parent: parent, tracked: t}
}

// ID is the id the commit is stored under. Empty until written or loaded.
func (c *Commit) ID() string           { return c.id }
func (c *Commit) Message() string      { return c.message }
func (c *Commit) Timestamp() time.Time { return c.timestamp }
func (c *Commit) Parent() string       { return c.parent }
func (c *Commit) IsRoot() bool         { return c.parent == "" }

// Tracked returns a copy of the tracked map.
func (c *Commit) Tracked() map[string]string {
	t := make(map[string]string, len(c.tracked))
	maps.Copy(t, c.tracked)
	return t
}

// BlobID returns the blob tracked at path.
func (c *Commit) BlobID(path string) (string, bool) {
	id, ok := c.tracked[path]
	return id, ok
}

// Paths returns the tracked paths, sorted.
func (c *Commit) Paths() []string {
	return util.SortedKeys(c.tracked)
}

// Encode serializes the commit. Equal commits encode to equal bytes.
func (c *Commit) Encode() []byte {
	var b bytes.Buffer
	b.WriteString(commitHeader + "\n")
	fmt.Fprintf(&b, "message %s\n", strconv.Quote(c.message))
	fmt.Fprintf(&b, "time %d\n", c.timestamp.UnixNano())
	parent := c.parent
	if parent == "" {
		parent = "-"
	}
	fmt.Fprintf(&b, "parent %s\n", parent)
	fmt.Fprintf(&b, "tracked %d\n", len(c.tracked))
	for _, p := range c.Paths() {
		fmt.Fprintf(&b, "%s %s\n", c.tracked[p], strconv.Quote(p))
	}
	return appendChecksum(b.Bytes())
}

// DecodeCommit parses the output of Encode.
func DecodeCommit(data []byte) (*Commit, error) {
	body, err := verifyChecksum(data)
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(bytes.NewReader(body))
	sc.Buffer(make([]byte, 64*1024), len(body)+1)
	next := func(prefix string) (string, error) {
		if !sc.Scan() {
			return "", fmt.Errorf("missing %q line", prefix)
		}
		line := sc.Text()
		if !strings.HasPrefix(line, prefix) {
			return "", fmt.Errorf("expected %q, got %q", prefix, line)
		}
		return strings.TrimPrefix(line, prefix), nil
	}

	if _, err := next(commitHeader); err != nil {
		return nil, errors.E("decode commit", errors.Corrupt, "", err)
	}
	c := &Commit{tracked: map[string]string{}}

	raw, err := next("message ")
	if err == nil {
		c.message, err = strconv.Unquote(raw)
	}
	if err != nil {
		return nil, errors.E("decode commit", errors.Corrupt, "", err)
	}

	raw, err = next("time ")
	if err == nil {
		var ns int64
		ns, err = strconv.ParseInt(raw, 10, 64)
		c.timestamp = time.Unix(0, ns)
	}
	if err != nil {
		return nil, errors.E("decode commit", errors.Corrupt, "", err)
	}

	raw, err = next("parent ")
	if err != nil {
		return nil, errors.E("decode commit", errors.Corrupt, "", err)
	}
	if raw != "-" {
		c.parent = raw
	}

	raw, err = next("tracked ")
	var n int
	if err == nil {
		n, err = strconv.Atoi(raw)
	}
	if err != nil {
		return nil, errors.E("decode commit", errors.Corrupt, "", err)
	}
	for i := 0; i < n; i++ {
		if !sc.Scan() {
			return nil, errors.E("decode commit", errors.Corrupt, "", fmt.Errorf("expected %d tracked entries, got %d", n, i))
		}
		id, quoted, ok := strings.Cut(sc.Text(), " ")
		if !ok {
			return nil, errors.E("decode commit", errors.Corrupt, "", fmt.Errorf("bad tracked entry %q", sc.Text()))
		}
		p, err := strconv.Unquote(quoted)
		if err != nil {
			return nil, errors.E("decode commit", errors.Corrupt, "", err)
		}
		c.tracked[p] = id
	}
	if sc.Scan() {
		return nil, errors.E("decode commit", errors.Corrupt, "", fmt.Errorf("trailing data %q", sc.Text()))
	}
	return c, nil
}

// appendChecksum terminates body with an xxh3 checksum line.
func appendChecksum(body []byte) []byte {
	return fmt.Appendf(body, "checksum %016x\n", xxh3.Hash(body))
}

// verifyChecksum strips and checks the checksum line written by appendChecksum.
func verifyChecksum(data []byte) ([]byte, error) {
	trimmed := bytes.TrimSuffix(data, []byte("\n"))
	i := bytes.LastIndexByte(trimmed, '\n')
	if i < 0 {
		return nil, errors.E("checksum", errors.Corrupt, "", fmt.Errorf("missing checksum"))
	}
	body, last := data[:i+1], string(trimmed[i+1:])
	want, ok := strings.CutPrefix(last, "checksum ")
	if !ok {
		return nil, errors.E("checksum", errors.Corrupt, "", fmt.Errorf("missing checksum"))
	}
	if got := fmt.Sprintf("%016x", xxh3.Hash(body)); got != want {
		return nil, errors.E("checksum", errors.Corrupt, "", fmt.Errorf("checksum mismatch: have %s, want %s", got, want))
	}
	return body, nil
}

// WriteCommit stores c and returns its id.
func (mc *MetaContext) WriteCommit(c *Commit) (string, error) {
	id, err := mc.Objects.Put(object.Commits, c.Encode())
	if err != nil {
		return "", errors.Wrap(err, "write commit")
	}
	c.id = id
	mc.Log.Debug("commit written", zap.String("id", id), zap.String("parent", c.parent), zap.Int("files", len(c.tracked)))
	return id, nil
}

// GetCommit reads a commit by its full id.
func (mc *MetaContext) GetCommit(id string) (*Commit, error) {
	data, err := mc.Objects.Get(object.Commits, id)
	if err != nil {
		return nil, err
	}
	c, err := DecodeCommit(data)
	if err != nil {
		return nil, errors.Wrapf(err, "commit %s", id)
	}
	c.id = id
	return c, nil
}

// ResolveCommit expands a full or abbreviated id to a stored commit.
func (mc *MetaContext) ResolveCommit(prefix string) (*Commit, error) {
	id, err := mc.Objects.Resolve(object.Commits, prefix)
	if err != nil {
		return nil, err
	}
	return mc.GetCommit(id)
}

// AllCommitIDs returns the id of every stored commit, sorted.
func (mc *MetaContext) AllCommitIDs() ([]string, error) {
	return mc.Objects.List(object.Commits)
}

// History walks parent links from head back to the root commit (latest -> oldest).
// The walk stops at the first read error, which is yielded with a nil commit.
func (mc *MetaContext) History(head string) iter.Seq2[*Commit, error] {
	return func(yield func(*Commit, error) bool) {
		seen := map[string]bool{}
		for id := head; id != ""; {
			if seen[id] {
				yield(nil, errors.E("history", errors.Corrupt, id, fmt.Errorf("parent cycle")))
				return
			}
			seen[id] = true

			c, err := mc.GetCommit(id)
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(c, nil) {
				return
			}
			id = c.parent
		}
	}
}
