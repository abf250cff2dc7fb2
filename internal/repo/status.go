package repo

import (
	"sort"

	"github.com/keshon/minigit/internal/util"
)

// ChangeState describes an unstaged change to a known file.
type ChangeState string

const (
	Modified ChangeState = "modified"
	Deleted  ChangeState = "deleted"
)

// Change is a file whose working copy differs from what is staged or committed.
type Change struct {
	Path  string
	State ChangeState
}

// Status is the state of branches, the index and the working tree.
type Status struct {
	Branches  []string // sorted
	Current   string
	Staged    []string // sorted
	Removed   []string // in the order they were staged
	Changes   []Change // sorted by path
	Untracked []string // sorted
}

// Status compares the working tree with the index and the head commit.
func (r *Repository) Status() (*Status, error) {
	branches, current, err := r.Branches()
	if err != nil {
		return nil, err
	}
	_, head, err := r.head()
	if err != nil {
		return nil, err
	}
	ix, err := r.loadIndex()
	if err != nil {
		return nil, err
	}
	files, err := r.Tree.Files()
	if err != nil {
		return nil, err
	}

	st := &Status{
		Branches: branches,
		Current:  current,
		Staged:   ix.Additions(),
		Removed:  ix.Removals(),
	}

	// tracked or staged paths, each checked once
	known := head.Tracked()
	for _, p := range st.Staged {
		known[p], _ = ix.StagedDigest(p)
	}
	for _, p := range util.SortedKeys(known) {
		if ix.IsStagedRemove(p) {
			continue
		}
		want := known[p]
		got, onDisk, err := r.Tree.Digest(p)
		if err != nil {
			return nil, err
		}
		switch {
		case !onDisk:
			st.Changes = append(st.Changes, Change{Path: p, State: Deleted})
		case got != want:
			st.Changes = append(st.Changes, Change{Path: p, State: Modified})
		}
	}

	for _, p := range files {
		if _, tracked := head.BlobID(p); tracked {
			continue
		}
		if ix.IsStagedAdd(p) || ix.IsStagedRemove(p) {
			continue
		}
		st.Untracked = append(st.Untracked, p)
	}
	sort.Strings(st.Untracked)
	return st, nil
}
