// Package errors carries the failure kinds of the repository engine.
//
// Engine operations fail with an *Error whose Kind names the precondition that
// did not hold. Only the command layer turns a Kind into user-facing text.
// Low-level storage failures are wrapped with github.com/pkg/errors so the
// cause chain stays inspectable.
package errors

import (
	stderr "errors"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Kind classifies an engine failure.
type Kind uint8

const (
	Other Kind = iota
	NotFound
	Corrupt
	AlreadyInitialized
	NotInitialized
	FileNotFound
	EmptyMessage
	NothingToCommit
	NothingToRemove
	NoMatchingCommit
	NoSuchBranch
	AlreadyOnBranch
	FileNotInCommit
	NoSuchCommit
	UntrackedFileConflict
	BranchExists
	NoSuchBranchToRemove
	CannotDeleteCurrent

	// usage errors, raised before a repository is touched
	NoCommand
	UnknownCommand
	IncorrectOperands
)

var kindNames = map[Kind]string{
	Other:                 "other error",
	NotFound:              "object not found",
	Corrupt:               "corrupt data",
	AlreadyInitialized:    "already initialized",
	NotInitialized:        "not initialized",
	FileNotFound:          "file not found",
	EmptyMessage:          "empty commit message",
	NothingToCommit:       "nothing to commit",
	NothingToRemove:       "nothing to remove",
	NoMatchingCommit:      "no matching commit",
	NoSuchBranch:          "no such branch",
	AlreadyOnBranch:       "already on branch",
	FileNotInCommit:       "file not in commit",
	NoSuchCommit:          "no such commit",
	UntrackedFileConflict: "untracked file in the way",
	BranchExists:          "branch exists",
	NoSuchBranchToRemove:  "no such branch to remove",
	CannotDeleteCurrent:   "cannot delete current branch",
	NoCommand:             "no command",
	UnknownCommand:        "unknown command",
	IncorrectOperands:     "incorrect operands",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown error"
}

var _ error = &Error{}

// Error is a failure of an engine operation.
type Error struct {
	Op   string // operation, e.g. "checkout"
	Kind Kind
	Path string // file, branch or object the failure is about, if any
	Err  error  // underlying cause, if any
}

// E builds an *Error.
func E(op string, kind Kind, path string, err error) *Error {
	return &Error{Op: op, Kind: kind, Path: path, Err: err}
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.String())
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap nested error
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches another *Error of the same kind, or the wrapped error.
func (e *Error) Is(target error) bool {
	var t *Error
	if stderr.As(target, &t) {
		return t.Kind == e.Kind && (t.Op == "" || t.Op == e.Op)
	}
	return e.Err == target
}

// KindOf returns the kind of the outermost *Error in err's chain, or Other.
func KindOf(err error) Kind {
	var e *Error
	if stderr.As(err, &e) {
		return e.Kind
	}
	return Other
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Wrap annotates err with a message and a stack trace.
func Wrap(err error, msg string) error {
	return pkgerrors.Wrap(err, msg)
}

// Wrapf annotates err with a formatted message and a stack trace.
func Wrapf(err error, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// New returns a plain error with a stack trace.
func New(msg string) error {
	return pkgerrors.New(msg)
}

// Is reports whether any error in err's chain matches target
// (a shortcut to standard lib errors.Is)
func Is(err, target error) bool {
	return stderr.Is(err, target)
}
