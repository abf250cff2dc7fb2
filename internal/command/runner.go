package command

import (
	"fmt"
	"io"

	"github.com/keshon/minigit/internal/errors"
)

var messages = map[errors.Kind]string{
	errors.NoCommand:             "Please enter a command.",
	errors.UnknownCommand:        "No command with that name exists.",
	errors.IncorrectOperands:     "Incorrect operands.",
	errors.NotInitialized:        "Not in an initialized MiniGit directory.",
	errors.AlreadyInitialized:    "A MiniGit version-control system already exists in the current directory.",
	errors.FileNotFound:          "File does not exist.",
	errors.EmptyMessage:          "Please enter a commit message.",
	errors.NothingToCommit:       "No changes added to the commit.",
	errors.NothingToRemove:       "No reason to remove the file.",
	errors.NoMatchingCommit:      "Found no commit with that message.",
	errors.NoSuchBranch:          "No such branch exists.",
	errors.AlreadyOnBranch:       "No need to checkout the current branch.",
	errors.FileNotInCommit:       "File does not exist in that commit.",
	errors.NoSuchCommit:          "No commit with that id exists.",
	errors.UntrackedFileConflict: "There is an untracked file in the way; delete it, or add and commit it first.",
	errors.BranchExists:          "A branch with that name already exists.",
	errors.NoSuchBranchToRemove:  "A branch with that name does not exist.",
	errors.CannotDeleteCurrent:   "Cannot remove the current branch.",
}

// Message returns the text shown to the user for err.
func Message(err error) string {
	if msg, ok := messages[errors.KindOf(err)]; ok {
		return msg
	}
	return fmt.Sprintf("Error: %v", err)
}

// Report writes the message for err as one line.
func Report(w io.Writer, err error) {
	fmt.Fprintln(w, Message(err))
}

// Run executes the named command.
func Run(name string, ctx *Context) error {
	if name == "" {
		return errors.E("", errors.NoCommand, "", nil)
	}
	cmd, ok := GetCommand(name)
	if !ok {
		return errors.E(name, errors.UnknownCommand, "", nil)
	}
	return cmd.Run(ctx)
}
