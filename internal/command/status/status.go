package status

import (
	"fmt"
	"io"

	"github.com/keshon/minigit/internal/command"
	"github.com/keshon/minigit/internal/middleware"
	"github.com/keshon/minigit/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "status" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "status" }
func (c *Command) Brief() string     { return "Show branches, staged files and working tree changes" }
func (c *Command) Help() string {
	return `Show the working tree status in five sections: branches (current
one marked with '*'), staged files, removed files, modifications not
staged for commit, and untracked files.`
}

func (c *Command) Run(ctx *command.Context) error {
	r, err := ctx.OpenRepo()
	if err != nil {
		return err
	}
	st, err := r.Status()
	if err != nil {
		return err
	}
	Print(ctx.Out, st)
	return nil
}

// Print writes st in the sectioned status layout.
func Print(w io.Writer, st *repo.Status) {
	branches := make([]string, len(st.Branches))
	for i, b := range st.Branches {
		if b == st.Current {
			b = "*" + b
		}
		branches[i] = b
	}
	changes := make([]string, len(st.Changes))
	for i, ch := range st.Changes {
		changes[i] = fmt.Sprintf("%s (%s)", ch.Path, ch.State)
	}

	section(w, "Branches", branches)
	section(w, "Staged Files", st.Staged)
	section(w, "Removed Files", st.Removed)
	section(w, "Modifications Not Staged For Commit", changes)
	section(w, "Untracked Files", st.Untracked)
}

func section(w io.Writer, title string, lines []string) {
	fmt.Fprintf(w, "=== %s ===\n", title)
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	fmt.Fprintln(w)
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithRepoCheck(),
			middleware.WithOperands(middleware.Exactly(0)),
			middleware.WithDebugArgsPrint(),
		),
	)
}
