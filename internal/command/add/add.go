package add

import (
	"github.com/keshon/minigit/internal/command"
	"github.com/keshon/minigit/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "add" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "add <file>" }
func (c *Command) Brief() string     { return "Stage a file for the next commit" }
func (c *Command) Help() string {
	return `Stage the current content of a file.

A file that is identical to its committed version is not staged.
Adding a file that was marked with rm cancels the removal.`
}

func (c *Command) Run(ctx *command.Context) error {
	r, err := ctx.OpenRepo()
	if err != nil {
		return err
	}
	return r.Add(ctx.Args[0])
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithRepoCheck(),
			middleware.WithOperands(middleware.Exactly(1)),
			middleware.WithDebugArgsPrint(),
		),
	)
}
