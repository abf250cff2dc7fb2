package branch

import (
	"github.com/keshon/minigit/internal/command"
	"github.com/keshon/minigit/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "branch" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "branch <name>" }
func (c *Command) Brief() string     { return "Create a new branch at the current head" }
func (c *Command) Help() string {
	return `Create a branch pointing at the current head commit.
The current branch does not change.`
}

func (c *Command) Run(ctx *command.Context) error {
	r, err := ctx.OpenRepo()
	if err != nil {
		return err
	}
	return r.Branch(ctx.Args[0])
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
