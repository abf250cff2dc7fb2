package commit

import (
	"github.com/keshon/minigit/internal/command"
	"github.com/keshon/minigit/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "commit" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return `commit "<message>"` }
func (c *Command) Brief() string     { return "Commit staged changes to the current branch" }
func (c *Command) Help() string {
	return `Create a new commit with the staged changes.

Quote multi-word messages so they arrive as a single operand.`
}

func (c *Command) Run(ctx *command.Context) error {
	message := ""
	if len(ctx.Args) > 0 {
		message = ctx.Args[0]
	}

	r, err := ctx.OpenRepo()
	if err != nil {
		return err
	}
	_, err = r.Commit(message)
	return err
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithRepoCheck(),
			middleware.WithOperands(middleware.AtMost(1)),
			middleware.WithDebugArgsPrint(),
		),
	)
}
