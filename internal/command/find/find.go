package find

import (
	"fmt"

	"github.com/keshon/minigit/internal/command"
	"github.com/keshon/minigit/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "find" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return `find "<message>"` }
func (c *Command) Brief() string     { return "List commits with the given message" }
func (c *Command) Help() string {
	return `Print the id of every commit whose message is exactly the
given one, one per line.`
}

func (c *Command) Run(ctx *command.Context) error {
	r, err := ctx.OpenRepo()
	if err != nil {
		return err
	}
	ids, err := r.Find(ctx.Args[0])
	if err != nil {
		return err
	}
	for _, id := range ids {
		fmt.Fprintln(ctx.Out, id)
	}
	return nil
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
