package globallog

import (
	"github.com/keshon/minigit/internal/command"
	"github.com/keshon/minigit/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "global-log" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "global-log" }
func (c *Command) Brief() string     { return "Show every commit ever made" }
func (c *Command) Help() string {
	return `Show every commit in the repository, including commits no branch
reaches any more.`
}

func (c *Command) Run(ctx *command.Context) error {
	r, err := ctx.OpenRepo()
	if err != nil {
		return err
	}
	for commit, err := range r.GlobalLog() {
		if err != nil {
			return err
		}
		command.WriteLogEntry(ctx.Out, commit)
	}
	return nil
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
