package initialize

import (
	"github.com/keshon/minigit/internal/command"
	"github.com/keshon/minigit/internal/middleware"
	"github.com/keshon/minigit/internal/repo"
)

type Command struct{}

func (c *Command) Name() string      { return "init" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "init" }
func (c *Command) Brief() string     { return "Initialize a new repository" }
func (c *Command) Help() string {
	return `Create a new repository in the current directory.

The repository starts on branch "main" with a single commit,
"initial commit", that tracks no files. The object format
(sha1 or sha256) is taken from MINIGIT_OBJECT_FORMAT and recorded
in .minigit/config.yaml.`
}

func (c *Command) Run(ctx *command.Context) error {
	_, err := repo.Init(ctx.FS, ctx.Settings, ctx.Log)
	return err
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithOperands(middleware.Exactly(0)),
			middleware.WithDebugArgsPrint(),
		),
	)
}
