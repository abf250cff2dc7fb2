package middleware

import (
	"github.com/keshon/minigit/internal/command"
	"github.com/keshon/minigit/internal/errors"
	"github.com/keshon/minigit/internal/repo"
)

// WithRepoCheck refuses to run the command outside an initialized repository
func WithRepoCheck() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				if ctx.FS == nil || !repo.IsInitialized(ctx.FS) {
					return errors.E(cmd.Name(), errors.NotInitialized, "", nil)
				}
				return cmd.Run(ctx)
			},
		}
	}
}
