package middleware

import (
	"go.uber.org/zap"

	"github.com/keshon/minigit/internal/command"
)

// WithDebugArgsPrint logs the command name and its operands at debug level
func WithDebugArgsPrint() command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				if ctx.Log != nil {
					ctx.Log.Debug("run command", zap.String("command", cmd.Name()), zap.Strings("args", ctx.Args))
				}
				return cmd.Run(ctx)
			},
		}
	}
}
