package middleware

import (
	"github.com/keshon/minigit/internal/command"
	"github.com/keshon/minigit/internal/errors"
)

// OperandRule reports whether args is an acceptable operand list.
type OperandRule func(args []string) bool

// Exactly accepts n operands.
func Exactly(n int) OperandRule {
	return func(args []string) bool { return len(args) == n }
}

// AtMost accepts up to n operands.
func AtMost(n int) OperandRule {
	return func(args []string) bool { return len(args) <= n }
}

// WithOperands rejects the invocation with IncorrectOperands unless rule accepts its args
func WithOperands(rule OperandRule) command.Middleware {
	return func(cmd command.Command) command.Command {
		return &command.WrappedCommand{
			Command: cmd,
			Wrap: func(ctx *command.Context) error {
				if !rule(ctx.Args) {
					return errors.E(cmd.Name(), errors.IncorrectOperands, "", nil)
				}
				return cmd.Run(ctx)
			},
		}
	}
}
