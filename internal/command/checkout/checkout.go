package checkout

import (
	"github.com/keshon/minigit/internal/command"
	"github.com/keshon/minigit/internal/middleware"
)

// separator splits a commit id from the file to restore.
const separator = "--"

type Command struct{}

func (c *Command) Name() string      { return "checkout" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "checkout <branch> | checkout -- <file> | checkout <commit-id> -- <file>" }
func (c *Command) Brief() string     { return "Switch branches or restore a file" }
func (c *Command) Help() string {
	return `Switch branches or restore a single file.

Usage:
  checkout <branch>               - switch to branch; staged changes are dropped
  checkout -- <file>              - restore file from the current head commit
  checkout <commit-id> -- <file>  - restore file from a commit (id may be abbreviated)`
}

// validOperands accepts the three operand shapes checkout understands.
func validOperands(args []string) bool {
	switch len(args) {
	case 1:
		return true
	case 2:
		return args[0] == separator
	case 3:
		return args[1] == separator
	default:
		return false
	}
}

func (c *Command) Run(ctx *command.Context) error {
	r, err := ctx.OpenRepo()
	if err != nil {
		return err
	}
	switch len(ctx.Args) {
	case 1:
		return r.CheckoutBranch(ctx.Args[0])
	case 2:
		return r.CheckoutFile(ctx.Args[1])
	default:
		return r.CheckoutFileAt(ctx.Args[0], ctx.Args[2])
	}
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithRepoCheck(),
			middleware.WithOperands(validOperands),
			middleware.WithDebugArgsPrint(),
		),
	)
}
