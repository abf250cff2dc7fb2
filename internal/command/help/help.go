package help

import (
	"fmt"
	"strings"

	"github.com/keshon/minigit/internal/command"
	"github.com/keshon/minigit/internal/errors"
	"github.com/keshon/minigit/internal/middleware"
)

type Command struct{}

func (c *Command) Name() string      { return "help" }
func (c *Command) Aliases() []string { return nil }
func (c *Command) Usage() string     { return "help [command]" }
func (c *Command) Brief() string     { return "Show help for commands" }
func (c *Command) Help() string {
	return `Display help information for commands.

Usage:
  help          List all commands.
  help <name>   Show detailed help for a specific command.`
}

func (c *Command) Run(ctx *command.Context) error {
	if len(ctx.Args) > 0 {
		return runCommandHelp(ctx, ctx.Args[0])
	}
	runListAllCommands(ctx)
	return nil
}

// runCommandHelp shows detailed help for a specific command
func runCommandHelp(ctx *command.Context, name string) error {
	cmd, ok := command.GetCommand(strings.ToLower(name))
	if !ok {
		return errors.E(name, errors.UnknownCommand, "", nil)
	}
	fmt.Fprintf(ctx.Out, "Usage: %s\n\n%s\n", cmd.Usage(), cmd.Help())
	return nil
}

// runListAllCommands lists all commands in a Git-style layout
func runListAllCommands(ctx *command.Context) {
	commands := command.AllCommands()

	longest := 0
	for _, cmd := range commands {
		if l := len(cmd.Name()); l > longest {
			longest = l
		}
	}

	fmt.Fprint(ctx.Out, "Available commands:\n\n")
	for _, cmd := range commands {
		padding := strings.Repeat(" ", longest-len(cmd.Name())+2)
		fmt.Fprintf(ctx.Out, "  %s%s%s\n", cmd.Name(), padding, cmd.Brief())
	}
	fmt.Fprintln(ctx.Out, "\nType 'help <command>' to see detailed information about a specific command.")
}

func init() {
	command.RegisterCommand(
		command.ApplyMiddlewares(
			&Command{},
			middleware.WithOperands(middleware.AtMost(1)),
			middleware.WithDebugArgsPrint(),
		),
	)
}
