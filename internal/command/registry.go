package command

import "sort"

var registry = map[string]Command{}

// RegisterCommand adds a command under its name and aliases.
func RegisterCommand(cmd Command) {
	for _, n := range append([]string{cmd.Name()}, cmd.Aliases()...) {
		registry[n] = cmd
	}
}

// GetCommand returns a command by name or alias.
func GetCommand(name string) (Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

// AllCommands returns every registered command once, sorted by name.
func AllCommands() []Command {
	seen := map[string]bool{}
	cmds := make([]Command, 0, len(registry))
	for _, cmd := range registry {
		if seen[cmd.Name()] {
			continue
		}
		seen[cmd.Name()] = true
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name() < cmds[j].Name() })
	return cmds
}
