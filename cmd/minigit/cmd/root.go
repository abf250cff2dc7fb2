package cmd

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/keshon/minigit/internal/command"
	"github.com/keshon/minigit/internal/config"
	"github.com/keshon/minigit/internal/errors"
	"github.com/keshon/minigit/internal/fs"
	"github.com/keshon/minigit/internal/logger"

	_ "github.com/keshon/minigit/internal/command/add"
	_ "github.com/keshon/minigit/internal/command/branch"
	_ "github.com/keshon/minigit/internal/command/checkout"
	_ "github.com/keshon/minigit/internal/command/commit"
	_ "github.com/keshon/minigit/internal/command/find"
	_ "github.com/keshon/minigit/internal/command/globallog"
	_ "github.com/keshon/minigit/internal/command/help"
	_ "github.com/keshon/minigit/internal/command/initialize"
	_ "github.com/keshon/minigit/internal/command/log"
	_ "github.com/keshon/minigit/internal/command/reset"
	_ "github.com/keshon/minigit/internal/command/rm"
	_ "github.com/keshon/minigit/internal/command/rmbranch"
	_ "github.com/keshon/minigit/internal/command/status"
)

// Execute runs one minigit invocation against the working tree at dir and
// returns the process exit status. Everything the user sees goes to out.
func Execute(dir string, args []string, out io.Writer) int {
	fsys := fs.NewOSFS(dir)

	settings, err := config.LoadSettings(fsys, config.NewRepoConfig("/"))
	if err != nil {
		command.Report(out, err)
		return 1
	}
	log, err := logger.New(settings.LogLevel)
	if err != nil {
		command.Report(out, errors.Wrapf(err, "invalid %s", config.KeyLogLevel))
		return 1
	}
	defer func() { _ = log.Sync() }()

	ctx := &command.Context{
		FS:       fsys,
		Out:      out,
		Log:      log,
		Settings: settings,
	}

	root := newRootCmd(ctx)
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)

	if err := root.Execute(); err != nil {
		log.Debug("command failed", zap.Error(err))
		command.Report(out, err)
		return 1
	}
	return 0
}

func newRootCmd(ctx *command.Context) *cobra.Command {
	root := &cobra.Command{
		Use:                "minigit",
		Short:              "A small local version-control system",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return command.Run("", ctx)
			}
			return command.Run(args[0], ctx)
		},
	}

	for _, cmd := range command.AllCommands() {
		sub := mount(cmd, ctx)
		if cmd.Name() == "help" {
			root.SetHelpCommand(sub)
			continue
		}
		root.AddCommand(sub)
	}
	return root
}

// mount exposes a registered command as a cobra subcommand. Flag parsing
// is left to the command so "--" and messages arrive untouched.
func mount(cmd command.Command, ctx *command.Context) *cobra.Command {
	return &cobra.Command{
		Use:                cmd.Usage(),
		Aliases:            cmd.Aliases(),
		Short:              cmd.Brief(),
		Long:               cmd.Help(),
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		RunE: func(_ *cobra.Command, args []string) error {
			ctx.Args = args
			return cmd.Run(ctx)
		},
	}
}
