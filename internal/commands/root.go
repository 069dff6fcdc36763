package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// NewRoot builds the canvas-todo command tree: global flags, every
// subcommand, and sync as the default action. Callers add Before/After hooks
// that load config into flags.
func NewRoot(flags *Flags, version string) *cli.Command {
	root := &cli.Command{
		Name:      appName,
		Usage:     "Import upcoming Canvas assignments into Things 3",
		UsageText: "canvas-todo [global options] [command [command options]]",
		Description: `canvas-todo creates a Things 3 task for every upcoming assignment in your
Canvas courses. Each assignment is imported once; the ids of imported
assignments are kept in a ledger file in the data directory.

Run 'canvas-todo' with no arguments to sync.
Run 'canvas-todo auth login' to store your Canvas token in the OS keyring.`,
		Version:               version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (trace, debug, info, warn, error, fatal)",
				Sources:     cli.EnvVars("CANVAS_TODO_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (empty logs to stderr)",
				Sources:     cli.EnvVars("CANVAS_TODO_LOG_FILE"),
				Value:       DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("CANVAS_TODO_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("CANVAS_TODO_DATA_DIR"),
				Value:       DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
	}

	syncCmd := NewSyncCmd(flags)

	root = syncCmd.Register(root)
	root = NewLedgerCmd(flags).Register(root)
	root = NewAuthCmd(flags).Register(root)
	root = NewDoctorCmd(flags).Register(root)
	root = NewConfigCmd(flags).Register(root)

	// Sync flags on the root so plain 'canvas-todo --dry-run' works.
	root.Flags = append(root.Flags, syncCmd.Flags()...)

	root.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'canvas-todo --help' for usage", c.Args().First())
		}
		return syncCmd.Run(ctx, c)
	}

	return root
}
