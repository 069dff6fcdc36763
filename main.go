package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/realprogrammersusevim/canvas-todo/internal/commands"
	"github.com/realprogrammersusevim/canvas-todo/internal/core/config"
	"github.com/realprogrammersusevim/canvas-todo/internal/core/credentials"
	"github.com/realprogrammersusevim/canvas-todo/internal/core/logging"
	"github.com/realprogrammersusevim/canvas-todo/internal/core/styles"
	"github.com/realprogrammersusevim/canvas-todo/internal/printer"
	"github.com/realprogrammersusevim/canvas-todo/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// A .env in the working directory seeds the environment; real variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: read .env: %v\n", err)
	}

	var logCloser func()

	flags := &commands.Flags{}

	app := commands.NewRoot(flags, build())
	app.Before = func(ctx context.Context, c *cli.Command) (context.Context, error) {
		logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
		if err != nil {
			return ctx, fmt.Errorf("setup logger: %w", err)
		}
		log.Logger = logger.Hook(logging.ContextHook{})
		logCloser = closer

		cfg, err := config.Load(flags.ConfigPath, flags.DataDir)
		if err != nil {
			return ctx, fmt.Errorf("load config: %w", err)
		}

		// Apply configured theme (validation ensures name is valid)
		palette, _ := styles.GetPalette(cfg.Theme)
		styles.SetTheme(palette)

		if cfg.Canvas.Token == "" && cfg.Canvas.URL != "" {
			tok, err := credentials.New().Token(cfg.CanvasHost())
			switch {
			case err == nil:
				cfg.Canvas.Token = tok
			case errors.Is(err, credentials.ErrNotFound):
			default:
				log.Warn().Err(err).Msg("keyring unavailable")
			}
		}

		flags.Config = cfg

		return printer.NewContext(ctx, printer.New(os.Stdout)), nil
	}
	app.After = func(ctx context.Context, c *cli.Command) error {
		if logCloser != nil {
			logCloser()
		}
		return nil
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, runErr.Error())
		exitCode = 1
	}

	stop()
	os.Exit(exitCode)
}
