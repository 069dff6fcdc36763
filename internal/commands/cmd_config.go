package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/realprogrammersusevim/canvas-todo/internal/core/config"
	"github.com/realprogrammersusevim/canvas-todo/internal/printer"
	"github.com/realprogrammersusevim/canvas-todo/pkg/iojson"
)

type ConfigCmd struct {
	flags  *Flags
	format string
	force  bool
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags) *ConfigCmd {
	return &ConfigCmd{flags: flags}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "canvas-todo config validate [options]",
				Description: "Validates the configuration file, checking tags, course patterns, and file paths.",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:        "format",
						Usage:       "output format (text, json)",
						Value:       "text",
						Destination: &cmd.format,
					},
				},
				Action: cmd.runValidate,
			},
			{
				Name:        "init",
				Usage:       "Write a starter configuration file",
				UsageText:   "canvas-todo config init [--force]",
				Description: "Writes the current effective configuration (without the token) to the config path.",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "force",
						Usage:       "overwrite an existing file",
						Destination: &cmd.force,
					},
				},
				Action: cmd.runInit,
			},
		},
	})

	return app
}

type fieldErrorJSON struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (cmd *ConfigCmd) runValidate(ctx context.Context, c *cli.Command) error {
	err := cmd.flags.Config.ValidateDeep(cmd.flags.ConfigPath)

	var fields []fieldErrorJSON
	var fieldErrs criterio.FieldErrors
	switch {
	case err == nil:
	case errors.As(err, &fieldErrs):
		for _, fe := range fieldErrs {
			fields = append(fields, fieldErrorJSON{Field: fe.Field, Message: fe.Err.Error()})
		}
	default:
		fields = append(fields, fieldErrorJSON{Field: "config", Message: err.Error()})
	}

	if cmd.format == "json" {
		out := struct {
			Valid  bool             `json:"valid"`
			Errors []fieldErrorJSON `json:"errors,omitempty"`
		}{
			Valid:  len(fields) == 0,
			Errors: fields,
		}
		if werr := iojson.WriteWith(c.Root().Writer, os.Stderr, out); werr != nil {
			return werr
		}
	} else {
		p := printer.Ctx(ctx)
		for _, f := range fields {
			p.Errorf("%s: %s", f.Field, f.Message)
		}
		if len(fields) == 0 {
			p.Successf("Configuration is valid")
		}
	}

	if len(fields) > 0 {
		return fmt.Errorf("%d error(s) found", len(fields))
	}
	return nil
}

func (cmd *ConfigCmd) runInit(ctx context.Context, c *cli.Command) error {
	path := cmd.flags.ConfigPath
	if path == "" {
		return errors.New("no config path")
	}

	if _, err := os.Stat(path); err == nil && !cmd.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	data, err := yaml.Marshal(starterConfig(*cmd.flags.Config))
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	printer.Ctx(ctx).Successf("Wrote %s", path)
	return nil
}

// starterConfig drops values that are better left to environment variables
// or the keyring.
func starterConfig(cfg config.Config) config.Config {
	cfg.Canvas.Token = ""
	if cfg.Things.Tags == nil {
		cfg.Things.Tags = []string{}
	}
	return cfg
}
