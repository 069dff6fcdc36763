package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/realprogrammersusevim/canvas-todo/internal/core/credentials"
	"github.com/realprogrammersusevim/canvas-todo/internal/integration/canvas"
	"github.com/realprogrammersusevim/canvas-todo/internal/printer"
)

type AuthCmd struct {
	flags    *Flags
	noVerify bool

	keyring *credentials.Keyring
	stdin   io.Reader
	whoami  func(ctx context.Context, baseURL, token string) (string, error)
}

// NewAuthCmd creates a new auth command
func NewAuthCmd(flags *Flags) *AuthCmd {
	return &AuthCmd{
		flags:   flags,
		keyring: credentials.New(),
		stdin:   os.Stdin,
		whoami:  canvasWhoami,
	}
}

func canvasWhoami(ctx context.Context, baseURL, token string) (string, error) {
	u, err := canvas.New(baseURL, token).CurrentUser(ctx)
	if err != nil {
		return "", err
	}
	return u.Name, nil
}

// Register adds the auth command to the application
func (cmd *AuthCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "auth",
		Usage: "Manage the Canvas API token stored in the OS keyring",
		Commands: []*cli.Command{
			{
				Name:      "login",
				Usage:     "Store a Canvas API token",
				UsageText: "canvas-todo auth login [--no-verify]",
				Description: `Prompts for a Canvas access token (Account > Settings > New Access Token)
and stores it in the OS keyring for the configured Canvas host. The token is
read from stdin when it is not a terminal.

A token in CANVAS_API_KEY or the config file takes precedence over the
keyring.`,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "no-verify",
						Usage:       "store the token without checking it against Canvas",
						Destination: &cmd.noVerify,
					},
				},
				Action: cmd.runLogin,
			},
			{
				Name:      "logout",
				Usage:     "Delete the stored Canvas API token",
				UsageText: "canvas-todo auth logout",
				Action:    cmd.runLogout,
			},
		},
	})

	return app
}

func (cmd *AuthCmd) runLogin(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config
	if cfg.Canvas.URL == "" {
		return errors.New("canvas url is not set (set CANVAS_API_URL or canvas.url)")
	}

	p := printer.Ctx(ctx)
	host := cfg.CanvasHost()

	token, err := cmd.readToken(p, host)
	if err != nil {
		return err
	}

	if !cmd.noVerify {
		name, err := cmd.whoami(ctx, cfg.Canvas.URL, token)
		if err != nil {
			return fmt.Errorf("verify token: %w", err)
		}
		p.Infof("Authenticated as %s", name)
	}

	if err := cmd.keyring.SetToken(host, token); err != nil {
		return err
	}

	p.Successf("Token stored for %s", host)
	return nil
}

func (cmd *AuthCmd) readToken(p *printer.Printer, host string) (string, error) {
	if f, ok := cmd.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		_, _ = fmt.Fprintf(p.Writer(), "Canvas token for %s: ", host)
		b, err := term.ReadPassword(int(f.Fd()))
		_, _ = fmt.Fprintln(p.Writer())
		if err != nil {
			return "", fmt.Errorf("read token: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := bufio.NewReader(cmd.stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read token: %w", err)
	}

	token := strings.TrimSpace(line)
	if token == "" {
		return "", errors.New("no token provided")
	}
	return token, nil
}

func (cmd *AuthCmd) runLogout(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)
	host := cmd.flags.Config.CanvasHost()

	err := cmd.keyring.DeleteToken(host)
	if errors.Is(err, credentials.ErrNotFound) {
		p.Infof("No token stored for %s", host)
		return nil
	}
	if err != nil {
		return err
	}

	p.Successf("Token removed for %s", host)
	return nil
}
