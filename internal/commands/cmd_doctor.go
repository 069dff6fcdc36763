package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/realprogrammersusevim/canvas-todo/internal/core/doctor"
	"github.com/realprogrammersusevim/canvas-todo/internal/core/styles"
	"github.com/realprogrammersusevim/canvas-todo/internal/integration/opener"
	"github.com/realprogrammersusevim/canvas-todo/internal/printer"
	"github.com/realprogrammersusevim/canvas-todo/internal/store/jsonfile"
	"github.com/realprogrammersusevim/canvas-todo/pkg/executil"
	"github.com/realprogrammersusevim/canvas-todo/pkg/iojson"
)

type DoctorCmd struct {
	flags   *Flags
	format  string
	offline bool

	whoami func(ctx context.Context, baseURL, token string) (string, error)
}

func NewDoctorCmd(flags *Flags) *DoctorCmd {
	return &DoctorCmd{flags: flags, whoami: canvasWhoami}
}

func (cmd *DoctorCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "doctor",
		Usage:       "Run health checks on your canvas-todo setup",
		UsageText:   "canvas-todo doctor [options]",
		Description: "Runs diagnostic checks on configuration, credentials, the import ledger, the URL opener, and the Canvas connection.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
			&cli.BoolFlag{
				Name:        "offline",
				Usage:       "skip the Canvas connection check",
				Destination: &cmd.offline,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *DoctorCmd) checks() []doctor.Check {
	cfg := cmd.flags.Config

	var whoami doctor.WhoamiFunc
	if !cmd.offline && cfg.RequireCanvas() == nil {
		whoami = func(ctx context.Context) (string, error) {
			return cmd.whoami(ctx, cfg.Canvas.URL, cfg.Canvas.Token)
		}
	}

	ledgerFile := cfg.LedgerFile()

	return []doctor.Check{
		doctor.NewConfigCheck(cfg, cmd.flags.ConfigPath),
		doctor.NewOpenerCheck(opener.New(&executil.RealExecutor{}, cfg.Opener).Name()),
		doctor.NewLedgerCheck(jsonfile.NewLedgerStore(afero.NewOsFs(), ledgerFile), ledgerFile),
		doctor.NewCanvasCheck(whoami),
	}
}

func (cmd *DoctorCmd) run(ctx context.Context, c *cli.Command) error {
	results := doctor.RunAll(ctx, cmd.checks())

	if cmd.format == "json" {
		return cmd.outputJSON(c, results)
	}

	return cmd.outputText(printer.Ctx(ctx), results)
}

func (cmd *DoctorCmd) outputJSON(c *cli.Command, results []doctor.Result) error {
	report := doctor.NewReport(results)
	if err := iojson.WriteWith(c.Root().Writer, os.Stderr, report); err != nil {
		return err
	}
	if !report.Healthy {
		return fmt.Errorf("%d check(s) failed", report.Summary.Failed)
	}
	return nil
}

func (cmd *DoctorCmd) outputText(p *printer.Printer, results []doctor.Result) error {
	p.Printf("")
	p.Section("canvas-todo doctor")
	p.Printf("")

	for _, result := range results {
		p.Printf("%s", p.Render(styles.TitleStyle, result.Name))

		for _, item := range result.Items {
			var detail string
			if item.Detail != "" {
				detail = " " + p.Render(styles.MutedStyle, item.Detail)
			}

			var icon string
			switch item.Status {
			case doctor.StatusPass:
				icon = p.Render(styles.SuccessStyle, styles.IconSuccess)
			case doctor.StatusWarn:
				icon = p.Render(styles.WarnStyle, "●")
			case doctor.StatusFail:
				icon = p.Render(styles.ErrorStyle, styles.IconError)
			}

			p.Printf("  %s %s%s", icon, item.Label, detail)
		}

		p.Printf("")
	}

	counts := doctor.Summarize(results)
	p.Printf("%s  %s  %s",
		p.Render(styles.SuccessStyle, fmt.Sprintf("%d passed", counts.Passed)),
		p.Render(styles.WarnStyle, fmt.Sprintf("%d warnings", counts.Warned)),
		p.Render(styles.ErrorStyle, fmt.Sprintf("%d failed", counts.Failed)),
	)

	if counts.Fixable > 0 {
		p.Printf("")
		p.Printf("%s", p.Render(styles.MutedStyle, fmt.Sprintf("%d issue(s) can be fixed with 'canvas-todo auth login'", counts.Fixable)))
	}

	if counts.Failed > 0 {
		return fmt.Errorf("%d check(s) failed", counts.Failed)
	}

	return nil
}
