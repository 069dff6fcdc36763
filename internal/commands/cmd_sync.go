package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/realprogrammersusevim/canvas-todo/internal/core/config"
	"github.com/realprogrammersusevim/canvas-todo/internal/core/htmltext"
	"github.com/realprogrammersusevim/canvas-todo/internal/core/logging"
	"github.com/realprogrammersusevim/canvas-todo/internal/core/things"
	"github.com/realprogrammersusevim/canvas-todo/internal/importer"
	"github.com/realprogrammersusevim/canvas-todo/internal/integration/canvas"
	"github.com/realprogrammersusevim/canvas-todo/internal/integration/opener"
	"github.com/realprogrammersusevim/canvas-todo/internal/printer"
	"github.com/realprogrammersusevim/canvas-todo/internal/store/jsonfile"
	"github.com/realprogrammersusevim/canvas-todo/pkg/executil"
)

type SyncCmd struct {
	flags *Flags

	dryRun      bool
	incremental bool
	list        string
	tags        []string
	ledger      string

	exec executil.Executor
	loc  *time.Location
}

// NewSyncCmd creates a new sync command
func NewSyncCmd(flags *Flags) *SyncCmd {
	return &SyncCmd{
		flags: flags,
		exec:  &executil.RealExecutor{},
		loc:   time.Local,
	}
}

// Flags returns the sync flags. Each call returns fresh flag values bound to
// the same destinations so they can be attached to both the root command and
// the sync subcommand.
func (cmd *SyncCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "dry-run",
			Aliases:     []string{"n"},
			Usage:       "print the tasks that would be created without opening Things or updating the ledger",
			Destination: &cmd.dryRun,
		},
		&cli.BoolFlag{
			Name:        "incremental",
			Usage:       "save the ledger after every created task",
			Sources:     cli.EnvVars("CANVAS_TODO_INCREMENTAL"),
			Destination: &cmd.incremental,
		},
		&cli.StringFlag{
			Name:        "list",
			Usage:       "Things list to add tasks to (overrides config and LIST_NAME)",
			Destination: &cmd.list,
		},
		&cli.StringSliceFlag{
			Name:        "tag",
			Usage:       "tag to add to every task, repeatable (replaces configured tags)",
			Destination: &cmd.tags,
		},
		&cli.StringFlag{
			Name:        "ledger",
			Usage:       "path to the import ledger (defaults to <data-dir>/" + config.LedgerFileName + ")",
			Destination: &cmd.ledger,
		},
	}
}

// Register adds the sync command to the application
func (cmd *SyncCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "sync",
		Usage:     "Import upcoming Canvas assignments into Things",
		UsageText: "canvas-todo sync [options]",
		Description: `Fetches upcoming assignments from your favorite Canvas courses (or all
enrolled courses when none are favorited) and creates a Things task for each
one that has not been imported before.

Imported assignment ids are recorded in the ledger once the run finishes.
If the run fails part way, tasks already created are not recorded and will
be created again next time; use --incremental to record each task as soon
as it is sent.`,
		Flags:  cmd.Flags(),
		Action: cmd.Run,
	})

	return app
}

// Run executes a sync.
func (cmd *SyncCmd) Run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.resolveConfig()

	if err := cfg.ValidateDeep(""); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := cfg.RequireCanvas(); err != nil {
		return err
	}

	ledgerFile := cfg.LedgerFile()
	unlock, err := jsonfile.Lock(ledgerFile)
	if err != nil {
		return err
	}
	defer unlock()

	ctx, runID := logging.StartRun(ctx, cmd.dryRun)
	log := logging.Component("sync")
	p := printer.Ctx(ctx)

	client := canvas.New(cfg.Canvas.URL, cfg.Canvas.Token)

	user, err := client.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("connect to canvas: %w", err)
	}

	log.Info().Ctx(ctx).
		Str("canvas", cfg.CanvasHost()).
		Int64("user_id", user.ID).
		Bool("incremental", cfg.Ledger.Incremental).
		Str("ledger", ledgerFile).
		Msg("sync started")

	var dispatcher importer.Dispatcher
	if cmd.dryRun {
		dispatcher = newPreviewDispatcher(p, cmd.loc)
	} else {
		dispatcher = things.NewDispatcher(opener.New(cmd.exec, cfg.Opener))
	}

	im := importer.New(
		client,
		jsonfile.NewLedgerStore(afero.NewOsFs(), ledgerFile),
		dispatcher,
		importer.Options{
			Builder: things.Builder{
				Tags:     cfg.Things.Tags,
				ListName: cfg.Things.ListName,
				Describe: htmltext.ToMarkdown,
			},
			Filter: importer.CourseFilter{
				Include: cfg.Courses.Include,
				Exclude: cfg.Courses.Exclude,
			},
			Incremental: cfg.Ledger.Incremental,
			DryRun:      cmd.dryRun,
			Location:    cmd.loc,
		},
		log,
		p,
	)

	res, err := im.Run(ctx)
	if err != nil {
		log.Error().Ctx(ctx).Err(err).Int("dispatched", len(res.Dispatched)).Msg("sync failed")
		if len(res.Dispatched) > 0 && !cfg.Ledger.Incremental && !cmd.dryRun {
			p.Warnf("%d task(s) were created but not recorded (run %s); they will be created again next run", len(res.Dispatched), runID)
		}
		return err
	}

	log.Info().Ctx(ctx).
		Int("dispatched", len(res.Dispatched)).
		Int("already_imported", res.AlreadyImported).
		Int("skipped_courses", res.SkippedCourses).
		Msg("sync finished")

	if cmd.dryRun {
		p.Infof("Dry run: %d task(s) previewed, ledger not updated", len(res.Dispatched))
	}

	return nil
}

// resolveConfig applies command-line overrides to a copy of the loaded
// config.
func (cmd *SyncCmd) resolveConfig() config.Config {
	cfg := *cmd.flags.Config

	if cmd.list != "" {
		cfg.Things.ListName = cmd.list
	}
	if len(cmd.tags) > 0 {
		cfg.Things.Tags = cmd.tags
	}
	if cmd.ledger != "" {
		cfg.Ledger.Path = cmd.ledger
	}
	if cmd.incremental {
		cfg.Ledger.Incremental = true
	}

	return cfg
}
