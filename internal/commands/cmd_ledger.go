package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/realprogrammersusevim/canvas-todo/internal/printer"
	"github.com/realprogrammersusevim/canvas-todo/internal/store/jsonfile"
	"github.com/realprogrammersusevim/canvas-todo/pkg/iojson"
)

type LedgerCmd struct {
	flags *Flags

	// ls flags
	jsonOutput bool

	// forget flags
	input iojson.FileReader[[]string]

	fs afero.Fs
}

// NewLedgerCmd creates a new ledger command
func NewLedgerCmd(flags *Flags) *LedgerCmd {
	return &LedgerCmd{flags: flags, fs: afero.NewOsFs()}
}

// Register adds the ledger command to the application
func (cmd *LedgerCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "ledger",
		Usage: "Inspect and edit the record of imported assignments",
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "List imported assignment ids",
				UsageText: "canvas-todo ledger ls [--json]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON",
						Destination: &cmd.jsonOutput,
					},
				},
				Action: cmd.runList,
			},
			{
				Name:      "forget",
				Usage:     "Remove assignment ids so the next sync imports them again",
				UsageText: "canvas-todo ledger forget <id>... | canvas-todo ledger forget -f ids.json",
				Description: `Removes ids from the ledger. Ids can be given as arguments, or as a JSON
array read from --file or stdin.

The next sync will create new Things tasks for forgotten assignments that
are still upcoming.`,
				Flags:         []cli.Flag{cmd.input.Flag()},
				ShellComplete: LedgerIDCompleter(cmd),
				Action:        cmd.runForget,
			},
		},
	})

	return app
}

func (cmd *LedgerCmd) store() *jsonfile.LedgerStore {
	return jsonfile.NewLedgerStore(cmd.fs, cmd.flags.Config.LedgerFile())
}

func (cmd *LedgerCmd) runList(ctx context.Context, c *cli.Command) error {
	store := cmd.store()

	l, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}

	if cmd.jsonOutput {
		out := struct {
			Path  string   `json:"path"`
			Count int      `json:"count"`
			IDs   []string `json:"ids"`
		}{
			Path:  store.Path(),
			Count: l.Len(),
			IDs:   l.IDs(),
		}
		return iojson.WriteWith(c.Root().Writer, os.Stderr, out)
	}

	p := printer.Ctx(ctx)
	p.Section("Import Ledger")
	p.Printf("%s", store.Path())
	p.Printf("")

	if l.Len() == 0 {
		p.Infof("No assignments imported yet")
		return nil
	}

	for _, id := range l.IDs() {
		p.Printf("%s", id)
	}
	p.Printf("")
	p.Printf("%d assignment(s)", l.Len())

	return nil
}

func (cmd *LedgerCmd) runForget(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	ids := c.Args().Slice()
	if len(ids) == 0 {
		read, err := cmd.input.Read()
		if err != nil {
			return fmt.Errorf("read ids: %w", err)
		}
		ids = read
	}
	if len(ids) == 0 {
		return fmt.Errorf("no ids given")
	}

	store := cmd.store()

	unlock, err := jsonfile.Lock(store.Path())
	if err != nil {
		return err
	}
	defer unlock()

	l, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load ledger: %w", err)
	}

	removed := 0
	for _, id := range ids {
		if !l.Remove(id) {
			p.Warnf("%s is not in the ledger", id)
			continue
		}
		removed++
	}

	if removed == 0 {
		return nil
	}

	if err := store.Save(ctx, l); err != nil {
		return fmt.Errorf("save ledger: %w", err)
	}

	p.Successf("Forgot %d assignment(s)", removed)
	return nil
}
