package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// LedgerIDCompleter returns a ShellCompleteFunc that suggests imported
// assignment ids as positional completions. Set this as the ShellComplete
// field on any cli.Command that accepts ledger ids as arguments.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func LedgerIDCompleter(cmd *LedgerCmd) cli.ShellCompleteFunc {
	return func(ctx context.Context, c *cli.Command) {
		// Delegate to default flag completion when typing a flag
		if args := c.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, c)
				return
			}
		}

		l, err := cmd.store().Load(ctx)
		if err != nil {
			return
		}

		w := c.Root().Writer
		for _, id := range l.IDs() {
			_, _ = fmt.Fprintln(w, id)
		}
	}
}
