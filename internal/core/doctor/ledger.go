package doctor

import (
	"context"
	"fmt"

	"github.com/realprogrammersusevim/canvas-todo/internal/core/ledger"
)

// LedgerCheck verifies that the import ledger can be read.
type LedgerCheck struct {
	store ledger.Store
	path  string
}

// NewLedgerCheck creates a new ledger check. path is only used for display.
func NewLedgerCheck(store ledger.Store, path string) *LedgerCheck {
	return &LedgerCheck{store: store, path: path}
}

func (c *LedgerCheck) Name() string {
	return "Import Ledger"
}

func (c *LedgerCheck) Run(ctx context.Context) Result {
	result := Result{Name: c.Name()}

	l, err := c.store.Load(ctx)
	if err != nil {
		result.add(fail(c.path, fmt.Sprintf("unreadable: %v", err)))
		return result
	}

	result.add(pass(c.path, fmt.Sprintf("%d assignment(s) imported", l.Len())))
	return result
}
