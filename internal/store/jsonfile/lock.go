package jsonfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/realprogrammersusevim/canvas-todo/internal/core/ledger"
)

// Lock takes an exclusive advisory lock next to the file at path and returns
// a function that releases it. If another process holds the lock it returns
// ledger.ErrLocked without waiting.
func Lock(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock dir: %w", err)
	}

	fl := flock.New(path + ".lock")

	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", fl.Path(), err)
	}
	if !locked {
		return nil, fmt.Errorf("%s: %w", path, ledger.ErrLocked)
	}

	return func() { _ = fl.Unlock() }, nil
}
