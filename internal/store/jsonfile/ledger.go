package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/realprogrammersusevim/canvas-todo/internal/core/ledger"
)

// LedgerStore implements ledger.Store as a JSON array of ids on disk.
type LedgerStore struct {
	fs   afero.Fs
	path string
}

// NewLedgerStore creates a ledger store for the file at path on fsys.
func NewLedgerStore(fsys afero.Fs, path string) *LedgerStore {
	return &LedgerStore{fs: fsys, path: path}
}

// Path returns the location of the ledger file.
func (s *LedgerStore) Path() string {
	return s.path
}

// Load reads the ledger file. A missing or empty file yields an empty ledger.
// A file that is not a JSON array of strings is an error.
func (s *LedgerStore) Load(ctx context.Context) (*ledger.Ledger, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ledger.New(), nil
		}
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	if len(data) == 0 {
		return ledger.New(), nil
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("parse ledger %s: %w", s.path, err)
	}

	return ledger.New(ids...), nil
}

// Save writes the ledger as a sorted, indented JSON array. The file is
// written next to the target and renamed into place so a crash never leaves
// a truncated ledger behind.
func (s *LedgerStore) Save(ctx context.Context, l *ledger.Ledger) error {
	if err := s.fs.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create ledger dir: %w", err)
	}

	data, err := json.MarshalIndent(l.IDs(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("write ledger: %w", err)
	}

	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("replace ledger: %w", err)
	}

	return nil
}
