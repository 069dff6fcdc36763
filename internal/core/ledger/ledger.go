// Package ledger defines the import ledger: the set of assignment ids that
// have already been sent to the task manager. It is the only state that
// survives between runs.
package ledger

import (
	"context"
	"errors"
	"slices"
)

// ErrLocked is returned when another run holds the ledger.
var ErrLocked = errors.New("ledger is in use by another run")

// Store persists a Ledger.
type Store interface {
	// Load reads the ledger. A ledger that was never saved loads empty.
	Load(ctx context.Context) (*Ledger, error)
	// Save replaces the persisted ledger with l.
	Save(ctx context.Context, l *Ledger) error
}

// Ledger is a set of imported assignment ids. It is not safe for concurrent
// use; a run has a single writer.
type Ledger struct {
	ids map[string]struct{}
}

// New returns a ledger holding ids.
func New(ids ...string) *Ledger {
	l := &Ledger{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		l.Add(id)
	}
	return l
}

// Contains reports whether id has been imported.
func (l *Ledger) Contains(id string) bool {
	_, ok := l.ids[id]
	return ok
}

// Add records id as imported. It reports whether id was new.
func (l *Ledger) Add(id string) bool {
	if l.ids == nil {
		l.ids = make(map[string]struct{})
	}
	if _, ok := l.ids[id]; ok {
		return false
	}
	l.ids[id] = struct{}{}
	return true
}

// Remove forgets id so that a later run imports it again. Sync runs never
// call this; it backs the ledger maintenance commands.
func (l *Ledger) Remove(id string) bool {
	if _, ok := l.ids[id]; !ok {
		return false
	}
	delete(l.ids, id)
	return true
}

// Len returns the number of ids in the ledger.
func (l *Ledger) Len() int {
	return len(l.ids)
}

// IDs returns the ids in ascending order.
func (l *Ledger) IDs() []string {
	out := make([]string, 0, len(l.ids))
	for id := range l.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
