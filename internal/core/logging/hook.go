package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies run, course and assignment identifiers from the event's
// context onto the event. Dry runs are flagged with dry_run=true.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	for _, key := range stringKeys {
		if v := getString(ctx, key); v != "" {
			e.Str(string(key), v)
		}
	}

	if IsDryRun(ctx) {
		e.Bool(string(dryRunKey), true)
	}
}
