// Package logging provides zerolog helpers shared by the commands and the
// import pipeline.
package logging

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Component creates a new logger with a component identifier.
// Uses the "cmp" key for consistency with zerolog conventions.
func Component(name string) zerolog.Logger {
	return log.With().Str("cmp", name).Logger()
}

// StartRun tags ctx with a fresh run ID so every event logged during one sync
// can be correlated. Dry runs are marked as well.
func StartRun(ctx context.Context, dryRun bool) (context.Context, string) {
	id := uuid.NewString()
	ctx = WithRunID(ctx, id)
	if dryRun {
		ctx = WithDryRun(ctx, true)
	}
	return ctx, id
}
