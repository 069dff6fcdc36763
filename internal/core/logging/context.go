package logging

import "context"

type contextKey string

const (
	runIDKey        contextKey = "run_id"
	courseIDKey     contextKey = "course_id"
	assignmentIDKey contextKey = "assignment_id"
	dryRunKey       contextKey = "dry_run"
)

// stringKeys are copied onto every event logged with a context by ContextHook.
var stringKeys = []contextKey{runIDKey, courseIDKey, assignmentIDKey}

// WithRunID adds a sync run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// WithCourseID adds the ID of the course being processed to the context.
func WithCourseID(ctx context.Context, courseID string) context.Context {
	return context.WithValue(ctx, courseIDKey, courseID)
}

// WithAssignmentID adds the ID of the assignment being dispatched.
func WithAssignmentID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, assignmentIDKey, id)
}

// WithDryRun marks the context as belonging to a run that creates no tasks.
func WithDryRun(ctx context.Context, dryRun bool) context.Context {
	return context.WithValue(ctx, dryRunKey, dryRun)
}

// GetRunID retrieves the run ID from the context.
// Returns empty string if not present.
func GetRunID(ctx context.Context) string {
	return getString(ctx, runIDKey)
}

// GetCourseID retrieves the course ID from the context.
// Returns empty string if not present.
func GetCourseID(ctx context.Context) string {
	return getString(ctx, courseIDKey)
}

// GetAssignmentID retrieves the assignment ID from the context.
func GetAssignmentID(ctx context.Context) string {
	return getString(ctx, assignmentIDKey)
}

// IsDryRun reports whether WithDryRun(ctx, true) was applied.
func IsDryRun(ctx context.Context) bool {
	v, _ := ctx.Value(dryRunKey).(bool)
	return v
}

func getString(ctx context.Context, key contextKey) string {
	if v, ok := ctx.Value(key).(string); ok {
		return v
	}
	return ""
}
