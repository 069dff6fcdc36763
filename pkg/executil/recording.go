package executil

import (
	"context"
	"errors"
	"sync"
)

// ErrInjected is returned by RecordingExecutor once FailAfter calls have
// succeeded.
var ErrInjected = errors.New("injected failure")

// RecordedCommand captures a command that was executed.
type RecordedCommand struct {
	Cmd  string
	Args []string
}

// RecordingExecutor captures commands for testing.
type RecordingExecutor struct {
	mu       sync.Mutex
	Commands []RecordedCommand

	// Outputs and Errors are keyed by command name, e.g. "xdg-open".
	Outputs map[string][]byte
	Errors  map[string]error

	// FailAfter, when positive, lets that many calls through and fails every
	// later call with ErrInjected. Failed calls are not recorded.
	FailAfter int
}

// Run records the command and returns configured output/error.
func (e *RecordingExecutor) Run(_ context.Context, cmd string, args ...string) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.FailAfter > 0 && len(e.Commands) >= e.FailAfter {
		return nil, ErrInjected
	}

	e.Commands = append(e.Commands, RecordedCommand{
		Cmd:  cmd,
		Args: append([]string(nil), args...),
	})

	return e.Outputs[cmd], e.Errors[cmd]
}

// Targets returns the last argument of every recorded command, which is the
// URL for opener invocations.
func (e *RecordingExecutor) Targets() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]string, 0, len(e.Commands))
	for _, c := range e.Commands {
		if len(c.Args) == 0 {
			out = append(out, "")
			continue
		}
		out = append(out, c.Args[len(c.Args)-1])
	}
	return out
}

// Reset clears recorded commands.
func (e *RecordingExecutor) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.Commands = nil
}
