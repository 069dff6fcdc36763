// Package opener hands URLs to the operating system's default handler.
package opener

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/realprogrammersusevim/canvas-todo/pkg/executil"
)

// Opener opens URLs by running a platform command such as "open" or
// "xdg-open". It satisfies things.Sink.
type Opener struct {
	exec executil.Executor
	cmd  string
	args []string
}

// New creates an Opener for the current platform. A non-empty command
// overrides the platform default and may include leading arguments
// ("rundll32 url.dll,FileProtocolHandler").
func New(exec executil.Executor, command string) *Opener {
	cmd, args := Command(runtime.GOOS)
	if fields := strings.Fields(command); len(fields) > 0 {
		cmd, args = fields[0], fields[1:]
	}
	return &Opener{exec: exec, cmd: cmd, args: args}
}

// Command returns the default URL-opening command for goos.
func Command(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}

// Name returns the command that will be run.
func (o *Opener) Name() string {
	return o.cmd
}

// Open runs the platform command for uri and returns once it exits. Success
// only means the command accepted the URL.
func (o *Opener) Open(ctx context.Context, uri string) error {
	args := append(append([]string{}, o.args...), uri)
	if out, err := o.exec.Run(ctx, o.cmd, args...); err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%s: %w", msg, err)
		}
		return err
	}
	return nil
}
