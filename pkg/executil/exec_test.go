package executil

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealExecutor_Run(t *testing.T) {
	e := &RealExecutor{}
	ctx := context.Background()

	t.Run("successful command", func(t *testing.T) {
		out, err := e.Run(ctx, "echo", "hello")
		require.NoError(t, err)
		assert.Equal(t, "hello\n", string(out))
	})

	t.Run("command not found", func(t *testing.T) {
		_, err := e.Run(ctx, "nonexistent-command-12345")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exec nonexistent-command-12345")
	})

	t.Run("command fails", func(t *testing.T) {
		out, err := e.Run(ctx, "sh", "-c", "echo oops >&2; exit 3")
		require.Error(t, err)
		assert.Equal(t, "oops\n", string(out))

		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 3, exitErr.ExitCode())
	})

	t.Run("cancelled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := e.Run(cctx, "sleep", "5")
		require.Error(t, err)
	})
}

func TestRecordingExecutor_Run(t *testing.T) {
	t.Run("records commands", func(t *testing.T) {
		rec := &RecordingExecutor{}
		ctx := context.Background()

		_, _ = rec.Run(ctx, "open", "things:///add?title=a")
		_, _ = rec.Run(ctx, "open", "things:///add?title=b")

		require.Len(t, rec.Commands, 2)
		assert.Equal(t, "open", rec.Commands[0].Cmd)
		assert.Equal(t, []string{"things:///add?title=a"}, rec.Commands[0].Args)
	})

	t.Run("returns configured output", func(t *testing.T) {
		rec := &RecordingExecutor{
			Outputs: map[string][]byte{
				"open": []byte("output"),
			},
		}

		out, err := rec.Run(context.Background(), "open", "x")
		require.NoError(t, err)
		assert.Equal(t, []byte("output"), out)
	})

	t.Run("returns configured error", func(t *testing.T) {
		expectedErr := errors.New("command failed")
		rec := &RecordingExecutor{
			Errors: map[string]error{
				"open": expectedErr,
			},
		}

		_, err := rec.Run(context.Background(), "open", "x")
		assert.Equal(t, expectedErr, err)
	})

	t.Run("fails after limit", func(t *testing.T) {
		rec := &RecordingExecutor{FailAfter: 1}
		ctx := context.Background()

		_, err := rec.Run(ctx, "open", "things:///add?title=a")
		require.NoError(t, err)

		_, err = rec.Run(ctx, "open", "things:///add?title=b")
		require.ErrorIs(t, err, ErrInjected)
		assert.Equal(t, []string{"things:///add?title=a"}, rec.Targets())
	})

	t.Run("targets are last args", func(t *testing.T) {
		rec := &RecordingExecutor{}
		ctx := context.Background()

		_, _ = rec.Run(ctx, "rundll32", "url.dll,FileProtocolHandler", "things:///add?title=a")
		_, _ = rec.Run(ctx, "true")

		assert.Equal(t, []string{"things:///add?title=a", ""}, rec.Targets())
	})

	t.Run("reset clears commands", func(t *testing.T) {
		rec := &RecordingExecutor{}

		_, _ = rec.Run(context.Background(), "echo", "hello")
		require.Len(t, rec.Commands, 1)

		rec.Reset()
		assert.Empty(t, rec.Commands)
	})
}
