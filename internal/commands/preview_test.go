package commands

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realprogrammersusevim/canvas-todo/internal/core/things"
	"github.com/realprogrammersusevim/canvas-todo/internal/printer"
)

func TestPreviewDispatcher_Plain(t *testing.T) {
	var buf bytes.Buffer
	d := newPreviewDispatcher(printer.NewPlain(&buf), time.UTC)
	d.now = func() time.Time { return time.Date(2024, 4, 28, 12, 0, 0, 0, time.UTC) }

	err := d.Dispatch(context.Background(), things.Payload{
		Title:    "Math: HW1",
		Notes:    "Link: https://lms/a/1\n\nSolve problems 1-10",
		Tags:     []string{"School", "New"},
		Deadline: "2024-05-01",
		ListName: "Canvas",
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "→ Math: HW1\n")
	assert.Contains(t, out, "  deadline: 2024-05-01 (2 days from now)\n")
	assert.Contains(t, out, "  list:     Canvas\n")
	assert.Contains(t, out, "  tags:     School New\n")
	assert.Contains(t, out, "    Link: https://lms/a/1\n    \n    Solve problems 1-10\n")
	assert.Contains(t, out, "things:///add?title=Math%3A%20HW1")
}

func TestPreviewDispatcher_NoDeadline(t *testing.T) {
	var buf bytes.Buffer
	d := newPreviewDispatcher(printer.NewPlain(&buf), time.UTC)

	require.NoError(t, d.Dispatch(context.Background(), things.Payload{
		Title: "History: Essay",
		Notes: "Link: https://lms/a/2",
		Tags:  []string{"New"},
	}))

	out := buf.String()
	assert.Contains(t, out, "  deadline: none\n")
	assert.NotContains(t, out, "list:")
}
