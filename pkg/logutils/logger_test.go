package logutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "canvas-todo.log")

	l, closer, err := New("info", file)
	require.NoError(t, err)
	l.Info().Msg("first")
	l.Debug().Msg("hidden")
	closer()

	l, closer, err = New("info", file)
	require.NoError(t, err)
	l.Info().Msg("second")
	closer()

	data, err := os.ReadFile(file)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"message":"first"`)
	assert.Contains(t, lines[1], `"message":"second"`)
}

func TestNew_Level(t *testing.T) {
	l, closer, err := New("warn", "")
	require.NoError(t, err)
	defer closer()

	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New("loud", "")
	require.ErrorContains(t, err, "parse log level")
}
