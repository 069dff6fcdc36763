package commands

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPaths_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")

	assert.Equal(t, filepath.Join("/xdg/config", "canvas-todo", "config.yaml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/xdg/data", "canvas-todo"), DefaultDataDir())
	assert.Equal(t, filepath.Join("/xdg/state", "canvas-todo", "canvas-todo.log"), DefaultLogFile())
}

func TestDefaultPaths_Home(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("HOME", "/home/student")

	assert.Equal(t, filepath.Join("/home/student", ".config", "canvas-todo", "config.yaml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/home/student", ".local", "share", "canvas-todo"), DefaultDataDir())
}

func TestDefaultLogFile_Home(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("HOME", "/home/student")

	want := filepath.Join("/home/student", ".local", "state", "canvas-todo", "canvas-todo.log")
	if runtime.GOOS == "darwin" {
		want = filepath.Join("/home/student", "Library", "Logs", "canvas-todo", "canvas-todo.log")
	}
	assert.Equal(t, want, DefaultLogFile())
}
