package commands

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/realprogrammersusevim/canvas-todo/internal/core/config"
)

const appName = "canvas-todo"

// Flags holds the global flag values shared by every command.
type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	DataDir    string

	// Config is loaded in the Before hook and available to all commands
	Config *config.Config
}

// xdgDir returns $env/canvas-todo, or ~/<fallback...>/canvas-todo when env is
// unset.
func xdgDir(env string, fallback ...string) string {
	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(append(append([]string{home}, fallback...), appName)...)
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/canvas-todo/config.yaml.
func DefaultConfigPath() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), "config.yaml")
}

// DefaultDataDir returns $XDG_DATA_HOME/canvas-todo. The import ledger lives
// here unless configured otherwise.
func DefaultDataDir() string {
	return xdgDir("XDG_DATA_HOME", ".local", "share")
}

// DefaultLogFile returns the log file under $XDG_STATE_HOME, falling back to
// ~/Library/Logs on macOS and ~/.local/state elsewhere.
func DefaultLogFile() string {
	dir := xdgDir("XDG_STATE_HOME", ".local", "state")
	if os.Getenv("XDG_STATE_HOME") == "" && runtime.GOOS == "darwin" {
		dir = xdgDir("XDG_STATE_HOME", "Library", "Logs")
	}
	return filepath.Join(dir, appName+".log")
}
