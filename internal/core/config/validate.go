package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/realprogrammersusevim/canvas-todo/internal/core/things"
)

// ValidateDeep performs comprehensive validation of the configuration
// including tag names and file accessibility. The configPath argument
// specifies the config file location to validate (empty string skips the
// config file check). This calls Validate() first for basic structural
// validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validateTags(),
	)
}

// validateFileAccess checks config file, data directory, ledger, and opener.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("opener", c.Opener, executableExists),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		criterio.Run("ledger.path", c.LedgerFile(), isFileOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// validateTags checks that configured tags survive the comma-joined tags
// parameter of the Things URL.
func (c *Config) validateTags() error {
	var errs criterio.FieldErrorsBuilder
	for i, tag := range c.Things.Tags {
		if strings.Contains(tag, ",") {
			errs = errs.Append(fmt.Sprintf("things.tags[%d]", i), fmt.Errorf("tag %q cannot contain a comma", tag))
		}
		if tag == things.SentinelTag {
			errs = errs.Append(fmt.Sprintf("things.tags[%d]", i), fmt.Errorf("tag %q is always added", tag))
		}
	}
	return errs.ToError()
}

// executableExists validates that the first word of an opener command is on
// PATH.
func executableExists(command string) error {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return nil
	}
	if _, err := exec.LookPath(fields[0]); err != nil {
		return fmt.Errorf("executable not found: %s", fields[0])
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

// isFileOrNotExist validates that a path is a regular file or doesn't exist.
func isFileOrNotExist(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		if dir := filepath.Dir(path); dir != "." {
			return isDirectoryOrNotExist(dir)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", path)
	}
	return nil
}
