package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a Config with all required fields set for testing.
func validConfig(t *testing.T) *Config {
	t.Helper()
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Canvas.URL = "https://school.instructure.com"
	cfg.Canvas.Token = "token"
	return &cfg
}

func TestValidateDeep_ValidConfig(t *testing.T) {
	cfg := validConfig(t)
	cfg.Things.Tags = []string{"Canvas", "School"}

	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestValidateDeep_InvalidTags(t *testing.T) {
	cfg := validConfig(t)
	cfg.Things.Tags = []string{"a,b", "ok", "New"}

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
	assert.Contains(t, fieldErrs[0].Field, "things.tags[0]")
	assert.Contains(t, fieldErrs[0].Err.Error(), "comma")
	assert.Contains(t, fieldErrs[1].Field, "things.tags[2]")
}

func TestValidateDeep_MissingOpener(t *testing.T) {
	cfg := validConfig(t)
	cfg.Opener = "definitely-not-an-opener-12345"

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "opener", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "executable not found")
}

func TestValidateDeep_OpenerWithArguments(t *testing.T) {
	cfg := validConfig(t)
	cfg.Opener = "sh -c 'exit 0'"

	assert.NoError(t, cfg.ValidateDeep(""))
}

func TestValidateDeep_ConfigPathIsDirectory(t *testing.T) {
	cfg := validConfig(t)

	err := cfg.ValidateDeep(t.TempDir())

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "config_file", fieldErrs[0].Field)
}

func TestValidateDeep_LedgerIsDirectory(t *testing.T) {
	cfg := validConfig(t)
	cfg.Ledger.Path = t.TempDir()

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "ledger.path", fieldErrs[0].Field)
}

func TestValidateDeep_DataDirIsFile(t *testing.T) {
	cfg := validConfig(t)
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	cfg.DataDir = file
	cfg.Ledger.Path = filepath.Join(t.TempDir(), "ledger.json")

	err := cfg.ValidateDeep("")

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "data_dir", fieldErrs[0].Field)
}
