package doctor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realprogrammersusevim/canvas-todo/internal/core/config"
	"github.com/realprogrammersusevim/canvas-todo/internal/core/ledger"
	"github.com/realprogrammersusevim/canvas-todo/internal/store/jsonfile"
)

func TestConfigCheck_Valid(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Canvas.URL = "https://school.instructure.com"
	cfg.Canvas.Token = "token"

	result := NewConfigCheck(&cfg, "").Run(context.Background())

	assert.Equal(t, "Configuration", result.Name)
	for _, item := range result.Items {
		assert.Equal(t, StatusPass, item.Status, item.Label)
	}
}

func TestConfigCheck_MissingCanvas(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()

	results := RunAll(context.Background(), []Check{NewConfigCheck(&cfg, "")})

	counts := Summarize(results)
	assert.Equal(t, 2, counts.Failed)
	assert.Equal(t, 1, counts.Fixable)

	report := NewReport(results)
	assert.False(t, report.Healthy)
	assert.Equal(t, counts, report.Summary)
}

func TestNewReport_WarningsAreHealthy(t *testing.T) {
	results := []Result{
		{Name: "a", Items: []CheckItem{pass("x", ""), warn("y", "")}},
		{Name: "b", Items: []CheckItem{{Label: "z", Status: StatusPass, Fixable: true}}},
	}

	report := NewReport(results)

	assert.True(t, report.Healthy)
	assert.Equal(t, Counts{Passed: 2, Warned: 1}, report.Summary)
}

func TestRunAll_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := RunAll(ctx, []Check{NewCanvasCheck(nil)})
	assert.Empty(t, results)
}

func TestConfigCheck_FieldErrors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Canvas.URL = "https://school.instructure.com"
	cfg.Canvas.Token = "token"
	cfg.Things.Tags = []string{"a,b"}

	result := NewConfigCheck(&cfg, "").Run(context.Background())

	require.NotEmpty(t, result.Items)
	assert.Equal(t, "things.tags[0]", result.Items[0].Label)
	assert.Equal(t, StatusFail, result.Items[0].Status)
}

func TestLedgerCheck(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	store := jsonfile.NewLedgerStore(fs, "/ledger.json")

	result := NewLedgerCheck(store, "/ledger.json").Run(ctx)
	require.Len(t, result.Items, 1)
	assert.Equal(t, StatusPass, result.Items[0].Status)
	assert.Equal(t, "0 assignment(s) imported", result.Items[0].Detail)

	require.NoError(t, store.Save(ctx, ledger.New("1", "2")))
	result = NewLedgerCheck(store, "/ledger.json").Run(ctx)
	assert.Equal(t, "2 assignment(s) imported", result.Items[0].Detail)
}

func TestLedgerCheck_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte("nope"), 0o644))
	store := jsonfile.NewLedgerStore(afero.NewOsFs(), path)

	result := NewLedgerCheck(store, path).Run(context.Background())

	require.Len(t, result.Items, 1)
	assert.Equal(t, StatusFail, result.Items[0].Status)
	assert.Contains(t, result.Items[0].Detail, "unreadable")
}

func TestCanvasCheck(t *testing.T) {
	tests := []struct {
		name   string
		whoami WhoamiFunc
		want   Status
		detail string
	}{
		{name: "not configured", want: StatusWarn, detail: "skipped"},
		{
			name:   "authenticated",
			whoami: func(context.Context) (string, error) { return "Ada Lovelace", nil },
			want:   StatusPass,
			detail: "authenticated as Ada Lovelace",
		},
		{
			name:   "rejected",
			whoami: func(context.Context) (string, error) { return "", errors.New("invalid access token") },
			want:   StatusFail,
			detail: "invalid access token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewCanvasCheck(tt.whoami).Run(context.Background())
			require.Len(t, result.Items, 1)
			assert.Equal(t, tt.want, result.Items[0].Status)
			assert.Contains(t, result.Items[0].Detail, tt.detail)
		})
	}
}
