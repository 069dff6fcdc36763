package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger := Component("test-component")
	logger.Info().Msg("test message")

	var logEntry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &logEntry); err != nil {
		t.Fatalf("failed to parse log: %v", err)
	}

	cmp, ok := logEntry["cmp"]
	if !ok {
		t.Fatal("expected 'cmp' key in log output")
	}

	if cmp != "test-component" {
		t.Errorf("Component() cmp = %q, want %q", cmp, "test-component")
	}

	msg, ok := logEntry["message"]
	if !ok {
		t.Fatal("expected 'message' key in log output")
	}

	if msg != "test message" {
		t.Errorf("Component() message = %q, want %q", msg, "test message")
	}
}

func TestStartRun(t *testing.T) {
	ctx, id := StartRun(context.Background(), false)

	if id == "" {
		t.Fatal("StartRun() returned empty id")
	}
	if got := GetRunID(ctx); got != id {
		t.Errorf("GetRunID() = %q, want %q", got, id)
	}

	if IsDryRun(ctx) {
		t.Error("IsDryRun() = true for a normal run")
	}

	dctx, other := StartRun(context.Background(), true)
	if other == id {
		t.Errorf("StartRun() returned duplicate id %q", id)
	}
	if !IsDryRun(dctx) {
		t.Error("IsDryRun() = false for a dry run")
	}
}
