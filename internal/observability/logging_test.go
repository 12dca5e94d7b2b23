package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestNewLoggerAddsRequestMetadata(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewLogger(&buf, "debug", "json")

	ctx := WithRequestMetadata(context.Background(), "req-1", "/leads")
	log.InfoContext(ctx, "stored")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry["request_id"] != "req-1" || entry["route"] != "/leads" {
		t.Fatalf("missing request metadata: %v", entry)
	}
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewLogger(&buf, "warn", "text")
	log.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("expected info to be filtered, got %q", buf.String())
	}
	log.Warn("shown")
	if buf.Len() == 0 {
		t.Fatal("expected warn to be logged")
	}
}
