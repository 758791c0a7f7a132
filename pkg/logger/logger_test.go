package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
)

func TestFromContextAddsKnownKeys(t *testing.T) {
	var buf bytes.Buffer
	prev := Default()
	SetDefault(New("debug", "json", &buf))
	defer SetDefault(prev)

	ctx := WithContext(context.Background(), RequestIDKey, "req-1")
	ctx = WithContext(ctx, TraceIDKey, "trace-1")

	Error(ctx, "provider failed", errors.New("timeout"), "provider", "gemini")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not json: %v (%s)", err, buf.String())
	}
	if entry["request_id"] != "req-1" || entry["trace_id"] != "trace-1" {
		t.Errorf("context keys missing: %v", entry)
	}
	if entry["error"] != "timeout" || entry["provider"] != "gemini" {
		t.Errorf("attributes missing: %v", entry)
	}
	if _, ok := entry["span_id"]; ok {
		t.Errorf("unset span_id should not be logged: %v", entry)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestTextFormatRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New("warn", "text", &buf)
	l.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}
	l.Warn("kept")
	if !bytes.Contains(buf.Bytes(), []byte("kept")) {
		t.Errorf("warn line missing: %q", buf.String())
	}
}
