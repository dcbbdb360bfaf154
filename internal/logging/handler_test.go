package logging

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rackline/rackline-go/internal/model"
	"github.com/rackline/rackline-go/internal/store"
)

// discardHandler is a slog.Handler that discards all logs.
type discardHandler struct{}

func (h discardHandler) Enabled(context.Context, slog.Level) bool  { return true }
func (h discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return h }
func (h discardHandler) WithGroup(string) slog.Handler             { return h }

func TestActivityLogHandler_Handle_ErrorLevel(t *testing.T) {
	st := store.New()
	logger := slog.New(NewActivityLogHandler(discardHandler{}, st))

	logger.Error("order number generation failed", "order_number", "RL-1")

	entries := st.ListActivityLogs()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Level != model.ActivityLevelError {
		t.Errorf("Level = %q, want %q", entries[0].Level, model.ActivityLevelError)
	}
	if entries[0].Action != "order number generation failed" {
		t.Errorf("Action = %q", entries[0].Action)
	}
}

func TestActivityLogHandler_Handle_WarnLevel(t *testing.T) {
	st := store.New()
	logger := slog.New(NewActivityLogHandler(discardHandler{}, st))

	logger.Warn("slow catalog search", "duration_ms", 5000)

	entries := st.ListActivityLogs()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Level != model.ActivityLevelWarning {
		t.Errorf("Level = %q, want %q", entries[0].Level, model.ActivityLevelWarning)
	}
}

func TestActivityLogHandler_Handle_InfoLevel_NotCaptured(t *testing.T) {
	st := store.New()
	logger := slog.New(NewActivityLogHandler(discardHandler{}, st))

	logger.Info("server started", "port", 8080)
	logger.Debug("processing request", "request_id", "abc123")

	if got := len(st.ListActivityLogs()); got != 0 {
		t.Errorf("expected 0 entries below WARN, got %d", got)
	}
}

func TestActivityLogHandler_Handle_CustomLevel(t *testing.T) {
	st := store.New()
	handler := NewActivityLogHandlerWithLevel(discardHandler{}, st, slog.LevelInfo)
	logger := slog.New(handler)

	logger.Info("server started", "port", 8080)

	if got := len(st.ListActivityLogs()); got != 1 {
		t.Errorf("expected 1 entry with custom INFO level, got %d", got)
	}
}

func TestActivityLogHandler_DetailsExtraction(t *testing.T) {
	st := store.New()
	logger := slog.New(NewActivityLogHandler(discardHandler{}, st))

	logger.Error("request failed",
		"status_code", 500,
		"path", "/api/equipment",
	)

	entries := st.ListActivityLogs()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	details := entries[0].Details
	if !strings.Contains(details, "status_code") || !strings.Contains(details, "/api/equipment") {
		t.Errorf("Details missing attributes: %s", details)
	}
}

func TestActivityLogHandler_WithAttrsAndGroup(t *testing.T) {
	st := store.New()
	handler := NewActivityLogHandler(discardHandler{}, st)

	logger := slog.New(handler.WithAttrs([]slog.Attr{slog.String("service", "api")}).WithGroup("request"))
	logger.Error("request error", "id", "abc123")

	entries := st.ListActivityLogs()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Action != "request error" {
		t.Errorf("Action = %q", entries[0].Action)
	}
}

func TestActivityLogHandler_MultipleRecords(t *testing.T) {
	st := store.New()
	logger := slog.New(NewActivityLogHandler(discardHandler{}, st))

	logger.Error("error 1")
	logger.Warn("warning 1")
	logger.Error("error 2")
	logger.Info("info 1") // Should not be captured

	if got := len(st.ListActivityLogs()); got != 3 {
		t.Errorf("expected 3 entries, got %d", got)
	}
}

func TestEscapeJSON(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{`hello`, `hello`},
		{`hello "world"`, `hello \"world\"`},
		{`path\to\file`, `path\\to\\file`},
		{"line1\nline2", `line1\nline2`},
		{"col1\tcol2", `col1\tcol2`},
		{"return\rhere", `return\rhere`},
	}

	for _, tc := range testCases {
		result := escapeJSON(tc.input)
		if result != tc.expected {
			t.Errorf("escapeJSON(%q) = %q, want %q", tc.input, result, tc.expected)
		}
	}
}

func TestSlogLevelToActivityLevel(t *testing.T) {
	testCases := []struct {
		level    slog.Level
		expected string
	}{
		{slog.LevelDebug, model.ActivityLevelInfo},
		{slog.LevelInfo, model.ActivityLevelInfo},
		{slog.LevelWarn, model.ActivityLevelWarning},
		{slog.LevelError, model.ActivityLevelError},
		{slog.LevelError + 4, model.ActivityLevelError},
	}

	for _, tc := range testCases {
		if got := slogLevelToActivityLevel(tc.level); got != tc.expected {
			t.Errorf("slogLevelToActivityLevel(%v) = %q, want %q", tc.level, got, tc.expected)
		}
	}
}
