// Package logging provides a custom slog handler that integrates with the
// activity log. It forwards logs at WARN level and above to the store-backed
// activity log for auditing.
package logging

import (
	"context"
	"log/slog"
	"strings"

	"github.com/rackline/rackline-go/internal/model"
	"github.com/rackline/rackline-go/internal/store"
)

// ActivityLogHandler is a slog.Handler that wraps another handler and also
// writes WARN and ERROR level logs to the activity log.
type ActivityLogHandler struct {
	inner slog.Handler
	store *store.Store
	level slog.Level // Minimum level to forward to the activity log (default: WARN)
}

// NewActivityLogHandler creates a new ActivityLogHandler that wraps the given
// handler. Logs at WARN level and above will be written to both the wrapped
// handler and the activity log.
func NewActivityLogHandler(inner slog.Handler, st *store.Store) *ActivityLogHandler {
	return &ActivityLogHandler{
		inner: inner,
		store: st,
		level: slog.LevelWarn,
	}
}

// NewActivityLogHandlerWithLevel creates a new ActivityLogHandler with a custom minimum level.
func NewActivityLogHandlerWithLevel(inner slog.Handler, st *store.Store, level slog.Level) *ActivityLogHandler {
	return &ActivityLogHandler{
		inner: inner,
		store: st,
		level: level,
	}
}

// Enabled implements slog.Handler.
func (h *ActivityLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

// Handle implements slog.Handler.
func (h *ActivityLogHandler) Handle(ctx context.Context, r slog.Record) error {
	// Always forward to the inner handler first
	if err := h.inner.Handle(ctx, r); err != nil {
		return err
	}

	if r.Level >= h.level {
		h.writeToActivityLog(r)
	}

	return nil
}

// WithAttrs implements slog.Handler.
func (h *ActivityLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &ActivityLogHandler{
		inner: h.inner.WithAttrs(attrs),
		store: h.store,
		level: h.level,
	}
}

// WithGroup implements slog.Handler.
func (h *ActivityLogHandler) WithGroup(name string) slog.Handler {
	return &ActivityLogHandler{
		inner: h.inner.WithGroup(name),
		store: h.store,
		level: h.level,
	}
}

func (h *ActivityLogHandler) writeToActivityLog(r slog.Record) {
	h.store.CreateActivityLog(store.CreateActivityLogParams{
		Level:   slogLevelToActivityLevel(r.Level),
		Action:  r.Message,
		Details: extractDetails(r),
	})
}

// slogLevelToActivityLevel converts a slog.Level to an activity log level.
func slogLevelToActivityLevel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return model.ActivityLevelError
	case level >= slog.LevelWarn:
		return model.ActivityLevelWarning
	default:
		return model.ActivityLevelInfo
	}
}

// extractDetails collects all log attributes into a JSON string.
func extractDetails(r slog.Record) string {
	if r.NumAttrs() == 0 {
		return "{}"
	}

	// Build a simple JSON object from attributes
	var sb strings.Builder
	sb.WriteString("{")
	first := true

	r.Attrs(func(a slog.Attr) bool {
		if !first {
			sb.WriteString(",")
		}
		first = false
		sb.WriteString(`"`)
		sb.WriteString(escapeJSON(a.Key))
		sb.WriteString(`":"`)
		sb.WriteString(escapeJSON(a.Value.String()))
		sb.WriteString(`"`)
		return true
	})

	sb.WriteString("}")
	return sb.String()
}

// escapeJSON escapes special characters in a string for JSON.
func escapeJSON(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
