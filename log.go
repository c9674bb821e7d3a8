package altecs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
)

// HostHandler is a slog.Handler that writes records to the host console.
// Records are formatted by slog's text handler without time and level, which
// the console adds itself, and routed to the console call matching their
// level.
type HostHandler struct {
	api   CoreAPI
	level slog.Leveler
	text  slog.Handler

	// shared by handlers derived with WithAttrs and WithGroup
	mu  *sync.Mutex
	buf *bytes.Buffer
}

// NewHostHandler creates a handler forwarding records at or above level.
func NewHostHandler(api CoreAPI, level slog.Leveler) *HostHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	buf := &bytes.Buffer{}
	return &HostHandler{
		api:   api,
		level: level,
		text: slog.NewTextHandler(buf, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey) {
					return slog.Attr{}
				}
				return a
			},
		}),
		mu:  &sync.Mutex{},
		buf: buf,
	}
}

// Enabled implements slog.Handler.
func (h *HostHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *HostHandler) Handle(ctx context.Context, r slog.Record) error {
	h.mu.Lock()
	h.buf.Reset()
	err := h.text.Handle(ctx, r)
	line := strings.TrimSuffix(h.buf.String(), "\n")
	h.mu.Unlock()
	if err != nil {
		return err
	}

	switch {
	case r.Level >= slog.LevelError:
		h.api.LogError(line)
	case r.Level >= slog.LevelWarn:
		h.api.LogWarning(line)
	case r.Level >= slog.LevelInfo:
		h.api.LogInfo(line)
	default:
		h.api.LogDebug(line)
	}
	return nil
}

// WithAttrs implements slog.Handler.
func (h *HostHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.text = h.text.WithAttrs(attrs)
	return &clone
}

// WithGroup implements slog.Handler.
func (h *HostHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.text = h.text.WithGroup(name)
	return &clone
}
