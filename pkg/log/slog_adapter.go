package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes query events to an slog.Logger.
// Useful for development when you want to see queries in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level
// (Warn level for not-found queries).
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("request_id", event.RequestID),
		slog.String("path", event.Path),
		slog.Int("status", event.Status),
		slog.Duration("duration", event.Duration),
	}
	if event.Attribute != "" {
		attrs = append(attrs, slog.String("attribute", event.Attribute))
	}
	if event.RemoteAddr != "" {
		attrs = append(attrs, slog.String("remote", event.RemoteAddr))
	}
	if event.BodyBytes > 0 {
		attrs = append(attrs, slog.Int("body_bytes", event.BodyBytes))
	}

	level := slog.LevelDebug
	if event.NotFound() {
		level = slog.LevelWarn
	}
	a.logger.LogAttrs(context.Background(), level, "oscquery request", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
