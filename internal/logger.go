package internal

import (
	"io"
	"log/slog"
)

// NewLogger builds the process logger from cfg. Development gets readable
// text with source locations; everything else gets JSON for log shipping.
func NewLogger(w io.Writer, cfg *Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.LogLevel),
		AddSource: cfg.IsDevelopment(),
	}

	var handler slog.Handler
	if cfg.IsDevelopment() {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("service", "chatform"),
		slog.String("env", cfg.Env),
	)
}

// parseLevel maps a LOG_LEVEL value to a slog level. Unknown values are info;
// NewConfig has already rejected them.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
