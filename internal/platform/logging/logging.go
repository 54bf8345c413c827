// Package logging builds the service's slog loggers and carries them through
// contexts.
//
//	logger := logging.New("info", "json", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger)
//
// Application services log failures with the operation, the entity ids and
// the full error chain:
//
//	logging.FromContext(ctx).ErrorContext(ctx, "failed to save story",
//	    slog.String("operation", "DeleteElements"),
//	    slog.String("story_id", id),
//	    slog.Any("error", err),
//	)
//
// Loggers installed by the HTTP middleware already carry request_id and
// correlation_id.
package logging

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

// New returns a logger writing to w. Level is one of debug, info, warn or
// error (any case; anything else means info). Format "text" selects the text
// handler, everything else JSON. Debug loggers also record the call site.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}

	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// With stores a child of ctx's logger that carries the given attributes.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}
