package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/story-editor/internal/platform/logging"
)

const redacted = "[REDACTED]"

// Logging stores a request-scoped logger, tagged with the request and
// correlation ids, in the context and logs one line when the request
// completes. 5xx responses log at error level and 4xx at warn.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			if child.Enabled(ctx, slog.LevelDebug) {
				child.DebugContext(ctx, "request received",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					headerGroup(r.Header),
				)
			}

			sr := newStatusRecorder(w)
			next.ServeHTTP(sr, r.WithContext(ctx))

			child.Log(ctx, levelForStatus(sr.status), "request completed",
				slog.String("method", r.Method),
				slog.String("route", routePattern(r)),
				slog.String("path", r.URL.Path),
				slog.Int("status", sr.status),
				slog.Int64("bytes", sr.size),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

func levelForStatus(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// headerGroup renders request headers as a log group, masking the values of
// logging.SensitiveHeaders.
func headerGroup(h http.Header) slog.Attr {
	attrs := make([]any, 0, len(h))
	for name, values := range h {
		value := strings.Join(values, ", ")
		if logging.SensitiveHeaders[strings.ToLower(name)] {
			value = redacted
		}
		attrs = append(attrs, slog.String(name, value))
	}
	return slog.Group("headers", attrs...)
}

// routePattern returns the chi route template that matched r, such as
// "/api/v1/stories/{id}", or the raw path when routing has not happened.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return r.URL.Path
}
