package middleware_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/story-editor/internal/adapters/http/dto"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// logLines decodes one JSON object per log line.
func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var lines []map[string]any
	dec := json.NewDecoder(buf)
	for {
		var line map[string]any
		if err := dec.Decode(&line); err == io.EOF {
			return lines
		} else if err != nil {
			t.Fatalf("decoding log line: %v", err)
		}
		lines = append(lines, line)
	}
}

// findLog returns the first log line with the given message.
func findLog(t *testing.T, lines []map[string]any, msg string) map[string]any {
	t.Helper()

	for _, l := range lines {
		if l["msg"] == msg {
			return l
		}
	}
	t.Fatalf("no %q log line in %v", msg, lines)
	return nil
}

// routed mounts h under a chi router at pattern with mw installed, the way
// the server does, so route patterns are available to the middleware.
func routed(method, pattern string, mw func(http.Handler) http.Handler, h http.HandlerFunc) http.Handler {
	r := chi.NewRouter()
	r.Use(mw)
	r.Method(method, pattern, h)
	return r
}

func decodeProblem(t *testing.T, body io.Reader) dto.ErrorResponse {
	t.Helper()

	var p dto.ErrorResponse
	if err := json.NewDecoder(body).Decode(&p); err != nil {
		t.Fatalf("decoding problem body: %v", err)
	}
	return p
}
