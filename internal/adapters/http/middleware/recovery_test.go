package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/story-editor/internal/adapters/http/middleware"
)

func TestRecovery_PassThrough(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("ok"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stories", http.NoBody))

	if rec.Code != http.StatusAccepted || rec.Body.String() != "ok" {
		t.Errorf("response = %d %q, want 202 \"ok\"", rec.Code, rec.Body.String())
	}
}

func TestRecovery_PanicBecomesProblem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
	}{
		{name: "string", value: "selection index out of range"},
		{name: "error", value: errBoom},
		{name: "struct", value: struct{ Page int }{Page: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			h := middleware.Recovery(testLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				panic(tt.value)
			}))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/stories/s1/elements/delete", http.NoBody))

			if rec.Code != http.StatusInternalServerError {
				t.Errorf("status = %d, want 500", rec.Code)
			}
			p := decodeProblem(t, rec.Body)
			if p.Detail != "internal server error" {
				t.Errorf("detail = %q, panic value must not leak", p.Detail)
			}

			line := findLog(t, logLines(t, &buf), "panic recovered")
			if stack, _ := line["stack"].(string); !strings.Contains(stack, "goroutine") {
				t.Errorf("stack = %q, want a goroutine dump", stack)
			}
		})
	}
}

func TestRecovery_KeepsStartedResponse(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"stories":`))
		panic("encoder failed")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stories", http.NoBody))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want the handler's 200", rec.Code)
	}
	if rec.Body.String() != `{"stories":` {
		t.Errorf("body = %q, want untouched partial body", rec.Body.String())
	}
}

func TestRecovery_ReraisesAbortHandler(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if v := recover(); v != http.ErrAbortHandler {
			t.Errorf("recovered %v, want http.ErrAbortHandler", v)
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/stories", http.NoBody))
}
