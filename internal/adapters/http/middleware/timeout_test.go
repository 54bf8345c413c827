package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jsamuelsen11/story-editor/internal/adapters/http/middleware"
)

var errBoom = errors.New("boom")

func TestTimeout_FastHandlerPassesThrough(t *testing.T) {
	t.Parallel()

	h := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Deadline(); !ok {
			t.Error("handler context has no deadline")
		}
		w.Header().Set("Location", "/api/v1/stories/s1")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"s1"}`))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/stories", http.NoBody))

	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if got := rec.Header().Get("Location"); got != "/api/v1/stories/s1" {
		t.Errorf("Location = %q", got)
	}
	if rec.Body.String() != `{"id":"s1"}` {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestTimeout_ImplicitOK(t *testing.T) {
	t.Parallel()

	h := middleware.Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stories", http.NoBody))

	if rec.Code != http.StatusOK || rec.Body.String() != "[]" {
		t.Errorf("response = %d %q, want 200 \"[]\"", rec.Code, rec.Body.String())
	}
}

func TestTimeout_SlowHandler(t *testing.T) {
	t.Parallel()

	lateWrite := make(chan error, 1)
	h := middleware.Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
		// Give the middleware time to answer before writing.
		time.Sleep(20 * time.Millisecond)
		_, err := w.Write([]byte("too late"))
		lateWrite <- err
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stories/s1", http.NoBody))

	if rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("status = %d, want 504", rec.Code)
	}
	p := decodeProblem(t, rec.Body)
	if p.Status != http.StatusGatewayTimeout || p.Instance != "/api/v1/stories/s1" {
		t.Errorf("problem = %+v", p)
	}

	select {
	case err := <-lateWrite:
		if !errors.Is(err, http.ErrHandlerTimeout) {
			t.Errorf("late Write() error = %v, want http.ErrHandlerTimeout", err)
		}
	case <-time.After(time.Second):
		t.Fatal("handler never finished")
	}
}

func TestTimeout_PanicReachesRecovery(t *testing.T) {
	t.Parallel()

	h := middleware.Recovery(discardLogger())(middleware.Timeout(time.Second)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(errBoom)
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stories", http.NoBody))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}
