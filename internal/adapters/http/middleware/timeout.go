package middleware

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/story-editor/internal/adapters/http/dto"
)

// Timeout bounds each request by d. The handler runs on its own goroutine
// against a buffered writer and with a context carrying the deadline. When
// the deadline passes first the client gets a 504 problem response and any
// later handler writes fail with http.ErrHandlerTimeout. A handler panic is
// re-raised on the serving goroutine so Recovery still sees it.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			r = r.WithContext(ctx)

			tw := &timeoutWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(tw, r)
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.flushTo(w)
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()
				tw.timedOut = true
				dto.WriteProblem(w, r, http.StatusGatewayTimeout,
					fmt.Sprintf("request did not complete within %s", d))
			}
		})
	}
}

// timeoutWriter buffers the handler's response until Timeout decides who
// owns the real writer.
type timeoutWriter struct {
	mu       sync.Mutex
	header   http.Header
	buf      []byte
	status   int
	timedOut bool
}

func (tw *timeoutWriter) Header() http.Header {
	return tw.header
}

func (tw *timeoutWriter) Write(b []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if tw.status == 0 {
		tw.status = http.StatusOK
	}
	tw.buf = append(tw.buf, b...)
	return len(b), nil
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.timedOut || tw.status != 0 {
		return
	}
	tw.status = code
}

// flushTo copies the buffered response to w. Callers hold tw.mu.
func (tw *timeoutWriter) flushTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), tw.header)
	if tw.status != 0 {
		w.WriteHeader(tw.status)
	}
	if len(tw.buf) > 0 {
		_, _ = w.Write(tw.buf)
	}
}
