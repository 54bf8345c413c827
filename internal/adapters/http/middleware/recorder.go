// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The server installs them in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → AppContext → Handler
//
// AppContext runs inside Timeout so that the unit of work it creates
// carries the request deadline into every repository read.
package middleware

import "net/http"

// statusRecorder wraps an http.ResponseWriter and remembers the status
// code and body size the handler produced.
type statusRecorder struct {
	http.ResponseWriter
	status  int
	size    int64
	written bool
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	if sr, ok := w.(*statusRecorder); ok {
		return sr
	}
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

func (sr *statusRecorder) WriteHeader(code int) {
	if sr.written {
		return
	}
	sr.status = code
	sr.written = true
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	sr.written = true
	n, err := sr.ResponseWriter.Write(b)
	sr.size += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (sr *statusRecorder) Unwrap() http.ResponseWriter {
	return sr.ResponseWriter
}
