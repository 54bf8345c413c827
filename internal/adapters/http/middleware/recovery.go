package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/jsamuelsen11/story-editor/internal/adapters/http/dto"
)

// errInternalServer is what clients see after a panic; the panic value only
// reaches the log.
var errInternalServer = errors.New("internal server error")

// Recovery turns a handler panic into a logged stack trace and a 500 problem
// response. Nothing is written when the handler already started its response.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sr := newStatusRecorder(w)

			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if err, ok := v.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(v)
				}

				logger.ErrorContext(r.Context(), "panic recovered",
					slog.String("panic", fmt.Sprint(v)),
					slog.String("stack", string(debug.Stack())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
				)
				if !sr.written {
					dto.WriteErrorResponse(sr, r, errInternalServer)
				}
			}()

			next.ServeHTTP(sr, r)
		})
	}
}
