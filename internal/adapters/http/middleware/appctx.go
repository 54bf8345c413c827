package middleware

import (
	"log/slog"
	"net/http"

	appctx "github.com/jsamuelsen11/story-editor/internal/app/context"
	"github.com/jsamuelsen11/story-editor/internal/platform/logging"
)

// AppContext gives every request its own unit of work, reachable through
// appctx.FromContext. Actions a handler staged but never committed are
// dropped with a warning once the handler returns.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rc := appctx.New(r.Context())
			next.ServeHTTP(w, r.WithContext(appctx.WithRequestContext(r.Context(), rc)))

			if n := rc.Pending(); n > 0 && !rc.Committed() {
				logging.FromContext(r.Context()).WarnContext(r.Context(), "discarding uncommitted actions",
					slog.Int("pending", n),
				)
			}
		})
	}
}
