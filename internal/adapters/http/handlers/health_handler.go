package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/story-editor/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusDegraded = "degraded"
	statusNotReady = "not_ready"
)

// HealthResponse is the body of the readiness endpoint.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthHandler handles liveness and readiness HTTP endpoints.
type HealthHandler struct {
	registry ports.HealthRegistry
	critical map[string]bool
}

// NewHealthHandler creates a HealthHandler. Failing checks named in
// critical make the service not ready; any other failing check only
// degrades it. With no critical names every check is critical.
func NewHealthHandler(registry ports.HealthRegistry, critical ...string) *HealthHandler {
	h := &HealthHandler{registry: registry}
	if len(critical) > 0 {
		h.critical = make(map[string]bool, len(critical))
		for _, name := range critical {
			h.critical[name] = true
		}
	}
	return h
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready. Returns 503 when a critical check
// fails, and 200 otherwise with status "degraded" if a non-critical check
// fails.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	resp := HealthResponse{Status: statusReady, Checks: make(map[string]string, len(results))}
	code := http.StatusOK
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = err.Error()

		if h.isCritical(name) {
			resp.Status = statusNotReady
			code = http.StatusServiceUnavailable
		} else if resp.Status == statusReady {
			resp.Status = statusDegraded
		}
	}

	writeJSON(w, r, code, resp)
}

func (h *HealthHandler) isCritical(name string) bool {
	return h.critical == nil || h.critical[name]
}
