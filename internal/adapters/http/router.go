// Package http is the inbound HTTP adapter: routing and server lifecycle.
package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/story-editor/internal/adapters/http/dto"
	"github.com/jsamuelsen11/story-editor/internal/adapters/http/handlers"
)

// NewRouter registers the health and story routes. Middleware wraps every
// route, including the not-found and method-not-allowed responses, in the
// order given.
func NewRouter(
	storyHandler *handlers.StoryHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middlewares...)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusNotFound,
			fmt.Sprintf("no route for %s %s", req.Method, req.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		dto.WriteProblem(w, req, http.StatusMethodNotAllowed,
			fmt.Sprintf("method %s not allowed on %s", req.Method, req.URL.Path))
	})

	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/stories", storyHandler.ListStories)
		r.Post("/stories", storyHandler.CreateStory)
		r.Get("/stories/{id}", storyHandler.GetStory)
		r.Delete("/stories/{id}", storyHandler.DeleteStory)

		// Editor state mutations.
		r.Put("/stories/{id}/selection", storyHandler.SetSelection)
		r.Put("/stories/{id}/current-page", storyHandler.SetCurrentPage)
		r.Post("/stories/{id}/elements/delete", storyHandler.DeleteElements)

		// Static "elements" outranks {id}, so this never reaches a story route.
		r.Post("/stories/elements/delete", storyHandler.BulkDeleteElements)
	})

	return r
}
