// Package handlers provides HTTP request handlers for the service's API endpoints.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/story-editor/internal/adapters/http/dto"
	"github.com/jsamuelsen11/story-editor/internal/ports"
)

// StoryHandler handles HTTP requests for stories and their editing
// operations.
type StoryHandler struct {
	svc ports.StoryService
}

// NewStoryHandler creates a new StoryHandler with the given service port.
func NewStoryHandler(svc ports.StoryService) *StoryHandler {
	return &StoryHandler{svc: svc}
}

// ListStories handles GET /api/v1/stories.
func (h *StoryHandler) ListStories(w http.ResponseWriter, r *http.Request) {
	stories, err := h.svc.ListStories(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToStoryListResponse(stories))
}

// CreateStory handles POST /api/v1/stories.
func (h *StoryHandler) CreateStory(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStoryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateStory(r.Context(), req.ToStory())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/stories/"+created.ID)
	writeJSON(w, r, http.StatusCreated, dto.ToStoryResponse(created))
}

// GetStory handles GET /api/v1/stories/{id}.
func (h *StoryHandler) GetStory(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	s, err := h.svc.GetStory(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToStoryResponse(s))
}

// DeleteStory handles DELETE /api/v1/stories/{id}.
func (h *StoryHandler) DeleteStory(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.svc.DeleteStory(r.Context(), id); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetSelection handles PUT /api/v1/stories/{id}/selection.
func (h *StoryHandler) SetSelection(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SetSelectionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.SetSelection(r.Context(), id, req.ElementIDs)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToMutationResponse(res))
}

// SetCurrentPage handles PUT /api/v1/stories/{id}/current-page.
func (h *StoryHandler) SetCurrentPage(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.SetCurrentPageRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.SetCurrentPage(r.Context(), id, req.PageID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToMutationResponse(res))
}

// DeleteElements handles POST /api/v1/stories/{id}/elements/delete.
//
// A deletion that removes nothing still answers 200 with the stored story
// and all changed flags false.
func (h *StoryHandler) DeleteElements(w http.ResponseWriter, r *http.Request) {
	id, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.DeleteElementsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	res, err := h.svc.DeleteElements(r.Context(), id, req.Target())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToMutationResponse(res))
}

// BulkDeleteElements handles POST /api/v1/stories/elements/delete.
//
// Answers 200 when every deletion succeeded and 207 Multi-Status when some
// failed; the body lists per-story results and errors either way.
func (h *StoryHandler) BulkDeleteElements(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkDeleteElementsRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	deletions := make([]ports.StoryDeletion, len(req.Deletions))
	for i := range req.Deletions {
		deletions[i] = ports.StoryDeletion{
			StoryID: req.Deletions[i].StoryID,
			Target:  req.Deletions[i].Target(),
		}
	}

	result, err := h.svc.BulkDeleteElements(r.Context(), deletions)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	status := http.StatusOK
	if len(result.Errors) > 0 {
		status = http.StatusMultiStatus
	}
	writeJSON(w, r, status, dto.ToBulkDeleteResponse(result))
}
