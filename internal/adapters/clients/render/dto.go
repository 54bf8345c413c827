package render

import "github.com/jsamuelsen11/story-editor/internal/ports"

// invalidationRequest is the renderer's request body for
// POST /api/v1/render-invalidations.
type invalidationRequest struct {
	StoryID          string   `json:"story_id"`
	Version          int64    `json:"version"`
	PagesChanged     bool     `json:"pages_changed"`
	SelectionChanged bool     `json:"selection_changed"`
	CurrentChanged   bool     `json:"current_changed,omitempty"`
	DeletedElements  []string `json:"deleted_elements,omitempty"`
}

func toInvalidation(c ports.StoryChange) invalidationRequest {
	return invalidationRequest{
		StoryID:          c.StoryID,
		Version:          c.Version,
		PagesChanged:     c.PagesChanged,
		SelectionChanged: c.SelectionChanged,
		CurrentChanged:   c.CurrentChanged,
		DeletedElements:  c.DeletedElements,
	}
}
