// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/story-editor/internal/domain/story"
	"github.com/jsamuelsen11/story-editor/internal/ports"
)

// StoryResponse represents a single story in HTTP responses.
type StoryResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Version   int64      `json:"version"`
	Pages     []PageBody `json:"pages"`
	Current   string     `json:"current"`
	Selection []string   `json:"selection"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
}

// StoryListResponse represents a list of stories in HTTP responses.
type StoryListResponse struct {
	Stories []StoryResponse `json:"stories"`
	Count   int             `json:"count"`
}

// ChangedFlags reports which parts of a story a mutation replaced.
type ChangedFlags struct {
	Pages     bool `json:"pages"`
	Selection bool `json:"selection"`
	Current   bool `json:"current"`
}

// MutationResponse is the story after a mutation plus what changed.
type MutationResponse struct {
	Story   StoryResponse `json:"story"`
	Changed ChangedFlags  `json:"changed"`
	Deleted []string      `json:"deleted"`
}

// BulkDeleteResponse represents the result of a bulk element deletion.
// It includes both successful deletions and per-story errors.
type BulkDeleteResponse struct {
	Results   []MutationResponse `json:"results"`
	Errors    []BulkErrorItem    `json:"errors"`
	Total     int                `json:"total"`
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
}

// BulkErrorItem represents a single failed story within a bulk operation.
type BulkErrorItem struct {
	StoryID string `json:"story_id"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// ToStoryResponse converts a domain Story to an HTTP response DTO.
func ToStoryResponse(s *story.Story) StoryResponse {
	pages := make([]PageBody, len(s.Pages))
	for i := range s.Pages {
		p := &s.Pages[i]
		elements := make([]ElementBody, len(p.Elements))
		for j, el := range p.Elements {
			elements[j] = ElementBody{ID: el.ID, Type: el.Type, Attrs: el.Attrs}
		}
		pages[i] = PageBody{ID: p.ID, Attrs: p.Attrs, Elements: elements}
	}

	selection := s.Selection
	if selection == nil {
		selection = []string{}
	}

	return StoryResponse{
		ID:        s.ID,
		Title:     s.Title,
		Version:   s.Version,
		Pages:     pages,
		Current:   s.Current,
		Selection: selection,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
		UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
	}
}

// ToStoryListResponse converts a slice of domain stories to an HTTP list
// response DTO.
func ToStoryListResponse(stories []story.Story) StoryListResponse {
	items := make([]StoryResponse, len(stories))
	for i := range stories {
		items[i] = ToStoryResponse(&stories[i])
	}
	return StoryListResponse{
		Stories: items,
		Count:   len(items),
	}
}

// ToMutationResponse converts a mutation result to an HTTP response DTO.
func ToMutationResponse(res *ports.MutationResult) MutationResponse {
	deleted := res.Change.Deleted
	if deleted == nil {
		deleted = []string{}
	}
	return MutationResponse{
		Story: ToStoryResponse(res.Story),
		Changed: ChangedFlags{
			Pages:     res.Change.Pages,
			Selection: res.Change.Selection,
			Current:   res.Change.Current,
		},
		Deleted: deleted,
	}
}

// ToBulkDeleteResponse converts a ports.BulkDeleteResult to an HTTP
// response DTO. Each error carries the status it would have had on its own.
func ToBulkDeleteResponse(result *ports.BulkDeleteResult) BulkDeleteResponse {
	results := make([]MutationResponse, len(result.Results))
	for i := range result.Results {
		results[i] = ToMutationResponse(&result.Results[i])
	}

	errs := make([]BulkErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BulkErrorItem{
			StoryID: e.StoryID,
			Status:  domainErrorToStatus(e.Err),
			Message: e.Err.Error(),
		}
	}

	return BulkDeleteResponse{
		Results:   results,
		Errors:    errs,
		Total:     len(results) + len(errs),
		Succeeded: len(results),
		Failed:    len(errs),
	}
}
