package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/story-editor/internal/domain"
	"github.com/jsamuelsen11/story-editor/internal/domain/story"
)

const (
	msgRequired     = "is required"
	msgMustNotEmpty = "must not be empty"
	msgOneTarget    = "exactly one of element_ids or selection must be given"
)

// ElementBody is an element as sent and returned over the API.
type ElementBody struct {
	ID    string         `json:"id"`
	Type  string         `json:"type,omitempty"`
	Attrs map[string]any `json:"attrs,omitempty"`
}

// PageBody is a page as sent and returned over the API.
type PageBody struct {
	ID       string         `json:"id"`
	Attrs    map[string]any `json:"attrs,omitempty"`
	Elements []ElementBody  `json:"elements"`
}

// CreateStoryRequest represents the JSON body for creating a story.
// Current defaults to the first page.
type CreateStoryRequest struct {
	Title     string     `json:"title"`
	Pages     []PageBody `json:"pages"`
	Current   string     `json:"current,omitempty"`
	Selection []string   `json:"selection,omitempty"`
}

// Validate checks the fields the API requires. Structural rules (unique
// ids, a current page that exists) are enforced by the domain.
func (r *CreateStoryRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		fields["title"] = msgRequired
	}
	if len(r.Pages) == 0 {
		fields["pages"] = msgMustNotEmpty
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// ToStory maps the request onto a new domain story.
func (r *CreateStoryRequest) ToStory() *story.Story {
	pages := make([]story.Page, len(r.Pages))
	for i, p := range r.Pages {
		elements := make([]story.Element, len(p.Elements))
		for j, el := range p.Elements {
			elements[j] = story.Element{ID: el.ID, Type: el.Type, Attrs: el.Attrs}
		}
		pages[i] = story.Page{ID: p.ID, Attrs: p.Attrs, Elements: elements}
	}
	return &story.Story{
		Title:     r.Title,
		Pages:     pages,
		Current:   r.Current,
		Selection: r.Selection,
	}
}

// SetSelectionRequest represents the JSON body for replacing the selection.
// An empty list clears it.
type SetSelectionRequest struct {
	ElementIDs []string `json:"element_ids"`
}

// Validate requires element_ids to be present.
func (r *SetSelectionRequest) Validate() error {
	if r.ElementIDs == nil {
		return domain.Invalid("element_ids", msgRequired)
	}
	return nil
}

// SetCurrentPageRequest represents the JSON body for switching pages.
type SetCurrentPageRequest struct {
	PageID string `json:"page_id"`
}

// Validate requires page_id.
func (r *SetCurrentPageRequest) Validate() error {
	if strings.TrimSpace(r.PageID) == "" {
		return domain.Invalid("page_id", msgRequired)
	}
	return nil
}

// DeleteElementsRequest represents the JSON body for deleting elements from
// a story's current page. Either ElementIDs or Selection names the target.
type DeleteElementsRequest struct {
	ElementIDs []string `json:"element_ids,omitempty"`
	Selection  bool     `json:"selection,omitempty"`
}

// Validate checks that exactly one target is given. An empty element_ids
// list is a valid target that deletes nothing.
func (r *DeleteElementsRequest) Validate() error {
	if (r.ElementIDs != nil) == r.Selection {
		return domain.Invalid("element_ids", msgOneTarget)
	}
	return nil
}

// Target converts the request to a deletion target.
func (r *DeleteElementsRequest) Target() story.Target {
	if r.Selection {
		return story.Selected()
	}
	return story.Elements(r.ElementIDs...)
}

// BulkDeletionItem is one story's deletion within a bulk request.
type BulkDeletionItem struct {
	StoryID string `json:"story_id"`
	DeleteElementsRequest
}

// BulkDeleteElementsRequest represents the JSON body for deleting elements
// from several stories at once.
type BulkDeleteElementsRequest struct {
	Deletions []BulkDeletionItem `json:"deletions"`
}

// Validate checks every item. The per-request item limit is enforced by
// the service, which owns that setting.
func (r *BulkDeleteElementsRequest) Validate() error {
	fields := make(map[string]string)

	if len(r.Deletions) == 0 {
		fields["deletions"] = msgMustNotEmpty
	}
	for i := range r.Deletions {
		item := &r.Deletions[i]
		if strings.TrimSpace(item.StoryID) == "" {
			fields[fmt.Sprintf("deletions[%d].story_id", i)] = msgRequired
		}
		if err := item.DeleteElementsRequest.Validate(); err != nil {
			fields[fmt.Sprintf("deletions[%d].element_ids", i)] = msgOneTarget
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
