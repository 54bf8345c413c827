package ports

import (
	"context"

	"github.com/jsamuelsen11/story-editor/internal/domain/story"
)

// StoryService defines the service port for story editing operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type StoryService interface {
	// ListStories returns all stories.
	ListStories(ctx context.Context) ([]story.Story, error)

	// GetStory returns a single story by ID.
	// Returns domain.ErrNotFound if the story does not exist.
	GetStory(ctx context.Context, id string) (*story.Story, error)

	// CreateStory validates and stores a new story, returning it with
	// server-assigned fields (ID, Version, timestamps).
	// Returns domain.ErrValidation if the story fails validation.
	CreateStory(ctx context.Context, s *story.Story) (*story.Story, error)

	// DeleteStory removes a story.
	// Returns domain.ErrNotFound if the story does not exist.
	DeleteStory(ctx context.Context, id string) error

	// SetSelection replaces the story's selection with elementIDs, all of
	// which must be on the current page.
	// Returns domain.ErrValidation for ids not on the current page.
	SetSelection(ctx context.Context, id string, elementIDs []string) (*MutationResult, error)

	// SetCurrentPage switches the active page and clears the selection.
	// Returns domain.ErrValidation for an unknown page.
	SetCurrentPage(ctx context.Context, id, pageID string) (*MutationResult, error)

	// DeleteElements removes the target elements from the story's current
	// page. Unknown ids are ignored; when nothing is removed the stored
	// story is returned untouched and nothing is written.
	// Returns domain.ErrConflict if the story's current page is missing or
	// the story was modified concurrently.
	DeleteElements(ctx context.Context, id string, target story.Target) (*MutationResult, error)

	// BulkDeleteElements applies DeleteElements to several stories
	// concurrently. Uses partial success semantics: each deletion succeeds
	// or fails independently and failures are collected in
	// BulkDeleteResult.Errors. Returns a hard error only for request-level
	// failures (validation).
	BulkDeleteElements(ctx context.Context, deletions []StoryDeletion) (*BulkDeleteResult, error)
}

// MutationResult carries the story after a mutation together with what
// changed. When Change.Any() is false, Story is the stored story as read.
type MutationResult struct {
	Story  *story.Story
	Change story.Change
}

// StoryDeletion pairs a story ID with the elements to delete from it.
type StoryDeletion struct {
	StoryID string
	Target  story.Target
}

// BulkDeleteError records a single failed deletion within a bulk operation.
type BulkDeleteError struct {
	StoryID string
	Err     error
}

// BulkDeleteResult holds the outcomes of a bulk deletion.
// Results contains successful deletions (changed or not) in request order;
// Errors contains per-story failures.
type BulkDeleteResult struct {
	Results []MutationResult
	Errors  []BulkDeleteError
}
