package ports

import (
	"context"

	"github.com/jsamuelsen11/story-editor/internal/domain/story"
)

// StoryRepository defines the persistence port for stories.
// Implemented by the storage adapters (memory, sqlite); called by the
// application layer. Implementations return copies: mutating a returned
// story never affects stored state.
type StoryRepository interface {
	// Get returns the story with the given ID.
	// Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*story.Story, error)

	// List returns all stories ordered by creation time.
	List(ctx context.Context) ([]story.Story, error)

	// Create stores a new story. The story's ID must be set by the caller.
	// Returns domain.ErrConflict if a story with the same ID exists.
	Create(ctx context.Context, s *story.Story) (*story.Story, error)

	// Save replaces a stored story if its stored version equals
	// expectedVersion, and returns the stored copy with Version set to
	// expectedVersion+1. Returns domain.ErrNotFound if the story does not
	// exist and domain.ErrConflict on a version mismatch.
	Save(ctx context.Context, s *story.Story, expectedVersion int64) (*story.Story, error)

	// Delete removes a story by ID.
	// Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id string) error
}
