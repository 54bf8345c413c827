// Package memory is an in-process story repository. It is the default
// storage driver for local runs and tests.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jsamuelsen11/story-editor/internal/domain"
	"github.com/jsamuelsen11/story-editor/internal/domain/story"
	"github.com/jsamuelsen11/story-editor/internal/ports"
)

var _ ports.StoryRepository = (*Repository)(nil)

// Repository keeps stories in a map. Stories are cloned on the way in and on
// the way out so callers never alias stored state.
type Repository struct {
	mu      sync.RWMutex
	stories map[string]*story.Story
	now     func() time.Time
}

// New returns an empty repository.
func New() *Repository {
	return &Repository{
		stories: make(map[string]*story.Story),
		now:     time.Now,
	}
}

// Get implements ports.StoryRepository.
func (r *Repository) Get(_ context.Context, id string) (*story.Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.stories[id]
	if !ok {
		return nil, fmt.Errorf("story %q: %w", id, domain.ErrNotFound)
	}
	return s.Clone(), nil
}

// List implements ports.StoryRepository.
func (r *Repository) List(_ context.Context) ([]story.Story, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]story.Story, 0, len(r.stories))
	for _, s := range r.stories {
		out = append(out, *s.Clone())
	}
	slices.SortFunc(out, func(a, b story.Story) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

// Create implements ports.StoryRepository. A zero CreatedAt is stamped with
// the current time; a zero Version becomes 1.
func (r *Repository) Create(_ context.Context, s *story.Story) (*story.Story, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.stories[s.ID]; exists {
		return nil, fmt.Errorf("story %q already exists: %w", s.ID, domain.ErrConflict)
	}

	stored := s.Clone()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = r.now().UTC()
	}
	if stored.UpdatedAt.IsZero() {
		stored.UpdatedAt = stored.CreatedAt
	}
	if stored.Version == 0 {
		stored.Version = 1
	}
	r.stories[s.ID] = stored
	return stored.Clone(), nil
}

// Save implements ports.StoryRepository.
func (r *Repository) Save(_ context.Context, s *story.Story, expectedVersion int64) (*story.Story, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.stories[s.ID]
	if !ok {
		return nil, fmt.Errorf("story %q: %w", s.ID, domain.ErrNotFound)
	}
	if current.Version != expectedVersion {
		return nil, fmt.Errorf("story %q is at version %d, expected %d: %w",
			s.ID, current.Version, expectedVersion, domain.ErrConflict)
	}

	stored := s.Clone()
	stored.CreatedAt = current.CreatedAt
	stored.UpdatedAt = r.now().UTC()
	stored.Version = expectedVersion + 1
	r.stories[s.ID] = stored
	return stored.Clone(), nil
}

// Delete implements ports.StoryRepository.
func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stories[id]; !ok {
		return fmt.Errorf("story %q: %w", id, domain.ErrNotFound)
	}
	delete(r.stories, id)
	return nil
}

// Name implements ports.HealthChecker.
func (r *Repository) Name() string {
	return "story-store"
}

// HealthCheck implements ports.HealthChecker. The in-memory store is always
// available.
func (r *Repository) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}
