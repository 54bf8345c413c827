package ports

import "context"

// StoryChange describes a committed story mutation for downstream consumers
// that re-render or re-index stories.
type StoryChange struct {
	StoryID          string
	Version          int64
	PagesChanged     bool
	SelectionChanged bool
	CurrentChanged   bool
	DeletedElements  []string
}

// ChangeNotifier defines the client port used to tell the downstream
// renderer that a story changed. Implemented by the render client adapter;
// called by the application layer after a mutation is persisted.
type ChangeNotifier interface {
	// StoryChanged reports a committed change.
	// Returns domain.ErrUnavailable when the downstream cannot be reached.
	StoryChanged(ctx context.Context, change StoryChange) error
}
