package app

import (
	"context"
	"fmt"

	"github.com/jsamuelsen11/story-editor/internal/domain"
	"github.com/jsamuelsen11/story-editor/internal/domain/story"
	"github.com/jsamuelsen11/story-editor/internal/ports"
)

var (
	_ domain.Action = (*saveStory)(nil)
	_ domain.Action = (*notifyChange)(nil)
)

// saveStory persists next at expected+1. Rollback writes prev back over the
// saved version, so a rolled back save leaves the story one version further
// on with its earlier content.
type saveStory struct {
	repo     ports.StoryRepository
	prev     *story.Story
	next     *story.Story
	expected int64

	saved *story.Story
}

func (a *saveStory) Execute(ctx context.Context) error {
	saved, err := a.repo.Save(ctx, a.next, a.expected)
	if err != nil {
		return err
	}
	a.saved = saved
	return nil
}

func (a *saveStory) Rollback(ctx context.Context) error {
	if a.saved == nil {
		return nil
	}
	if _, err := a.repo.Save(ctx, a.prev, a.saved.Version); err != nil {
		return fmt.Errorf("restoring story %s: %w", a.prev.ID, err)
	}
	return nil
}

func (a *saveStory) Description() string {
	return fmt.Sprintf("save story %s at version %d", a.next.ID, a.expected)
}

// notifyChange tells the renderer about a committed save. It reads the new
// version from the save that precedes it in the queue.
type notifyChange struct {
	notifier ports.ChangeNotifier
	save     *saveStory
	change   story.Change
}

func (a *notifyChange) Execute(ctx context.Context) error {
	return a.notifier.StoryChanged(ctx, ports.StoryChange{
		StoryID:          a.save.saved.ID,
		Version:          a.save.saved.Version,
		PagesChanged:     a.change.Pages,
		SelectionChanged: a.change.Selection,
		CurrentChanged:   a.change.Current,
		DeletedElements:  a.change.Deleted,
	})
}

// Rollback is a no-op: a notification cannot be recalled.
func (a *notifyChange) Rollback(context.Context) error { return nil }

func (a *notifyChange) Description() string {
	return "notify renderer of story " + a.save.next.ID
}
