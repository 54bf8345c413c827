package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/story-editor/internal/adapters/storage/memory"
	"github.com/jsamuelsen11/story-editor/internal/domain"
	"github.com/jsamuelsen11/story-editor/internal/domain/story"
)

func sampleStory(id string) *story.Story {
	return &story.Story{
		ID:    id,
		Title: "Story " + id,
		Pages: []story.Page{
			{ID: "p1", Elements: []story.Element{{ID: "a", Type: "text"}, {ID: "b"}}},
		},
		Current:   "p1",
		Selection: []string{"a"},
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	t.Parallel()

	repo := memory.New()
	ctx := context.Background()

	created, err := repo.Create(ctx, sampleStory("s1"))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Version != 1 {
		t.Errorf("Version = %d, want 1", created.Version)
	}
	if created.CreatedAt.IsZero() || !created.UpdatedAt.Equal(created.CreatedAt) {
		t.Errorf("timestamps = %v / %v, want set and equal", created.CreatedAt, created.UpdatedAt)
	}

	got, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if diff := cmp.Diff(created, got); diff != "" {
		t.Errorf("Get() mismatch (-created +got):\n%s", diff)
	}
}

func TestRepository_CreateDuplicate(t *testing.T) {
	t.Parallel()

	repo := memory.New()
	ctx := context.Background()

	if _, err := repo.Create(ctx, sampleStory("s1")); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := repo.Create(ctx, sampleStory("s1")); !errors.Is(err, domain.ErrConflict) {
		t.Errorf("second Create() error = %v, want ErrConflict", err)
	}
}

func TestRepository_ReturnsCopies(t *testing.T) {
	t.Parallel()

	repo := memory.New()
	ctx := context.Background()

	in := sampleStory("s1")
	if _, err := repo.Create(ctx, in); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	in.Pages[0].Elements[0].ID = "mutated-input"

	got, _ := repo.Get(ctx, "s1")
	got.Selection[0] = "mutated-output"
	got.Pages[0].Elements = nil

	again, _ := repo.Get(ctx, "s1")
	if again.Pages[0].Elements[0].ID != "a" || again.Selection[0] != "a" {
		t.Errorf("stored story was aliased: %+v", again)
	}
}

func TestRepository_Save(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	tests := []struct {
		name     string
		id       string
		expected int64
		wantErr  error
	}{
		{name: "matching version", id: "s1", expected: 1},
		{name: "stale version", id: "s1", expected: 7, wantErr: domain.ErrConflict},
		{name: "unknown story", id: "missing", expected: 1, wantErr: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := memory.New()
			created, err := repo.Create(ctx, sampleStory("s1"))
			if err != nil {
				t.Fatalf("Create() error = %v", err)
			}

			next := created.Clone()
			next.ID = tt.id
			next.Selection = []string{}

			saved, err := repo.Save(ctx, next, tt.expected)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Save() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Save() error = %v", err)
			}
			if saved.Version != 2 {
				t.Errorf("Version = %d, want 2", saved.Version)
			}
			if !saved.CreatedAt.Equal(created.CreatedAt) {
				t.Errorf("CreatedAt changed: %v -> %v", created.CreatedAt, saved.CreatedAt)
			}
			if len(saved.Selection) != 0 {
				t.Errorf("Selection = %v, want empty", saved.Selection)
			}
		})
	}
}

func TestRepository_ConcurrentSavesOneWins(t *testing.T) {
	t.Parallel()

	repo := memory.New()
	ctx := context.Background()
	created, _ := repo.Create(ctx, sampleStory("s1"))

	const writers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Save(ctx, created, created.Version); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if succeeded != 1 {
		t.Errorf("successful saves = %d, want 1", succeeded)
	}
}

func TestRepository_ListAndDelete(t *testing.T) {
	t.Parallel()

	repo := memory.New()
	ctx := context.Background()

	for _, id := range []string{"b", "a", "c"} {
		if _, err := repo.Create(ctx, sampleStory(id)); err != nil {
			t.Fatalf("Create(%s) error = %v", id, err)
		}
	}

	if err := repo.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := repo.Delete(ctx, "a"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}

	list, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	ids := make([]string, len(list))
	for i := range list {
		ids[i] = list[i].ID
	}
	if len(ids) != 2 {
		t.Fatalf("List() ids = %v, want 2 stories", ids)
	}
	for _, id := range ids {
		if id == "a" {
			t.Errorf("List() still contains deleted story: %v", ids)
		}
	}
}

func TestRepository_Health(t *testing.T) {
	t.Parallel()

	repo := memory.New()
	if repo.Name() != "story-store" {
		t.Errorf("Name() = %q, want story-store", repo.Name())
	}
	if err := repo.HealthCheck(context.Background()); err != nil {
		t.Errorf("HealthCheck() = %v, want nil", err)
	}
}
