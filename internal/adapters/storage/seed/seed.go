// Package seed loads fixture stories from YAML (or JSON) files.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/story-editor/internal/adapters/storage/record"
	"github.com/jsamuelsen11/story-editor/internal/domain"
	"github.com/jsamuelsen11/story-editor/internal/domain/story"
	"github.com/jsamuelsen11/story-editor/internal/ports"
)

// File is the layout of a seed file.
type File struct {
	Stories []record.Story `yaml:"stories"`
}

// Parse decodes a seed file. Each story is normalized and validated; stories
// without an id get a random UUID.
func Parse(data []byte) ([]*story.Story, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding seed file: %w", err)
	}

	out := make([]*story.Story, 0, len(f.Stories))
	for i, r := range f.Stories {
		s := r.ToStory()
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
		s.Normalize()
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("stories[%d]: %w", i, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// ReadStory decodes a single story document from path. YAML is a superset of
// JSON, so either format is accepted. The story is normalized but not
// validated.
func ReadStory(path string) (*story.Story, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var r record.Story
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	s := r.ToStory()
	s.Normalize()
	return s, nil
}

// Load reads the seed file at path and creates its stories in repo. Stories
// that already exist are left alone. Returns the number created.
func Load(ctx context.Context, repo ports.StoryRepository, path string, logger *slog.Logger) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading seed file %s: %w", path, err)
	}

	stories, err := Parse(data)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	created := 0
	for _, s := range stories {
		_, err := repo.Create(ctx, s)
		switch {
		case errors.Is(err, domain.ErrConflict):
			logger.DebugContext(ctx, "seed story already present", slog.String("story_id", s.ID))
		case err != nil:
			return created, fmt.Errorf("seeding story %q: %w", s.ID, err)
		default:
			created++
		}
	}

	logger.InfoContext(ctx, "seeded stories",
		slog.String("file", path),
		slog.Int("created", created),
		slog.Int("total", len(stories)),
	)
	return created, nil
}
