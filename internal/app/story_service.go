// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	appctx "github.com/jsamuelsen11/story-editor/internal/app/context"
	"github.com/jsamuelsen11/story-editor/internal/app/fanout"
	"github.com/jsamuelsen11/story-editor/internal/domain"
	"github.com/jsamuelsen11/story-editor/internal/domain/story"
	"github.com/jsamuelsen11/story-editor/internal/platform/config"
	"github.com/jsamuelsen11/story-editor/internal/platform/telemetry"
	"github.com/jsamuelsen11/story-editor/internal/ports"
)

const tracerName = "app"

// Operation names used in logs, spans and the story.mutations metric.
const (
	opSetSelection   = "SetSelection"
	opSetCurrentPage = "SetCurrentPage"
	opDeleteElements = "DeleteElements"
)

// Compile-time check that StoryService implements ports.StoryService.
var _ ports.StoryService = (*StoryService)(nil)

// StoryService implements ports.StoryService. Mutations load the story
// through the request's unit of work, apply a reducer from the story
// package, and stage a versioned save plus a renderer notification. A
// reducer that reports no change ends the operation without any writes.
type StoryService struct {
	repo     ports.StoryRepository
	notifier ports.ChangeNotifier
	cfg      config.StoryConfig
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// NewStoryService creates a StoryService. A nil metrics disables metric
// recording and a nil logger discards logs.
func NewStoryService(
	repo ports.StoryRepository,
	notifier ports.ChangeNotifier,
	cfg config.StoryConfig,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *StoryService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &StoryService{
		repo:     repo,
		notifier: notifier,
		cfg:      cfg,
		metrics:  metrics,
		logger:   logger,
	}
}

// ListStories returns all stories.
func (s *StoryService) ListStories(ctx context.Context) ([]story.Story, error) {
	s.logger.InfoContext(ctx, "listing stories")

	stories, err := s.repo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list stories",
			slog.String("operation", "ListStories"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return stories, nil
}

// GetStory returns a single story by ID.
func (s *StoryService) GetStory(ctx context.Context, id string) (*story.Story, error) {
	s.logger.InfoContext(ctx, "fetching story", slog.String("story_id", id))

	st, err := s.load(requestContext(ctx), id)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch story",
			slog.String("operation", "GetStory"),
			slog.String("story_id", id),
			slog.Any("error", err),
		)
		return nil, err
	}
	return st, nil
}

// CreateStory fills defaults, validates and stores a new story under a
// fresh id.
func (s *StoryService) CreateStory(ctx context.Context, st *story.Story) (*story.Story, error) {
	s.logger.InfoContext(ctx, "creating story", slog.String("title", st.Title))

	st.Normalize()
	if err := st.Validate(); err != nil {
		return nil, err
	}
	st.ID = uuid.NewString()
	st.Version = 1

	created, err := s.repo.Create(ctx, st)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create story",
			slog.String("operation", "CreateStory"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return created, nil
}

// DeleteStory removes a story.
func (s *StoryService) DeleteStory(ctx context.Context, id string) error {
	s.logger.InfoContext(ctx, "deleting story", slog.String("story_id", id))

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete story",
			slog.String("operation", "DeleteStory"),
			slog.String("story_id", id),
			slog.Any("error", err),
		)
		return err
	}
	if rc, ok := appctx.FromContext(ctx); ok {
		rc.Forget(storyKey(id))
	}
	return nil
}

// SetSelection replaces the selection of the story's current page.
func (s *StoryService) SetSelection(ctx context.Context, id string, elementIDs []string) (*ports.MutationResult, error) {
	return s.mutate(ctx, opSetSelection, id, func(st *story.Story) (*story.Story, story.Change, error) {
		return story.SelectElements(st, elementIDs)
	})
}

// SetCurrentPage switches the story's active page.
func (s *StoryService) SetCurrentPage(ctx context.Context, id, pageID string) (*ports.MutationResult, error) {
	return s.mutate(ctx, opSetCurrentPage, id, func(st *story.Story) (*story.Story, story.Change, error) {
		return story.SetCurrentPage(st, pageID)
	})
}

// DeleteElements removes the target elements from the story's current page.
func (s *StoryService) DeleteElements(ctx context.Context, id string, target story.Target) (*ports.MutationResult, error) {
	return s.mutate(ctx, opDeleteElements, id, func(st *story.Story) (*story.Story, story.Change, error) {
		return story.DeleteElements(st, target)
	})
}

// BulkDeleteElements runs DeleteElements for every deletion on at most
// cfg.BulkMaxWorkers goroutines. Each deletion gets its own unit of work,
// so one failure never rolls back another.
func (s *StoryService) BulkDeleteElements(ctx context.Context, deletions []ports.StoryDeletion) (*ports.BulkDeleteResult, error) {
	s.logger.InfoContext(ctx, "bulk deleting elements", slog.Int("count", len(deletions)))

	if err := s.validateBulk(deletions); err != nil {
		return nil, err
	}

	results := fanout.Run(ctx, s.cfg.BulkMaxWorkers, deletions,
		func(ctx context.Context, d ports.StoryDeletion) (*ports.MutationResult, error) {
			ctx = appctx.WithRequestContext(ctx, appctx.New(ctx))
			return s.DeleteElements(ctx, d.StoryID, d.Target)
		},
	)

	out := &ports.BulkDeleteResult{Results: make([]ports.MutationResult, 0, len(results))}
	for i, r := range results {
		if r.Err != nil {
			out.Errors = append(out.Errors, ports.BulkDeleteError{StoryID: deletions[i].StoryID, Err: r.Err})
			continue
		}
		out.Results = append(out.Results, *r.Value)
	}

	if len(out.Errors) > 0 {
		s.logger.WarnContext(ctx, "bulk delete finished with failures",
			slog.String("operation", "BulkDeleteElements"),
			slog.Int("succeeded", len(out.Results)),
			slog.Int("failed", len(out.Errors)),
		)
	}
	return out, nil
}

func (s *StoryService) validateBulk(deletions []ports.StoryDeletion) error {
	fields := make(map[string]string)
	switch {
	case len(deletions) == 0:
		fields["deletions"] = "must not be empty"
	case len(deletions) > s.cfg.BulkMaxItems:
		fields["deletions"] = fmt.Sprintf("at most %d deletions per request, got %d", s.cfg.BulkMaxItems, len(deletions))
	}

	seen := make(map[string]int, len(deletions))
	for i, d := range deletions {
		key := fmt.Sprintf("deletions[%d].story_id", i)
		if d.StoryID == "" {
			fields[key] = domain.MsgRequired
			continue
		}
		if first, dup := seen[d.StoryID]; dup {
			fields[key] = fmt.Sprintf("duplicates deletions[%d]", first)
			continue
		}
		seen[d.StoryID] = i
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

type reducer func(*story.Story) (*story.Story, story.Change, error)

// mutate is the shared path of every story mutation: load, reduce, and
// when something changed, stage and commit the save and the notification.
func (s *StoryService) mutate(ctx context.Context, op, id string, reduce reducer) (*ports.MutationResult, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "StoryService."+op,
		trace.WithAttributes(attribute.String("story.id", id)),
	)
	defer span.End()

	logger := s.logger.With(slog.String("operation", op), slog.String("story_id", id))

	fail := func(msg string, err error) (*ports.MutationResult, error) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.metrics.RecordMutation(ctx, op, telemetry.ResultError, 0)
		logger.ErrorContext(ctx, msg, slog.Any("error", err))
		return nil, err
	}

	rc := requestContext(ctx)
	current, err := s.load(rc, id)
	if err != nil {
		return fail("failed to load story", err)
	}

	next, change, err := reduce(current)
	if err != nil {
		return fail("story mutation rejected", err)
	}
	span.SetAttributes(
		attribute.Bool("story.changed", change.Any()),
		attribute.Int("story.deleted", len(change.Deleted)),
	)

	if !change.Any() {
		s.metrics.RecordMutation(ctx, op, telemetry.ResultNoop, 0)
		logger.DebugContext(ctx, "story unchanged")
		return &ports.MutationResult{Story: current}, nil
	}

	save := &saveStory{repo: s.repo, prev: current, next: next, expected: current.Version}
	if err := rc.Stage(storyKey(id), next, save); err != nil {
		return fail("failed to stage save", err)
	}
	if err := rc.AddAction(&notifyChange{notifier: s.notifier, save: save, change: change}); err != nil {
		return fail("failed to stage notification", err)
	}

	err = rc.Commit(ctx)
	rc.Forget(storyKey(id))
	if err != nil {
		return fail("failed to commit story mutation", err)
	}

	s.metrics.RecordMutation(ctx, op, telemetry.ResultChanged, len(change.Deleted))
	logger.InfoContext(ctx, "story updated",
		slog.Int64("version", save.saved.Version),
		slog.Bool("pages_changed", change.Pages),
		slog.Bool("selection_changed", change.Selection),
		slog.Int("deleted", len(change.Deleted)),
	)
	return &ports.MutationResult{Story: save.saved, Change: change}, nil
}

func (s *StoryService) load(rc *appctx.RequestContext, id string) (*story.Story, error) {
	return appctx.GetOrFetch(rc, storyKey(id), func(ctx context.Context) (*story.Story, error) {
		return s.repo.Get(ctx, id)
	})
}

// requestContext returns the unit of work the middleware attached to ctx,
// or a fresh one for callers outside an HTTP request.
func requestContext(ctx context.Context) *appctx.RequestContext {
	if rc, ok := appctx.FromContext(ctx); ok {
		return rc
	}
	return appctx.New(ctx)
}

func storyKey(id string) string {
	return "story:" + id
}
