package dto_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/story-editor/internal/adapters/http/dto"
	"github.com/jsamuelsen11/story-editor/internal/domain"
	"github.com/jsamuelsen11/story-editor/internal/domain/story"
	"github.com/jsamuelsen11/story-editor/internal/ports"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func testStory() *story.Story {
	return &story.Story{
		ID:    "s1",
		Title: "Launch",
		Pages: []story.Page{{
			ID:       "p1",
			Elements: []story.Element{{ID: "e1", Type: "text"}},
		}},
		Current:   "p1",
		Version:   2,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func TestToStoryResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToStoryResponse(testStory())

	want := dto.StoryResponse{
		ID:        "s1",
		Title:     "Launch",
		Version:   2,
		Pages:     []dto.PageBody{{ID: "p1", Elements: []dto.ElementBody{{ID: "e1", Type: "text"}}}},
		Current:   "p1",
		Selection: []string{},
		CreatedAt: "2026-02-12T15:04:05Z",
		UpdatedAt: "2026-02-12T15:04:05Z",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToStoryResponse() mismatch (-want +got):\n%s", diff)
	}
}

func TestToStoryListResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToStoryListResponse([]story.Story{*testStory(), *testStory()})
	if got.Count != 2 || len(got.Stories) != 2 {
		t.Errorf("Count = %d, len = %d, want 2", got.Count, len(got.Stories))
	}

	empty := dto.ToStoryListResponse(nil)
	body, err := json.Marshal(empty)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(body) != `{"stories":[],"count":0}` {
		t.Errorf("empty list JSON = %s", body)
	}
}

func TestToMutationResponse_JSON(t *testing.T) {
	t.Parallel()

	res := &ports.MutationResult{
		Story:  testStory(),
		Change: story.Change{Pages: true, Deleted: []string{"e2"}},
	}

	body, err := json.Marshal(dto.ToMutationResponse(res))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got struct {
		Changed map[string]bool `json:"changed"`
		Deleted []string        `json:"deleted"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(map[string]bool{"pages": true, "selection": false, "current": false}, got.Changed); diff != "" {
		t.Errorf("changed mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"e2"}, got.Deleted); diff != "" {
		t.Errorf("deleted mismatch (-want +got):\n%s", diff)
	}

	noop := dto.ToMutationResponse(&ports.MutationResult{Story: testStory()})
	if noop.Deleted == nil {
		t.Error("Deleted should be an empty list for a no-op, got nil")
	}
}

func TestToBulkDeleteResponse(t *testing.T) {
	t.Parallel()

	result := &ports.BulkDeleteResult{
		Results: []ports.MutationResult{{Story: testStory(), Change: story.Change{Pages: true, Deleted: []string{"e1"}}}},
		Errors: []ports.BulkDeleteError{
			{StoryID: "s2", Err: fmt.Errorf("story %q: %w", "s2", domain.ErrNotFound)},
			{StoryID: "s3", Err: story.ErrCurrentPageMissing},
		},
	}

	got := dto.ToBulkDeleteResponse(result)

	if got.Total != 3 || got.Succeeded != 1 || got.Failed != 2 {
		t.Errorf("counts = %d/%d/%d, want 3/1/2", got.Total, got.Succeeded, got.Failed)
	}
	wantErrs := []dto.BulkErrorItem{
		{StoryID: "s2", Status: http.StatusNotFound, Message: `story "s2": not found`},
		{StoryID: "s3", Status: http.StatusConflict, Message: story.ErrCurrentPageMissing.Error()},
	}
	if diff := cmp.Diff(wantErrs, got.Errors); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
}
