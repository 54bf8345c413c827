package story_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/story-editor/internal/domain"
	"github.com/jsamuelsen11/story-editor/internal/domain/story"
)

func TestSelectElements(t *testing.T) {
	t.Parallel()

	t.Run("replaces selection and collapses duplicates", func(t *testing.T) {
		t.Parallel()
		s := sampleStory()

		got, change, err := story.SelectElements(s, []string{"e1", "e3", "e1"})
		if err != nil {
			t.Fatalf("SelectElements() error = %v", err)
		}
		if diff := cmp.Diff([]string{"e1", "e3"}, got.Selection); diff != "" {
			t.Errorf("selection mismatch (-want +got):\n%s", diff)
		}
		if !change.Selection || change.Pages {
			t.Errorf("change = %+v, want selection only", change)
		}
		if diff := cmp.Diff([]string{"e2", "e3"}, s.Selection); diff != "" {
			t.Errorf("input selection mutated (-want +got):\n%s", diff)
		}
	})

	t.Run("same selection returns input", func(t *testing.T) {
		t.Parallel()
		s := sampleStory()

		got, change, err := story.SelectElements(s, []string{"e2", "e3"})
		if err != nil {
			t.Fatalf("SelectElements() error = %v", err)
		}
		if got != s || change.Any() {
			t.Errorf("SelectElements(same) = (%p, %+v), want input and zero change", got, change)
		}
	})

	t.Run("unknown id is a validation error", func(t *testing.T) {
		t.Parallel()
		s := sampleStory()

		_, _, err := story.SelectElements(s, []string{"e1", "ghost"})
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("SelectElements() error = %v, want *domain.ValidationError", err)
		}
		if _, ok := verr.Fields["element_ids[1]"]; !ok {
			t.Errorf("Fields = %v, want element_ids[1]", verr.Fields)
		}
	})
}

func TestSetCurrentPage(t *testing.T) {
	t.Parallel()

	t.Run("switches page and clears selection", func(t *testing.T) {
		t.Parallel()
		s := multiPageStory()

		got, change, err := story.SetCurrentPage(s, "cover")
		if err != nil {
			t.Fatalf("SetCurrentPage() error = %v", err)
		}
		if got.Current != "cover" {
			t.Errorf("Current = %q, want cover", got.Current)
		}
		if len(got.Selection) != 0 {
			t.Errorf("Selection = %v, want empty", got.Selection)
		}
		want := story.Change{Current: true, Selection: true}
		if diff := cmp.Diff(want, change); diff != "" {
			t.Errorf("change mismatch (-want +got):\n%s", diff)
		}
		if s.Current != "step-1" {
			t.Error("input story was mutated")
		}
	})

	t.Run("already current returns input", func(t *testing.T) {
		t.Parallel()
		s := multiPageStory()

		got, change, err := story.SetCurrentPage(s, "step-1")
		if err != nil {
			t.Fatalf("SetCurrentPage() error = %v", err)
		}
		if got != s || change.Any() {
			t.Errorf("SetCurrentPage(current) = (%p, %+v), want input and zero change", got, change)
		}
	})

	t.Run("unknown page", func(t *testing.T) {
		t.Parallel()
		_, _, err := story.SetCurrentPage(multiPageStory(), "nope")
		if !errors.Is(err, domain.ErrValidation) {
			t.Errorf("SetCurrentPage() error = %v, want ErrValidation", err)
		}
	})
}
