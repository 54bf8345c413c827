package story

import (
	"fmt"
	"slices"

	"github.com/jsamuelsen11/story-editor/internal/domain"
)

// SelectElements replaces the selection with ids. Every id must be an
// element of the current page; duplicates are collapsed keeping the first
// occurrence. Selecting exactly the current selection returns s unchanged.
func SelectElements(s *Story, ids []string) (*Story, Change, error) {
	page, err := s.CurrentPage()
	if err != nil {
		return nil, Change{}, err
	}

	present := make(map[string]struct{}, len(page.Elements))
	for i := range page.Elements {
		present[page.Elements[i].ID] = struct{}{}
	}

	selection := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	fields := make(map[string]string)
	for i, id := range ids {
		if _, ok := present[id]; !ok {
			fields[fmt.Sprintf("element_ids[%d]", i)] = fmt.Sprintf("element %q is not on page %q", id, s.Current)
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		selection = append(selection, id)
	}
	if len(fields) > 0 {
		return nil, Change{}, &domain.ValidationError{Fields: fields}
	}

	if slices.Equal(selection, s.Selection) {
		return s, Change{}, nil
	}

	next := *s
	next.Selection = selection
	return &next, Change{Selection: true}, nil
}

// SetCurrentPage makes pageID the active page and clears the selection,
// since selected ids always refer to the active page. Switching to the page
// that is already current returns s unchanged.
func SetCurrentPage(s *Story, pageID string) (*Story, Change, error) {
	if s.PageIndex(pageID) < 0 {
		return nil, Change{}, &domain.ValidationError{Fields: map[string]string{
			"page_id": fmt.Sprintf("unknown page %q", pageID),
		}}
	}
	if pageID == s.Current {
		return s, Change{}, nil
	}

	next := *s
	next.Current = pageID
	change := Change{Current: true}
	if len(s.Selection) > 0 {
		next.Selection = []string{}
		change.Selection = true
	}
	return &next, change, nil
}
