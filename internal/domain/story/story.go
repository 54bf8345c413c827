// Package story holds the editable story document model and the pure state
// transitions (reducers) applied to it by the editor.
//
// A Story is never mutated in place. Every reducer returns a new *Story and a
// Change describing which parts differ from its input; when nothing changes
// the input pointer itself is returned so callers can short-circuit on
// identity as well as on the Change flags.
package story

import (
	"fmt"
	"strings"
	"time"

	"github.com/jsamuelsen11/story-editor/internal/domain"
)

// Element is a placeable item on a page. Only ID is interpreted by the
// reducers; Type and Attrs are carried through untouched.
type Element struct {
	ID    string
	Type  string
	Attrs map[string]any
}

// Page is one ordered scene of a story.
type Page struct {
	ID       string
	Attrs    map[string]any
	Elements []Element
}

// Story is the editable composition: its pages, the active page and the
// user's current element selection.
type Story struct {
	ID        string
	Title     string
	Pages     []Page
	Current   string
	Selection []string
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the structural invariants of a story. Returns a
// *domain.ValidationError (wrapping domain.ErrValidation) with per-field
// details, or nil if all rules pass.
func (s *Story) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(s.Title) == "" {
		fields["title"] = domain.MsgRequired
	}
	if len(s.Pages) == 0 {
		fields["pages"] = "must not be empty"
	}

	pageIDs := make(map[string]struct{}, len(s.Pages))
	for i := range s.Pages {
		p := &s.Pages[i]
		key := fmt.Sprintf("pages[%d]", i)
		if p.ID == "" {
			fields[key+".id"] = domain.MsgRequired
			continue
		}
		if _, dup := pageIDs[p.ID]; dup {
			fields[key+".id"] = fmt.Sprintf("duplicate page id %q", p.ID)
		}
		pageIDs[p.ID] = struct{}{}

		elementIDs := make(map[string]struct{}, len(p.Elements))
		for j := range p.Elements {
			id := p.Elements[j].ID
			ekey := fmt.Sprintf("%s.elements[%d].id", key, j)
			if id == "" {
				fields[ekey] = domain.MsgRequired
				continue
			}
			if _, dup := elementIDs[id]; dup {
				fields[ekey] = fmt.Sprintf("duplicate element id %q", id)
			}
			elementIDs[id] = struct{}{}
		}
	}

	if len(s.Pages) > 0 {
		if _, ok := pageIDs[s.Current]; !ok {
			fields["current"] = fmt.Sprintf("must reference an existing page, got %q", s.Current)
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Normalize fills defaults for a newly composed story: the first page
// becomes current when none is set and a nil selection becomes empty.
func (s *Story) Normalize() {
	if s.Current == "" && len(s.Pages) > 0 {
		s.Current = s.Pages[0].ID
	}
	if s.Selection == nil {
		s.Selection = []string{}
	}
}

// PageIndex returns the index of the page with the given id, or -1.
func (s *Story) PageIndex(id string) int {
	for i := range s.Pages {
		if s.Pages[i].ID == id {
			return i
		}
	}
	return -1
}

// CurrentPage returns the active page. Returns ErrCurrentPageMissing when
// no page matches s.Current.
func (s *Story) CurrentPage() (*Page, error) {
	idx, err := s.currentPageIndex()
	if err != nil {
		return nil, err
	}
	return &s.Pages[idx], nil
}

func (s *Story) currentPageIndex() (int, error) {
	idx := s.PageIndex(s.Current)
	if idx < 0 {
		return -1, fmt.Errorf("%w: %q", ErrCurrentPageMissing, s.Current)
	}
	return idx, nil
}

// ElementIDs returns the ids of the page's elements in order.
func (p *Page) ElementIDs() []string {
	ids := make([]string, len(p.Elements))
	for i := range p.Elements {
		ids[i] = p.Elements[i].ID
	}
	return ids
}

// Clone returns a deep copy of the story. Repositories hand out clones so
// that callers never share backing arrays with stored state.
func (s *Story) Clone() *Story {
	c := *s
	c.Pages = make([]Page, len(s.Pages))
	for i := range s.Pages {
		p := s.Pages[i]
		p.Attrs = cloneAttrs(p.Attrs)
		p.Elements = make([]Element, len(s.Pages[i].Elements))
		for j, el := range s.Pages[i].Elements {
			el.Attrs = cloneAttrs(el.Attrs)
			p.Elements[j] = el
		}
		c.Pages[i] = p
	}
	if s.Selection != nil {
		c.Selection = append([]string{}, s.Selection...)
	}
	return &c
}

func cloneAttrs(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneAttrs(t)
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = cloneValue(t[i])
		}
		return out
	default:
		return v
	}
}
