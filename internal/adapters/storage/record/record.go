// Package record defines the serialized form of a story shared by the
// storage adapters and fixture files. Domain types stay free of encoding
// tags; this package owns the mapping.
package record

import (
	"time"

	"github.com/jsamuelsen11/story-editor/internal/domain/story"
)

// Element is the encoded form of story.Element.
type Element struct {
	ID    string         `json:"id" yaml:"id"`
	Type  string         `json:"type,omitempty" yaml:"type,omitempty"`
	Attrs map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty"`
}

// Page is the encoded form of story.Page.
type Page struct {
	ID       string         `json:"id" yaml:"id"`
	Attrs    map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty"`
	Elements []Element      `json:"elements" yaml:"elements"`
}

// Document is the editable part of a story: everything the reducers touch.
type Document struct {
	Pages     []Page   `json:"pages" yaml:"pages"`
	Current   string   `json:"current" yaml:"current"`
	Selection []string `json:"selection" yaml:"selection"`
}

// Story is a full story as written to fixtures and CLI input.
type Story struct {
	ID        string    `json:"id,omitempty" yaml:"id,omitempty"`
	Title     string    `json:"title" yaml:"title"`
	Version   int64     `json:"version,omitempty" yaml:"version,omitempty"`
	CreatedAt time.Time `json:"created_at,omitzero" yaml:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitzero" yaml:"updated_at,omitempty"`
	Document  `yaml:",inline"`
}

// FromDocument encodes the editable part of s.
func FromDocument(s *story.Story) Document {
	pages := make([]Page, len(s.Pages))
	for i, p := range s.Pages {
		els := make([]Element, len(p.Elements))
		for j, el := range p.Elements {
			els[j] = Element{ID: el.ID, Type: el.Type, Attrs: el.Attrs}
		}
		pages[i] = Page{ID: p.ID, Attrs: p.Attrs, Elements: els}
	}

	sel := s.Selection
	if sel == nil {
		sel = []string{}
	}
	return Document{Pages: pages, Current: s.Current, Selection: sel}
}

// Apply decodes d into s, replacing its pages, current page and selection.
func (d Document) Apply(s *story.Story) {
	s.Pages = make([]story.Page, len(d.Pages))
	for i, p := range d.Pages {
		els := make([]story.Element, len(p.Elements))
		for j, el := range p.Elements {
			els[j] = story.Element{ID: el.ID, Type: el.Type, Attrs: normalize(el.Attrs)}
		}
		s.Pages[i] = story.Page{ID: p.ID, Attrs: normalize(p.Attrs), Elements: els}
	}
	s.Current = d.Current
	s.Selection = append([]string{}, d.Selection...)
}

// FromStory encodes s.
func FromStory(s *story.Story) Story {
	return Story{
		ID:        s.ID,
		Title:     s.Title,
		Version:   s.Version,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
		Document:  FromDocument(s),
	}
}

// ToStory decodes r.
func (r Story) ToStory() *story.Story {
	s := &story.Story{
		ID:        r.ID,
		Title:     r.Title,
		Version:   r.Version,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	r.Document.Apply(s)
	return s
}

// normalize converts YAML-decoded nested maps (map[string]any with
// map[any]any children from older decoders) into JSON-compatible values.
func normalize(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return normalize(t)
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, vv := range t {
			if ks, ok := k.(string); ok {
				m[ks] = normalizeValue(vv)
			}
		}
		return m
	case []any:
		out := make([]any, len(t))
		for i := range t {
			out[i] = normalizeValue(t[i])
		}
		return out
	default:
		return v
	}
}
