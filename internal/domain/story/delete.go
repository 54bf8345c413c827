package story

// DeleteElements removes the target elements from the current page.
//
// Ids that are not on the current page are ignored. When the resolved id
// list is empty, or none of its ids are on the current page, s itself is
// returned with a zero Change. Otherwise the result shares every page but
// the current one with s, and keeps s.Selection as is unless a deleted id
// was selected. Current is never altered and s is never modified.
//
// The empty-target check runs before the current page is looked up, so an
// empty deletion is a no-op even on a story whose current page is missing.
func DeleteElements(s *Story, target Target) (*Story, Change, error) {
	ids := target.resolve(s)
	if len(ids) == 0 {
		return s, Change{}, nil
	}

	idx, err := s.currentPageIndex()
	if err != nil {
		return nil, Change{}, err
	}

	doomed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		doomed[id] = struct{}{}
	}

	old := s.Pages[idx]
	kept := make([]Element, 0, len(old.Elements))
	var deleted []string
	for _, el := range old.Elements {
		if _, ok := doomed[el.ID]; ok {
			deleted = append(deleted, el.ID)
			continue
		}
		kept = append(kept, el)
	}
	if len(deleted) == 0 {
		return s, Change{}, nil
	}

	page := old
	page.Elements = kept

	pages := make([]Page, len(s.Pages))
	copy(pages, s.Pages)
	pages[idx] = page

	change := Change{Pages: true, Deleted: deleted}

	selection := s.Selection
	if intersects(s.Selection, doomed) {
		selection = make([]string, 0, len(s.Selection))
		for _, id := range s.Selection {
			if _, ok := doomed[id]; !ok {
				selection = append(selection, id)
			}
		}
		change.Selection = true
	}

	next := *s
	next.Pages = pages
	next.Selection = selection
	return &next, change, nil
}

func intersects(ids []string, set map[string]struct{}) bool {
	for _, id := range ids {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}
