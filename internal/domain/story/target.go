package story

// Target names the elements a deletion applies to: either an explicit list
// of ids or the story's current selection.
type Target struct {
	ids          []string
	useSelection bool
}

// Elements targets the given ids, in the given order.
func Elements(ids ...string) Target {
	return Target{ids: ids}
}

// Selected targets whatever the story's selection holds when the reducer
// runs.
func Selected() Target {
	return Target{useSelection: true}
}

// UsesSelection reports whether the target resolves to the selection.
func (t Target) UsesSelection() bool {
	return t.useSelection
}

// IDs returns the explicit ids. Empty for a selection target.
func (t Target) IDs() []string {
	return t.ids
}

func (t Target) resolve(s *Story) []string {
	if t.useSelection {
		return s.Selection
	}
	return t.ids
}
