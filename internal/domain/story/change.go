package story

// Change reports which parts of a story a reducer replaced. A zero Change
// means the reducer returned its input unchanged.
type Change struct {
	Pages     bool
	Selection bool
	Current   bool

	// Deleted lists the element ids removed from the current page, in page
	// order.
	Deleted []string
}

// Any reports whether anything changed.
func (c Change) Any() bool {
	return c.Pages || c.Selection || c.Current
}
