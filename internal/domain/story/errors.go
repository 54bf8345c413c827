package story

import (
	"fmt"

	"github.com/jsamuelsen11/story-editor/internal/domain"
)

// ErrCurrentPageMissing reports a story whose Current id matches none of its
// pages. It wraps domain.ErrConflict: the stored document disagrees with
// itself and no reducer can act on it until it is repaired.
var ErrCurrentPageMissing = fmt.Errorf("current page not found: %w", domain.ErrConflict)
