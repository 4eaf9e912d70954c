package repositories

import (
	"github.com/rios0rios0/modernize/internal/domain/entities"
)

// SourceTransformerRepository abstracts program-source transformation. It
// follows the same extract/rewrite/guard/annotate discipline as the
// descriptor updaters, and additionally reports advisory findings that
// never mutate the text.
type SourceTransformerRepository interface {
	// Name returns the transformer identifier (e.g. "java").
	Name() string

	// Matches returns true if the given file name belongs to this language.
	Matches(filename string) bool

	// Transform rewrites recognized legacy patterns (namespace migration,
	// deprecated annotations) and returns the change list plus the advisory
	// findings collected along the way.
	Transform(path string, opts entities.UpdateOptions) (*entities.UpdateResult, []entities.Finding, error)
}
