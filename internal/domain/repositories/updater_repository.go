package repositories

import (
	"github.com/rios0rios0/modernize/internal/domain/entities"
)

// UpdaterRepository abstracts one descriptor format (the Maven XML manifest,
// the Gradle build script). Each implementation owns the full per-file cycle:
// extraction, catalog-driven rewriting, the write-or-skip decision, and the
// atomic write. The two formats share no grammar, so each owns its own
// structural patterns while honoring the same idempotence rules.
type UpdaterRepository interface {
	// Name returns the format identifier (e.g. "maven", "gradle").
	Name() string

	// Matches returns true if the given file name belongs to this format.
	Matches(filename string) bool

	// Update rewrites every recognized field whose catalog target differs
	// from its current value, writes the file atomically when the content
	// actually changed, and returns the ordered change list. A file that is
	// already current is left byte-for-byte untouched.
	Update(path string, catalog *entities.VersionCatalog, opts entities.UpdateOptions) (*entities.UpdateResult, error)

	// Inspect returns the recognized fields and their current values
	// without mutating anything.
	Inspect(path string, catalog *entities.VersionCatalog) (*entities.DescriptorInfo, error)
}
