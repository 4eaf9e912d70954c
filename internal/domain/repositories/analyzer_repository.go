package repositories

import (
	"github.com/rios0rios0/modernize/internal/domain/entities"
)

// AnalyzerRepository abstracts an advisory-only file analyzer. Analyzers
// never write; they only report findings.
type AnalyzerRepository interface {
	// Name returns the analyzer identifier (e.g. "springconfig").
	Name() string

	// Matches returns true if the given file name is analyzed by this
	// implementation.
	Matches(filename string) bool

	// Analyze reads the file and returns advisory findings.
	Analyze(path string) ([]entities.Finding, error)
}
