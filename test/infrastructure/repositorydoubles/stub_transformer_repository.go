package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/modernize/internal/domain/entities"
	"github.com/rios0rios0/modernize/internal/domain/repositories"
)

// SpyTransformerRepository implements repositories.SourceTransformerRepository
// as a configurable spy.
type SpyTransformerRepository struct {
	// --- identity ---
	TransformerName string

	// --- Matches ---
	MatchedFilenames map[string]bool // filename -> recognized

	// --- Transform ---
	TransformResult   *entities.UpdateResult
	TransformFindings []entities.Finding
	TransformErr      error
	TransformPaths    []string
}

var _ repositories.SourceTransformerRepository = (*SpyTransformerRepository)(nil)

func (t *SpyTransformerRepository) Name() string { return t.TransformerName }

func (t *SpyTransformerRepository) Matches(filename string) bool {
	if t.MatchedFilenames != nil {
		return t.MatchedFilenames[filename]
	}
	return false
}

func (t *SpyTransformerRepository) Transform(
	path string,
	_ entities.UpdateOptions,
) (*entities.UpdateResult, []entities.Finding, error) {
	t.TransformPaths = append(t.TransformPaths, path)
	return t.TransformResult, t.TransformFindings, t.TransformErr
}

// SpyAnalyzerRepository implements repositories.AnalyzerRepository as a
// configurable spy.
type SpyAnalyzerRepository struct {
	// --- identity ---
	AnalyzerName string

	// --- Matches ---
	MatchedFilenames map[string]bool // filename -> recognized

	// --- Analyze ---
	AnalyzeFindings []entities.Finding
	AnalyzeErr      error
	AnalyzePaths    []string
}

var _ repositories.AnalyzerRepository = (*SpyAnalyzerRepository)(nil)

func (a *SpyAnalyzerRepository) Name() string { return a.AnalyzerName }

func (a *SpyAnalyzerRepository) Matches(filename string) bool {
	if a.MatchedFilenames != nil {
		return a.MatchedFilenames[filename]
	}
	return false
}

func (a *SpyAnalyzerRepository) Analyze(path string) ([]entities.Finding, error) {
	a.AnalyzePaths = append(a.AnalyzePaths, path)
	return a.AnalyzeFindings, a.AnalyzeErr
}
