package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/modernize/internal/domain/entities"
	"github.com/rios0rios0/modernize/internal/domain/repositories"
)

// SpyUpdaterRepository implements repositories.UpdaterRepository as a configurable spy.
type SpyUpdaterRepository struct {
	// --- identity ---
	UpdaterName string

	// --- Matches ---
	MatchedFilenames map[string]bool // filename -> recognized

	// --- Update ---
	UpdateResult *entities.UpdateResult
	UpdateErr    error
	UpdateCalls  []UpdateCall

	// --- Inspect ---
	InspectResult *entities.DescriptorInfo
	InspectErr    error
	InspectPaths  []string
}

// UpdateCall records a single invocation of Update.
type UpdateCall struct {
	Path    string
	Catalog *entities.VersionCatalog
	Opts    entities.UpdateOptions
}

var _ repositories.UpdaterRepository = (*SpyUpdaterRepository)(nil)

func (u *SpyUpdaterRepository) Name() string { return u.UpdaterName }

func (u *SpyUpdaterRepository) Matches(filename string) bool {
	if u.MatchedFilenames != nil {
		return u.MatchedFilenames[filename]
	}
	return false
}

func (u *SpyUpdaterRepository) Update(
	path string,
	catalog *entities.VersionCatalog,
	opts entities.UpdateOptions,
) (*entities.UpdateResult, error) {
	u.UpdateCalls = append(u.UpdateCalls, UpdateCall{Path: path, Catalog: catalog, Opts: opts})
	return u.UpdateResult, u.UpdateErr
}

func (u *SpyUpdaterRepository) Inspect(
	path string,
	_ *entities.VersionCatalog,
) (*entities.DescriptorInfo, error) {
	u.InspectPaths = append(u.InspectPaths, path)
	return u.InspectResult, u.InspectErr
}
