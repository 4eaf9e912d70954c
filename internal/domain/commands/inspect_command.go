package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/rios0rios0/modernize/internal/domain/entities"
	infraRepos "github.com/rios0rios0/modernize/internal/infrastructure/repositories"
)

// Inspect is the interface for the read-only descriptor inspection command.
type Inspect interface {
	Execute(
		ctx context.Context,
		path string,
		catalog *entities.VersionCatalog,
	) (*entities.DescriptorInfo, error)
}

// InspectCommand reports the recognized fields of a descriptor and which of
// them are behind their catalog target, without touching the file.
type InspectCommand struct {
	updaterRegistry *infraRepos.UpdaterRegistry
}

// NewInspectCommand creates a new InspectCommand with the given registry.
func NewInspectCommand(updaterRegistry *infraRepos.UpdaterRegistry) *InspectCommand {
	return &InspectCommand{updaterRegistry: updaterRegistry}
}

// Execute inspects a single descriptor file.
func (it *InspectCommand) Execute(
	ctx context.Context,
	path string,
	catalog *entities.VersionCatalog,
) (*entities.DescriptorInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	updater := it.updaterRegistry.MatchPath(filepath.Base(path))
	if updater == nil {
		return nil, fmt.Errorf("unsupported descriptor type: %q", filepath.Base(path))
	}

	return updater.Inspect(path, catalog)
}
