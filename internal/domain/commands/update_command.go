package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/modernize/internal/domain/entities"
	"github.com/rios0rios0/modernize/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/modernize/internal/infrastructure/repositories"
)

// Update is the interface for the single-file update command.
type Update interface {
	Execute(
		ctx context.Context,
		path string,
		catalog *entities.VersionCatalog,
		opts entities.UpdateOptions,
	) (*entities.FileOutcome, error)
	Supports(filename string) bool
}

// UpdateCommand dispatches one file to the matching descriptor updater,
// source transformer, or configuration analyzer.
type UpdateCommand struct {
	updaterRegistry *infraRepos.UpdaterRegistry
	transformer     repositories.SourceTransformerRepository
	analyzer        repositories.AnalyzerRepository
}

// NewUpdateCommand creates a new UpdateCommand with the given repositories.
func NewUpdateCommand(
	updaterRegistry *infraRepos.UpdaterRegistry,
	transformer repositories.SourceTransformerRepository,
	analyzer repositories.AnalyzerRepository,
) *UpdateCommand {
	return &UpdateCommand{
		updaterRegistry: updaterRegistry,
		transformer:     transformer,
		analyzer:        analyzer,
	}
}

// Supports reports whether any handler recognizes the file name.
func (it *UpdateCommand) Supports(filename string) bool {
	return it.updaterRegistry.MatchPath(filename) != nil ||
		it.transformer.Matches(filename) ||
		it.analyzer.Matches(filename)
}

// Execute processes a single file. A path that does not exist is reported
// as skipped, not as an error, so batch runs stay quiet about files that
// vanished between discovery and processing.
func (it *UpdateCommand) Execute(
	ctx context.Context,
	path string,
	catalog *entities.VersionCatalog,
	opts entities.UpdateOptions,
) (*entities.FileOutcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		logger.Debugf("Skipping %s: file does not exist", path)
		return &entities.FileOutcome{
			Path:   path,
			Result: &entities.UpdateResult{Success: true, Message: "file does not exist, skipped"},
		}, nil
	}

	filename := filepath.Base(path)

	if updater := it.updaterRegistry.MatchPath(filename); updater != nil {
		result, err := updater.Update(path, catalog, opts)
		return &entities.FileOutcome{Path: path, Result: result, Err: err}, err
	}

	if it.transformer.Matches(filename) {
		result, findings, err := it.transformer.Transform(path, opts)
		return &entities.FileOutcome{Path: path, Result: result, Findings: findings, Err: err}, err
	}

	if it.analyzer.Matches(filename) {
		findings, err := it.analyzer.Analyze(path)
		return &entities.FileOutcome{Path: path, Findings: findings, Err: err}, err
	}

	return nil, fmt.Errorf("unsupported file type: %q", filename)
}
