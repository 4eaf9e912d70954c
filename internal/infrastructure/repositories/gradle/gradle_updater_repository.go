// Package gradle rewrites Gradle build scripts (build.gradle) against a
// version catalog without disturbing their formatting.
package gradle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/modernize/internal/domain/entities"
	"github.com/rios0rios0/modernize/internal/domain/repositories"
	"github.com/rios0rios0/modernize/internal/rewrite"
)

type UpdaterRepository struct{}

func NewUpdaterRepository() repositories.UpdaterRepository {
	return &UpdaterRepository{}
}

func (it *UpdaterRepository) Name() string {
	return formatName
}

func (it *UpdaterRepository) Matches(filename string) bool {
	base := filepath.Base(filename)
	return base == "build.gradle" || strings.HasSuffix(base, ".gradle")
}

func (it *UpdaterRepository) Update(
	path string,
	catalog *entities.VersionCatalog,
	opts entities.UpdateOptions,
) (*entities.UpdateResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	original := string(raw)

	model, err := extract(path, original)
	if err != nil {
		return &entities.UpdateResult{Success: false, Message: err.Error()}, err
	}

	replacements, changes := rewrite.Plan(model, catalog)
	candidate, err := rewrite.Apply(original, replacements)
	if err != nil {
		return nil, fmt.Errorf("failed to rewrite %q: %w", path, err)
	}

	if rewrite.Unchanged(original, candidate) {
		logger.Debugf("[gradle] %s is already up to date", path)
		return &entities.UpdateResult{
			Success: true,
			Message: "build script is already up to date",
		}, nil
	}

	candidate = rewrite.EnsureLineMarker(candidate)
	message := fmt.Sprintf("Updated build script with %d changes", len(changes))

	if opts.DryRun {
		logger.Infof("[gradle] dry-run: would update %s with %d changes", path, len(changes))
		return &entities.UpdateResult{Success: true, Message: message, Changes: changes}, nil
	}

	if err := rewrite.WriteFileAtomic(path, candidate, rewrite.FileMode(path)); err != nil {
		return nil, fmt.Errorf("failed to write %q: %w", path, err)
	}

	logger.Infof("[gradle] updated %s with %d changes", path, len(changes))
	return &entities.UpdateResult{
		Success: true,
		Message: message,
		Changes: changes,
		Written: true,
	}, nil
}

func (it *UpdaterRepository) Inspect(
	path string,
	catalog *entities.VersionCatalog,
) (*entities.DescriptorInfo, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	model, err := extract(path, string(raw))
	if err != nil {
		return nil, err
	}

	info := &entities.DescriptorInfo{Path: path, Format: formatName}
	for _, field := range model.Fields {
		fieldInfo := entities.FieldInfo{Field: field}
		if target, ok := catalog.Lookup(field.CatalogKey()); ok && !field.Unresolved {
			fieldInfo.Target = target
			fieldInfo.Outdated = target != field.Value && entities.IsNewerVersion(field.Value, target)
		}
		info.Fields = append(info.Fields, fieldInfo)
	}
	return info, nil
}
