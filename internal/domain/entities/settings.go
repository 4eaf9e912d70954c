package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings is the top-level configuration for modernize.
type Settings struct {
	Catalog CatalogOverrides `yaml:"catalog"`
	Exclude []string         `yaml:"exclude"` // directory names skipped during a run
}

// CatalogOverrides lets a project pin its own modernization targets on top
// of the built-in catalog.
type CatalogOverrides struct {
	Dependencies map[string]string `yaml:"dependencies"` // "group:artifact" -> version
	Settings     map[string]string `yaml:"settings"`     // named setting -> value
}

// defaultExcludes are directory names never descended into during a run.
var defaultExcludes = []string{
	".git", ".idea", "target", "build", "out", "node_modules",
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() *Settings {
	return &Settings{
		Catalog: CatalogOverrides{},
		Exclude: nil,
	}
}

// NewSettings reads and parses a configuration file.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if validateErr := validate(&settings); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".modernize.yaml",
		".modernize.yml",
		"modernize.yaml",
		"modernize.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// BuildCatalog merges the catalog overrides on top of the built-in targets.
func (s *Settings) BuildCatalog() *VersionCatalog {
	catalog := DefaultVersionCatalog()
	if len(s.Catalog.Dependencies) > 0 {
		catalog = catalog.Merge(s.Catalog.Dependencies)
	}
	if len(s.Catalog.Settings) > 0 {
		catalog = catalog.Merge(s.Catalog.Settings)
	}
	return catalog
}

// ExcludedDirs returns the directory names skipped during a project walk:
// the defaults plus anything configured.
func (s *Settings) ExcludedDirs() []string {
	excluded := make([]string, 0, len(defaultExcludes)+len(s.Exclude))
	excluded = append(excluded, defaultExcludes...)
	excluded = append(excluded, s.Exclude...)
	return excluded
}

// validate checks for malformed configuration values.
func validate(settings *Settings) error {
	for key, value := range settings.Catalog.Dependencies {
		if key == "" || value == "" {
			return errors.New("catalog.dependencies entries must have a non-empty key and value")
		}
	}
	for key, value := range settings.Catalog.Settings {
		if key == "" || value == "" {
			return errors.New("catalog.settings entries must have a non-empty key and value")
		}
	}
	for _, dir := range settings.Exclude {
		if dir == "" {
			logger.Warn("Ignoring empty exclude entry in config")
		}
	}
	return nil
}
