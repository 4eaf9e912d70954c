package commands_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/modernize/internal/domain/commands"
	"github.com/rios0rios0/modernize/internal/domain/entities"
	infraRepos "github.com/rios0rios0/modernize/internal/infrastructure/repositories"
	"github.com/rios0rios0/modernize/test/infrastructure/repositorydoubles"
)

func newUpdateCommand(
	updater *repositorydoubles.SpyUpdaterRepository,
	transformer *repositorydoubles.SpyTransformerRepository,
	analyzer *repositorydoubles.SpyAnalyzerRepository,
) *commands.UpdateCommand {
	registry := infraRepos.NewUpdaterRegistry()
	registry.Register(updater)
	return commands.NewUpdateCommand(registry, transformer, analyzer)
}

func TestUpdateCommand_Supports(t *testing.T) {
	t.Parallel()

	t.Run("should recognize files any handler matches", func(t *testing.T) {
		t.Parallel()

		// given
		updater := &repositorydoubles.SpyUpdaterRepository{
			UpdaterName:      "maven",
			MatchedFilenames: map[string]bool{"pom.xml": true},
		}
		transformer := &repositorydoubles.SpyTransformerRepository{
			TransformerName:  "java",
			MatchedFilenames: map[string]bool{"App.java": true},
		}
		analyzer := &repositorydoubles.SpyAnalyzerRepository{
			AnalyzerName:     "springconfig",
			MatchedFilenames: map[string]bool{"application.yml": true},
		}
		command := newUpdateCommand(updater, transformer, analyzer)

		// then
		assert.True(t, command.Supports("pom.xml"))
		assert.True(t, command.Supports("App.java"))
		assert.True(t, command.Supports("application.yml"))
		assert.False(t, command.Supports("README.md"))
	})
}

func TestUpdateCommand_Execute(t *testing.T) {
	t.Parallel()

	t.Run("should dispatch a descriptor to the matching updater", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		path := filepath.Join(dir, "pom.xml")
		require.NoError(t, writeFile(path, "<project/>"))

		updater := &repositorydoubles.SpyUpdaterRepository{
			UpdaterName:      "maven",
			MatchedFilenames: map[string]bool{"pom.xml": true},
			UpdateResult:     &entities.UpdateResult{Success: true, Written: true},
		}
		command := newUpdateCommand(updater,
			&repositorydoubles.SpyTransformerRepository{},
			&repositorydoubles.SpyAnalyzerRepository{})

		// when
		outcome, err := command.Execute(context.Background(), path,
			entities.DefaultVersionCatalog(), entities.UpdateOptions{DryRun: true})

		// then
		require.NoError(t, err)
		require.Len(t, updater.UpdateCalls, 1)
		assert.Equal(t, path, updater.UpdateCalls[0].Path)
		assert.True(t, updater.UpdateCalls[0].Opts.DryRun)
		assert.True(t, outcome.Result.Written)
	})

	t.Run("should dispatch a java source to the transformer", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		path := filepath.Join(dir, "App.java")
		require.NoError(t, writeFile(path, "public class App {}"))

		transformer := &repositorydoubles.SpyTransformerRepository{
			TransformerName:  "java",
			MatchedFilenames: map[string]bool{"App.java": true},
			TransformResult:  &entities.UpdateResult{Success: true},
			TransformFindings: []entities.Finding{
				{Rule: "manual-null-check", Severity: entities.SeverityInfo},
			},
		}
		command := newUpdateCommand(&repositorydoubles.SpyUpdaterRepository{},
			transformer, &repositorydoubles.SpyAnalyzerRepository{})

		// when
		outcome, err := command.Execute(context.Background(), path,
			entities.DefaultVersionCatalog(), entities.UpdateOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{path}, transformer.TransformPaths)
		assert.Len(t, outcome.Findings, 1)
	})

	t.Run("should dispatch a configuration file to the analyzer", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		path := filepath.Join(dir, "application.yml")
		require.NoError(t, writeFile(path, "server:\n  port: 8080\n"))

		analyzer := &repositorydoubles.SpyAnalyzerRepository{
			AnalyzerName:     "springconfig",
			MatchedFilenames: map[string]bool{"application.yml": true},
			AnalyzeFindings: []entities.Finding{
				{Rule: "renamed-property", Severity: entities.SeverityWarning},
			},
		}
		command := newUpdateCommand(&repositorydoubles.SpyUpdaterRepository{},
			&repositorydoubles.SpyTransformerRepository{}, analyzer)

		// when
		outcome, err := command.Execute(context.Background(), path,
			entities.DefaultVersionCatalog(), entities.UpdateOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{path}, analyzer.AnalyzePaths)
		assert.Len(t, outcome.Findings, 1)
		assert.Nil(t, outcome.Result)
	})

	t.Run("should report a missing file as skipped, not as an error", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "pom.xml")
		updater := &repositorydoubles.SpyUpdaterRepository{
			UpdaterName:      "maven",
			MatchedFilenames: map[string]bool{"pom.xml": true},
		}
		command := newUpdateCommand(updater,
			&repositorydoubles.SpyTransformerRepository{},
			&repositorydoubles.SpyAnalyzerRepository{})

		// when
		outcome, err := command.Execute(context.Background(), path,
			entities.DefaultVersionCatalog(), entities.UpdateOptions{})

		// then
		require.NoError(t, err)
		assert.True(t, outcome.Result.Success)
		assert.False(t, outcome.Result.Written)
		assert.Empty(t, updater.UpdateCalls)
	})

	t.Run("should fail on an unsupported file type", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		path := filepath.Join(dir, "README.md")
		require.NoError(t, writeFile(path, "# readme"))
		command := newUpdateCommand(&repositorydoubles.SpyUpdaterRepository{},
			&repositorydoubles.SpyTransformerRepository{},
			&repositorydoubles.SpyAnalyzerRepository{})

		// when
		_, err := command.Execute(context.Background(), path,
			entities.DefaultVersionCatalog(), entities.UpdateOptions{})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported file type")
	})
}
