package commands_test

import (
	"os"

	"github.com/rios0rios0/modernize/internal/domain/commands"
	infraRepos "github.com/rios0rios0/modernize/internal/infrastructure/repositories"
	"github.com/rios0rios0/modernize/internal/infrastructure/repositories/gradle"
	"github.com/rios0rios0/modernize/internal/infrastructure/repositories/javasource"
	"github.com/rios0rios0/modernize/internal/infrastructure/repositories/maven"
	"github.com/rios0rios0/modernize/internal/infrastructure/repositories/springconfig"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

// newRealUpdateCommand wires the production repositories, for end-to-end
// command tests against a temp project tree.
func newRealUpdateCommand() *commands.UpdateCommand {
	registry := infraRepos.NewUpdaterRegistry()
	registry.Register(maven.NewUpdaterRepository())
	registry.Register(gradle.NewUpdaterRepository())
	return commands.NewUpdateCommand(
		registry,
		javasource.NewTransformerRepository(),
		springconfig.NewAnalyzerRepository(),
	)
}
