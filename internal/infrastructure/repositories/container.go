package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/modernize/internal/infrastructure/repositories/gradle"
	"github.com/rios0rios0/modernize/internal/infrastructure/repositories/javasource"
	"github.com/rios0rios0/modernize/internal/infrastructure/repositories/maven"
	"github.com/rios0rios0/modernize/internal/infrastructure/repositories/springconfig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register updater registry with all descriptor updater implementations
	if err := container.Provide(func() *UpdaterRegistry {
		reg := NewUpdaterRegistry()
		reg.Register(maven.NewUpdaterRepository())
		reg.Register(gradle.NewUpdaterRepository())
		return reg
	}); err != nil {
		return err
	}

	if err := container.Provide(javasource.NewTransformerRepository); err != nil {
		return err
	}

	if err := container.Provide(springconfig.NewAnalyzerRepository); err != nil {
		return err
	}

	return nil
}
