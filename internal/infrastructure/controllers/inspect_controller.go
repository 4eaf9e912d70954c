package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/modernize/internal/domain/commands"
	"github.com/rios0rios0/modernize/internal/domain/entities"
)

// InspectController handles the "inspect" subcommand (read-only mode).
type InspectController struct {
	command commands.Inspect
}

// NewInspectController creates a new InspectController.
func NewInspectController(command commands.Inspect) *InspectController {
	return &InspectController{command: command}
}

// GetBind returns the Cobra command metadata for the inspect controller.
func (it *InspectController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "inspect <file>",
		Short: "Show the recognized fields of a build descriptor",
		Long: `Parse a pom.xml or build.gradle file and report every recognized
version field, its current value, and the catalog target it would be
updated to. The file is never modified.`,
	}
}

// Execute runs the read-only inspection mode.
func (it *InspectController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	if len(args) < 1 {
		logger.Error("inspect requires a file path argument")
		return
	}

	settings := loadSettings(cmd)
	catalog := settings.BuildCatalog()

	info, err := it.command.Execute(ctx, args[0], catalog)
	if err != nil {
		logger.Errorf("Inspect failed: %v", err)
		return
	}

	logger.Infof("%s (%s): %d fields, %d outdated", info.Path, info.Format, len(info.Fields), info.OutdatedCount())
	for _, field := range info.Fields {
		switch {
		case field.Unresolved:
			logger.Infof("  line %d [%s] %s = %s (unresolved variable)",
				field.Line, field.Kind, field.Subject(), field.Value)
		case field.Outdated:
			logger.Warnf("  line %d [%s] %s = %s -> %s",
				field.Line, field.Kind, field.Subject(), field.Value, field.Target)
		case field.Target != "":
			logger.Infof("  line %d [%s] %s = %s (current)",
				field.Line, field.Kind, field.Subject(), field.Value)
		default:
			logger.Debugf("  line %d [%s] %s = %s (no catalog target)",
				field.Line, field.Kind, field.Subject(), field.Value)
		}
	}
}
