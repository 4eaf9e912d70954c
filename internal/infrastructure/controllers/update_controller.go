package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/modernize/internal/domain/commands"
	"github.com/rios0rios0/modernize/internal/domain/entities"
)

// UpdateController handles the "update" subcommand (single file mode).
type UpdateController struct {
	command commands.Update
}

// NewUpdateController creates a new UpdateController.
func NewUpdateController(command commands.Update) *UpdateController {
	return &UpdateController{command: command}
}

// GetBind returns the Cobra command metadata for the update controller.
func (it *UpdateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "update <file>",
		Short: "Update a single build descriptor or Java source file",
		Long: `Update one file in place: pom.xml and build.gradle files are
rewritten against the version catalog, .java files are migrated to Jakarta
namespaces and Spring Boot 3.x conventions, and Spring configuration files
are analyzed for deprecated properties.

Files that are already current are left byte-for-byte untouched.`,
	}
}

// Execute runs the single file update mode.
func (it *UpdateController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	if len(args) < 1 {
		logger.Error("update requires a file path argument")
		return
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	settings := loadSettings(cmd)
	catalog := settings.BuildCatalog()

	outcome, err := it.command.Execute(ctx, args[0], catalog, entities.UpdateOptions{
		DryRun:  dryRun,
		Verbose: verbose,
	})
	if err != nil {
		logger.Errorf("Update failed: %v", err)
		return
	}

	logOutcome(outcome)
}
