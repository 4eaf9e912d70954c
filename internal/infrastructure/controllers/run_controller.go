package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/modernize/internal/domain/commands"
	"github.com/rios0rios0/modernize/internal/domain/entities"
)

// RunController handles the "run" subcommand (batch mode).
type RunController struct {
	command commands.Run
}

// NewRunController creates a new RunController.
func NewRunController(command commands.Run) *RunController {
	return &RunController{command: command}
}

// GetBind returns the Cobra command metadata for the run controller.
func (it *RunController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "run [path]",
		Short: "Modernize an entire Java project tree",
		Long: `Walk a project tree and modernize every supported file in it:
build descriptors are rewritten against the version catalog, Java sources
are migrated to Jakarta namespaces, and Spring configuration files are
analyzed for deprecated properties.

Files are processed concurrently; per-file failures are reported and do
not abort the run. With --commit the written files are committed on a
dedicated branch.`,
	}
}

// Execute runs the batch modernization mode.
func (it *RunController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	commit, _ := cmd.Flags().GetBool("commit")
	jobs, _ := cmd.Flags().GetInt("jobs")

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	settings := loadSettings(cmd)

	logger.Info("Starting modernization run...")

	summary, err := it.command.Execute(ctx, root, settings, commands.RunOptions{
		DryRun:  dryRun,
		Verbose: verbose,
		Commit:  commit,
		Jobs:    jobs,
	})
	if err != nil {
		logger.Errorf("Run failed: %v", err)
		return
	}

	for _, outcome := range summary.Outcomes {
		if outcome.Err != nil {
			logger.Errorf("%s: %v", outcome.Path, outcome.Err)
			continue
		}
		logOutcome(&outcome)
	}
}

// AddFlags adds the run-specific flags to the given Cobra command.
func (it *RunController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("commit", false, "Commit written files on a dedicated branch")
	cmd.Flags().Int("jobs", 0, "Max files processed concurrently (0 means number of CPUs)")
}
