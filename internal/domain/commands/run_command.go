package commands

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/modernize/internal/domain/entities"
)

// Run is the interface for the run command (batch mode).
type Run interface {
	Execute(
		ctx context.Context,
		root string,
		settings *entities.Settings,
		opts RunOptions,
	) (*entities.RunSummary, error)
}

// RunOptions holds runtime options for a single batch run.
type RunOptions struct {
	DryRun  bool
	Verbose bool
	Commit  bool // Commit written files on a dedicated branch
	Jobs    int  // Max files processed concurrently; 0 means NumCPU
}

// RunCommand orchestrates a batch run over a project tree:
// discover candidate files -> update each one -> summarize -> commit.
type RunCommand struct {
	updateCommand Update
}

// NewRunCommand creates a new RunCommand with the given update command.
func NewRunCommand(updateCommand Update) *RunCommand {
	return &RunCommand{updateCommand: updateCommand}
}

// Execute runs the full modernization cycle over the project at root.
// Per-file failures are recorded in the summary and never abort siblings.
func (it *RunCommand) Execute(
	ctx context.Context,
	root string,
	settings *entities.Settings,
	opts RunOptions,
) (*entities.RunSummary, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	projectRoot, err := validateProjectPath(root)
	if err != nil {
		return nil, err
	}

	files, err := it.discoverFiles(projectRoot, settings.ExcludedDirs())
	if err != nil {
		return nil, err
	}
	logger.Infof("Found %d candidate files under %s", len(files), projectRoot)

	catalog := settings.BuildCatalog()
	summary := it.processFiles(ctx, files, catalog, opts)

	logger.Infof(
		"Run complete: %d files processed, %d files changed, %d changes, %d findings, %d errors",
		summary.FilesProcessed, summary.FilesChanged,
		summary.TotalChanges, summary.TotalFindings, summary.Errors,
	)

	if opts.Commit && !opts.DryRun && summary.FilesChanged > 0 {
		if commitErr := commitChanges(projectRoot, summary.ChangedPaths()); commitErr != nil {
			return summary, commitErr
		}
	}

	return summary, nil
}

// validateProjectPath resolves and sanity-checks the project root before
// anything under it gets rewritten.
func validateProjectPath(root string) (string, error) {
	if root == "" {
		return "", fmt.Errorf("project path must not be empty")
	}
	for _, segment := range strings.Split(filepath.ToSlash(root), "/") {
		if segment == ".." {
			return "", fmt.Errorf("project path %q must not contain parent references", root)
		}
	}

	resolved, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("invalid project path %q: %w", root, err)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("project path %q: %w", resolved, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("project path %q is not a directory", resolved)
	}

	return resolved, nil
}

// discoverFiles walks the project tree collecting every file some handler
// recognizes, skipping excluded directories (VCS metadata, build output).
func (it *RunCommand) discoverFiles(root string, excludedDirs []string) ([]string, error) {
	excluded := make(map[string]bool, len(excludedDirs))
	for _, dir := range excludedDirs {
		excluded[dir] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path != root && excluded[entry.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if it.updateCommand.Supports(entry.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %q: %w", root, err)
	}
	return files, nil
}

func (it *RunCommand) processFiles(
	ctx context.Context,
	files []string,
	catalog *entities.VersionCatalog,
	opts RunOptions,
) *entities.RunSummary {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)

	var mu sync.Mutex
	summary := &entities.RunSummary{}

	for _, path := range files {
		group.Go(func() error {
			if ctxErr := groupCtx.Err(); ctxErr != nil {
				return ctxErr
			}

			outcome, err := it.updateCommand.Execute(groupCtx, path, catalog, entities.UpdateOptions{
				DryRun:  opts.DryRun,
				Verbose: opts.Verbose,
			})
			if outcome == nil {
				outcome = &entities.FileOutcome{Path: path, Err: err}
			}
			if err != nil {
				logger.Errorf("Failed to process %s: %v", path, err)
			}

			mu.Lock()
			summary.Add(*outcome)
			mu.Unlock()
			return nil
		})
	}

	// Worker errors are folded into the summary; Wait only surfaces
	// context cancellation, which still leaves a usable partial summary.
	if waitErr := group.Wait(); waitErr != nil {
		logger.Warnf("Batch run interrupted: %v", waitErr)
	}

	sort.SliceStable(summary.Outcomes, func(i, j int) bool {
		return summary.Outcomes[i].Path < summary.Outcomes[j].Path
	})
	return summary
}
