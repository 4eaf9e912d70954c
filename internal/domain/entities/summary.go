package entities

// FileOutcome is the per-file result collected during a batch run.
type FileOutcome struct {
	Path     string
	Result   *UpdateResult
	Findings []Finding
	Err      error
}

// RunSummary aggregates the outcomes of one batch run over a project tree.
// Per-file failures are counted here and never abort sibling files.
type RunSummary struct {
	FilesProcessed int
	FilesChanged   int
	TotalChanges   int
	TotalFindings  int
	Errors         int
	Outcomes       []FileOutcome
}

// Add folds one outcome into the summary.
func (s *RunSummary) Add(outcome FileOutcome) {
	s.FilesProcessed++
	if outcome.Err != nil {
		s.Errors++
	}
	if outcome.Result != nil {
		s.TotalChanges += len(outcome.Result.Changes)
		if outcome.Result.Written {
			s.FilesChanged++
		}
	}
	s.TotalFindings += len(outcome.Findings)
	s.Outcomes = append(s.Outcomes, outcome)
}

// ChangedPaths returns the paths of files that were actually written.
func (s *RunSummary) ChangedPaths() []string {
	var paths []string
	for _, outcome := range s.Outcomes {
		if outcome.Result != nil && outcome.Result.Written {
			paths = append(paths, outcome.Path)
		}
	}
	return paths
}
