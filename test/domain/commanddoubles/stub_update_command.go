package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/modernize/internal/domain/commands"
	"github.com/rios0rios0/modernize/internal/domain/entities"
)

// SpyUpdateCommand implements commands.Update as a configurable spy.
type SpyUpdateCommand struct {
	// --- Supports ---
	SupportedFilenames map[string]bool // filename -> recognized

	// --- Execute ---
	Outcome      *entities.FileOutcome
	ExecuteErr   error
	ExecutePaths []string
	// OutcomeFor overrides Outcome per path when set.
	OutcomeFor map[string]*entities.FileOutcome
}

var _ commands.Update = (*SpyUpdateCommand)(nil)

func (c *SpyUpdateCommand) Supports(filename string) bool {
	if c.SupportedFilenames != nil {
		return c.SupportedFilenames[filename]
	}
	return false
}

func (c *SpyUpdateCommand) Execute(
	_ context.Context,
	path string,
	_ *entities.VersionCatalog,
	_ entities.UpdateOptions,
) (*entities.FileOutcome, error) {
	c.ExecutePaths = append(c.ExecutePaths, path)
	if c.OutcomeFor != nil {
		if outcome, ok := c.OutcomeFor[path]; ok {
			return outcome, c.ExecuteErr
		}
	}
	if c.Outcome != nil {
		outcome := *c.Outcome
		outcome.Path = path
		return &outcome, c.ExecuteErr
	}
	return &entities.FileOutcome{
		Path:   path,
		Result: &entities.UpdateResult{Success: true, Message: "stubbed"},
	}, c.ExecuteErr
}
