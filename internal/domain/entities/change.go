package entities

import "fmt"

// ChangeRecord describes one applied rewrite. Records are immutable once
// created and accumulated in order of appearance in the source file.
type ChangeRecord struct {
	Kind        FieldKind
	Coordinate  string // coordinate or setting key the change applies to
	OldValue    string
	NewValue    string
	Description string
}

// NewChangeRecord builds a change record with the standard description.
func NewChangeRecord(kind FieldKind, coordinate, oldValue, newValue string) ChangeRecord {
	return ChangeRecord{
		Kind:        kind,
		Coordinate:  coordinate,
		OldValue:    oldValue,
		NewValue:    newValue,
		Description: fmt.Sprintf("Updated %s from %s to %s", coordinate, oldValue, newValue),
	}
}

// UpdateResult is returned once per file invocation, never partially
// populated. Written is false whenever the candidate content is
// byte-identical to the original.
type UpdateResult struct {
	Success bool
	Message string
	Changes []ChangeRecord
	Written bool
}

// FindingSeverity classifies advisory findings.
type FindingSeverity string

const (
	SeverityInfo    FindingSeverity = "info"
	SeverityWarning FindingSeverity = "warning"
)

// Finding is a non-mutating observation about a file: a pattern worth
// modernizing that the engine does not rewrite. Findings are reported
// alongside, but never inside, the change list.
type Finding struct {
	Rule       string
	Severity   FindingSeverity
	Line       int // 1-based; 0 when the finding is file-scoped
	Message    string
	Suggestion string
}
