// Package rewrite holds the text-rewriting primitives shared by every
// descriptor and source updater: span replacement, the write-or-skip guard,
// marker annotation, and atomic file writes.
package rewrite

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rios0rios0/modernize/internal/domain/entities"
)

// Replacement substitutes the bytes of one span with new text. Everything
// outside the replaced spans is reproduced byte-for-byte.
type Replacement struct {
	Span entities.Span
	Text string
}

// Apply reconstructs the text with all replacements applied. Replacements
// are applied in span order; overlapping or out-of-range spans are an error
// since they would corrupt unrelated content.
func Apply(original string, replacements []Replacement) (string, error) {
	if len(replacements) == 0 {
		return original, nil
	}

	sorted := make([]Replacement, len(replacements))
	copy(sorted, replacements)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Span.Start < sorted[j].Span.Start
	})

	var sb strings.Builder
	sb.Grow(len(original))
	cursor := 0
	for _, rep := range sorted {
		span := rep.Span
		if span.Start < cursor || span.End < span.Start || span.End > len(original) {
			return "", fmt.Errorf(
				"invalid replacement span [%d:%d) at cursor %d",
				span.Start, span.End, cursor,
			)
		}
		sb.WriteString(original[cursor:span.Start])
		sb.WriteString(rep.Text)
		cursor = span.End
	}
	sb.WriteString(original[cursor:])

	return sb.String(), nil
}

// Plan computes the replacements and change records for a descriptor model
// against a version catalog. Fields with no catalog target, fields already
// at their target, and unresolved variable references produce no replacement
// and no record.
func Plan(
	model *entities.DescriptorModel,
	catalog *entities.VersionCatalog,
) ([]Replacement, []entities.ChangeRecord) {
	var replacements []Replacement
	var changes []entities.ChangeRecord

	for _, field := range model.Fields {
		if field.Unresolved {
			continue
		}
		target, ok := catalog.Lookup(field.CatalogKey())
		if !ok {
			continue
		}
		if target == field.Value {
			continue // already current, not a change
		}
		replacements = append(replacements, Replacement{Span: field.Span, Text: target})
		changes = append(changes, entities.NewChangeRecord(
			field.Kind, field.Subject(), field.Value, target,
		))
	}

	return replacements, changes
}

// Unchanged reports whether the candidate content is byte-identical to the
// original. This comparison, not the change list, is the source of truth
// for write decisions: no write happens and no marker is added when it
// returns true.
func Unchanged(original, candidate string) bool {
	return original == candidate
}
