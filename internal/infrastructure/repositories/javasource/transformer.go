// Package javasource migrates Java source files to Jakarta EE namespaces
// and Spring Boot 3.x conventions, and reports advisory findings for
// constructs the migration cannot rewrite safely.
package javasource

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/modernize/internal/domain/entities"
	"github.com/rios0rios0/modernize/internal/domain/repositories"
	"github.com/rios0rios0/modernize/internal/rewrite"
)

const transformerName = "java"

// namespaceRules maps javax package prefixes that moved to Jakarta EE 9+.
// Prefixes absent here (javax.swing, javax.crypto, javax.sql and friends)
// stayed in the JDK and must not be touched.
var namespaceRules = map[string]string{
	"javax.annotation":  "jakarta.annotation",
	"javax.inject":      "jakarta.inject",
	"javax.jms":         "jakarta.jms",
	"javax.json":        "jakarta.json",
	"javax.mail":        "jakarta.mail",
	"javax.persistence": "jakarta.persistence",
	"javax.servlet":     "jakarta.servlet",
	"javax.transaction": "jakarta.transaction",
	"javax.validation":  "jakarta.validation",
	"javax.websocket":   "jakarta.websocket",
	"javax.ws.rs":       "jakarta.ws.rs",
	"javax.xml.bind":    "jakarta.xml.bind",
}

var (
	importPattern = regexp.MustCompile(
		`(?m)^[ \t]*import[ \t]+(?:static[ \t]+)?(javax\.[A-Za-z0-9_.]+)[ \t]*;`)
	eurekaPattern = regexp.MustCompile(`(?m)^[ \t]*(@EnableEurekaClient)[ \t]*\r?$`)
)

const eurekaReplacement = "// @EnableEurekaClient (enabled by default in Spring Cloud 2020+)"

type TransformerRepository struct{}

func NewTransformerRepository() repositories.SourceTransformerRepository {
	return &TransformerRepository{}
}

func (it *TransformerRepository) Name() string {
	return transformerName
}

func (it *TransformerRepository) Matches(filename string) bool {
	return filepath.Ext(filepath.Base(filename)) == ".java"
}

func (it *TransformerRepository) Transform(
	path string,
	opts entities.UpdateOptions,
) (*entities.UpdateResult, []entities.Finding, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %q: %w", path, err)
	}
	original := string(raw)

	replacements, changes, importFindings := planNamespaces(original)
	annotationReps, annotationChanges := planAnnotations(original)
	replacements = append(replacements, annotationReps...)
	changes = append(changes, annotationChanges...)

	findings := append(importFindings, advise(original)...)

	candidate, err := rewrite.Apply(original, replacements)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to rewrite %q: %w", path, err)
	}

	if rewrite.Unchanged(original, candidate) {
		logger.Debugf("[java] %s needs no transformation", path)
		return &entities.UpdateResult{
			Success: true,
			Message: "source file needs no transformation",
		}, findings, nil
	}

	candidate = rewrite.EnsureLineMarker(candidate)
	message := fmt.Sprintf("Transformed source file with %d changes", len(changes))

	if opts.DryRun {
		logger.Infof("[java] dry-run: would transform %s with %d changes", path, len(changes))
		return &entities.UpdateResult{Success: true, Message: message, Changes: changes}, findings, nil
	}

	if err := rewrite.WriteFileAtomic(path, candidate, rewrite.FileMode(path)); err != nil {
		return nil, nil, fmt.Errorf("failed to write %q: %w", path, err)
	}

	logger.Infof("[java] transformed %s with %d changes", path, len(changes))
	return &entities.UpdateResult{
		Success: true,
		Message: message,
		Changes: changes,
		Written: true,
	}, findings, nil
}

// planNamespaces locates javax imports and rewrites the package prefix of
// the ones that moved to Jakarta. The span covers only the prefix, so the
// rest of the import statement survives byte-for-byte.
func planNamespaces(content string) ([]rewrite.Replacement, []entities.ChangeRecord, []entities.Finding) {
	var replacements []rewrite.Replacement
	var changes []entities.ChangeRecord
	var findings []entities.Finding

	for _, match := range importPattern.FindAllStringSubmatchIndex(content, -1) {
		importPath := content[match[2]:match[3]]
		oldPrefix, newPrefix, ok := matchNamespaceRule(importPath)
		if !ok {
			findings = append(findings, entities.Finding{
				Rule:       "unmapped-javax-import",
				Severity:   entities.SeverityInfo,
				Line:       lineOf(content, match[0]),
				Message:    fmt.Sprintf("import %s has no Jakarta equivalent", importPath),
				Suggestion: "left unchanged; verify the package still exists on Java 21",
			})
			continue
		}

		replacements = append(replacements, rewrite.Replacement{
			Span: entities.Span{Start: match[2], End: match[2] + len(oldPrefix)},
			Text: newPrefix,
		})
		changes = append(changes, entities.ChangeRecord{
			Kind:        entities.FieldNamespace,
			Coordinate:  importPath,
			OldValue:    oldPrefix,
			NewValue:    newPrefix,
			Description: fmt.Sprintf("Migrated import %s to the %s namespace", importPath, newPrefix),
		})
	}

	return replacements, changes, findings
}

// matchNamespaceRule finds the longest rule prefix that covers the import
// path on a package boundary.
func matchNamespaceRule(importPath string) (string, string, bool) {
	var oldPrefix, newPrefix string
	for old, updated := range namespaceRules {
		if importPath != old && !strings.HasPrefix(importPath, old+".") {
			continue
		}
		if len(old) > len(oldPrefix) {
			oldPrefix, newPrefix = old, updated
		}
	}
	return oldPrefix, newPrefix, oldPrefix != ""
}

// planAnnotations comments out @EnableEurekaClient lines. The commented
// line no longer matches the pattern, so a second pass produces nothing.
func planAnnotations(content string) ([]rewrite.Replacement, []entities.ChangeRecord) {
	var replacements []rewrite.Replacement
	var changes []entities.ChangeRecord

	for _, match := range eurekaPattern.FindAllStringSubmatchIndex(content, -1) {
		replacements = append(replacements, rewrite.Replacement{
			Span: entities.Span{Start: match[2], End: match[3]},
			Text: eurekaReplacement,
		})
		changes = append(changes, entities.ChangeRecord{
			Kind:        entities.FieldAnnotation,
			Coordinate:  "@EnableEurekaClient",
			OldValue:    "@EnableEurekaClient",
			NewValue:    eurekaReplacement,
			Description: "Commented out @EnableEurekaClient (enabled by default in Spring Cloud 2020+)",
		})
	}

	return replacements, changes
}

func lineOf(content string, pos int) int {
	return strings.Count(content[:pos], "\n") + 1
}
