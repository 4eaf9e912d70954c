// Package springconfig analyzes Spring application configuration files
// (application.properties, application.yml) for properties that are
// deprecated, renamed, or stale on Spring Boot 3.x. It only reports; the
// files are never rewritten.
package springconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/modernize/internal/domain/entities"
	"github.com/rios0rios0/modernize/internal/domain/repositories"
)

const analyzerName = "springconfig"

// deprecatedProperties have no effect on Spring Boot 3.x.
var deprecatedProperties = map[string]string{
	"spring.jpa.properties.hibernate.jdbc.lob.non_contextual_creation": "no longer needed on Spring Boot 3.x",
	"spring.jpa.properties.hibernate.enable_lazy_load_no_trans":        "discouraged; restructure transactions instead",
	"spring.mvc.locale-resolver":                                       "replaced by spring.web.locale-resolver",
}

// renamedProperties moved to a new key on Spring Boot 3.x.
var renamedProperties = map[string]string{
	"spring.jpa.properties.hibernate.dialect":      "spring.jpa.database-platform",
	"spring.resources.static-locations":            "spring.web.resources.static-locations",
	"spring.resources.cache.period":                "spring.web.resources.cache.period",
	"spring.mvc.locale":                            "spring.web.locale",
	"server.max-http-header-size":                  "server.max-http-request-header-size",
	"management.metrics.export.prometheus.enabled": "management.prometheus.metrics.export.enabled",
}

// legacyJavaVersions are language levels well below the modernization target.
var legacyJavaVersions = map[string]bool{"1.8": true, "8": true, "11": true}

type AnalyzerRepository struct{}

func NewAnalyzerRepository() repositories.AnalyzerRepository {
	return &AnalyzerRepository{}
}

func (it *AnalyzerRepository) Name() string {
	return analyzerName
}

func (it *AnalyzerRepository) Matches(filename string) bool {
	switch filepath.Base(filename) {
	case "application.properties", "application.yml", "application.yaml":
		return true
	}
	return false
}

func (it *AnalyzerRepository) Analyze(path string) ([]entities.Finding, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", path, err)
	}

	var properties []property
	if filepath.Ext(path) == ".properties" {
		properties = parseProperties(string(raw))
	} else {
		properties, err = parseYAML(path, raw)
		if err != nil {
			return nil, err
		}
	}

	return check(properties), nil
}

// property is one flattened configuration key with the line it came from.
// YAML keys carry the line of their leaf node.
type property struct {
	key   string
	value string
	line  int
}

func parseProperties(content string) []property {
	var properties []property
	for i, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "!") {
			continue
		}
		key, value, found := strings.Cut(trimmed, "=")
		if !found {
			key, value, found = strings.Cut(trimmed, ":")
		}
		if !found {
			continue
		}
		properties = append(properties, property{
			key:   strings.TrimSpace(key),
			value: strings.TrimSpace(value),
			line:  i + 1,
		})
	}
	return properties
}

func parseYAML(path string, raw []byte) ([]property, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, &entities.ParseError{
			Path:   path,
			Format: "yaml",
			Reason: err.Error(),
		}
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	var properties []property
	flattenYAML(root.Content[0], "", &properties)
	return properties, nil
}

// flattenYAML walks a mapping tree and joins nested keys with dots, matching
// how Spring binds YAML onto its property model.
func flattenYAML(node *yaml.Node, prefix string, out *[]property) {
	if node.Kind != yaml.MappingNode {
		if prefix != "" {
			*out = append(*out, property{key: prefix, value: node.Value, line: node.Line})
		}
		return
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode := node.Content[i]
		valueNode := node.Content[i+1]
		key := keyNode.Value
		if prefix != "" {
			key = prefix + "." + key
		}
		flattenYAML(valueNode, key, out)
	}
}

func check(properties []property) []entities.Finding {
	var findings []entities.Finding
	for _, prop := range properties {
		if reason, ok := deprecatedProperties[prop.key]; ok {
			findings = append(findings, entities.Finding{
				Rule:       "deprecated-property",
				Severity:   entities.SeverityWarning,
				Line:       prop.line,
				Message:    fmt.Sprintf("property %s is deprecated", prop.key),
				Suggestion: reason,
			})
		}
		if replacement, ok := renamedProperties[prop.key]; ok {
			findings = append(findings, entities.Finding{
				Rule:       "renamed-property",
				Severity:   entities.SeverityWarning,
				Line:       prop.line,
				Message:    fmt.Sprintf("property %s was renamed", prop.key),
				Suggestion: fmt.Sprintf("use %s instead", replacement),
			})
		}
		if strings.Contains(prop.key, "java") && legacyJavaVersions[prop.value] {
			findings = append(findings, entities.Finding{
				Rule:       "legacy-java-version",
				Severity:   entities.SeverityInfo,
				Line:       prop.line,
				Message:    fmt.Sprintf("property %s pins Java %s", prop.key, prop.value),
				Suggestion: "raise to Java 21 together with the build descriptors",
			})
		}
	}

	sort.SliceStable(findings, func(i, j int) bool {
		return findings[i].Line < findings[j].Line
	})
	return findings
}
