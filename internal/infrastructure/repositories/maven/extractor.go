package maven

import (
	"encoding/xml"
	"errors"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/rios0rios0/modernize/internal/domain/entities"
)

const formatName = "maven"

// settingKinds maps the recognized manifest property keys to field kinds.
// Source and target compatibility are tracked as separate fields sharing
// the same catalog target.
var settingKinds = map[string]entities.FieldKind{
	"java.version":          entities.FieldLanguageVersion,
	"maven.compiler.source": entities.FieldLanguageVersion,
	"maven.compiler.target": entities.FieldLanguageVersion,
	"spring-boot.version":   entities.FieldFrameworkVersion,
}

var (
	parentPattern     = regexp.MustCompile(`(?s)<parent>(.*?)</parent>`)
	dependencyPattern = regexp.MustCompile(`(?s)<dependency>(.*?)</dependency>`)
	pluginPattern     = regexp.MustCompile(`(?s)<plugin>(.*?)</plugin>`)
	groupIDPattern    = regexp.MustCompile(`<groupId>\s*([^<]*?)\s*</groupId>`)
	artifactIDPattern = regexp.MustCompile(`<artifactId>\s*([^<]*?)\s*</artifactId>`)
	versionPattern    = regexp.MustCompile(`<version>\s*([^<]*?)\s*</version>`)
	variablePattern   = regexp.MustCompile(`^\$\{[^}]*}$`)

	// nestedBlockPattern marks where a declaration's own coordinate ends.
	// Versions inside nested child blocks (a plugin's own dependencies, its
	// execution or configuration sections) belong to other declarations and
	// must never be attributed to the enclosing one.
	nestedBlockPattern = regexp.MustCompile(`<(?:dependencies|exclusions|executions|configuration)>`)

	settingPatterns = buildSettingPatterns()
)

func buildSettingPatterns() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(settingKinds))
	for key := range settingKinds {
		quoted := regexp.QuoteMeta(key)
		patterns[key] = regexp.MustCompile(`<` + quoted + `>\s*([^<]*?)\s*</` + quoted + `>`)
	}
	return patterns
}

// extract builds the structural view of a pom.xml. The document is first
// validated as well-formed XML; the recognized fields are then located by
// structural pattern so their spans refer to the original text and
// everything else survives rewriting byte-for-byte.
func extract(path, content string) (*entities.DescriptorModel, error) {
	if reason := checkWellFormed(content); reason != "" {
		return nil, &entities.ParseError{Path: path, Format: formatName, Reason: reason}
	}

	var fields []entities.Field
	fields = append(fields, extractSettings(content)...)
	fields = append(fields, extractParent(content)...)
	fields = append(fields, extractDeclarations(content, dependencyPattern, entities.FieldDependency)...)
	fields = append(fields, extractDeclarations(content, pluginPattern, entities.FieldPlugin)...)

	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Span.Start < fields[j].Span.Start
	})

	return &entities.DescriptorModel{Format: formatName, Fields: fields}, nil
}

// checkWellFormed returns a non-empty reason when the content cannot be
// recognized as an XML document at all.
func checkWellFormed(content string) string {
	decoder := xml.NewDecoder(strings.NewReader(content))
	sawRoot := false
	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err.Error()
		}
		if _, ok := token.(xml.StartElement); ok {
			sawRoot = true
		}
	}
	if !sawRoot {
		return "no root element found"
	}
	return ""
}

func extractSettings(content string) []entities.Field {
	var fields []entities.Field
	for key, kind := range settingKinds {
		matches := settingPatterns[key].FindAllStringSubmatchIndex(content, -1)
		for _, match := range matches {
			value := content[match[2]:match[3]]
			fields = append(fields, entities.Field{
				Kind:       kind,
				Key:        key,
				Value:      value,
				Span:       entities.Span{Start: match[2], End: match[3]},
				Line:       lineOf(content, match[0]),
				Unresolved: variablePattern.MatchString(value),
			})
		}
	}
	return fields
}

// extractParent tracks the parent declaration (the Spring Boot platform
// version for most projects) as a framework-version field.
func extractParent(content string) []entities.Field {
	match := parentPattern.FindStringSubmatchIndex(content)
	if match == nil {
		return nil
	}

	inner := content[match[2]:match[3]]
	field, ok := declarationField(inner, match[2], entities.FieldFrameworkVersion)
	if !ok {
		return nil
	}
	field.Line = lineOf(content, match[0])
	return []entities.Field{field}
}

func extractDeclarations(
	content string,
	blockPattern *regexp.Regexp,
	kind entities.FieldKind,
) []entities.Field {
	var fields []entities.Field
	for _, match := range blockPattern.FindAllStringSubmatchIndex(content, -1) {
		inner := content[match[2]:match[3]]
		field, ok := declarationField(inner, match[2], kind)
		if !ok {
			continue // version managed elsewhere, nothing to rewrite
		}
		field.Line = lineOf(content, match[0])
		fields = append(fields, field)
	}
	return fields
}

// declarationField builds a field from a declaration block body. The offset
// translates inner spans back to positions in the whole document. Only the
// body up to the first nested child block is searched, so a version-less
// plugin carrying nested dependency versions yields no field at all.
func declarationField(inner string, offset int, kind entities.FieldKind) (entities.Field, bool) {
	if loc := nestedBlockPattern.FindStringIndex(inner); loc != nil {
		inner = inner[:loc[0]]
	}

	group := groupIDPattern.FindStringSubmatch(inner)
	artifact := artifactIDPattern.FindStringSubmatch(inner)
	version := versionPattern.FindStringSubmatchIndex(inner)
	if group == nil || artifact == nil || version == nil {
		return entities.Field{}, false
	}

	value := inner[version[2]:version[3]]
	return entities.Field{
		Kind:       kind,
		Coordinate: group[1] + ":" + artifact[1],
		Value:      value,
		Span:       entities.Span{Start: offset + version[2], End: offset + version[3]},
		Unresolved: variablePattern.MatchString(value),
	}, true
}

func lineOf(content string, pos int) int {
	return strings.Count(content[:pos], "\n") + 1
}
