package gradle

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/rios0rios0/modernize/internal/domain/entities"
)

const formatName = "gradle"

// bootPluginID is the catalog key for the Spring Boot Gradle plugin; its
// version pins the platform version for script builds the same way the
// starter parent does for manifests.
const bootPluginID = "org.springframework.boot"

var (
	// sourceCompatibility = '1.8' / "1.8"
	quotedCompatPattern = regexp.MustCompile(
		`(?m)^[ \t]*(sourceCompatibility|targetCompatibility)[ \t]*=[ \t]*['"]([^'"\n]+)['"]`)
	// sourceCompatibility = JavaVersion.VERSION_1_8
	enumCompatPattern = regexp.MustCompile(
		`(?m)^[ \t]*(sourceCompatibility|targetCompatibility)[ \t]*=[ \t]*JavaVersion\.VERSION_([0-9][0-9_]*)`)
	// sourceCompatibility = 1.8
	bareCompatPattern = regexp.MustCompile(
		`(?m)^[ \t]*(sourceCompatibility|targetCompatibility)[ \t]*=[ \t]*([0-9][0-9.]*)[ \t]*\r?$`)
	// id 'org.springframework.boot' version '2.7.0', with or without Kotlin parens
	bootPluginPattern = regexp.MustCompile(
		`id[ \t]*\(?[ \t]*['"]org\.springframework\.boot['"][ \t]*\)?[ \t]+version[ \t]+['"]([^'"\n]+)['"]`)
	// implementation 'group:artifact:version' and the other configurations;
	// the leading boundary keeps identifiers merely ending in a
	// configuration name from being read as one
	dependencyPattern = regexp.MustCompile(
		`(?m)\b(implementation|api|compile|compileOnly|runtimeOnly|testImplementation|testCompile|testRuntimeOnly|annotationProcessor|developmentOnly)[ \t]*\(?[ \t]*['"]([A-Za-z0-9_.\-]+):([A-Za-z0-9_.\-]+):([^'"\n]+)['"]`)
)

// extract builds the structural view of a build.gradle script. Scripts have
// no document grammar to validate against, so parse failure here means the
// content is not text at all; unrecognized constructs are simply not fields.
func extract(path, content string) (*entities.DescriptorModel, error) {
	if !utf8.ValidString(content) || strings.ContainsRune(content, 0x00) {
		return nil, &entities.ParseError{
			Path:   path,
			Format: formatName,
			Reason: "content is not valid UTF-8 text",
		}
	}

	var fields []entities.Field
	fields = append(fields, extractCompatibility(content)...)
	fields = append(fields, extractBootPlugin(content)...)
	fields = append(fields, extractDependencies(content)...)

	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Span.Start < fields[j].Span.Start
	})

	return &entities.DescriptorModel{Format: formatName, Fields: fields}, nil
}

func extractCompatibility(content string) []entities.Field {
	var fields []entities.Field
	for _, pattern := range []*regexp.Regexp{quotedCompatPattern, enumCompatPattern, bareCompatPattern} {
		for _, match := range pattern.FindAllStringSubmatchIndex(content, -1) {
			key := content[match[2]:match[3]]
			raw := content[match[4]:match[5]]
			// JavaVersion.VERSION_1_8 carries the version as 1_8; the span
			// covers only that suffix, so rewriting 1_8 to 21 yields
			// JavaVersion.VERSION_21.
			value := strings.ReplaceAll(raw, "_", ".")
			fields = append(fields, entities.Field{
				Kind:       entities.FieldLanguageVersion,
				Key:        key,
				Value:      value,
				Span:       entities.Span{Start: match[4], End: match[5]},
				Line:       lineOf(content, match[0]),
				Unresolved: strings.Contains(raw, "$"),
			})
		}
	}
	return fields
}

func extractBootPlugin(content string) []entities.Field {
	var fields []entities.Field
	for _, match := range bootPluginPattern.FindAllStringSubmatchIndex(content, -1) {
		value := content[match[2]:match[3]]
		fields = append(fields, entities.Field{
			Kind:       entities.FieldPlugin,
			Coordinate: bootPluginID,
			Value:      value,
			Span:       entities.Span{Start: match[2], End: match[3]},
			Line:       lineOf(content, match[0]),
			Unresolved: strings.Contains(value, "$"),
		})
	}
	return fields
}

func extractDependencies(content string) []entities.Field {
	var fields []entities.Field
	for _, match := range dependencyPattern.FindAllStringSubmatchIndex(content, -1) {
		group := content[match[4]:match[5]]
		artifact := content[match[6]:match[7]]
		value := content[match[8]:match[9]]
		fields = append(fields, entities.Field{
			Kind:       entities.FieldDependency,
			Coordinate: group + ":" + artifact,
			Value:      value,
			Span:       entities.Span{Start: match[8], End: match[9]},
			Line:       lineOf(content, match[0]),
			Unresolved: strings.Contains(value, "$"),
		})
	}
	return fields
}

func lineOf(content string, pos int) int {
	return strings.Count(content[:pos], "\n") + 1
}
