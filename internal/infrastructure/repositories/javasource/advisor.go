package javasource

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/rios0rios0/modernize/internal/domain/entities"
)

// advisoryRule flags a construct that modernization cannot rewrite safely
// and a human should revisit.
type advisoryRule struct {
	rule       string
	pattern    *regexp.Regexp
	severity   entities.FindingSeverity
	message    string
	suggestion string
}

var advisoryRules = []advisoryRule{
	{
		rule:       "anonymous-inner-class",
		pattern:    regexp.MustCompile(`new[ \t]+[A-Z]\w*[ \t]*(?:<[^>\n]*>)?[ \t]*\([^)\n]*\)[ \t]*\{`),
		severity:   entities.SeverityInfo,
		message:    "anonymous inner class detected",
		suggestion: "consider a lambda or method reference where the type is a functional interface",
	},
	{
		rule:       "manual-null-check",
		pattern:    regexp.MustCompile(`if[ \t]*\([ \t]*\w+[ \t]*!=[ \t]*null[ \t]*\)`),
		severity:   entities.SeverityInfo,
		message:    "manual null check detected",
		suggestion: "consider Optional for nullable return values",
	},
	{
		rule:       "try-finally-close",
		pattern:    regexp.MustCompile(`(?s)try[ \t]*\{.*?finally[ \t]*\{[^}]*?\.close\(\)`),
		severity:   entities.SeverityWarning,
		message:    "resource closed in a finally block",
		suggestion: "use try-with-resources",
	},
	{
		rule:       "indexed-collection-loop",
		pattern:    regexp.MustCompile(`for[ \t]*\([ \t]*int[ \t]+\w+[ \t]*=[ \t]*0[ \t]*;[^;\n]*\.size\(\)`),
		severity:   entities.SeverityInfo,
		message:    "index-based loop over a collection",
		suggestion: "use an enhanced for loop or streams",
	},
	{
		rule:       "spring-xml-context",
		pattern:    regexp.MustCompile(`ClassPathXmlApplicationContext`),
		severity:   entities.SeverityWarning,
		message:    "XML-based Spring application context",
		suggestion: "migrate to annotation-based configuration",
	},
}

// deprecatedAPIs lists calls that are deprecated or removed on Java 21.
var deprecatedAPIs = map[string]string{
	"Runtime.getRuntime().exec(": "use ProcessBuilder",
	"new URL(":                   "use URI.create(...).toURL()",
	"sun.misc.BASE64":            "use java.util.Base64",
}

// advise scans a source file for constructs worth human attention. Findings
// never block the transformation; each rule reports its first occurrence.
func advise(content string) []entities.Finding {
	var findings []entities.Finding

	for _, rule := range advisoryRules {
		loc := rule.pattern.FindStringIndex(content)
		if loc == nil {
			continue
		}
		findings = append(findings, entities.Finding{
			Rule:       rule.rule,
			Severity:   rule.severity,
			Line:       lineOf(content, loc[0]),
			Message:    rule.message,
			Suggestion: rule.suggestion,
		})
	}

	for api, suggestion := range deprecatedAPIs {
		idx := strings.Index(content, api)
		if idx < 0 {
			continue
		}
		findings = append(findings, entities.Finding{
			Rule:       "deprecated-api",
			Severity:   entities.SeverityWarning,
			Line:       lineOf(content, idx),
			Message:    fmt.Sprintf("deprecated API usage: %s", api),
			Suggestion: suggestion,
		})
	}

	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Line != findings[j].Line {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].Rule < findings[j].Rule
	})
	return findings
}
