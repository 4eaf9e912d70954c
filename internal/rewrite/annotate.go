package rewrite

import "strings"

// MarkerText is the canonical modernization marker. It must stay stable
// across releases: changing it would make every previously marked file look
// unmarked and be annotated again.
const MarkerText = "MODERNIZED by modernize - Java 21 / Spring Boot 3.x"

// HasMarker reports whether the text already carries the marker.
func HasMarker(text string) bool {
	return strings.Contains(text, MarkerText)
}

// EnsureLineMarker guarantees exactly one marker as a line comment at the
// top of the text. Already-marked text is returned unchanged.
func EnsureLineMarker(text string) string {
	if HasMarker(text) {
		return text
	}
	return "// " + MarkerText + "\n" + text
}

// EnsureXMLMarker guarantees exactly one marker as an XML comment, anchored
// directly after the XML declaration when one is present, otherwise at the
// top of the document. Already-marked text is returned unchanged.
func EnsureXMLMarker(text string) string {
	if HasMarker(text) {
		return text
	}

	marker := "<!-- " + MarkerText + " -->"
	if idx := strings.Index(text, "?>"); idx >= 0 {
		insertAt := idx + len("?>")
		return text[:insertAt] + "\n" + marker + text[insertAt:]
	}
	return marker + "\n" + text
}
