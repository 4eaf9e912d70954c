package entities

import (
	"strings"

	"golang.org/x/mod/semver"
)

// IsNewerVersion reports whether target is a newer version than current.
// Both values are normalized to the "vMAJOR[.MINOR[.PATCH]]" form before a
// semver comparison; when either side is not a valid version, a plain string
// comparison is used as fallback.
func IsNewerVersion(current, target string) bool {
	cur := normalizeVersion(current)
	tgt := normalizeVersion(target)
	if semver.IsValid(cur) && semver.IsValid(tgt) {
		return semver.Compare(tgt, cur) > 0
	}
	return target > current
}

func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	version = strings.TrimSuffix(version, ".RELEASE")
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
