package requirements

import (
	"strings"

	"golang.org/x/mod/semver"
)

// IsNewerVersion compares two version strings and returns true if newVersion
// is newer than currentVersion.
func IsNewerVersion(currentVersion, newVersion string) bool {
	current := normalizeVersion(currentVersion)
	next := normalizeVersion(newVersion)

	// If both are valid semver, use semver comparison.
	if semver.IsValid(current) && semver.IsValid(next) {
		return semver.Compare(next, current) > 0
	}

	// Fall back to string comparison for non-semver versions.
	return newVersion > currentVersion
}

// normalizeVersion ensures the version has a 'v' prefix for semver
// compatibility.
func normalizeVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
