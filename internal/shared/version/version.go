// Package version reports the build version of the service.
package version

import (
	"strings"

	"golang.org/x/mod/semver"
)

// Version is set at build time with
// -ldflags "-X github.com/Harekrushna7138/ticket-service-backend/internal/shared/version.Version=1.2.0".
var Version = "dev"

// Normalize ensures version string has "v" prefix for semver compatibility.
// Examples: "1.2.3" -> "v1.2.3", "v1.2.3" -> "v1.2.3"
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return ""
	}
	if !strings.HasPrefix(version, "v") {
		return "v" + version
	}
	return version
}

// String returns the canonical semver form of Version, or Version unchanged
// for development builds.
func String() string {
	return format(Version)
}

func format(raw string) string {
	v := Normalize(raw)
	if !semver.IsValid(v) {
		if raw == "" {
			return "dev"
		}
		return raw
	}
	return semver.Canonical(v)
}
