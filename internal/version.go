package internal

import (
	"fmt"
	"runtime"
	"strings"
)

// Name used for the binary, the log prefix, and help output.
const Name = "erun"

// String to indicate a local (non-pipeline) build.
const defaultLocalBuild = "(local)"

var (
	version   = "" // Version number (e.g., "1.2.3")
	gitCommit = "" // Git commit hash (e.g., "a1b2c3d4")
)

// Returns the current version with any "v" prefix stripped, or an empty
// string when no version was baked in.
func Version() string {
	v := strings.TrimSpace(version)
	v = strings.ToLower(v)
	return strings.TrimPrefix(v, "v")
}

// Returns the git commit hash, or an empty string when not set.
func GitCommit() string {
	return strings.TrimSpace(gitCommit)
}

// Returns true if this is a local (non-pipeline) build.
//
// Pipeline builds set both the version and the git commit via linker flags;
// anything else is considered local.
func IsLocal() bool {
	return Version() == "" || GitCommit() == ""
}

// Returns a detailed version string.
//
// If this is a local build, returns "(local)". Otherwise, returns a string
// formatted as "<version> <git-commit> [<arch>]".
func VersionString() string {
	if IsLocal() {
		return defaultLocalBuild
	}
	return fmt.Sprintf("%s %s [%s]", Version(), GitCommit(), runtime.GOARCH)
}
