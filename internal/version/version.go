package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version of the build.
	Version = "0.1.0"
	// Commit is the short git SHA of the build.
	Commit = "none"
	// BuildTime is the UTC build timestamp.
	BuildTime = "unknown"
)

// Short returns only the semantic version string.
func Short() string {
	return Version
}

// Full returns version, commit, build time and toolchain on one line.
func Full() string {
	return fmt.Sprintf("alarm-clock %s (commit %s, built %s, %s %s/%s)",
		Version, Commit, BuildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
