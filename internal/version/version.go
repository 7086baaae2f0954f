// Package version provides build-time version information for colourcount.
// Version information is injected at build time using ldflags.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version of the application.
	// Injected at build time via: -ldflags "-X github.com/jmylchreest/colourcount/internal/version.Version=x.y.z".
	Version = "dev"

	// Commit is the git commit hash of the build.
	Commit = "unknown"

	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

// String returns a human-readable version string.
func String() string {
	platform := fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	if Commit != "unknown" && Date != "unknown" {
		commit := Commit
		if len(commit) > 8 {
			commit = commit[:8]
		}
		return fmt.Sprintf("colourcount version %s (commit: %s, built: %s, %s, %s)",
			Version, commit, Date, runtime.Version(), platform)
	}
	return fmt.Sprintf("colourcount version %s (%s, %s)", Version, runtime.Version(), platform)
}

// Short returns a short version string suitable for CLI output.
func Short() string {
	return Version
}
