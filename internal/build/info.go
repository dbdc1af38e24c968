// Package build exposes build-time metadata injected via ldflags.
package build

import "fmt"

// Version, Commit, and Branch are set at build time by:
//
//	-ldflags "-X github.com/codellyson/moodmingle/internal/build.Version=... ..."
var (
	Version = "dev"
	Commit  = "unknown"
	Branch  = "unknown"
)

// String formats the build metadata for the version command.
func String() string {
	return fmt.Sprintf("moodmingle %s (commit %s, branch %s)", Version, Commit, Branch)
}
