// Package version exposes build metadata injected at link time.
package version

// Set via -ldflags "-X github.com/kestrel-ai/kestrel/pkg/version.GitCommit=..."
var (
	// Version is the semantic version of the build.
	Version = "dev"

	// GitCommit is the short commit hash of the build.
	GitCommit = "unknown"
)
