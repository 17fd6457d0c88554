package mcpdemo

import (
	"fmt"
	"runtime"
)

var (
	// version is set via ldflags during build.
	// For development builds, this will show "dev".
	version = "dev"

	// commit is the git short hash, set via ldflags during build.
	commit = "unknown"

	// buildTime is the RFC3339 build timestamp, set via ldflags during build.
	buildTime = "unknown"
)

// Version returns the compiled version or 'dev' if run from source.
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from.
func Commit() string {
	return commit
}

// BuildTime returns the build timestamp in RFC3339 format.
func BuildTime() string {
	return buildTime
}

// GoVersion returns the Go runtime version the binary was built with.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent returns the User-Agent string to use for outbound HTTP calls.
func UserAgent() string {
	return fmt.Sprintf("mcp-demo/%s", version)
}

// BuildInfo returns a human-readable summary of all build metadata.
func BuildInfo() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuild Time: %s\nGo Version: %s",
		Version(), Commit(), BuildTime(), GoVersion())
}
