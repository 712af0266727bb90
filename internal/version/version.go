package version

import (
	"fmt"
	"runtime"
)

// AppName is the user-facing application name used in titles and logs.
const AppName = "Alarm Clock"

var (
	// Version is the semantic version of the build. It can be overridden via ldflags.
	Version = "1.0.0"
	// Commit is the short git SHA embedded at build time (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// Short returns only the semantic version string.
func Short() string {
	return Version
}

// Title returns the window title, e.g. "Alarm Clock 1.0.0".
func Title() string {
	return AppName + " " + Version
}

// Full returns a human-readable version string with commit, build time and platform.
func Full() string {
	return fmt.Sprintf("%s version: %s, commit: %s, built at: %s (%s/%s)",
		AppName, Version, Commit, BuildTime, runtime.GOOS, runtime.GOARCH)
}
