// Package version holds the application version string.
// Overridden at build time via -ldflags "-X .../internal/version.Version=x.y.z".
package version

// Version is the application version.
var Version = "0.3.0"
