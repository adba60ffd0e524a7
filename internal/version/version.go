// Package version holds build metadata for taskflow.
package version

// Version is set at build time via -ldflags.
var Version = "0.1.0"

// Get returns the current build version.
func Get() string {
	return Version
}
