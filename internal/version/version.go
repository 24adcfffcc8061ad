// Package version carries build metadata for the canview tooling binaries.
package version

import "github.com/fatih/color"

// Build metadata, overridable at build time via -ldflags, e.g.
//
//	-ldflags "-X canviewtools/internal/version.Number=0.3.0"
var (
	// Number is the plain semantic version shared by both binaries.
	Number = "0.2.0"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Version is the string cobra reports for --version: the accented version
// number, with the commit hash appended when the build recorded one.
var Version = render()

func render() string {
	v := color.New(color.FgCyan, color.Bold).Sprint(Number)
	if GitCommit != "" {
		v += " (" + GitCommit + ")"
	}
	return v
}
