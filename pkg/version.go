// Package pkg holds build metadata shared by the CLI commands.
package pkg

var (
	// Version is set during build by ldflags.
	Version = "v0.1.0"

	// Build is the build timestamp, set during build by ldflags.
	Build = "n/a"
)
