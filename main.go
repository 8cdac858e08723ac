package main

import (
	"scipion-installer/cmd"
)

// main delegates to cmd.Execute, which parses flags and runs the installer.
//
// scipion-installer sets up a Scipion environment:
//   - creates an isolated environment (virtualenv by default, conda with -conda)
//   - clones the Scipion repositories and installs them in editable mode
//   - optionally fetches and builds the Xmipp bundle
//   - writes a scipion3 launcher that activates the environment before starting Scipion
//
// Every step is a shell command; they are chained with && and handed to /bin/sh
// in one go, so the first failure stops the rest.
func main() {
	cmd.Execute()
}
