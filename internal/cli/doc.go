// Package cli defines the Cobra commands for the forge and harvest binaries.
// Commands only handle flag parsing, config resolution and error printing;
// the work is delegated to the forge and harvest packages.
package cli
