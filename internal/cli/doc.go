// Package cli parses command-line arguments into an app.Config and defines
// the ExitError type the entrypoint maps to process exit codes.
package cli
