// Package app wires the application together: configuration, logging, board
// loading, state-space exploration and the export/serve outputs.
package app
