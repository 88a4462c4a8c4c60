// Package constants holds process-wide defaults. The facts server and the
// wasm shim read APIVersion.
package constants

// Classic grid and box dimensions. No code in this repository reads
// these values, and variant puzzles are not restricted to them.
const (
	DefaultGridSize = 9
	DefaultBoxRows  = 3
	DefaultBoxCols  = 3
)

// API version
const APIVersion = "0.1.0"

// Default port for the facts HTTP server.
const DefaultPort = "8080"
