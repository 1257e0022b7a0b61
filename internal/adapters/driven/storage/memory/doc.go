// Package memory provides in-memory implementations of driven ports.
// They back the CLI and TUI tests and let the core run without touching
// the filesystem.
package memory
