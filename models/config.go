// Package models defines data structures for configuration and input modes.
package models

// Config holds runtime configuration for a counting run.
// All values come from CLI flags, not config files or environment variables.
type Config struct {
	Paths       []string
	WorkerCount int
	Mode        ScanMode
}
