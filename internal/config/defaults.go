// Package config holds defaults and file names shared by every dynlist
// entry point.
package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default configuration values.
const (
	DefaultBackend        = "linked"
	DefaultLimit          = 0 // unbounded
	DefaultCapacity       = 16
	DefaultOutput         = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultLogLevel       = "warn"
	DefaultWatchDebounce  = 100 * time.Millisecond
	DefaultHistoryFileRel = ".dynlist_history"
)

// Config file names, in lookup order.
const (
	ConfigFileName    = "dynlist.yaml"
	ConfigFileNameAlt = "dynlist.yml"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "DYNLIST_"

// FindConfigFile returns the config file in dir, or "" when there is none.
func FindConfigFile(dir string) string {
	for _, name := range []string{ConfigFileName, ConfigFileNameAlt} {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// DefaultHistoryFile returns the REPL history path in the user's home
// directory, or a file in the working directory when home is unknown.
func DefaultHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return DefaultHistoryFileRel
	}
	return filepath.Join(home, DefaultHistoryFileRel)
}
