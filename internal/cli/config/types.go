// Package config provides configuration management for the dynlist CLI.
//
// Values are layered, lowest to highest precedence: built-in defaults,
// dynlist.yaml, DYNLIST_* environment variables, then explicitly set flags.
package config

import (
	"log/slog"
	"time"

	"github.com/leapstack-labs/dynlist/pkg/core"
)

// Config holds all CLI configuration options.
type Config struct {
	// Backend selects the Sequence implementation (linked or static).
	Backend core.Backend `koanf:"backend"`
	// Limit caps the linked list's node slots. Zero means unbounded.
	Limit int `koanf:"limit"`
	// Capacity is the static list's fixed size.
	Capacity      int           `koanf:"capacity"`
	OutputFormat  string        `koanf:"output"`
	Verbose       bool          `koanf:"verbose"`
	LogLevel      slog.Level    `koanf:"log_level"`
	HistoryFile   string        `koanf:"history_file"`
	WatchDebounce time.Duration `koanf:"watch_debounce"`
}

// Output modes accepted by the output key.
var validOutputs = []string{"auto", "text", "markdown", "json"}

// EffectiveLogLevel returns the level the logger should use; verbose forces debug.
func (c *Config) EffectiveLogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return c.LogLevel
}
