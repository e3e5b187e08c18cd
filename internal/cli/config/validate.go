package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/dynlist/pkg/core"
)

// Validate checks if the configuration is usable.
func (c *Config) Validate() error {
	backend, err := core.ParseBackend(string(c.Backend))
	if err != nil {
		return fmt.Errorf("%w\nHint: set backend in dynlist.yaml or pass --backend", err)
	}
	c.Backend = backend

	if c.Limit < 0 {
		return fmt.Errorf("limit must not be negative, got %d", c.Limit)
	}
	if c.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative, got %d", c.Capacity)
	}
	if c.Backend == core.BackendStatic && c.Capacity == 0 {
		return fmt.Errorf("the static backend needs a capacity greater than zero")
	}

	c.OutputFormat = strings.ToLower(c.OutputFormat)
	if c.OutputFormat == "" {
		c.OutputFormat = "auto"
	}
	if !slices.Contains(validOutputs, c.OutputFormat) {
		return fmt.Errorf("unknown output format %q (available: %s)", c.OutputFormat, strings.Join(validOutputs, ", "))
	}

	if c.WatchDebounce < 0 {
		return fmt.Errorf("watch_debounce must not be negative, got %s", c.WatchDebounce)
	}
	return nil
}
