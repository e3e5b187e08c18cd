// Package commands implements the dynlist subcommands.
package commands

import (
	"log/slog"

	"github.com/leapstack-labs/dynlist/internal/cli/config"
	"github.com/leapstack-labs/dynlist/internal/cli/output"
	"github.com/leapstack-labs/dynlist/internal/scenario"
	"github.com/leapstack-labs/dynlist/pkg/core"
	"github.com/leapstack-labs/dynlist/pkg/list"
	"github.com/leapstack-labs/dynlist/pkg/staticlist"
	"github.com/spf13/cobra"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
	Runner   *scenario.Runner
}

// NewCommandContext creates a CommandContext from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Mode(cfg.OutputFormat))

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
		Runner:   scenario.NewRunner(logger),
	}
}

// getConfig returns the current configuration, or defaults when no config
// was loaded (e.g. a command executed on its own in tests).
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}
	return config.Default()
}

// NewSequence builds an empty sequence for backend using the configured
// limit and capacity.
func NewSequence(cfg *config.Config, backend core.Backend) core.Sequence {
	if backend == core.BackendStatic {
		return staticlist.New[int](cfg.Capacity)
	}
	return list.New[int](list.WithLimit(cfg.Limit), list.WithCapacity(cfg.Capacity))
}

// arenaInfo reports slot usage when seq is a linked list.
func arenaInfo(seq core.Sequence) *output.ArenaInfo {
	l, ok := seq.(*list.List[int])
	if !ok {
		return nil
	}
	st := l.Stats()
	return &output.ArenaInfo{Slots: st.Slots, Free: st.Free, Limit: st.Limit}
}
