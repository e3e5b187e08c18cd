package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/leapstack-labs/dynlist/internal/cli/output"
	"github.com/leapstack-labs/dynlist/internal/scenario"
	"github.com/spf13/cobra"
)

// RunOptions holds options for the run command.
type RunOptions struct {
	Watch bool
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}
	cmd := &cobra.Command{
		Use:   "run <scenario>",
		Short: "Replay a scenario file against a list",
		Long: `Replay the operations of a scenario file against a fresh list and show
what every step did.

Scenario files are YAML:

  name: tutorial
  ops:
    - insert: 10
    - insert: 20
    - remove: 10
    - print: true

or Starlark programs (.star) calling insert_front(v), remove(v), traverse(),
print_list() and clear().

An insertion that finds no free node slot (see --limit and --capacity) is
reported as an allocation failure and leaves the list unchanged.`,
		Example: `  # Replay a YAML scenario
  dynlist run scenarios/tutorial.yaml

  # Re-run whenever the file changes
  dynlist run scenarios/loop.star --watch

  # Force allocation failures with a tiny arena
  dynlist run scenarios/tutorial.yaml --limit 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Watch, "watch", "w", false, "Re-run when the scenario file changes")

	return cmd
}

func runScenario(cmd *cobra.Command, path string, opts *RunOptions) error {
	cmdCtx := NewCommandContext(cmd)

	once := func(ctx context.Context) error {
		s, err := scenario.LoadFile(path)
		if err != nil {
			return err
		}
		seq := NewSequence(cmdCtx.Cfg, cmdCtx.Cfg.Backend)
		trace, err := cmdCtx.Runner.Run(ctx, s, seq, cmdCtx.Cfg.Backend)
		if err != nil {
			return fmt.Errorf("failed to run scenario: %w", err)
		}
		return renderTrace(cmdCtx.Renderer, s, trace)
	}

	if !opts.Watch {
		return once(cmd.Context())
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmdCtx.Renderer.Warning(fmt.Sprintf("watching %s (Ctrl+C to stop)", path))
	return scenario.Watch(ctx, path, cmdCtx.Cfg.WatchDebounce, cmdCtx.Logger, func() error {
		// Errors are shown rather than returned so watching continues.
		if err := once(ctx); err != nil {
			cmdCtx.Renderer.Error(err.Error())
		}
		return nil
	})
}

// renderTrace writes a scenario trace in the renderer's mode.
func renderTrace(r *output.Renderer, s *scenario.Scenario, trace *scenario.Trace) error {
	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(output.RunOutput{Description: s.Description, Trace: trace})
	}

	r.Header(1, "Scenario: "+trace.Scenario)
	if s.Description != "" {
		r.KeyValue("Description", s.Description)
	}
	r.KeyValue("Backend", trace.Backend)
	if r.EffectiveMode() == output.ModeText {
		r.Println("")
	}

	rows := make([][]string, 0, len(trace.Steps))
	for _, st := range trace.Steps {
		rows = append(rows, []string{
			strconv.Itoa(st.Index),
			st.Op.String(),
			r.Label(string(st.Outcome)),
			output.FormatChain(st.Values),
		})
	}
	r.Table([]string{"#", "Operation", "Outcome", "List"}, rows)

	for _, printed := range trace.Printed() {
		r.Println(printed)
	}
	if len(trace.Printed()) > 0 {
		r.Println("")
	}

	r.KeyValue("Final", output.FormatValues(trace.Final))
	r.KeyValue("Length", strconv.Itoa(len(trace.Final)))
	if trace.Failures > 0 {
		r.Warning(fmt.Sprintf("%d allocation failure(s); those insertions left the list unchanged", trace.Failures))
	}
	return nil
}
