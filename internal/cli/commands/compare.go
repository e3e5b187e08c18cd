package commands

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/leapstack-labs/dynlist/internal/cli/config"
	"github.com/leapstack-labs/dynlist/internal/cli/output"
	"github.com/leapstack-labs/dynlist/internal/scenario"
	"github.com/leapstack-labs/dynlist/pkg/core"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// NewCompareCommand creates the compare command.
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <scenario>",
		Short: "Run a scenario on the linked list and the static array side by side",
		Long: `Run the same scenario against a dynamic linked list and a fixed-capacity
array, then report step by step whether both produced the same list.

The static array gets --capacity slots (16 unless configured). With
--capacity 0 it gets one slot per insertion in the scenario. Once it is full
it refuses insertions the linked list may still accept, which shows up as a
divergence.

The report ends with the trade-offs between the two structures.`,
		Example: `  # Compare both backends
  dynlist compare scenarios/tutorial.yaml

  # Make the array too small on purpose
  dynlist compare scenarios/tutorial.yaml --capacity 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, args[0])
		},
	}
	return cmd
}

func runCompare(cmd *cobra.Command, path string) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	s, err := scenario.LoadFile(path)
	if err != nil {
		return err
	}

	cfg := *cmdCtx.Cfg
	if cfg.Capacity == 0 {
		cfg.Capacity = countInserts(s)
	}

	result, err := compareBackends(cmd, cmdCtx, &cfg, s)
	if err != nil {
		return err
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(result)
	}

	r.Header(1, "Compare: "+result.Scenario)
	r.KeyValue("Static capacity", strconv.Itoa(result.Capacity))
	if r.EffectiveMode() == output.ModeText {
		r.Println("")
	}

	rows := make([][]string, 0, len(result.Steps))
	for _, st := range result.Steps {
		agree := "yes"
		if !st.Agree {
			agree = "NO"
		}
		rows = append(rows, []string{
			strconv.Itoa(st.Index),
			st.Op,
			output.FormatValues(st.Linked),
			output.FormatValues(st.Static),
			st.Outcome,
			agree,
		})
	}
	r.Table([]string{"#", "Operation", "Linked", "Static", "Outcome", "Agree"}, rows)

	r.Header(2, "Static array vs linked list")
	traits := make([][]string, 0, len(result.Comparison))
	for _, t := range result.Comparison {
		traits = append(traits, []string{t.Name, t.Static, t.Dynamic})
	}
	r.Table([]string{"Feature", "Static array", "Linked list"}, traits)

	if result.Agree {
		r.Success("both backends agree on every step")
	} else {
		r.Warning("backends diverged: one of them refused an insertion")
	}
	return nil
}

// compareBackends runs s on fresh linked and static sequences concurrently.
// The two runs share nothing but the scenario, which is read-only.
func compareBackends(cmd *cobra.Command, cmdCtx *CommandContext, cfg *config.Config, s *scenario.Scenario) (*output.CompareOutput, error) {
	var linked, static *scenario.Trace

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		t, err := cmdCtx.Runner.Run(ctx, s, NewSequence(cfg, core.BackendLinked), core.BackendLinked)
		linked = t
		return err
	})
	g.Go(func() error {
		t, err := cmdCtx.Runner.Run(ctx, s, NewSequence(cfg, core.BackendStatic), core.BackendStatic)
		static = t
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compare backends: %w", err)
	}

	return zipTraces(s.Name, cfg.Capacity, linked, static), nil
}

// zipTraces pairs the steps of two runs of the same scenario.
func zipTraces(name string, capacity int, linked, static *scenario.Trace) *output.CompareOutput {
	out := &output.CompareOutput{
		Scenario:   name,
		Capacity:   capacity,
		Agree:      true,
		Steps:      make([]output.CompareStep, 0, len(linked.Steps)),
		Comparison: core.Comparison(),
	}
	for i, ls := range linked.Steps {
		ss := static.Steps[i]
		st := output.CompareStep{
			Index:   ls.Index,
			Op:      ls.Op.String(),
			Linked:  ls.Values,
			Static:  ss.Values,
			Outcome: string(ls.Outcome),
			Agree:   ls.Outcome == ss.Outcome && slices.Equal(ls.Values, ss.Values),
		}
		if ls.Outcome != ss.Outcome {
			st.Outcome = string(ls.Outcome) + " / " + string(ss.Outcome)
		}
		if !st.Agree {
			out.Agree = false
		}
		out.Steps = append(out.Steps, st)
	}
	return out
}

func countInserts(s *scenario.Scenario) int {
	n := 0
	for _, op := range s.Ops {
		if op.Kind == scenario.KindInsert {
			n++
		}
	}
	return n
}
