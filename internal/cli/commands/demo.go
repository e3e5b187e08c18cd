package commands

import (
	"fmt"
	"strconv"

	"github.com/leapstack-labs/dynlist/internal/cli/output"
	"github.com/leapstack-labs/dynlist/internal/scenario"
	"github.com/spf13/cobra"
)

// DemoOptions holds options for the demo command.
type DemoOptions struct {
	Values []int
}

// NewDemoCommand creates the demo command.
func NewDemoCommand() *cobra.Command {
	opts := &DemoOptions{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build a list by inserting at the front and print it",
		Long: `Create an empty list, insert each value at the front, then print the chain.

With no values this is the classic example: inserting 10, 20 and 30
prints 30 -> 20 -> 10 -> NULL, since head-insertion reverses the order.`,
		Example: `  # The classic three-node list
  dynlist demo

  # Your own values on the static backend
  dynlist demo --values 1,2,3,4 --backend static

  # Machine-readable output
  dynlist demo -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, opts)
		},
	}

	cmd.Flags().IntSliceVar(&opts.Values, "values", nil, "Values to insert, in order (default 10,20,30)")

	return cmd
}

func runDemo(cmd *cobra.Command, opts *DemoOptions) error {
	cmdCtx := NewCommandContext(cmd)
	r := cmdCtx.Renderer

	seq := NewSequence(cmdCtx.Cfg, cmdCtx.Cfg.Backend)
	trace, err := cmdCtx.Runner.Run(cmd.Context(), scenario.Demo(opts.Values...), seq, cmdCtx.Cfg.Backend)
	if err != nil {
		return fmt.Errorf("failed to run demo: %w", err)
	}

	if r.EffectiveMode() == output.ModeJSON {
		return r.JSON(output.DemoOutput{
			Backend: trace.Backend,
			Chain:   output.FormatChain(trace.Final),
			Values:  trace.Final,
			Len:     len(trace.Final),
			Arena:   arenaInfo(seq),
		})
	}

	if r.EffectiveMode() == output.ModeText {
		r.Println(r.Chain(trace.Final))
	} else {
		r.Header(1, "Demo")
		r.KeyValue("Backend", trace.Backend)
		r.KeyValue("Chain", "`"+output.FormatChain(trace.Final)+"`")
		r.KeyValue("Length", strconv.Itoa(len(trace.Final)))
	}

	if trace.Failures > 0 {
		r.Warning(fmt.Sprintf("%d insertion(s) failed: no free slot (list left unchanged)", trace.Failures))
	}
	return nil
}
