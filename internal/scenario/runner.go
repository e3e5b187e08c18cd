package scenario

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/leapstack-labs/dynlist/pkg/core"
)

// Outcome describes what an operation did.
type Outcome string

// Operation outcomes.
const (
	OutcomeInserted          Outcome = "inserted"
	OutcomeAllocationFailure Outcome = "allocation_failure"
	OutcomeRemoved           Outcome = "removed"
	OutcomeNotFound          Outcome = "not_found"
	OutcomePrinted           Outcome = "printed"
	OutcomeCleared           Outcome = "cleared"
)

// Step is the result of one applied operation.
type Step struct {
	Index   int     `json:"index"`
	Op      Op      `json:"op"`
	Outcome Outcome `json:"outcome"`
	Values  []int   `json:"values"`
	// Rendered holds the printed chain for print steps.
	Rendered string `json:"rendered,omitempty"`
}

// Trace is the record of one scenario run.
type Trace struct {
	RunID    string        `json:"run_id"`
	Scenario string        `json:"scenario"`
	Backend  string        `json:"backend"`
	Steps    []Step        `json:"steps"`
	Final    []int         `json:"final"`
	Failures int           `json:"allocation_failures"`
	Elapsed  time.Duration `json:"elapsed_ns"`
}

// Printed returns the rendered chains of every print step, in order.
func (t *Trace) Printed() []string {
	var out []string
	for _, s := range t.Steps {
		if s.Outcome == OutcomePrinted {
			out = append(out, s.Rendered)
		}
	}
	return out
}

// Apply performs op on seq. Allocation failures are reported as an outcome,
// not an error; the only error is an unknown operation kind.
func Apply(seq core.Sequence, op Op) (Outcome, error) {
	switch op.Kind {
	case KindInsert:
		if err := seq.InsertFront(op.Value); err != nil {
			if errors.Is(err, core.ErrAllocationFailure) {
				return OutcomeAllocationFailure, nil
			}
			return "", err
		}
		return OutcomeInserted, nil
	case KindRemove:
		if seq.Remove(op.Value) {
			return OutcomeRemoved, nil
		}
		return OutcomeNotFound, nil
	case KindPrint:
		return OutcomePrinted, nil
	case KindClear:
		seq.Clear()
		return OutcomeCleared, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownOp, op.Kind)
	}
}

// Runner replays scenarios and logs each step.
type Runner struct {
	logger *slog.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{logger: logger}
}

// Run applies every operation of s to seq in order. seq is used as given;
// callers pass a fresh sequence for an independent run.
func (r *Runner) Run(ctx context.Context, s *Scenario, seq core.Sequence, backend core.Backend) (*Trace, error) {
	start := time.Now()
	trace := &Trace{
		RunID:    uuid.NewString(),
		Scenario: s.Name,
		Backend:  backend.String(),
		Steps:    make([]Step, 0, len(s.Ops)),
	}
	logger := r.logger.With(
		slog.String("run_id", trace.RunID),
		slog.String("scenario", s.Name),
		slog.String("backend", backend.String()),
	)

	for i, op := range s.Ops {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scenario interrupted at step %d: %w", i, err)
		}

		outcome, err := Apply(seq, op)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, op, err)
		}

		step := Step{Index: i, Op: op, Outcome: outcome, Values: core.Collect(seq)}
		if outcome == OutcomePrinted {
			step.Rendered = seq.String()
		}
		if outcome == OutcomeAllocationFailure {
			trace.Failures++
			logger.Warn("allocation failed, list unchanged", slog.Int("step", i), slog.Int("value", op.Value))
		}
		logger.Debug("applied operation",
			slog.Int("step", i),
			slog.String("op", op.String()),
			slog.String("outcome", string(outcome)),
			slog.Int("len", seq.Len()),
		)
		trace.Steps = append(trace.Steps, step)
	}

	trace.Final = core.Collect(seq)
	trace.Elapsed = time.Since(start)
	logger.Info("scenario complete",
		slog.Int("steps", len(trace.Steps)),
		slog.Int("len", len(trace.Final)),
		slog.Int("allocation_failures", trace.Failures),
		slog.Duration("elapsed", trace.Elapsed),
	)
	return trace, nil
}
