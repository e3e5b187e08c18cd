package commands

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/dynlist/internal/cli/output"
	"github.com/leapstack-labs/dynlist/internal/scenario"
	"github.com/leapstack-labs/dynlist/pkg/core"
	"github.com/leapstack-labs/dynlist/pkg/list"
	"github.com/spf13/cobra"
)

const replPrompt = "dynlist> "

// errQuit ends a REPL session.
var errQuit = errors.New("quit")

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Manipulate a list interactively",
		Long: `Start an interactive shell holding one list.

Commands:
  insert N   (i)   insert N at the front
  remove N   (rm)  remove the first N from the front
  print      (p)   print the chain
  len              number of nodes
  clear            remove every node
  stats            arena slot usage (linked backend)
  .help            show this help
  .quit, .exit     leave the shell`,
		Args: cobra.NoArgs,
		RunE: runREPL,
	}
	return cmd
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	session := NewSession(NewSequence(cmdCtx.Cfg, cmdCtx.Cfg.Backend), cmdCtx.Renderer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replPrompt,
		HistoryFile:     cmdCtx.Cfg.HistoryFile,
		AutoComplete:    replCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
		Stdout:          cmd.OutOrStdout(),
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "dynlist REPL (backend: %s)\n", cmdCtx.Cfg.Backend)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if err := session.Exec(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			cmdCtx.Renderer.Error(err.Error())
		}
	}
}

func replCompleter() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("insert"),
		readline.PcItem("remove"),
		readline.PcItem("print"),
		readline.PcItem("len"),
		readline.PcItem("clear"),
		readline.PcItem("stats"),
		readline.PcItem(".help"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}

// Session holds the list a REPL operates on.
type Session struct {
	seq core.Sequence
	r   *output.Renderer
}

// NewSession creates a session over seq writing through r.
func NewSession(seq core.Sequence, r *output.Renderer) *Session {
	return &Session{seq: seq, r: r}
}

// Exec runs one input line. It returns errQuit for .quit and .exit.
func (s *Session) Exec(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch cmd := strings.ToLower(fields[0]); cmd {
	case ".quit", ".exit":
		return errQuit
	case ".help", "help":
		s.r.Println("insert N | remove N | print | len | clear | stats | .quit")
		return nil
	case "insert", "i", "remove", "rm":
		if len(fields) != 2 {
			return fmt.Errorf("usage: %s N", cmd)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("not an integer: %q", fields[1])
		}
		kind := scenario.KindInsert
		if cmd == "remove" || cmd == "rm" {
			kind = scenario.KindRemove
		}
		return s.apply(scenario.Op{Kind: kind, Value: v})
	case "print", "p":
		s.r.Println(s.r.Chain(core.Collect(s.seq)))
		return nil
	case "len":
		s.r.Println(strconv.Itoa(s.seq.Len()))
		return nil
	case "clear":
		return s.apply(scenario.Op{Kind: scenario.KindClear})
	case "stats":
		l, ok := s.seq.(*list.List[int])
		if !ok {
			return errors.New("stats are only available for the linked backend")
		}
		st := l.Stats()
		s.r.Printf("len=%d slots=%d free=%d limit=%d\n", st.Len, st.Slots, st.Free, st.Limit)
		return nil
	default:
		return fmt.Errorf("unknown command: %s (type .help for commands)", cmd)
	}
}

func (s *Session) apply(op scenario.Op) error {
	outcome, err := scenario.Apply(s.seq, op)
	if err != nil {
		return err
	}
	switch outcome {
	case scenario.OutcomeAllocationFailure:
		s.r.Warning(fmt.Sprintf("%s: no free slot, list unchanged", op))
	case scenario.OutcomeNotFound:
		s.r.Println(fmt.Sprintf("%d not found", op.Value))
	default:
		s.r.Println(s.r.Chain(core.Collect(s.seq)))
	}
	return nil
}
