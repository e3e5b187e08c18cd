// Package scenario records sequences of list operations and replays them
// against a core.Sequence.
//
// Scenarios come from YAML documents, Starlark programs, or the built-in demo
// that inserts 10, 20 and 30 and prints the result.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Kind identifies an operation.
type Kind string

// Operation kinds.
const (
	KindInsert Kind = "insert"
	KindRemove Kind = "remove"
	KindPrint  Kind = "print"
	KindClear  Kind = "clear"
)

// Sentinel errors.
var (
	ErrUnknownOp         = errors.New("unknown operation")
	ErrUnsupportedFormat = errors.New("unsupported scenario format")
	ErrEmpty             = errors.New("scenario has no operations")
)

// Op is a single recorded operation. Value is ignored for print and clear.
type Op struct {
	Kind  Kind `json:"kind"`
	Value int  `json:"value,omitempty"`
}

// String returns "insert 10", "remove 20", "print" or "clear".
func (o Op) String() string {
	switch o.Kind {
	case KindInsert, KindRemove:
		return fmt.Sprintf("%s %d", o.Kind, o.Value)
	default:
		return string(o.Kind)
	}
}

// HasValue reports whether the operation carries an operand.
func (k Kind) HasValue() bool {
	return k == KindInsert || k == KindRemove
}

// ParseKind converts a string to a Kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(s)); k {
	case KindInsert, KindRemove, KindPrint, KindClear:
		return k, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownOp, s)
	}
}

// Scenario is a named, ordered list of operations.
type Scenario struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Ops         []Op   `json:"ops"`
}

// ParseError reports a malformed scenario file.
type ParseError struct {
	File    string
	Line    int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.File != "" {
		b.WriteString(e.File)
		if e.Line > 0 {
			fmt.Fprintf(&b, ":%d", e.Line)
		}
		b.WriteString(": ")
	}
	b.WriteString(e.Message)
	return b.String()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Demo returns the tutorial program: insert each value at the front, then
// print. With no values it uses 10, 20 and 30.
func Demo(values ...int) *Scenario {
	if len(values) == 0 {
		values = []int{10, 20, 30}
	}
	s := &Scenario{
		Name:        "demo",
		Description: "insert at the front, then print the chain",
		Ops:         make([]Op, 0, len(values)+1),
	}
	for _, v := range values {
		s.Ops = append(s.Ops, Op{Kind: KindInsert, Value: v})
	}
	s.Ops = append(s.Ops, Op{Kind: KindPrint})
	return s
}

// LoadFile reads a scenario, choosing the parser by extension.
func LoadFile(path string) (*Scenario, error) {
	content, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the user on the command line
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var s *Scenario
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		s, err = ParseYAML(content)
	case ".star":
		s, err = ParseStarlark(path, content)
	default:
		return nil, fmt.Errorf("%w: %q (use .yaml, .yml or .star)", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) && pe.File == "" {
			pe.File = path
		}
		return nil, err
	}

	if s.Name == "" {
		s.Name = name
	}
	return s, nil
}
