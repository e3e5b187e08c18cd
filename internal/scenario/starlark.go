package scenario

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/dynlist/pkg/list"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// maxStarlarkSteps bounds script execution so a runaway loop cannot hang the CLI.
const maxStarlarkSteps = 1_000_000

// recorder collects the operations a Starlark script performs. It mirrors
// them on a private unbounded list so remove() and traverse() can answer with
// the values the scenario would hold at that point. A scenario is recorded
// once and replayed on any backend, so the mirror never models a limit or a
// fixed capacity.
type recorder struct {
	ops    []Op
	shadow *list.List[int]
}

func (r *recorder) record(op Op) {
	r.ops = append(r.ops, op)
}

// ParseStarlark executes a Starlark program and records the operations it
// performs through these predeclared builtins:
//
//	insert_front(v)   record an insertion
//	remove(v)         record a removal, returns True if v was present
//	traverse()        returns the current values as a list
//	print_list()      record a print step
//	clear()           record a teardown
//
// remove and traverse answer for an unbounded list where every insertion
// succeeds. Replayed against a list with a limit, or a full static array, an
// insertion can fail, and the run's trace then differs from what the script
// saw while it was recorded.
//
// Globals named "name" and "description" set the scenario metadata.
func ParseStarlark(filename string, src []byte) (*Scenario, error) {
	rec := &recorder{shadow: list.New[int]()}

	thread := &starlark.Thread{
		Name: "scenario:" + filename,
		Print: func(_ *starlark.Thread, _ string) {
			// Script output is not part of the scenario
		},
	}
	thread.SetMaxExecutionSteps(maxStarlarkSteps)

	predeclared := starlark.StringDict{
		"insert_front": starlark.NewBuiltin("insert_front", rec.insertFront),
		"remove":       starlark.NewBuiltin("remove", rec.remove),
		"traverse":     starlark.NewBuiltin("traverse", rec.traverse),
		"print_list":   starlark.NewBuiltin("print_list", rec.printList),
		"clear":        starlark.NewBuiltin("clear", rec.clear),
	}

	opts := &syntax.FileOptions{
		While:           true,
		TopLevelControl: true,
	}
	globals, err := starlark.ExecFileOptions(opts, thread, filename, src, predeclared)
	if err != nil {
		msg := err.Error()
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			msg = evalErr.Backtrace()
		}
		return nil, &ParseError{Message: fmt.Sprintf("starlark execution error: %s", msg), Err: err}
	}

	if len(rec.ops) == 0 {
		return nil, &ParseError{Message: ErrEmpty.Error(), Err: ErrEmpty}
	}

	s := &Scenario{Ops: rec.ops}
	if v, ok := globals["name"].(starlark.String); ok {
		s.Name = string(v)
	}
	if v, ok := globals["description"].(starlark.String); ok {
		s.Description = string(v)
	}
	return s, nil
}

func (r *recorder) insertFront(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &v); err != nil {
		return nil, err
	}
	r.record(Op{Kind: KindInsert, Value: v})
	_ = r.shadow.InsertFront(v)
	return starlark.None, nil
}

func (r *recorder) remove(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var v int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &v); err != nil {
		return nil, err
	}
	r.record(Op{Kind: KindRemove, Value: v})
	return starlark.Bool(r.shadow.Remove(v)), nil
}

func (r *recorder) traverse(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	elems := make([]starlark.Value, 0, r.shadow.Len())
	for v := range r.shadow.All() {
		elems = append(elems, starlark.MakeInt(v))
	}
	return starlark.NewList(elems), nil
}

func (r *recorder) printList(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	r.record(Op{Kind: KindPrint})
	return starlark.None, nil
}

func (r *recorder) clear(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	r.record(Op{Kind: KindClear})
	r.shadow.Clear()
	return starlark.None, nil
}
