package scenario

import (
	"context"
	"testing"

	"github.com/leapstack-labs/dynlist/pkg/core"
	"github.com/leapstack-labs/dynlist/pkg/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStarlark(t *testing.T) {
	src := `
name = "loop"
description = "inserts in a loop and removes what traverse reports"

for v in [10, 20, 30]:
    insert_front(v)

print_list()

values = traverse()
if values[0] == 30:
    remove(20)

if not remove(99):
    print_list()
`
	s, err := ParseStarlark("loop.star", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, "loop", s.Name)
	assert.Equal(t, "inserts in a loop and removes what traverse reports", s.Description)
	assert.Equal(t, []Op{
		{Kind: KindInsert, Value: 10},
		{Kind: KindInsert, Value: 20},
		{Kind: KindInsert, Value: 30},
		{Kind: KindPrint},
		{Kind: KindRemove, Value: 20},
		{Kind: KindRemove, Value: 99},
		{Kind: KindPrint},
	}, s.Ops)
}

func TestParseStarlark_Clear(t *testing.T) {
	src := `
insert_front(1)
clear()
if len(traverse()) == 0:
    insert_front(2)
`
	s, err := ParseStarlark("clear.star", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, []Op{
		{Kind: KindInsert, Value: 1},
		{Kind: KindClear},
		{Kind: KindInsert, Value: 2},
	}, s.Ops)
}

func TestParseStarlark_Errors(t *testing.T) {
	tests := []struct {
		name      string
		src       string
		errSubstr string
	}{
		{name: "syntax error", src: "insert_front(", errSubstr: "starlark execution error"},
		{name: "wrong argument type", src: `insert_front("ten")`, errSubstr: "insert_front"},
		{name: "missing argument", src: "remove()", errSubstr: "remove"},
		{name: "no operations", src: "x = 1", errSubstr: "no operations"},
		{name: "runaway loop", src: "while True:\n    pass\n", errSubstr: "starlark execution error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStarlark("bad.star", []byte(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
		})
	}
}

func TestParseStarlark_AnswersForUnboundedList(t *testing.T) {
	src := `
insert_front(1)
insert_front(2)
if remove(2):
    print_list()
`
	s, err := ParseStarlark("bounded.star", []byte(src))
	require.NoError(t, err)
	assert.Equal(t, []Op{
		{Kind: KindInsert, Value: 1},
		{Kind: KindInsert, Value: 2},
		{Kind: KindRemove, Value: 2},
		{Kind: KindPrint},
	}, s.Ops)

	trace, err := NewRunner(nil).Run(context.Background(), s, list.New[int](list.WithLimit(1)), core.BackendLinked)
	require.NoError(t, err)

	var outcomes []Outcome
	for _, st := range trace.Steps {
		outcomes = append(outcomes, st.Outcome)
	}
	assert.Equal(t, []Outcome{
		OutcomeInserted,
		OutcomeAllocationFailure,
		OutcomeNotFound,
		OutcomePrinted,
	}, outcomes)
	assert.Equal(t, []int{1}, trace.Final)
}
