package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseYAML(t *testing.T) {
	content := []byte(`
name: tutorial
description: the three-node example
ops:
  - insert: 10
  - insert: 20
  - insert: 30
  - print: true
  - remove: 20
  - clear: true
`)

	s, err := ParseYAML(content)
	require.NoError(t, err)

	assert.Equal(t, "tutorial", s.Name)
	assert.Equal(t, "the three-node example", s.Description)
	assert.Equal(t, []Op{
		{Kind: KindInsert, Value: 10},
		{Kind: KindInsert, Value: 20},
		{Kind: KindInsert, Value: 30},
		{Kind: KindPrint},
		{Kind: KindRemove, Value: 20},
		{Kind: KindClear},
	}, s.Ops)
}

func TestParseYAML_Errors(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		errSubstr string
		sentinel  error
	}{
		{
			name:      "empty document",
			content:   "",
			errSubstr: "no operations",
			sentinel:  ErrEmpty,
		},
		{
			name:      "no ops",
			content:   "name: nothing\nops: []\n",
			errSubstr: "no operations",
			sentinel:  ErrEmpty,
		},
		{
			name:      "unknown op",
			content:   "ops:\n  - append: 1\n",
			errSubstr: "unknown operation",
			sentinel:  ErrUnknownOp,
		},
		{
			name:      "non-integer operand",
			content:   "ops:\n  - insert: ten\n",
			errSubstr: "needs an integer",
		},
		{
			name:      "missing operand",
			content:   "ops:\n  - insert:\n",
			errSubstr: "insert needs an integer, got nothing",
		},
		{
			name:      "null operand",
			content:   "ops:\n  - remove: null\n",
			errSubstr: "remove needs an integer, got nothing",
		},
		{
			name:      "print false",
			content:   "ops:\n  - insert: 1\n  - print: false\n",
			errSubstr: "print takes true",
		},
		{
			name:      "clear with a number",
			content:   "ops:\n  - clear: 1\n",
			errSubstr: "clear takes true",
		},
		{
			name:      "print without value",
			content:   "ops:\n  - print:\n",
			errSubstr: "print takes true",
		},
		{
			name:      "two keys in one op",
			content:   "ops:\n  - insert: 1\n    remove: 2\n",
			errSubstr: "single-key mapping",
		},
		{
			name:      "scalar op",
			content:   "ops:\n  - print\n",
			errSubstr: "single-key mapping",
		},
		{
			name:      "unknown top-level field",
			content:   "title: x\nops:\n  - print: true\n",
			errSubstr: "invalid YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errSubstr)
			if tt.sentinel != nil {
				assert.ErrorIs(t, err, tt.sentinel)
			}
		})
	}
}

func TestParseYAML_ErrorLine(t *testing.T) {
	_, err := ParseYAML([]byte("ops:\n  - insert: 1\n  - pop: 2\n"))
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 3, pe.Line)
}
