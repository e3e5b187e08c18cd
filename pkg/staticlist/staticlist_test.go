package staticlist

import (
	"slices"
	"testing"

	"github.com/leapstack-labs/dynlist/pkg/core"
	"github.com/leapstack-labs/dynlist/pkg/list"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertFront(t *testing.T) {
	l := New[int](3)
	for _, v := range []int{10, 20, 30} {
		require.NoError(t, l.InsertFront(v))
	}

	assert.Equal(t, []int{30, 20, 10}, slices.Collect(l.All()))
	assert.Equal(t, "30 -> 20 -> 10 -> NULL", l.String())

	err := l.InsertFront(40)
	require.ErrorIs(t, err, core.ErrAllocationFailure)
	assert.Equal(t, []int{30, 20, 10}, slices.Collect(l.All()))
}

func TestRemove(t *testing.T) {
	l := New[int](4)
	for _, v := range []int{1, 2, 1, 3} {
		require.NoError(t, l.InsertFront(v))
	}

	assert.True(t, l.Remove(1))
	assert.Equal(t, []int{3, 2, 1}, slices.Collect(l.All()))
	assert.False(t, l.Remove(99))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 0, l.items[:4][3], "vacated cell is zeroed")
}

func TestAt(t *testing.T) {
	l := New[int](2)
	require.NoError(t, l.InsertFront(5))
	require.NoError(t, l.InsertFront(6))

	v, ok := l.At(1)
	require.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = l.At(2)
	assert.False(t, ok)
	_, ok = l.At(-1)
	assert.False(t, ok)
}

func TestZeroCapacity(t *testing.T) {
	l := New[int](-3)
	assert.Equal(t, 0, l.Cap())
	assert.ErrorIs(t, l.InsertFront(1), core.ErrAllocationFailure)
	assert.Equal(t, "NULL", l.String())
}

func TestClear(t *testing.T) {
	l := New[int](2)
	require.NoError(t, l.InsertFront(1))
	l.Clear()

	assert.Equal(t, 0, l.Len())
	assert.Equal(t, 2, l.Cap())
	require.NoError(t, l.InsertFront(2))
}

// TestMatchesLinkedList checks that both backends agree on the same operations.
func TestMatchesLinkedList(t *testing.T) {
	type op struct {
		insert bool
		value  int
	}
	ops := []op{
		{true, 10}, {true, 20}, {true, 30}, {false, 20}, {false, 99},
		{true, 20}, {true, 10}, {false, 10}, {false, 30}, {true, 5},
	}

	static := New[int](8)
	linked := list.New[int]()
	for i, o := range ops {
		if o.insert {
			require.NoError(t, static.InsertFront(o.value))
			require.NoError(t, linked.InsertFront(o.value))
		} else {
			assert.Equal(t, linked.Remove(o.value), static.Remove(o.value), "step %d", i)
		}
		assert.Equal(t, linked.String(), static.String(), "step %d", i)
	}
}
