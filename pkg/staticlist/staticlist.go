// Package staticlist provides a fixed-capacity array list.
//
// It is the static counterpart of package list: storage is reserved up front,
// elements are reachable by index in constant time, and inserting at the
// front shifts every element. When the array is full, insertion fails with
// core.ErrAllocationFailure since a static array cannot grow.
package staticlist

import (
	"fmt"
	"iter"
	"strings"

	"github.com/leapstack-labs/dynlist/pkg/core"
)

// List is a fixed-capacity sequence of comparable values.
type List[T comparable] struct {
	items []T
}

// New creates an empty list with room for exactly capacity elements.
func New[T comparable](capacity int) *List[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &List[T]{items: make([]T, 0, capacity)}
}

// InsertFront shifts every element one place right and stores v at index 0.
func (l *List[T]) InsertFront(v T) error {
	if len(l.items) == cap(l.items) {
		return core.ErrAllocationFailure
	}
	l.items = l.items[:len(l.items)+1]
	copy(l.items[1:], l.items)
	l.items[0] = v
	return nil
}

// Remove deletes the first element equal to v, shifting the rest left.
func (l *List[T]) Remove(v T) bool {
	for i, x := range l.items {
		if x != v {
			continue
		}
		copy(l.items[i:], l.items[i+1:])
		var zero T
		l.items[len(l.items)-1] = zero
		l.items = l.items[:len(l.items)-1]
		return true
	}
	return false
}

// At returns the element at index i.
func (l *List[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// All returns an iterator over the elements in index order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range l.items {
			if !yield(v) {
				return
			}
		}
	}
}

// Len returns the number of stored elements.
func (l *List[T]) Len() int {
	return len(l.items)
}

// Cap returns the fixed capacity.
func (l *List[T]) Cap() int {
	return cap(l.items)
}

// Clear empties the list without releasing the array.
func (l *List[T]) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}

// String renders the elements in the same arrow notation as package list.
func (l *List[T]) String() string {
	var b strings.Builder
	for _, v := range l.items {
		fmt.Fprintf(&b, "%v -> ", v)
	}
	b.WriteString("NULL")
	return b.String()
}

var _ core.Sequence = (*List[int])(nil)
