package core

import (
	"errors"
	"iter"
)

// ErrAllocationFailure is returned when storage for a new node cannot be
// obtained. The operation that returns it leaves the sequence unchanged.
var ErrAllocationFailure = errors.New("allocation failure")

// Sequence is an ordered collection of integers that grows at the front.
type Sequence interface {
	// InsertFront makes v the first element. On ErrAllocationFailure the
	// sequence is unchanged.
	InsertFront(v int) error
	// Remove deletes the first element equal to v, reporting whether one
	// was found.
	Remove(v int) bool
	// All yields the elements from first to last.
	All() iter.Seq[int]
	Len() int
	Clear()
	String() string
}

// Collect drains s into a slice. An empty sequence yields an empty,
// non-nil slice so JSON output renders [] rather than null.
func Collect(s Sequence) []int {
	out := make([]int, 0, s.Len())
	for v := range s.All() {
		out = append(out, v)
	}
	return out
}
