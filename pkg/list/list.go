// Package list provides a singly linked list whose nodes live in an arena.
//
// Nodes are stored in a growable slice and linked by position. Slots released
// by Remove or Clear go on a free-list and are reused before the arena grows.
// A limit bounds the number of slots; an insertion that cannot obtain one
// fails with core.ErrAllocationFailure and leaves the list unchanged.
//
// The zero value is an empty, unbounded list ready to use. A List is not safe
// for concurrent use.
package list

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/leapstack-labs/dynlist/pkg/core"
)

// ErrCorrupt is returned by Validate when the chain breaks an invariant.
var ErrCorrupt = errors.New("corrupt list")

// none terminates a chain. Links are 1-based so the zero value of List is an
// empty list.
const none = 0

type node[T comparable] struct {
	value T
	next  int
}

// List is a singly linked list of comparable values.
type List[T comparable] struct {
	nodes  []node[T]
	head   int
	free   int
	length int
	limit  int
}

// Option configures a List.
type Option func(*options)

type options struct {
	limit    int
	capacity int
}

// WithLimit caps the number of node slots. Zero means unbounded.
func WithLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.limit = n
		}
	}
}

// WithCapacity preallocates room for n nodes.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// New creates an empty list.
func New[T comparable](opts ...Option) *List[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	l := &List[T]{limit: o.limit}
	if o.capacity > 0 {
		c := o.capacity
		if o.limit > 0 && c > o.limit {
			c = o.limit
		}
		l.nodes = make([]node[T], 0, c)
	}
	return l
}

func (l *List[T]) at(r int) *node[T] {
	return &l.nodes[r-1]
}

// alloc hands out a slot holding v, preferring the free-list.
func (l *List[T]) alloc(v T, next int) (int, bool) {
	if l.free != none {
		r := l.free
		n := l.at(r)
		l.free = n.next
		n.value = v
		n.next = next
		return r, true
	}
	if l.limit > 0 && len(l.nodes) >= l.limit {
		return none, false
	}
	l.nodes = append(l.nodes, node[T]{value: v, next: next})
	return len(l.nodes), true
}

// release zeroes the slot and pushes it on the free-list.
func (l *List[T]) release(r int) {
	n := l.at(r)
	var zero T
	n.value = zero
	n.next = l.free
	l.free = r
}

// InsertFront makes v the head of the list.
// It returns core.ErrAllocationFailure, with the list untouched, when the
// limit leaves no slot for the new node.
func (l *List[T]) InsertFront(v T) error {
	r, ok := l.alloc(v, l.head)
	if !ok {
		return core.ErrAllocationFailure
	}
	l.head = r
	l.length++
	return nil
}

// Remove unlinks the first node holding v and releases its slot.
// It reports whether such a node existed.
func (l *List[T]) Remove(v T) bool {
	prev := none
	for r := l.head; r != none; r = l.at(r).next {
		if l.at(r).value != v {
			prev = r
			continue
		}
		if prev == none {
			l.head = l.at(r).next
		} else {
			l.at(prev).next = l.at(r).next
		}
		l.release(r)
		l.length--
		return true
	}
	return false
}

// All returns an iterator over the values from head to tail.
// Each call starts again from the current head.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for r := l.head; r != none; r = l.at(r).next {
			if !yield(l.at(r).value) {
				return
			}
		}
	}
}

// Values returns the values from head to tail.
func (l *List[T]) Values() []T {
	return slices.Collect(l.All())
}

// Front returns the head value.
func (l *List[T]) Front() (T, bool) {
	if l.head == none {
		var zero T
		return zero, false
	}
	return l.at(l.head).value, true
}

// Contains reports whether any node holds v.
func (l *List[T]) Contains(v T) bool {
	for x := range l.All() {
		if x == v {
			return true
		}
	}
	return false
}

// Len returns the number of nodes.
func (l *List[T]) Len() int {
	return l.length
}

// IsEmpty reports whether the list has no nodes.
func (l *List[T]) IsEmpty() bool {
	return l.head == none
}

// Clear drops every node. The arena keeps its capacity.
func (l *List[T]) Clear() {
	clear(l.nodes)
	l.nodes = l.nodes[:0]
	l.head = none
	l.free = none
	l.length = 0
}

// String renders the chain the way it is drawn on paper: "3 -> 2 -> 1 -> NULL".
func (l *List[T]) String() string {
	var b strings.Builder
	for v := range l.All() {
		fmt.Fprintf(&b, "%v -> ", v)
	}
	b.WriteString("NULL")
	return b.String()
}

// Stats describes arena usage.
type Stats struct {
	Len   int `json:"len"`
	Slots int `json:"slots"`
	Free  int `json:"free"`
	Limit int `json:"limit"`
}

// Stats returns the current arena usage.
func (l *List[T]) Stats() Stats {
	free := 0
	for r := l.free; r != none; r = l.at(r).next {
		free++
	}
	return Stats{Len: l.length, Slots: len(l.nodes), Free: free, Limit: l.limit}
}

// Validate walks the live chain and the free-list and checks that every slot
// is reachable exactly once from one of them.
func (l *List[T]) Validate() error {
	seen := make([]bool, len(l.nodes))

	walk := func(start int, what string) (int, error) {
		count := 0
		for r := start; r != none; r = l.at(r).next {
			if r < 1 || r > len(l.nodes) {
				return 0, fmt.Errorf("%w: %s link %d out of range", ErrCorrupt, what, r)
			}
			if seen[r-1] {
				return 0, fmt.Errorf("%w: slot %d reached twice (from %s chain)", ErrCorrupt, r-1, what)
			}
			seen[r-1] = true
			count++
		}
		return count, nil
	}

	live, err := walk(l.head, "live")
	if err != nil {
		return err
	}
	if live != l.length {
		return fmt.Errorf("%w: length is %d but chain has %d nodes", ErrCorrupt, l.length, live)
	}

	free, err := walk(l.free, "free")
	if err != nil {
		return err
	}
	if live+free != len(l.nodes) {
		return fmt.Errorf("%w: %d of %d slots unaccounted for", ErrCorrupt, len(l.nodes)-live-free, len(l.nodes))
	}
	return nil
}

var _ core.Sequence = (*List[int])(nil)
