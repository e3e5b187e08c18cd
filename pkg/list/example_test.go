package list_test

import (
	"errors"
	"fmt"

	"github.com/leapstack-labs/dynlist/pkg/core"
	"github.com/leapstack-labs/dynlist/pkg/list"
)

func Example() {
	l := list.New[int]()
	_ = l.InsertFront(10)
	_ = l.InsertFront(20)
	_ = l.InsertFront(30)
	fmt.Println(l)

	l.Remove(20)
	fmt.Println(l)
	// Output:
	// 30 -> 20 -> 10 -> NULL
	// 30 -> 10 -> NULL
}

func ExampleWithLimit() {
	l := list.New[int](list.WithLimit(1))
	_ = l.InsertFront(1)

	err := l.InsertFront(2)
	fmt.Println(errors.Is(err, core.ErrAllocationFailure), l)
	// Output: true 1 -> NULL
}

func ExampleList_All() {
	l := list.New[string]()
	_ = l.InsertFront("c")
	_ = l.InsertFront("b")
	_ = l.InsertFront("a")

	for v := range l.All() {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: a b c
}
