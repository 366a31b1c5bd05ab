package treap_test

import (
	"fmt"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/treap"
)

func ExampleMap_Insert() {
	m := treap.New[string, int](ordered.WithSeed(1))
	fmt.Println(m.Insert("x", 1))
	fmt.Println(m.Insert("x", 2))
	v, _ := m.Get("x")
	fmt.Println(v)

	// Output:
	// true
	// false
	// 1
}

func ExampleFrom() {
	sorted := func(yield func(int, string) bool) {
		for i, s := range []string{"zero", "one", "two"} {
			if !yield(i, s) {
				return
			}
		}
	}
	m := treap.From(sorted)
	m.Remove(1)
	for k, v := range m.All() {
		fmt.Println(k, v)
	}

	// Output:
	// 0 zero
	// 2 two
}
