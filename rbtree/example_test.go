package rbtree_test

import (
	"fmt"
	"strings"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/rbtree"
)

func ExampleMap_All() {
	m := rbtree.New[int, string]()
	m.Insert(3, "three")
	m.Insert(1, "one")
	m.Insert(2, "two")

	for k, v := range m.All() {
		fmt.Println(k, v)
	}

	// Output:
	// 1 one
	// 2 two
	// 3 three
}

func ExampleNewFunc() {
	m := rbtree.NewFunc[string, int](ordered.Reverse(strings.Compare))
	for i, w := range []string{"b", "c", "a"} {
		m.Insert(w, i)
	}
	k, _, _ := m.Min()
	fmt.Println(k)

	// Output:
	// c
}
