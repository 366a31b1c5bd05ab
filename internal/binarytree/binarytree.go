package binarytree

import (
	"fmt"
	"iter"

	"github.com/xlab/treeprint"
)

// Linked is implemented by node types of binary search trees. N is the node type
// itself, usually a pointer. Missing children are represented by the zero value of N.
type Linked[K, V any, N comparable] interface {
	comparable
	Left() N
	Right() N
	Pair() (K, V)
}

// Detachable nodes may be dismantled while traversing them.
// DetachLeft and DetachRight unlink a child and return it.
type Detachable[K, V any, N comparable] interface {
	Linked[K, V, N]
	DetachLeft() N
	DetachRight() N
}

// All returns an iterator over the subtree at root, in ascending key order.
// The tree must not be modified during the iteration.
func All[K, V any, N Linked[K, V, N]](root N) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var none N
		var stack []N
		x := root
		for x != none || len(stack) > 0 {
			for ; x != none; x = x.Left() {
				stack = append(stack, x)
			}
			x = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(x.Pair()) {
				return
			}
			x = x.Right()
		}
	}
}

// Drain returns an iterator which dismantles the subtree at root, yielding its pairs
// in ascending key order. Every node is handed to release after its key and value have
// been extracted. If the consumer stops early, the remaining nodes are released
// without being yielded. The caller must have unlinked root from its container;
// the iterator is one-shot.
func Drain[K, V any, N Detachable[K, V, N]](root N, release func(N)) iter.Seq2[K, V] {
	var none N
	drained := root == none
	return func(yield func(K, V) bool) {
		if drained {
			return
		}
		drained = true
		stack := []N{root}
		for len(stack) > 0 {
			top := stack[len(stack)-1]
			for l := top.DetachLeft(); l != none; l = top.DetachLeft() {
				stack = append(stack, l)
				top = l
			}
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if r := x.DetachRight(); r != none {
				stack = append(stack, r)
			}
			k, v := x.Pair()
			release(x)
			if !yield(k, v) {
				releaseAll[K, V](stack, release)
				return
			}
		}
	}
}

// releaseAll releases every node reachable from the nodes in stack.
func releaseAll[K, V any, N Detachable[K, V, N]](stack []N, release func(N)) {
	var none N
	cnt := 0
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if l := x.DetachLeft(); l != none {
			stack = append(stack, l)
		}
		if r := x.DetachRight(); r != none {
			stack = append(stack, r)
		}
		release(x)
		cnt++
	}
	tracer().Debugf("drain stopped early, released %d remaining nodes", cnt)
}

// Min returns the node with the smallest key in the subtree at root.
func Min[K, V any, N Linked[K, V, N]](root N) (N, bool) {
	var none N
	if root == none {
		return none, false
	}
	x := root
	for l := x.Left(); l != none; l = x.Left() {
		x = l
	}
	return x, true
}

// Max returns the node with the largest key in the subtree at root.
func Max[K, V any, N Linked[K, V, N]](root N) (N, bool) {
	var none N
	if root == none {
		return none, false
	}
	x := root
	for r := x.Right(); r != none; r = x.Right() {
		x = r
	}
	return x, true
}

// Find searches the subtree at root for key, using cmp to compare keys.
func Find[K, V any, N Linked[K, V, N]](root N, key K, cmp func(K, K) int) (N, bool) {
	var none N
	for x := root; x != none; {
		k, _ := x.Pair()
		switch c := cmp(key, k); {
		case c == 0:
			return x, true
		case c < 0:
			x = x.Left()
		default:
			x = x.Right()
		}
	}
	return none, false
}

// Height returns the number of nodes on the longest root-to-leaf path.
func Height[K, V any, N Linked[K, V, N]](root N) int {
	type level struct {
		node  N
		depth int
	}
	var none N
	if root == none {
		return 0
	}
	h := 0
	stack := []level{{root, 1}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		h = max(h, top.depth)
		if l := top.node.Left(); l != none {
			stack = append(stack, level{l, top.depth + 1})
		}
		if r := top.node.Right(); r != none {
			stack = append(stack, level{r, top.depth + 1})
		}
	}
	return h
}

// Dump prints the subtree at root. label formats a single node; if it is nil,
// nodes are printed as key:value.
func Dump[K, V any, N Linked[K, V, N]](root N, label func(N) string) string {
	var none N
	if label == nil {
		label = func(x N) string {
			k, v := x.Pair()
			return fmt.Sprintf("%v:%v", k, v)
		}
	}
	p := treeprint.New()
	if root == none {
		p.SetValue("∅")
		return p.String()
	}
	p.SetValue(label(root))
	dumpChildren[K, V](p, root, label)
	return p.String()
}

func dumpChildren[K, V any, N Linked[K, V, N]](p treeprint.Tree, x N, label func(N) string) {
	var none N
	l, r := x.Left(), x.Right()
	if l == none && r == none {
		return
	}
	for _, ch := range [2]N{l, r} {
		if ch == none {
			p.AddNode("∅")
			continue
		}
		if ch.Left() == none && ch.Right() == none {
			p.AddNode(label(ch))
			continue
		}
		dumpChildren[K, V](p.AddBranch(label(ch)), ch, label)
	}
}
