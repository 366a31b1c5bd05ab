package leftist

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/internal/arena"
	"github.com/npillmayer/ordered/internal/binarytree"
	"github.com/npillmayer/ordered/maybe"
)

type node[T any] struct {
	arena.Slot
	val   T
	left  *node[T]
	right *node[T]
	rank  int
}

func (x *node[T]) Left() *node[T]  { return x.left }
func (x *node[T]) Right() *node[T] { return x.right }
func (x *node[T]) Pair() (T, int)  { return x.val, x.rank }

func (x *node[T]) String() string {
	return fmt.Sprintf("%v (%d)", x.val, x.rank)
}

// rank is the length of the rightmost path from x to an empty child.
func rank[T any](x *node[T]) int {
	if x == nil {
		return 0
	}
	return x.rank
}

// balance restores the leftist property at x after its right child has changed.
func (x *node[T]) balance() {
	if rank(x.right) > rank(x.left) {
		x.left, x.right = x.right, x.left
	}
	x.rank = rank(x.right) + 1
}

func top[T any](x *node[T]) maybe.Maybe[T] {
	if x == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(x.val)
}

// meld merges the heaps a and b, re-using their nodes.
func meld[T any](a, b *node[T], less func(T, T) bool) *node[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if less(b.val, a.val) {
		a, b = b, a
	}
	a.right = meld(a.right, b, less)
	a.balance()
	return a
}

// Heap is a mergeable priority queue. Use NewMin, NewMax or NewFunc to create a Heap.
type Heap[T any] struct {
	root  *node[T]
	less  func(T, T) bool
	count int
	nodes *arena.Arena[node[T], *node[T]]
}

// NewMin creates an empty heap with the smallest element on top.
func NewMin[T cmp.Ordered](opts ...ordered.Option) *Heap[T] {
	return NewFunc(cmp.Less[T], opts...)
}

// NewMax creates an empty heap with the largest element on top.
func NewMax[T cmp.Ordered](opts ...ordered.Option) *Heap[T] {
	return NewFunc(func(a, b T) bool { return cmp.Less(b, a) }, opts...)
}

// NewFunc creates an empty heap with the least element according to less on top.
func NewFunc[T any](less func(T, T) bool, opts ...ordered.Option) *Heap[T] {
	assertThat(less != nil, "heap needs a less-function")
	conf := ordered.Configure(opts...)
	return newHeap(less, conf.Keep)
}

func newHeap[T any](less func(T, T) bool, keep int) *Heap[T] {
	return &Heap[T]{
		less:  less,
		nodes: arena.New[node[T]](keep),
	}
}

// Len returns the number of elements in h.
func (h *Heap[T]) Len() int {
	return h.count
}

// Push adds x to h.
func (h *Heap[T]) Push(x T) {
	n := h.nodes.Alloc()
	n.val, n.rank = x, 1
	h.root = meld(h.root, n, h.less)
	h.count++
}

// Peek returns the top element of h without removing it, or Nothing if h is empty.
func (h *Heap[T]) Peek() maybe.Maybe[T] {
	return top(h.root)
}

// Pop removes the top element of h and returns it. It reports false if h is empty.
func (h *Heap[T]) Pop() (T, bool) {
	if h.root == nil {
		var zero T
		return zero, false
	}
	root := h.root
	x := root.val
	h.root = meld(root.left, root.right, h.less)
	h.nodes.Release(root)
	h.count--
	return x, true
}

// Merge moves all elements of other into h, leaving other empty.
// Both heaps have to be ordered by the same less-function.
func (h *Heap[T]) Merge(other *Heap[T]) {
	assertThat(other != h, "cannot merge a heap with itself")
	if other == nil || other.count == 0 {
		return
	}
	tracer().Debugf("merging heaps of size %d and %d", h.count, other.count)
	h.root = meld(h.root, other.root, h.less)
	h.count += other.count
	h.nodes.Adopt(other.nodes, other.count)
	other.root, other.count = nil, 0
}

// Drain returns an iterator popping the elements of h in order. If the iteration
// stops early, the remaining elements stay in h.
func (h *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h.count > 0 {
			x, _ := h.Pop()
			if !yield(x) {
				return
			}
		}
	}
}

// Clear removes all elements from h.
func (h *Heap[T]) Clear() {
	h.root, h.count = nil, 0
	h.nodes.Reset()
}

// String prints the tree structure of h, with the rank of each node in parentheses.
func (h *Heap[T]) String() string {
	return binarytree.Dump[T, int](h.root, (*node[T]).String)
}
