package splay

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/internal/arena"
	"github.com/npillmayer/ordered/internal/binarytree"
)

type node[K, V any] struct {
	arena.Slot
	key   K
	val   V
	left  *node[K, V]
	right *node[K, V]
	size  int
}

func (x *node[K, V]) Left() *node[K, V]  { return x.left }
func (x *node[K, V]) Right() *node[K, V] { return x.right }
func (x *node[K, V]) Pair() (K, V)       { return x.key, x.val }

func (x *node[K, V]) DetachLeft() *node[K, V] {
	l := x.left
	x.left = nil
	return l
}

func (x *node[K, V]) DetachRight() *node[K, V] {
	r := x.right
	x.right = nil
	return r
}

func (x *node[K, V]) String() string {
	return fmt.Sprintf("%v:%v (%d)", x.key, x.val, x.size)
}

func size[K, V any](x *node[K, V]) int {
	if x == nil {
		return 0
	}
	return x.size
}

func (x *node[K, V]) refresh() {
	x.size = 1 + size(x.left) + size(x.right)
}

// rotateLeft turns (h a (x b c)) into (x (h a b) c).
func rotateLeft[K, V any](h *node[K, V]) *node[K, V] {
	assertThat(h.right != nil, "rotate left without right child at %v", h.key)
	x := h.right
	h.right = x.left
	x.left = h
	h.refresh()
	x.refresh()
	return x
}

// rotateRight turns (h (x a b) c) into (x a (h b c)).
func rotateRight[K, V any](h *node[K, V]) *node[K, V] {
	assertThat(h.left != nil, "rotate right without left child at %v", h.key)
	x := h.left
	h.left = x.right
	x.right = h
	h.refresh()
	x.refresh()
	return x
}

// --- Map -------------------------------------------------------------------

// Map is an ordered map[K]V, ordered by a comparison function.
// Use New or NewFunc to create a Map.
type Map[K, V any] struct {
	root  *node[K, V]
	cmp   func(K, K) int
	nodes *arena.Arena[node[K, V], *node[K, V]]
}

// New creates an empty map ordered according to K's standard Go ordering.
func New[K cmp.Ordered, V any](opts ...ordered.Option) *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K], opts...)
}

// NewFunc creates an empty map ordered according to cmp.
func NewFunc[K, V any](cmp func(K, K) int, opts ...ordered.Option) *Map[K, V] {
	assertThat(cmp != nil, "map needs a comparison function")
	conf := ordered.Configure(opts...)
	return &Map[K, V]{
		cmp:   cmp,
		nodes: arena.New[node[K, V]](conf.Keep),
	}
}

// Len returns the number of entries in m.
func (m *Map[K, V]) Len() int {
	return size(m.root)
}

// splay moves the node with key to the top of the subtree at h. If key is not
// present, the last node visited during the descent ends up on top.
func (m *Map[K, V]) splay(h *node[K, V], key K) *node[K, V] {
	if h == nil {
		return nil
	}
	switch c := m.cmp(key, h.key); {
	case c < 0:
		if h.left == nil {
			return h
		}
		h.left = m.splay(h.left, key)
		return rotateRight(h)
	case c > 0:
		if h.right == nil {
			return h
		}
		h.right = m.splay(h.right, key)
		return rotateLeft(h)
	}
	return h
}

// Get returns the value for key and reports whether it is present.
// Get splays the tree, i.e. it moves the node closest to key to the root.
func (m *Map[K, V]) Get(key K) (V, bool) {
	m.root = m.splay(m.root, key)
	if m.root != nil && m.cmp(key, m.root.key) == 0 {
		return m.root.val, true
	}
	var zero V
	return zero, false
}

// Insert sets m[key] = val and moves key to the root. It reports whether key has been
// newly inserted; for an existing key the value is replaced.
func (m *Map[K, V]) Insert(key K, val V) bool {
	var added bool
	m.root, added = m.insert(m.root, key, val)
	return added
}

func (m *Map[K, V]) insert(h *node[K, V], key K, val V) (*node[K, V], bool) {
	if h == nil {
		x := m.nodes.Alloc()
		x.key, x.val, x.size = key, val, 1
		return x, true
	}
	var added bool
	switch c := m.cmp(key, h.key); {
	case c < 0:
		h.left, added = m.insert(h.left, key, val)
		return rotateRight(h), added
	case c > 0:
		h.right, added = m.insert(h.right, key, val)
		return rotateLeft(h), added
	}
	h.val = val
	return h, false
}

// Remove deletes m[key]. It reports whether key has been present.
func (m *Map[K, V]) Remove(key K) bool {
	if _, ok := m.Get(key); !ok {
		return false
	}
	root := m.root
	l, r := root.left, root.right
	m.nodes.Release(root)
	m.root = join(l, r)
	return true
}

// join links two subtrees l and r, where every key in l is smaller than every key in r.
// The largest node of l is rotated to the top of l, which leaves it without a right
// child, and r becomes its right child.
func join[K, V any](l, r *node[K, V]) *node[K, V] {
	if l == nil {
		return r
	}
	n := 0
	for l.right != nil {
		l = rotateLeft(l)
		n++
	}
	tracer().Debugf("join: %d rotations to lift max key %v", n, l.key)
	l.right = r
	l.refresh()
	return l
}

// Height returns the number of levels of the tree holding m's entries.
func (m *Map[K, V]) Height() int {
	return binarytree.Height[K, V](m.root)
}

// Min returns the entry with the smallest key, if m is not empty.
// Min does not splay the tree.
func (m *Map[K, V]) Min() (K, V, bool) {
	if x, ok := binarytree.Min[K, V](m.root); ok {
		return x.key, x.val, true
	}
	var k K
	var v V
	return k, v, false
}

// Max returns the entry with the largest key, if m is not empty.
// Max does not splay the tree.
func (m *Map[K, V]) Max() (K, V, bool) {
	if x, ok := binarytree.Max[K, V](m.root); ok {
		return x.key, x.val, true
	}
	var k K
	var v V
	return k, v, false
}

// All returns an iterator over the entries of m, from smallest to largest key.
// m must not be accessed with Get, Insert or Remove during the iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return binarytree.All[K, V](m.root)
}

// Drain empties m and returns an iterator over its former entries, from smallest to
// largest key. Nodes are released while iterating.
func (m *Map[K, V]) Drain() iter.Seq2[K, V] {
	root := m.root
	m.root = nil
	return binarytree.Drain[K, V](root, m.nodes.Release)
}

// Clear removes all entries from m.
func (m *Map[K, V]) Clear() {
	m.root = nil
	m.nodes.Reset()
}

// String prints the tree structure of m.
func (m *Map[K, V]) String() string {
	return binarytree.Dump[K, V](m.root, (*node[K, V]).String)
}
