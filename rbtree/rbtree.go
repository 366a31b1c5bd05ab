package rbtree

import (
	"cmp"
	"iter"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/internal/arena"
	"github.com/npillmayer/ordered/internal/binarytree"
)

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

// Get returns the value for key and reports whether it is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if x, ok := binarytree.Find[K, V](m.root, key, m.cmp); ok {
		return x.val, true
	}
	var zero V
	return zero, false
}

// Insert sets m[key] = val. It reports whether key has been newly inserted;
// for an existing key the value is replaced.
func (m *Map[K, V]) Insert(key K, val V) bool {
	var added bool
	m.root, added = m.insert(m.root, key, val)
	m.root.color = black
	return added
}

func (m *Map[K, V]) insert(h *node[K, V], key K, val V) (*node[K, V], bool) {
	if h == nil {
		x := m.nodes.Alloc()
		x.key, x.val, x.color, x.size = key, val, red, 1
		return x, true
	}
	var added bool
	switch c := m.cmp(key, h.key); {
	case c == 0:
		h.val = val
		return h, false
	case c < 0:
		h.left, added = m.insert(h.left, key, val)
	default:
		h.right, added = m.insert(h.right, key, val)
	}
	return fixup(h), added
}

// Remove deletes m[key]. It reports whether key has been present.
func (m *Map[K, V]) Remove(key K) bool {
	if _, ok := binarytree.Find[K, V](m.root, key, m.cmp); !ok {
		return false
	}
	if !isRed(m.root.left) && !isRed(m.root.right) {
		m.root.color = red
	}
	m.root = m.remove(m.root, key)
	if m.root != nil {
		m.root.color = black
	}
	return true
}

// remove deletes key from the subtree at h. key has to be present in the subtree.
func (m *Map[K, V]) remove(h *node[K, V], key K) *node[K, V] {
	if m.cmp(key, h.key) < 0 {
		assertThat(h.left != nil, "key %v expected in left subtree of %v", key, h.key)
		if !isRed(h.left) && !isRed(h.left.left) {
			h = moveRedLeft(h)
		}
		h.left = m.remove(h.left, key)
		return fixup(h)
	}
	if isRed(h.left) {
		h = rotateRight(h)
	}
	if m.cmp(key, h.key) == 0 && h.right == nil {
		assertThat(h.left == nil, "node %v without right child has a left child", h.key)
		tracer().Debugf("rbtree: detach leaf %v", h.key)
		m.nodes.Release(h)
		return nil
	}
	assertThat(h.right != nil, "key %v expected in right subtree of %v", key, h.key)
	if !isRed(h.right) && !isRed(h.right.left) {
		h = moveRedRight(h)
	}
	if m.cmp(key, h.key) == 0 {
		var succ *node[K, V]
		h.right, succ = m.removeMin(h.right)
		h.key, succ.key = succ.key, h.key
		h.val, succ.val = succ.val, h.val
		m.nodes.Release(succ)
	} else {
		h.right = m.remove(h.right, key)
	}
	return fixup(h)
}

// removeMin unlinks the node with the smallest key from the subtree at h and returns
// the new subtree together with the unlinked node. The node is not released.
func (m *Map[K, V]) removeMin(h *node[K, V]) (*node[K, V], *node[K, V]) {
	if h.left == nil {
		assertThat(h.right == nil, "minimum node %v has a right child", h.key)
		return nil, h
	}
	if !isRed(h.left) && !isRed(h.left.left) {
		h = moveRedLeft(h)
	}
	var least *node[K, V]
	h.left, least = m.removeMin(h.left)
	return fixup(h), least
}

// Height returns the number of levels of the tree holding m's entries.
func (m *Map[K, V]) Height() int {
	return binarytree.Height[K, V](m.root)
}

// Min returns the entry with the smallest key, if m is not empty.
func (m *Map[K, V]) Min() (K, V, bool) {
	if x, ok := binarytree.Min[K, V](m.root); ok {
		return x.key, x.val, true
	}
	var k K
	var v V
	return k, v, false
}

// Max returns the entry with the largest key, if m is not empty.
func (m *Map[K, V]) Max() (K, V, bool) {
	if x, ok := binarytree.Max[K, V](m.root); ok {
		return x.key, x.val, true
	}
	var k K
	var v V
	return k, v, false
}

// All returns an iterator over the entries of m, from smallest to largest key.
// m must not be modified during the iteration.
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
