package treap

import (
	"cmp"
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/internal/arena"
	"github.com/npillmayer/ordered/internal/binarytree"
	"golang.org/x/exp/constraints"
)

type node[K, V any] struct {
	arena.Slot
	key   K
	val   V
	pri   float64
	left  *node[K, V]
	right *node[K, V]
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
	return fmt.Sprintf("%v:%v (%.3f)", x.key, x.val, x.pri)
}

// Map is an ordered map[K]V, ordered by a comparison function.
// Use New, NewFunc or NewIntegers to create a Map.
type Map[K, V any] struct {
	root  *node[K, V]
	cmp   func(K, K) int
	succ  func(K) K
	rnd   *rand.Rand
	nodes *arena.Arena[node[K, V], *node[K, V]]
	count int
}

// New creates an empty map ordered according to K's standard Go ordering.
func New[K cmp.Ordered, V any](opts ...ordered.Option) *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K], opts...)
}

// NewIntegers creates an empty map for integer keys, removing keys by splitting at
// their successor.
func NewIntegers[K constraints.Integer, V any](opts ...ordered.Option) *Map[K, V] {
	m := New[K, V](opts...)
	m.SetSuccessor(Increment[K])
	return m
}

// NewFunc creates an empty map ordered according to cmp.
func NewFunc[K, V any](cmp func(K, K) int, opts ...ordered.Option) *Map[K, V] {
	assertThat(cmp != nil, "map needs a comparison function")
	conf := ordered.Configure(opts...)
	return &Map[K, V]{
		cmp:   cmp,
		rnd:   conf.Rand,
		nodes: arena.New[node[K, V]](conf.Keep),
	}
}

// From builds a map from a sequence of entries in strictly ascending key order,
// in linear expected time. It panics if the keys are not strictly ascending.
func From[K cmp.Ordered, V any](entries iter.Seq2[K, V], opts ...ordered.Option) *Map[K, V] {
	return FromFunc(entries, cmp.Compare[K], opts...)
}

// FromFunc is like From for a map ordered according to cmp.
func FromFunc[K, V any](entries iter.Seq2[K, V], cmp func(K, K) int, opts ...ordered.Option) *Map[K, V] {
	m := NewFunc[K, V](cmp, opts...)
	var spine []*node[K, V] // right spine of the treap built so far
	var prev *node[K, V]
	for k, v := range entries {
		if prev != nil {
			assertThat(m.cmp(prev.key, k) < 0, "keys not strictly ascending: %v, %v", prev.key, k)
		}
		x := m.newNode(k, v)
		prev = x
		var last *node[K, V]
		for len(spine) > 0 && spine[len(spine)-1].pri < x.pri {
			last = spine[len(spine)-1]
			spine = spine[:len(spine)-1]
		}
		x.left = last
		if len(spine) > 0 {
			spine[len(spine)-1].right = x
		}
		spine = append(spine, x)
		m.count++
	}
	if len(spine) > 0 {
		m.root = spine[0]
	}
	tracer().Debugf("treap built from %d sorted entries", m.count)
	return m
}

// SetSuccessor installs a function returning the immediate successor of a key.
// Remove will then split at the successor of a key instead of comparing for
// "greater than".
func (m *Map[K, V]) SetSuccessor(succ func(K) K) {
	m.succ = succ
}

// Increment is the successor function for integer keys.
func Increment[K constraints.Integer](k K) K {
	return k + 1
}

func (m *Map[K, V]) newNode(key K, val V) *node[K, V] {
	x := m.nodes.Alloc()
	x.key, x.val, x.pri = key, val, m.rnd.Float64()
	return x
}

// Len returns the number of entries in m.
func (m *Map[K, V]) Len() int {
	return m.count
}

// Get returns the value for key and reports whether it is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if x, ok := binarytree.Find[K, V](m.root, key, m.cmp); ok {
		return x.val, true
	}
	var zero V
	return zero, false
}

// Insert sets m[key] = val, if key is not present. It reports whether key has been
// inserted. Inserting a key which is already present is rejected; the value will not
// be replaced.
func (m *Map[K, V]) Insert(key K, val V) bool {
	if _, found := binarytree.Find[K, V](m.root, key, m.cmp); found {
		return false
	}
	lt, ge := split(m.root, m.below(key))
	lt = merge(lt, m.newNode(key, val))
	m.root = merge(lt, ge)
	m.count++
	return true
}

// Remove deletes m[key]. It reports whether key has been present.
func (m *Map[K, V]) Remove(key K) bool {
	if _, found := binarytree.Find[K, V](m.root, key, m.cmp); !found {
		return false
	}
	lt, ge := split(m.root, m.below(key))
	var single, gt *node[K, V]
	if m.succ != nil && m.cmp(key, m.succ(key)) < 0 {
		single, gt = split(ge, m.below(m.succ(key)))
	} else {
		single, gt = split(ge, m.notAbove(key))
	}
	assertThat(single != nil && single.left == nil && single.right == nil,
		"split off more than the node for key %v", key)
	m.nodes.Release(single)
	m.root = merge(lt, gt)
	m.count--
	return true
}

// below returns a predicate for keys less than key.
func (m *Map[K, V]) below(key K) func(K) bool {
	return func(k K) bool {
		return m.cmp(k, key) < 0
	}
}

// notAbove returns a predicate for keys less than or equal to key.
func (m *Map[K, V]) notAbove(key K) func(K) bool {
	return func(k K) bool {
		return m.cmp(k, key) <= 0
	}
}

// split partitions the treap at x into the keys satisfying left and the rest.
// left has to be monotone: once false for a key, it is false for all larger keys.
// Heap order is preserved in both parts.
func split[K, V any](x *node[K, V], left func(K) bool) (*node[K, V], *node[K, V]) {
	if x == nil {
		return nil, nil
	}
	if left(x.key) {
		l, r := split(x.right, left)
		x.right = l
		return x, r
	}
	l, r := split(x.left, left)
	x.left = r
	return l, x
}

// merge joins two treaps a and b, where every key in a is smaller than every key in b.
// The root with the higher priority becomes the root of the result.
func merge[K, V any](a, b *node[K, V]) *node[K, V] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if a.pri > b.pri {
		a.right = merge(a.right, b)
		return a
	}
	b.left = merge(a, b.left)
	return b
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
	m.count = 0
	return binarytree.Drain[K, V](root, m.nodes.Release)
}

// Clear removes all entries from m.
func (m *Map[K, V]) Clear() {
	m.root = nil
	m.count = 0
	m.nodes.Reset()
}

// String prints the tree structure of m.
func (m *Map[K, V]) String() string {
	return binarytree.Dump[K, V](m.root, (*node[K, V]).String)
}
