package skiplist

import (
	"cmp"
	"fmt"
	"iter"
	"math/rand/v2"
	"strings"

	"github.com/npillmayer/ordered"
	"github.com/npillmayer/ordered/internal/arena"
)

const (
	// MaxLevel is the maximum height of a skip list.
	MaxLevel = 32
	// P is the probability of an entry to be promoted to the next level.
	P = 0.3
)

type node[K, V any] struct {
	arena.Slot
	key  K
	val  V
	next []*node[K, V] // one forward link per level
}

// Map is an ordered map[K]V, ordered by a comparison function.
// Use New or NewFunc to create a Map.
type Map[K, V any] struct {
	head     *node[K, V] // sentinel, linked on every level
	cmp      func(K, K) int
	rnd      *rand.Rand
	maxLevel int
	height   int
	count    int
	preds    []*node[K, V] // scratch buffer for descents
	nodes    *arena.Arena[node[K, V], *node[K, V]]
}

// New creates an empty map ordered according to K's standard Go ordering.
func New[K cmp.Ordered, V any](opts ...ordered.Option) *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K], opts...)
}

// NewFunc creates an empty map ordered according to cmp.
func NewFunc[K, V any](cmp func(K, K) int, opts ...ordered.Option) *Map[K, V] {
	assertThat(cmp != nil, "map needs a comparison function")
	conf := ordered.Configure(opts...)
	maxLevel := MaxLevel
	if conf.MaxLevel > 0 {
		maxLevel = min(conf.MaxLevel, MaxLevel)
	}
	return &Map[K, V]{
		head:     &node[K, V]{next: make([]*node[K, V], maxLevel)},
		cmp:      cmp,
		rnd:      conf.Rand,
		maxLevel: maxLevel,
		preds:    make([]*node[K, V], maxLevel),
		nodes:    arena.New[node[K, V]](conf.Keep),
	}
}

// Len returns the number of entries in m.
func (m *Map[K, V]) Len() int {
	return m.count
}

// Height returns the number of levels in use. It never decreases on removal.
func (m *Map[K, V]) Height() int {
	return m.height
}

// randomLevel draws the level of a new entry: 1 with probability 1-P, 2 with
// probability P(1-P), and so on, capped at the maximum level.
func (m *Map[K, V]) randomLevel() int {
	l := 1
	for l < m.maxLevel && m.rnd.Float64() < P {
		l++
	}
	return l
}

// descend walks from the top level down to the bottom, always staying in front of key.
// If preds is non-nil, it records the last node visited on each level.
// descend returns the first node with a key not smaller than key, or nil.
func (m *Map[K, V]) descend(key K, preds []*node[K, V]) *node[K, V] {
	x := m.head
	for lvl := m.height - 1; lvl >= 0; lvl-- {
		for x.next[lvl] != nil && m.cmp(x.next[lvl].key, key) < 0 {
			x = x.next[lvl]
		}
		if preds != nil {
			preds[lvl] = x
		}
	}
	return x.next[0]
}

// Get returns the value for key and reports whether it is present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if x := m.descend(key, nil); x != nil && m.cmp(key, x.key) == 0 {
		return x.val, true
	}
	var zero V
	return zero, false
}

// Insert sets m[key] = val. It reports whether key has been newly inserted;
// for an existing key the value is replaced.
func (m *Map[K, V]) Insert(key K, val V) bool {
	if x := m.descend(key, m.preds); x != nil && m.cmp(key, x.key) == 0 {
		x.val = val
		return false
	}
	lvl := m.randomLevel()
	if lvl > m.height {
		for l := m.height; l < lvl; l++ {
			m.preds[l] = m.head
		}
		tracer().Debugf("skip list grows from height %d to %d", m.height, lvl)
		m.height = lvl
	}
	x := m.nodes.Alloc()
	x.key, x.val = key, val
	x.next = make([]*node[K, V], lvl)
	for l := 0; l < lvl; l++ {
		x.next[l] = m.preds[l].next[l]
		m.preds[l].next[l] = x
	}
	m.count++
	return true
}

// Remove deletes m[key]. It reports whether key has been present.
func (m *Map[K, V]) Remove(key K) bool {
	x := m.descend(key, m.preds)
	if x == nil || m.cmp(key, x.key) != 0 {
		return false
	}
	for l := range x.next {
		assertThat(m.preds[l].next[l] == x, "node for %v not linked on level %d", key, l)
		m.preds[l].next[l] = x.next[l]
	}
	m.nodes.Release(x)
	m.count--
	return true
}

// Min returns the entry with the smallest key, if m is not empty.
func (m *Map[K, V]) Min() (K, V, bool) {
	if x := m.head.next[0]; x != nil {
		return x.key, x.val, true
	}
	var k K
	var v V
	return k, v, false
}

// Max returns the entry with the largest key, if m is not empty.
func (m *Map[K, V]) Max() (K, V, bool) {
	x := m.head
	for lvl := m.height - 1; lvl >= 0; lvl-- {
		for x.next[lvl] != nil {
			x = x.next[lvl]
		}
	}
	if x != m.head {
		return x.key, x.val, true
	}
	var k K
	var v V
	return k, v, false
}

// All returns an iterator over the entries of m, from smallest to largest key.
// m must not be modified during the iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for x := m.head.next[0]; x != nil; x = x.next[0] {
			if !yield(x.key, x.val) {
				return
			}
		}
	}
}

// Drain empties m and returns an iterator over its former entries, from smallest to
// largest key. Nodes are released while iterating; if the iteration stops early, the
// remaining nodes are released as well. The iterator is single-use.
func (m *Map[K, V]) Drain() iter.Seq2[K, V] {
	first := m.head.next[0]
	m.unlink()
	drained := false
	return func(yield func(K, V) bool) {
		if drained {
			return
		}
		drained = true
		x, stopped := first, false
		for x != nil {
			next := x.next[0]
			k, v := x.key, x.val
			m.nodes.Release(x)
			x = next
			if !stopped && !yield(k, v) {
				stopped = true
			}
		}
	}
}

// Clear removes all entries from m.
func (m *Map[K, V]) Clear() {
	m.unlink()
	m.nodes.Reset()
}

func (m *Map[K, V]) unlink() {
	clear(m.head.next)
	clear(m.preds)
	m.height = 0
	m.count = 0
}

// String prints the levels of m from top to bottom, listing the first few entries of
// each level.
func (m *Map[K, V]) String() string {
	var b strings.Builder
	for lvl := m.height - 1; lvl >= 0; lvl-- {
		fmt.Fprintf(&b, "L%02d: ", lvl+1)
		cnt := 0
		for x := m.head.next[lvl]; x != nil; x = x.next[lvl] {
			if cnt < 4 {
				fmt.Fprintf(&b, "(%v => %v) -> ", x.key, x.val)
			}
			cnt++
		}
		fmt.Fprintf(&b, "... end, total %d entries\n", cnt)
	}
	return b.String()
}
