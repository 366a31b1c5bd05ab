package leftist

import (
	"cmp"
	"iter"

	"github.com/npillmayer/ordered/internal/binarytree"
	"github.com/npillmayer/ordered/maybe"
)

// meldCopy merges the heaps a and b without modifying any of their nodes. Nodes on the
// merge path are copied, all other nodes are shared with a and b.
func meldCopy[T any](a, b *node[T], less func(T, T) bool) *node[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if less(b.val, a.val) {
		a, b = b, a
	}
	c := &node[T]{val: a.val, left: a.left}
	c.right = meldCopy(a.right, b, less)
	c.balance()
	return c
}

// Snapshot is an immutable version of a persistent heap.
// The zero value is not usable; snapshots are obtained from a Persistent heap.
type Snapshot[T any] struct {
	root  *node[T]
	count int
	less  func(T, T) bool
}

// Len returns the number of elements in s.
func (s Snapshot[T]) Len() int {
	return s.count
}

// Peek returns the top element of s, or Nothing if s is empty.
func (s Snapshot[T]) Peek() maybe.Maybe[T] {
	return top(s.root)
}

// Pop returns the top element of s and the snapshot without it. s itself is unchanged.
// If s is empty, Pop reports false and returns s.
func (s Snapshot[T]) Pop() (T, Snapshot[T], bool) {
	if s.root == nil {
		var zero T
		return zero, s, false
	}
	rest := Snapshot[T]{
		root:  meldCopy(s.root.left, s.root.right, s.less),
		count: s.count - 1,
		less:  s.less,
	}
	return s.root.val, rest, true
}

// All returns an iterator over the elements of s in order, without modifying s.
func (s Snapshot[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if s.root == nil {
			return
		}
		frontier := newHeap(func(a, b *node[T]) bool {
			return s.less(a.val, b.val)
		}, 0)
		defer frontier.Clear()
		frontier.Push(s.root)
		for frontier.Len() > 0 {
			x, _ := frontier.Pop()
			if !yield(x.val) {
				return
			}
			if x.left != nil {
				frontier.Push(x.left)
			}
			if x.right != nil {
				frontier.Push(x.right)
			}
		}
	}
}

func (s Snapshot[T]) String() string {
	return binarytree.Dump[T, int](s.root, (*node[T]).String)
}

// Persistent is a persistent mergeable priority queue. Every modification creates
// a new version; earlier versions remain accessible with Version.
//
// Version 0 is the empty heap. Modifications are not safe for concurrent use, but
// snapshots of versions may be shared freely.
type Persistent[T any] struct {
	versions []Snapshot[T]
	less     func(T, T) bool
}

// NewPersistentMin creates an empty persistent heap with the smallest element on top.
func NewPersistentMin[T cmp.Ordered]() *Persistent[T] {
	return NewPersistentFunc(cmp.Less[T])
}

// NewPersistentMax creates an empty persistent heap with the largest element on top.
func NewPersistentMax[T cmp.Ordered]() *Persistent[T] {
	return NewPersistentFunc(func(a, b T) bool { return cmp.Less(b, a) })
}

// NewPersistentFunc creates an empty persistent heap with the least element according
// to less on top.
func NewPersistentFunc[T any](less func(T, T) bool) *Persistent[T] {
	assertThat(less != nil, "heap needs a less-function")
	return &Persistent[T]{
		versions: []Snapshot[T]{{less: less}},
		less:     less,
	}
}

// Latest returns the most recent version of p.
func (p *Persistent[T]) Latest() Snapshot[T] {
	return p.versions[len(p.versions)-1]
}

// Versions returns the number of the most recent version.
func (p *Persistent[T]) Versions() int {
	return len(p.versions) - 1
}

// Version returns version i of p, where 0 ≤ i ≤ p.Versions().
func (p *Persistent[T]) Version(i int) (Snapshot[T], bool) {
	if i < 0 || i >= len(p.versions) {
		return Snapshot[T]{}, false
	}
	return p.versions[i], true
}

func (p *Persistent[T]) publish(s Snapshot[T]) {
	p.versions = append(p.versions, s)
	tracer().Debugf("heap version %d holds %d elements", p.Versions(), s.count)
}

// Len returns the number of elements in the latest version.
func (p *Persistent[T]) Len() int {
	return p.Latest().Len()
}

// Peek returns the top element of the latest version, or Nothing.
func (p *Persistent[T]) Peek() maybe.Maybe[T] {
	return p.Latest().Peek()
}

// Push creates a new version holding x in addition to the elements of the latest version.
func (p *Persistent[T]) Push(x T) {
	latest := p.Latest()
	single := &node[T]{val: x, rank: 1}
	p.publish(Snapshot[T]{
		root:  meldCopy(latest.root, single, p.less),
		count: latest.count + 1,
		less:  p.less,
	})
}

// Pop creates a new version without the top element of the latest version and returns
// that element. If the latest version is empty, Pop reports false and no version
// is created.
func (p *Persistent[T]) Pop() (T, bool) {
	x, rest, ok := p.Latest().Pop()
	if ok {
		p.publish(rest)
	}
	return x, ok
}

// Merge creates a new version holding the elements of the latest version and of s.
// s may be a version of p itself or of another persistent heap with the same order.
// s stays valid and unchanged.
func (p *Persistent[T]) Merge(s Snapshot[T]) {
	latest := p.Latest()
	p.publish(Snapshot[T]{
		root:  meldCopy(latest.root, s.root, p.less),
		count: latest.count + s.count,
		less:  p.less,
	})
}
