package segtree

import (
	"fmt"

	"github.com/npillmayer/ordered/internal/binarytree"
	"github.com/npillmayer/ordered/maybe"
)

// node is a node of a persistent segment tree, covering indices [lo, hi).
// Nodes are immutable once they are part of a version.
type node[T any] struct {
	lo, hi int
	agg    T   // aggregate of all values inserted into [lo, hi)
	count  int // number of inserts into [lo, hi)
	left   *node[T]
	right  *node[T]
}

func (x *node[T]) Left() *node[T] {
	if x == nil {
		return nil
	}
	return x.left
}

func (x *node[T]) Right() *node[T] {
	if x == nil {
		return nil
	}
	return x.right
}

func (x *node[T]) Pair() (int, T) { return x.lo, x.agg }

func (x *node[T]) String() string {
	if x == nil {
		return "∅"
	}
	return fmt.Sprintf("[%d,%d) %v #%d", x.lo, x.hi, x.agg, x.count)
}

func count[T any](x *node[T]) int {
	if x == nil {
		return 0
	}
	return x.count
}

// Snapshot is an immutable version of a persistent segment tree.
type Snapshot[T any] struct {
	root       *node[T]
	begin, end int
	combine    func(T, T) T
}

// Count returns the number of inserts which led to this version.
func (s Snapshot[T]) Count() int {
	return count(s.root)
}

// Query returns the aggregate of the values inserted into [left, right). It returns
// Nothing if the range is empty or exceeds the index range of the tree, or if no value
// has been inserted into the range.
func (s Snapshot[T]) Query(left, right int) maybe.Maybe[T] {
	if left >= right || left < s.begin || right > s.end {
		tracer().Infof("segment tree query for invalid range [%d,%d)", left, right)
		return maybe.Nothing[T]()
	}
	return s.query(s.root, left, right)
}

func (s Snapshot[T]) query(x *node[T], left, right int) maybe.Maybe[T] {
	if x == nil || right <= x.lo || x.hi <= left {
		return maybe.Nothing[T]()
	}
	if left <= x.lo && x.hi <= right {
		return maybe.Just(x.agg)
	}
	return join(s.query(x.left, left, right), s.query(x.right, left, right), s.combine)
}

func (s Snapshot[T]) String() string {
	return binarytree.Dump[int, T](s.root, (*node[T]).String)
}

// join combines two optional aggregates.
func join[T any](a, b maybe.Maybe[T], combine func(T, T) T) maybe.Maybe[T] {
	x, okx := a.Get()
	y, oky := b.Get()
	switch {
	case okx && oky:
		return maybe.Just(combine(x, y))
	case okx:
		return a
	}
	return b
}

// Persistent is a version-persistent segment tree over the indices [begin, end).
// Version 0 is the empty tree, version i is the tree after the i-th insert.
//
// Inserts are not safe for concurrent use, but snapshots of versions may be shared
// freely.
type Persistent[T any] struct {
	versions   []Snapshot[T]
	begin, end int
	combine    func(T, T) T
}

// New creates an empty persistent segment tree over indices [begin, end), aggregating
// values with combine. combine has to be associative.
func New[T any](begin, end int, combine func(T, T) T) *Persistent[T] {
	assertThat(begin < end, "empty index range [%d,%d)", begin, end)
	assertThat(combine != nil, "segment tree needs a combine function")
	return &Persistent[T]{
		versions: []Snapshot[T]{{begin: begin, end: end, combine: combine}},
		begin:    begin,
		end:      end,
		combine:  combine,
	}
}

// Versions returns the number of the most recent version, i.e. the number of inserts.
func (p *Persistent[T]) Versions() int {
	return len(p.versions) - 1
}

// Latest returns the most recent version of p.
func (p *Persistent[T]) Latest() Snapshot[T] {
	return p.versions[len(p.versions)-1]
}

// Version returns version i of p, where 0 ≤ i ≤ p.Versions().
func (p *Persistent[T]) Version(i int) (Snapshot[T], bool) {
	if i < 0 || i >= len(p.versions) {
		return Snapshot[T]{}, false
	}
	return p.versions[i], true
}

// Insert creates a new version where value has been added to the value at index.
// If index has a value already, the new value is combine(old, value). Insert reports
// false, and creates no version, if index is out of range.
func (p *Persistent[T]) Insert(index int, value T) bool {
	if index < p.begin || index >= p.end {
		tracer().Infof("segment tree insert at %d outside [%d,%d)", index, p.begin, p.end)
		return false
	}
	path := pathTo(p.Latest().root, p.begin, p.end, index)
	root := path.foldR(func(s seam[T], child *node[T]) *node[T] {
		if s.leaf() {
			x := &node[T]{lo: s.lo, hi: s.hi, agg: value, count: 1}
			if s.node != nil {
				x.agg, x.count = p.combine(s.node.agg, value), s.node.count+1
			}
			return x
		}
		x := &node[T]{lo: s.lo, hi: s.hi, left: s.node.Left(), right: s.node.Right()}
		if child.lo < s.mid() {
			x.left = child
		} else {
			x.right = child
		}
		x.count = count(x.left) + count(x.right)
		agg, ok := join(aggOf(x.left), aggOf(x.right), p.combine).Get()
		assertThat(ok, "inner node [%d,%d) without aggregate", x.lo, x.hi)
		x.agg = agg
		return x
	}, nil)
	p.versions = append(p.versions, Snapshot[T]{
		root:    root,
		begin:   p.begin,
		end:     p.end,
		combine: p.combine,
	})
	tracer().Debugf("segment tree version %d: inserted at %d, copied %d nodes",
		p.Versions(), index, len(path))
	return true
}

func aggOf[T any](x *node[T]) maybe.Maybe[T] {
	if x == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(x.agg)
}

// Query returns the aggregate of the values inserted into [left, right) in the latest
// version. See Snapshot.Query.
func (p *Persistent[T]) Query(left, right int) maybe.Maybe[T] {
	return p.Latest().Query(left, right)
}

// QueryNth considers the inserts which are part of version r but not of version l,
// i.e. inserts l+1 to r. Counting every insert as a mark at its index, it locates the
// nth mark in ascending order of indices (nth ≥ 1) and returns the aggregate stored at
// that index in version r. Duplicate inserts at an index count separately.
//
// r is clamped to the number of versions. QueryNth returns Nothing if nth < 1,
// l < 0, r < l, or if there are fewer than nth inserts in the window.
func (p *Persistent[T]) QueryNth(l, r, nth int) maybe.Maybe[T] {
	if leaf := p.nth(l, r, nth); leaf != nil {
		return maybe.Just(leaf.agg)
	}
	return maybe.Nothing[T]()
}

// IndexNth is like QueryNth, but returns the index of the nth mark instead of
// its aggregate.
func (p *Persistent[T]) IndexNth(l, r, nth int) maybe.Maybe[int] {
	if leaf := p.nth(l, r, nth); leaf != nil {
		return maybe.Just(leaf.lo)
	}
	return maybe.Nothing[int]()
}

// nth walks versions l and r in lock-step down to the leaf holding the nth mark
// of the window. It returns nil if there is no such leaf.
func (p *Persistent[T]) nth(l, r, nth int) *node[T] {
	r = min(r, p.Versions())
	if nth < 1 || l < 0 || r < l {
		tracer().Infof("segment tree nth-query for invalid window (%d,%d], nth=%d", l, r, nth)
		return nil
	}
	a, b := p.versions[l].root, p.versions[r].root
	if count(b)-count(a) < nth {
		return nil
	}
	for b.lo+1 < b.hi {
		d := count(b.left) - count(a.Left())
		if d >= nth {
			a, b = a.Left(), b.left
		} else {
			nth -= d
			a, b = a.Right(), b.right
		}
		assertThat(b != nil, "lost track of marks in version window (%d,%d]", l, r)
	}
	return b
}
