/*
Package arena manages the nodes of the ephemeral (mutable) containers.

Every ephemeral tree or list owns its nodes exclusively. Nodes are handed out by an
Arena and handed back exactly once, when a key is removed or the container is drained.
Released nodes are zeroed and marked as released (tombstoned); releasing a node twice
is an internal inconsistency and panics. A small number of released nodes is kept for
re-use, all others are left to the garbage collector.

The live-count of an arena always equals the number of nodes reachable from its
container, which makes leaks and double releases observable in tests.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package arena

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.arena'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.arena")
}

// Slot has to be embedded into every node type managed by an Arena.
// It carries the tombstone of a node.
type Slot struct {
	released bool
}

func (s *Slot) slot() *Slot { return s }

// Released reports whether the node holding s has been handed back to its arena.
func (s *Slot) Released() bool {
	return s.released
}

// Arena hands out nodes of type N. P is the pointer type *N, which has to embed a Slot.
//
// The zero value is an arena ready to use, which does not re-use released nodes.
type Arena[N any, P interface {
	*N
	slot() *Slot
}] struct {
	free  []P
	keep  int
	stats Stats
}

// Stats is a snapshot of an arena's book-keeping.
type Stats struct {
	Allocs   int // number of nodes handed out
	Reused   int // number of nodes handed out from the free list
	Releases int // number of nodes handed back
}

// Live returns the number of nodes currently handed out.
func (s Stats) Live() int {
	return s.Allocs - s.Releases
}

func (s Stats) String() string {
	return fmt.Sprintf("arena(live=%d, allocs=%d, reused=%d, released=%d)",
		s.Live(), s.Allocs, s.Reused, s.Releases)
}

// New creates an arena keeping at most keep released nodes for re-use.
// keep may be 0, which disables re-use altogether.
func New[N any, P interface {
	*N
	slot() *Slot
}](keep int) *Arena[N, P] {
	assertThat(keep >= 0, "cannot keep a negative number of nodes: %d", keep)
	return &Arena[N, P]{keep: keep}
}

// Alloc hands out a zeroed node.
func (a *Arena[N, P]) Alloc() P {
	a.stats.Allocs++
	if n := len(a.free); n > 0 {
		p := a.free[n-1]
		a.free[n-1] = nil
		a.free = a.free[:n-1]
		a.stats.Reused++
		p.slot().released = false
		return p
	}
	return P(new(N))
}

// Release hands a node back. The node is zeroed, which drops all its links, keys and
// values. Releasing a node which already has been released panics.
func (a *Arena[N, P]) Release(p P) {
	assertThat(p != nil, "attempt to release nil node")
	assertThat(!p.slot().released, "node released twice")
	var zero N
	*p = zero
	p.slot().released = true
	a.stats.Releases++
	assertThat(a.stats.Releases <= a.stats.Allocs, "more nodes released than allocated")
	if len(a.free) < a.keep {
		a.free = append(a.free, p)
	}
}

// Adopt takes over the book-keeping of n live nodes from src. Containers call it when
// nodes change ownership, e.g. when two heaps are merged. Adopted nodes count as
// handed out by a and as handed back to src.
func (a *Arena[N, P]) Adopt(src *Arena[N, P], n int) {
	assertThat(n >= 0 && n <= src.Live(), "cannot adopt %d nodes from arena with %d live nodes",
		n, src.Live())
	if a == src {
		return
	}
	src.stats.Releases += n
	a.stats.Allocs += n
}

// Live returns the number of nodes currently in use.
func (a *Arena[N, P]) Live() int {
	return a.stats.Live()
}

// Stats returns a snapshot of the arena's book-keeping.
func (a *Arena[N, P]) Stats() Stats {
	return a.stats
}

// Reset forgets every node handed out so far. It is used by containers which drop
// their whole node set at once; the dropped nodes are left to the garbage collector.
func (a *Arena[N, P]) Reset() {
	if a.stats.Live() > 0 {
		tracer().Debugf("arena reset drops %d live nodes", a.stats.Live())
	}
	a.stats.Releases = a.stats.Allocs
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("arena: "+msg, msgargs...)
		panic(msg)
	}
}
