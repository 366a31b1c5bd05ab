package segtree

import (
	"math/bits"

	"github.com/npillmayer/ordered/maybe"
)

// Tree is an ephemeral segment tree over indices [0, size), stored in an array.
// Assigning a value to an index replaces the previous value.
type Tree[T any] struct {
	buf     []maybe.Maybe[T] // buf[1] is the root, leaves start at offset
	size    int
	offset  int
	combine func(T, T) T
}

// NewTree creates a segment tree for size indices without any values.
func NewTree[T any](size int, combine func(T, T) T) *Tree[T] {
	assertThat(size >= 0, "negative size %d", size)
	assertThat(combine != nil, "segment tree needs a combine function")
	offset := 1
	if size > 1 {
		offset = 1 << bits.Len(uint(size-1))
	}
	return &Tree[T]{
		buf:     make([]maybe.Maybe[T], 2*offset),
		size:    size,
		offset:  offset,
		combine: combine,
	}
}

// FromSlice creates a segment tree holding values at indices [0, len(values)).
func FromSlice[T any](values []T, combine func(T, T) T) *Tree[T] {
	t := NewTree(len(values), combine)
	for i, v := range values {
		t.buf[t.offset+i] = maybe.Just(v)
	}
	for i := t.offset - 1; i > 0; i-- {
		t.buf[i] = join(t.buf[2*i], t.buf[2*i+1], combine)
	}
	return t
}

// Len returns the number of indices of t.
func (t *Tree[T]) Len() int {
	return t.size
}

// Set assigns value to index. It reports false if index is out of range.
func (t *Tree[T]) Set(index int, value T) bool {
	if index < 0 || index >= t.size {
		return false
	}
	i := t.offset + index
	t.buf[i] = maybe.Just(value)
	for i > 1 {
		i >>= 1
		t.buf[i] = join(t.buf[2*i], t.buf[2*i+1], t.combine)
	}
	return true
}

// Query returns the aggregate of the values at indices [left, right), combined in
// ascending order of indices. It returns Nothing if the range is empty or out of
// bounds, or if no index in the range has a value.
func (t *Tree[T]) Query(left, right int) maybe.Maybe[T] {
	if left < 0 || right > t.size || left >= right {
		tracer().Infof("segment tree query for invalid range [%d,%d)", left, right)
		return maybe.Nothing[T]()
	}
	var lagg, ragg maybe.Maybe[T]
	l, r := left+t.offset, right+t.offset
	for l < r {
		if l&1 == 1 {
			lagg = join(lagg, t.buf[l], t.combine)
			l++
		}
		if r&1 == 1 {
			r--
			ragg = join(t.buf[r], ragg, t.combine)
		}
		l, r = l>>1, r>>1
	}
	return join(lagg, ragg, t.combine)
}
