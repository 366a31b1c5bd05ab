package skiplist

import (
	"cmp"
	"iter"

	"github.com/npillmayer/ordered"
)

// Set is an ordered set of elements of type T, backed by a skip list.
type Set[T any] struct {
	m *Map[T, struct{}]
}

// NewSet creates an empty set ordered according to T's standard Go ordering.
func NewSet[T cmp.Ordered](opts ...ordered.Option) *Set[T] {
	return &Set[T]{m: New[T, struct{}](opts...)}
}

// NewSetFunc creates an empty set ordered according to cmp.
func NewSetFunc[T any](cmp func(T, T) int, opts ...ordered.Option) *Set[T] {
	return &Set[T]{m: NewFunc[T, struct{}](cmp, opts...)}
}

// Insert adds x to s and reports whether it has not been present before.
func (s *Set[T]) Insert(x T) bool { return s.m.Insert(x, struct{}{}) }

// Contains reports whether x is an element of s.
func (s *Set[T]) Contains(x T) bool {
	_, ok := s.m.Get(x)
	return ok
}

func (s *Set[T]) Remove(x T) bool { return s.m.Remove(x) }
func (s *Set[T]) Len() int        { return s.m.Len() }
func (s *Set[T]) Height() int     { return s.m.Height() }

// All returns an iterator over the elements of s in ascending order.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range s.m.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// Drain empties s and returns an iterator over its former elements in ascending order.
func (s *Set[T]) Drain() iter.Seq[T] {
	seq := s.m.Drain()
	return func(yield func(T) bool) {
		for x := range seq {
			if !yield(x) {
				return
			}
		}
	}
}

func (s *Set[T]) String() string { return s.m.String() }
