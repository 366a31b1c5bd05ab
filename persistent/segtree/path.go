package segtree

import "fmt"

// seam is a position on the path from the root of a version down to a leaf: the
// segment [lo, hi) and the node covering it in the preceding version, if any.
type seam[T any] struct {
	lo, hi int
	node   *node[T]
}

func (s seam[T]) String() string {
	return fmt.Sprintf("[%d,%d)@%v", s.lo, s.hi, s.node)
}

func (s seam[T]) mid() int {
	return s.lo + (s.hi-s.lo)/2
}

func (s seam[T]) leaf() bool {
	return s.hi-s.lo == 1
}

// seamPath is a list of seams, denoting the path to a leaf.
type seamPath[T any] []seam[T]

// pathTo collects the seams from root down to the leaf for index.
func pathTo[T any](root *node[T], begin, end, index int) seamPath[T] {
	path := seamPath[T]{}
	s := seam[T]{lo: begin, hi: end, node: root}
	for {
		path = append(path, s)
		if s.leaf() {
			return path
		}
		m := s.mid()
		if index < m {
			s = seam[T]{lo: s.lo, hi: m, node: s.node.Left()}
		} else {
			s = seam[T]{lo: m, hi: s.hi, node: s.node.Right()}
		}
	}
}

// foldR applies function f on pairs (parent, child) of path, starting at the bottom-most
// seam. zero is applied as the child in the first call of f. If path is empty, zero will
// be returned, otherwise the value returned from the final call to f.
func (path seamPath[T]) foldR(f func(seam[T], *node[T]) *node[T], zero *node[T]) *node[T] {
	r := zero
	for i := len(path) - 1; i >= 0; i-- {
		r = f(path[i], r)
	}
	return r
}
