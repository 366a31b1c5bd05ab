package rbtree

import (
	"fmt"

	"github.com/npillmayer/ordered/internal/arena"
)

type color bool

const (
	black color = false
	red   color = true
)

func (c color) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// node is a node of the tree. A node is owned by exactly one parent link (or by the
// map's root).
type node[K, V any] struct {
	arena.Slot
	key   K
	val   V
	left  *node[K, V]
	right *node[K, V]
	color color
	size  int // 1 + size(left) + size(right)
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
	return fmt.Sprintf("%v:%v (%s,%d)", x.key, x.val, x.color, x.size)
}

func isRed[K, V any](x *node[K, V]) bool {
	return x != nil && x.color == red
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

// rotateLeft turns a right-leaning link into a left-leaning one:
// (h a (x b c)) becomes (x (h a b) c), x taking over h's color and h turning red.
func rotateLeft[K, V any](h *node[K, V]) *node[K, V] {
	assertThat(h.right != nil, "rotate left without right child at %v", h.key)
	x := h.right
	h.right = x.left
	x.left = h
	x.color = h.color
	h.color = red
	h.refresh()
	x.refresh()
	return x
}

// rotateRight turns a left-leaning link into a right-leaning one:
// (h (x a b) c) becomes (x a (h b c)), x taking over h's color and h turning red.
func rotateRight[K, V any](h *node[K, V]) *node[K, V] {
	assertThat(h.left != nil, "rotate right without left child at %v", h.key)
	x := h.left
	h.left = x.right
	x.right = h
	x.color = h.color
	h.color = red
	h.refresh()
	x.refresh()
	return x
}

// flipColors toggles the colors of h and both of its children.
func flipColors[K, V any](h *node[K, V]) {
	assertThat(h.left != nil && h.right != nil, "color flip at %v requires two children", h.key)
	h.color = !h.color
	h.left.color = !h.left.color
	h.right.color = !h.right.color
}

// fixup restores the left-leaning invariants at h on the way up of a modification.
func fixup[K, V any](h *node[K, V]) *node[K, V] {
	if isRed(h.right) && !isRed(h.left) {
		h = rotateLeft(h)
	}
	if isRed(h.left) && isRed(h.left.left) {
		h = rotateRight(h)
	}
	if isRed(h.left) && isRed(h.right) {
		flipColors(h)
	}
	h.refresh()
	return h
}

// moveRedLeft makes h.left or one of its children red, assuming h is red and both
// h.left and h.left.left are black.
func moveRedLeft[K, V any](h *node[K, V]) *node[K, V] {
	flipColors(h)
	if isRed(h.right.left) {
		h.right = rotateRight(h.right)
		h = rotateLeft(h)
		flipColors(h)
	}
	return h
}

// moveRedRight makes h.right or one of its children red, assuming h is red and both
// h.right and h.right.left are black.
func moveRedRight[K, V any](h *node[K, V]) *node[K, V] {
	flipColors(h)
	if isRed(h.left.left) {
		h = rotateRight(h)
		flipColors(h)
	}
	return h
}
