/*
Package binarytree holds algorithms shared by the binary search trees of this module.

The algorithms are written against a small capability interface (left child, right
child, key/value pair), which every tree variant implements for its own node type.
Traversals use an explicit stack of pending nodes instead of recursion, as splay trees
and treaps may degenerate into long chains.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package binarytree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.binarytree'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.binarytree")
}
