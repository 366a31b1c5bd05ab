/*
Package rbtree implements an ordered map as a left-leaning red-black tree.

A left-leaning red-black tree (Sedgewick, 2008) keeps the classical red-black
invariants: the root is black, no red node has a red child, and every root-to-leaf path
holds the same number of black nodes. Additionally, a red link never leans to the
right. Insertion and removal are recursive descents which repair the invariants on
their way back up.

Every node records the size of its subtree, so Len runs in constant time.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rbtree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.rbtree'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.rbtree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("rbtree: "+msg, msgargs...)
		panic(msg)
	}
}
