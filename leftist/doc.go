/*
Package leftist implements mergeable priority queues as leftist heaps.

A leftist heap is a heap-ordered binary tree where, for every node, the rank of the
left child is at least the rank of the right child. The rank of a node is the length
of its rightmost path down to an empty child. The right spine of a leftist heap is
therefore at most logarithmic in length, and two heaps are merged (melded) by walking
down their right spines only.

Heap is an ephemeral heap which owns its nodes. Persistent is a persistent heap: every
Push and Pop creates a new version, and all earlier versions remain accessible as
immutable snapshots. Nodes are shared between versions and copied on modification.

Elements are ordered by a less-function; the top of a heap is the least element.
NewMax flips the order for numbers and strings.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package leftist

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.leftist'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.leftist")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("leftist: "+msg, msgargs...)
		panic(msg)
	}
}
