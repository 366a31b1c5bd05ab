/*
Package segtree implements segment trees, range-aggregation trees over an index range.

Values are aggregated by a caller-supplied associative combine function, e.g. addition,
min or max. Indices which never have been assigned a value do not contribute to
aggregates; a query over indices without values yields Nothing.

Persistent is a version-persistent segment tree over an index range [begin, end).
Every Insert creates a new version by copying the path from the root to the updated
leaf; all other nodes are shared with the preceding version. Earlier versions stay
accessible and answer queries unchanged. Besides range aggregation, a persistent
segment tree answers order statistics over a window of versions (QueryNth, IndexNth).

Tree is an ephemeral, array-backed segment tree for indices [0, size).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package segtree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.segtree'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.segtree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("segtree: "+msg, msgargs...)
		panic(msg)
	}
}
