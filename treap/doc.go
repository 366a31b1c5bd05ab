/*
Package treap implements an ordered map and an ordered set as treaps.

A treap is a binary search tree on keys and, at the same time, a max-heap on
priorities drawn uniformly at random for every node. The shape of a treap is therefore
independent of the order of insertions and its expected depth is logarithmic.
All modifications are expressed by two primitives, split and merge.

Treaps differ from the other maps of this module in one respect: inserting a key which
is already present is rejected and does not overwrite the value.

Removal splits off the node holding a key. For keys with a successor function (see
NewIntegers and SetSuccessor) the split is done at the key's successor, otherwise at
"greater than the key".

The random source is configurable (ordered.WithSeed, ordered.WithRand), making
shapes reproducible in tests.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treap

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.treap'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.treap")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("treap: "+msg, msgargs...)
		panic(msg)
	}
}
