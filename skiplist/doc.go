/*
Package skiplist implements an ordered map and an ordered set as skip lists.

A skip list is a hierarchy of sorted linked lists. Every entry is a member of the
bottom list; with probability P an entry of level ℓ is a member of level ℓ+1 as well.
Searches start at the topmost level and descend whenever the next key on the current
level is not smaller than the key searched for, which yields logarithmic expected cost.

Levels are drawn from a configurable random source (ordered.WithSeed, ordered.WithRand).
The height of a skip list is the maximum level of any entry ever inserted. Removing
entries never lowers it.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package skiplist

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.skiplist'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.skiplist")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("skiplist: "+msg, msgargs...)
		panic(msg)
	}
}
