/*
Package splay implements an ordered map as a self-adjusting (splay) tree.

A splay tree does not maintain any balance invariant. Instead, every access moves
the accessed node to the root by a sequence of rotations, which yields amortized
logarithmic cost per operation. Note that, as a consequence, Get modifies the shape
of the tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package splay

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'ordered.splay'.
func tracer() tracing.Trace {
	return tracing.Select("ordered.splay")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("splay: "+msg, msgargs...)
		panic(msg)
	}
}
