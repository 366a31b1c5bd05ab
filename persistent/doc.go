/*
Package persistent is the home of version-persistent containers.

Persistent containers never modify a node once it has become part of a version.
A modification copies the nodes on the path it touches and shares every other node
with the preceding version. Thus every version stays valid and unchanged, and most of
the memory held by consecutive versions is shared. Nodes are reclaimed by the garbage
collector as soon as no version reaches them any more.

Published versions are immutable and may be read concurrently. Creating versions has
to be serialized.

The persistent segment tree lives in sub-package segtree. The persistent leftist heap
lives in package leftist, next to its ephemeral sibling.

"Persistent" denotes immutability across versions, not durability: nothing is
written to disk.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
