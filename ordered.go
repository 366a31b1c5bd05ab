/*
Package ordered is a family of ordered associative containers.

The containers live in sub-packages:

   rbtree               left-leaning red-black map
   splay                self-adjusting (splay) map
   treap                randomized treap map and set
   skiplist             probabilistic skip list map and set
   leftist              mergeable leftist heap, ephemeral and persistent
   persistent/segtree   version-persistent segment tree

All maps share a common contract: Insert reports whether a key has been newly inserted,
Get returns a value and whether it is present, Remove reports whether a key has been
present, All iterates in ascending key order and Drain dismantles a map while iterating.
The treap deviates: inserting a duplicate key is rejected instead of overwriting.

Containers are not safe for concurrent use. Versions of persistent containers, once
created, are immutable and may be read concurrently.

This package holds configuration shared by the containers.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ordered

import (
	"math/rand/v2"
)

// Config collects the settings of a container. Clients will not use it directly,
// but rather pass Options to a container's constructor.
type Config struct {
	Rand     *rand.Rand // source of priorities and levels
	Keep     int        // number of released nodes kept for re-use
	MaxLevel int        // maximum height of skip lists, 0 for the default
}

// Option is a type to help initializing containers at creation time.
type Option func(Config) Config

// DefaultKeep is the default number of released nodes a container keeps for re-use.
const DefaultKeep = 64

// Configure applies options to a default configuration. The default random source
// is seeded randomly.
func Configure(opts ...Option) Config {
	conf := Config{Keep: DefaultKeep}
	for _, option := range opts {
		conf = option(conf)
	}
	if conf.Rand == nil {
		conf.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return conf
}

// WithRand is an option to set the random source for containers which draw random
// numbers (treaps, skip lists).
//
// Use it like this:
//
//     m := treap.New[int, string](ordered.WithRand(rand.New(rand.NewPCG(1, 2))))
//
func WithRand(r *rand.Rand) Option {
	return func(conf Config) Config {
		conf.Rand = r
		return conf
	}
}

// WithSeed is an option to make the shape of randomized containers reproducible.
func WithSeed(seed uint64) Option {
	return func(conf Config) Config {
		conf.Rand = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		return conf
	}
}

// KeepNodes is an option to set the number of released nodes a container keeps
// for re-use. n = 0 disables re-use.
func KeepNodes(n int) Option {
	return func(conf Config) Config {
		conf.Keep = max(0, n)
		return conf
	}
}

// WithMaxLevel is an option to limit the height of skip lists. Skip lists clamp n to
// their built-in maximum.
func WithMaxLevel(n int) Option {
	return func(conf Config) Config {
		conf.MaxLevel = max(1, n)
		return conf
	}
}

// --- Comparators -----------------------------------------------------------

// Reverse returns a comparison function ordering keys in reverse.
func Reverse[K any](cmp func(K, K) int) func(K, K) int {
	return func(a, b K) int {
		return cmp(b, a)
	}
}

// Less turns a comparison function into a less-than predicate.
func Less[K any](cmp func(K, K) int) func(K, K) bool {
	return func(a, b K) bool {
		return cmp(a, b) < 0
	}
}
