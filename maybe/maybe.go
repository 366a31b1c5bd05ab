/*
Package maybe provides optional values.

Queries of the containers in this module which may have no answer, such as the top of
an empty heap or an aggregate over an empty or invalid range, return a Maybe.
The zero value of Maybe is Nothing.

Values may be unpacked in three ways: with a comma-ok accessor,

    if v, ok := h.Peek().Get(); ok { … }

with a default,

    sum := tree.Query(0, 5).WithDefault(0)

or by matching:

    var v int
    switch m := x.Match(); m {
    case m.Just(&v):
        …
    case m.Nothing():
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

import "fmt"

// Maybe holds either a value of type T (Just) or no value (Nothing).
type Maybe[T any] struct {
	value T
	just  bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, just: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Of converts a comma-ok pair into a Maybe.
func Of[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

// Get returns the value of m and reports whether there is one.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// WithDefault returns the value of m, or def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

// Map applies f to the value of m, if there is one.
func (m Maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.just {
		return Just(f(m.value))
	}
	return m
}

func (m Maybe[T]) String() string {
	if m.just {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// AndThen chains a computation which may fail onto x.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher supports switching over the two cases of a Maybe. See the package
// documentation for an example.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// Match returns a matcher for m.
func (m Maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

type matcher[T any] struct {
	m Maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.just {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.just {
		return mm
	}
	return nil
}
