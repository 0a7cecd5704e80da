/*
Package maybe implements an optional value: either Just a value of type T, or Nothing.

Containers use it for operations which may legitimately have no result, such as
removing the last element of an empty vector. Absence is not an error.

Clients may either unwrap a Maybe Go-style

	if x, ok := m.Get(); ok { … }

or pattern-match on it:

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
*/
package maybe

import "fmt"

// Maybe is either Just(value) or Nothing. The zero value is Nothing.
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

// Get returns the wrapped value and true, or the zero value of T and false.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

func (m Maybe[T]) IsJust() bool {
	return m.just
}

func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// WithDefault unwraps m, substituting def for Nothing.
func (m Maybe[T]) WithDefault(def T) T {
	if m.just {
		return m.value
	}
	return def
}

// Map applies f to a wrapped value. Nothing maps to Nothing.
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

// AndThen chains a computation which may itself fail.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher supports switch-statements over the two cases of a Maybe.
// Exactly one of Just and Nothing returns the matcher itself, the other one
// returns nil.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// matcher is used through a pointer, so that switch-cases compare pointers and
// never the (possibly incomparable) value of type T.
type matcher[T any] struct {
	m Maybe[T]
}

func (m Maybe[T]) Match() Matcher[T] {
	return &matcher[T]{m: m}
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.just {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.just {
		return mm
	}
	return nil
}
