package localvec

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Equal reports whether v and w hold the same elements in the same order.
// Storage variant and inline capacity of either vector do not matter.
func Equal[T comparable, A Buffer[T], B Buffer[T]](v *Vec[T, A], w *Vec[T, B]) bool {
	return slices.Equal(v.All(), w.All())
}

// EqualFunc is like Equal, but compares elements with eq.
func EqualFunc[T, U any, A Buffer[T], B Buffer[U]](v *Vec[T, A], w *Vec[U, B], eq func(T, U) bool) bool {
	return slices.EqualFunc(v.All(), w.All(), eq)
}

// Sort sorts the elements of v in ascending order.
func Sort[T constraints.Ordered, B Buffer[T]](v *Vec[T, B]) {
	slices.Sort(v.All())
}

// SortFunc sorts the elements of v, ordered by less.
func (v *Vec[T, B]) SortFunc(less func(a, b T) bool) {
	slices.SortFunc(v.All(), less)
}
