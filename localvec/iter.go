package localvec

// Iterator walks the elements of a vector front to back:
//
//	it := v.Iter()
//	for it.Next() {
//		x := it.Value()
//		…
//	}
//
// The vector must not change length while being iterated.
type Iterator[T any, B Buffer[T]] struct {
	v     *Vec[T, B]
	next  int
	value T
}

// Iter returns an iterator positioned before the first element of v.
func (v *Vec[T, B]) Iter() *Iterator[T, B] {
	return &Iterator[T, B]{v: v}
}

// Next advances to the next element and reports whether there was one.
func (it *Iterator[T, B]) Next() bool {
	if it.next >= it.v.Len() {
		var zero T
		it.value = zero
		return false
	}
	it.value = it.v.All()[it.next]
	it.next++
	return true
}

// Value returns the element the iterator is positioned at.
func (it *Iterator[T, B]) Value() T {
	return it.value
}

// Remaining returns the number of elements still to come.
func (it *Iterator[T, B]) Remaining() int {
	if r := it.v.Len() - it.next; r > 0 {
		return r
	}
	return 0
}
