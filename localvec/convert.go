package localvec

// FromSlice creates a vector from s. The vector starts out on the heap and takes
// ownership of s's backing array, no elements are copied, even if s would fit
// into inline storage. Clients must not use s afterwards.
func FromSlice[T any, B Buffer[T]](s []T) Vec[T, B] {
	return Vec[T, B]{storage: Heap, heap: s}
}

// FromArray creates a vector with inline capacity len(B) from an array of a
// possibly different length. Elements are moved one by one; the vector uses
// inline storage if len(a) ≤ len(B), heap storage otherwise.
//
// Use it like this:
//
//	v := localvec.FromArray[int, [2]int]([3]int{10, 20, 30}) // on the heap
func FromArray[T any, B Buffer[T], A Buffer[T]](a A) Vec[T, B] {
	v := Vec[T, B]{}
	elems := arraySlice[T](&a)
	if len(elems) > len(v.buf) {
		tracer().Debugf("array of length %d exceeds inline capacity %d", len(elems), len(v.buf))
		v.storage = Heap
		v.heap = make([]T, 0, len(elems))
	}
	for _, x := range elems {
		v.Push(x)
	}
	return v
}
