package localvec

import (
	"golang.org/x/exp/slices"

	"github.com/npillmayer/hybrid/maybe"
)

// Vec is a vector of elements of type T with inline capacity len(B).
//
// Vec is a tagged union: while storage is Inline, the first n slots of buf hold
// the elements and heap is nil. After promotion storage is Heap, heap holds the
// elements and buf is all zero.
//
// The zero value is an empty inline vector, ready to use.
type Vec[T any, B Buffer[T]] struct {
	storage Storage
	n       int
	buf     B
	heap    []T
}

// New creates an empty vector using inline storage. It does not allocate.
func New[T any, B Buffer[T]]() Vec[T, B] {
	return Vec[T, B]{}
}

// WithCapacity creates an empty vector with room for at least capacity elements.
// If capacity exceeds the inline capacity, the vector starts out on the heap with
// capacity reserved, and the first capacity pushes will not re-allocate.
func WithCapacity[T any, B Buffer[T]](capacity int) Vec[T, B] {
	assertThat(capacity >= 0, "negative capacity %d", capacity)
	v := Vec[T, B]{}
	if capacity <= len(v.buf) {
		return v
	}
	tracer().Debugf("new vector on heap with capacity %d > %d", capacity, len(v.buf))
	v.storage = Heap
	v.heap = make([]T, 0, capacity)
	return v
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in v.
func (v *Vec[T, B]) Len() int {
	if v.storage == Heap {
		return len(v.heap)
	}
	return v.n
}

func (v *Vec[T, B]) IsEmpty() bool {
	return v.Len() == 0
}

// Cap returns the number of elements v is able to hold without allocating.
func (v *Vec[T, B]) Cap() int {
	if v.storage == Heap {
		return cap(v.heap)
	}
	return len(v.buf)
}

// Storage reports which variant v currently uses.
func (v *Vec[T, B]) Storage() Storage {
	return v.storage
}

// All returns the elements of v as a slice. The slice aliases v's storage and is
// valid until the next call of a method which modifies the length of v.
func (v *Vec[T, B]) All() []T {
	if v.storage == Heap {
		return v.heap
	}
	return arraySlice[T](&v.buf)[:v.n]
}

// At returns the element at index i.
func (v *Vec[T, B]) At(i int) T {
	assertThat(i >= 0 && i < v.Len(), "index out of bounds: %d with length %d", i, v.Len())
	return v.All()[i]
}

// Set replaces the element at index i.
func (v *Vec[T, B]) Set(i int, value T) {
	assertThat(i >= 0 && i < v.Len(), "index out of bounds: %d with length %d", i, v.Len())
	v.All()[i] = value
}

// Last returns the final element of v, if any.
func (v *Vec[T, B]) Last() maybe.Maybe[T] {
	all := v.All()
	if len(all) == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(all[len(all)-1])
}

// Push appends value to v. If v's inline storage is full, all elements are moved
// to the heap first.
func (v *Vec[T, B]) Push(value T) {
	switch v.storage {
	case Inline:
		if v.n < len(v.buf) {
			arraySlice[T](&v.buf)[v.n] = value
			v.n++
			return
		}
		v.promote(1)
		v.heap = append(v.heap, value)
	case Heap:
		v.heap = append(v.heap, value)
	}
}

// Extend appends values in order. Promotion to the heap happens at most once,
// with room reserved for all of values.
func (v *Vec[T, B]) Extend(values ...T) {
	if v.storage == Inline && v.n+len(values) > len(v.buf) {
		v.promote(len(values))
	}
	if v.storage == Heap {
		v.heap = append(v.heap, values...)
		return
	}
	slots := arraySlice[T](&v.buf)
	v.n += copy(slots[v.n:], values)
}

// Pop removes the last element of v and returns it. For an empty vector
// Pop returns Nothing and leaves v unchanged.
//
// A vector on the heap stays on the heap, even if its length drops to the
// inline capacity or below.
func (v *Vec[T, B]) Pop() maybe.Maybe[T] {
	var zero T
	if v.storage == Heap {
		l := len(v.heap)
		if l == 0 {
			return maybe.Nothing[T]()
		}
		value := v.heap[l-1]
		v.heap[l-1] = zero
		v.heap = v.heap[:l-1]
		return maybe.Just(value)
	}
	if v.n == 0 {
		return maybe.Nothing[T]()
	}
	slots := arraySlice[T](&v.buf)
	v.n--
	value := slots[v.n]
	slots[v.n] = zero // leave a placeholder, v no longer references value
	return maybe.Just(value)
}

// Clone returns a copy of v which does not share storage with v.
// The copy uses the same variant as v.
func (v *Vec[T, B]) Clone() Vec[T, B] {
	w := *v
	if v.storage == Heap {
		w.heap = slices.Clone(v.heap)
	}
	return w
}

// promote moves all inline elements to a heap slice with room for at least
// extra more elements. The inline buffer is cleared afterwards.
func (v *Vec[T, B]) promote(extra int) {
	assertThat(v.storage == Inline, "inconsistency: promoting a vector already on the heap")
	heap := slices.Grow([]T(nil), v.n+extra)
	heap = append(heap, arraySlice[T](&v.buf)[:v.n]...)
	tracer().Debugf("promoting %d inline elements to heap, cap=%d", v.n, cap(heap))
	var empty B
	v.buf = empty
	v.n = 0
	v.heap = heap
	v.storage = Heap
}
