package localvec

import (
	"golang.org/x/exp/slices"
)

// Insert puts value at position i, shifting all elements from i on to the right.
// 0 ≤ i ≤ v.Len() must hold. If inline storage is full, v is promoted to the heap.
func (v *Vec[T, B]) Insert(i int, value T) {
	assertThat(i >= 0 && i <= v.Len(), "insert position out of bounds: %d with length %d", i, v.Len())
	if v.storage == Inline && v.n == len(v.buf) {
		v.promote(1)
	}
	if v.storage == Heap {
		v.heap = slices.Insert(v.heap, i, value)
		return
	}
	slots := arraySlice[T](&v.buf)
	copy(slots[i+1:v.n+1], slots[i:v.n])
	slots[i] = value
	v.n++
}

// Remove deletes the element at position i and returns it, shifting all
// elements after i to the left. Removing elements never moves a vector from
// the heap back to inline storage.
func (v *Vec[T, B]) Remove(i int) T {
	assertThat(i >= 0 && i < v.Len(), "index out of bounds: %d with length %d", i, v.Len())
	var zero T
	if v.storage == Heap {
		l := len(v.heap)
		value := v.heap[i]
		v.heap = slices.Delete(v.heap, i, i+1)
		v.heap[:l][l-1] = zero
		return value
	}
	slots := arraySlice[T](&v.buf)
	value := slots[i]
	copy(slots[i:v.n-1], slots[i+1:v.n])
	v.n--
	slots[v.n] = zero
	return value
}
