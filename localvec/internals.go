package localvec

import (
	"fmt"
	"unsafe"
)

// Buffer is the set of array types usable as inline storage. The length of the
// array type is the inline capacity N of a vector.
type Buffer[T any] interface {
	~[1]T | ~[2]T | ~[3]T | ~[4]T | ~[5]T | ~[6]T | ~[7]T | ~[8]T |
		~[9]T | ~[10]T | ~[11]T | ~[12]T | ~[13]T | ~[14]T | ~[15]T | ~[16]T |
		~[24]T | ~[32]T | ~[48]T | ~[64]T | ~[96]T | ~[128]T | ~[256]T | ~[512]T
}

// Storage tags the variant a vector currently uses.
type Storage uint8

const (
	Inline Storage = iota // elements live in the inline array
	Heap                  // elements live in a heap-allocated slice
)

func (s Storage) String() string {
	switch s {
	case Inline:
		return "Inline"
	case Heap:
		return "Heap"
	}
	return fmt.Sprintf("Storage(%d)", uint8(s))
}

// arraySlice returns a slice covering all N slots of array a.
//
// Type parameters over array types of different lengths cannot be sliced
// directly, so we go through unsafe. The slice aliases *a.
func arraySlice[T any, B Buffer[T]](a *B) []T {
	return unsafe.Slice((*T)(unsafe.Pointer(a)), len(*a))
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("localvec: "+msg, msgargs...)
		panic(msg)
	}
}
