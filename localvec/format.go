package localvec

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Format implements fmt.Formatter. A vector prints like a slice of its elements,
// with the formatting verb applied to the elements. The '+' flag with verb 'v'
// prefixes the storage variant, length and capacity:
//
//	fmt.Printf("%v", v)  // [1 2 3]
//	fmt.Printf("%+v", v) // Inline(3/4)[1 2 3]
//
// Format has a value receiver so that vectors format correctly when passed by value.
func (v Vec[T, B]) Format(state fmt.State, verb rune) {
	if verb == 'v' && state.Flag('+') {
		fmt.Fprintf(state, "%s(%d/%d)%v", v.storage, v.Len(), v.Cap(), v.All())
		return
	}
	fmt.Fprintf(state, fmt.FormatString(state, verb), v.All())
}

// Dump renders the storage layout of v as a tree, one node per slot. Inline
// slots beyond the length are shown as '_'. Intended for debugging and tests.
func (v *Vec[T, B]) Dump() string {
	printer := treeprint.New()
	header := fmt.Sprintf("Vec(storage=%s, len=%d, cap=%d)", v.storage, v.Len(), v.Cap())
	branch := printer.AddBranch(header)
	switch v.storage {
	case Inline:
		for i, x := range arraySlice[T](&v.buf) {
			if i < v.n {
				branch.AddNode(fmt.Sprintf("%d: %v", i, x))
			} else {
				branch.AddNode(fmt.Sprintf("%d: _", i))
			}
		}
	case Heap:
		for i, x := range v.heap {
			branch.AddNode(fmt.Sprintf("%d: %v", i, x))
		}
		if spare := cap(v.heap) - len(v.heap); spare > 0 {
			branch.AddNode(fmt.Sprintf("… %d spare", spare))
		}
	}
	return printer.String()
}
