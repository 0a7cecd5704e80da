/*
Package localvec implements a growable vector which keeps its first N elements
in inline storage and switches to a heap-allocated Go slice once it grows beyond N.

Short vectors therefore never allocate. The inline capacity N is part of the type:
it is given as an array type argument,

	v := localvec.New[int, [4]int]()
	v.Push(1)   // inline
	…
	v.Push(5)   // 5 > 4 ⇒ elements move to the heap

Moving to the heap ("promotion") happens at most once during a vector's lifetime.
A vector does not move back to inline storage when elements are removed, as
the heap allocation already exists.

Vectors are not safe for concurrent use. A Vec should not be copied after use,
as copies share heap storage; use Clone instead.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package localvec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'hybrid.localvec'.
func tracer() tracing.Trace {
	return tracing.Select("hybrid.localvec")
}
