package localvec_test

import (
	"fmt"

	"github.com/npillmayer/hybrid/localvec"
)

func ExampleVec_Push() {
	v := localvec.New[int, [4]int]()
	for i := 1; i <= 5; i++ {
		v.Push(i)
		fmt.Printf("%s %v\n", v.Storage(), v)
	}
	v.Pop()
	v.Pop()
	fmt.Printf("%v on %s\n", v, v.Storage())
	// Output:
	// Inline [1]
	// Inline [1 2]
	// Inline [1 2 3]
	// Inline [1 2 3 4]
	// Heap [1 2 3 4 5]
	// [1 2 3] on Heap
}

func ExampleVec_Pop() {
	v := localvec.New[string, [2]string]()
	v.Push("hello")
	fmt.Println(v.Pop())
	fmt.Println(v.Pop())
	// Output:
	// Just(hello)
	// Nothing
}

func ExampleFromArray() {
	v := localvec.FromArray[int, [2]int]([3]int{10, 20, 30})
	fmt.Printf("%v on %s, len=%d\n", v, v.Storage(), v.Len())
	// Output:
	// [10 20 30] on Heap, len=3
}
