// Package heap_test provides examples demonstrating how to use the heap package.
// Each example is runnable via “go test -run Example”, showing both code and expected output.
package heap_test

import (
	"fmt"

	"github.com/katalvlaran/lvheap/heap"
)

// ExampleNewMin drains a min-heap: the smallest value comes out first.
func ExampleNewMin() {
	h := heap.NewMin[int]()
	for _, v := range []int{4, 2, 9, 11} {
		h.Insert(v)
	}

	for v := range h.Drain() {
		fmt.Print(v, " ")
	}
	fmt.Println()
	// Output: 2 4 9 11
}

// ExampleNewMax shows that extraction is destructive and interleaves with Insert.
func ExampleNewMax() {
	h := heap.NewMax[int]()
	for _, v := range []int{4, 2, 9, 11} {
		h.Insert(v)
	}

	a, _ := h.Next()
	b, _ := h.Next()
	h.Insert(10)
	c, _ := h.Next()
	fmt.Println(a, b, c, h.Len())
	// Output: 11 9 10 2
}

// ExampleHeap_Next shows the exhaustion signal.
func ExampleHeap_Next() {
	h := heap.NewMin[string]()
	h.Insert("only")

	v, ok := h.Next()
	fmt.Printf("%q %v\n", v, ok)
	v, ok = h.Next()
	fmt.Printf("%q %v\n", v, ok)
	// Output:
	// "only" true
	// "" false
}

// ExampleNew orders records with a custom comparator: earliest deadline
// first, ties broken by name.
func ExampleNew() {
	type job struct {
		name     string
		deadline int
	}
	h := heap.New[job](func(a, b job) bool {
		if a.deadline != b.deadline {
			return a.deadline < b.deadline
		}
		return a.name < b.name
	})
	h.Insert(job{"report", 30})
	h.Insert(job{"backup", 10})
	h.Insert(job{"audit", 30})

	for j := range h.Drain() {
		fmt.Println(j.deadline, j.name)
	}
	// Output:
	// 10 backup
	// 30 audit
	// 30 report
}

// ExampleSorted sorts a copy of a slice by draining a heap built in O(n).
func ExampleSorted() {
	in := []int{5, 3, 8, 1}
	fmt.Println(heap.Sorted(in, heap.Greater[int]), in)
	// Output: [8 5 3 1] [5 3 8 1]
}
