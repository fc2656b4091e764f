package heap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvheap/heap"
)

const benchN = 10_000

// BenchmarkInsert measures inserting benchN random ints into a fresh min-heap.
func BenchmarkInsert(b *testing.B) {
	in := randomInts(rand.New(rand.NewSource(42)), benchN, 1<<20) // pre-build input once
	b.ResetTimer()                                                  // exclude input generation
	for i := 0; i < b.N; i++ {
		h := heap.NewMin[int](heap.WithCapacity(benchN))
		for _, v := range in {
			h.Insert(v)
		}
	}
}

// BenchmarkFromAndDrain measures O(n) heapify followed by a full drain.
func BenchmarkFromAndDrain(b *testing.B) {
	in := randomInts(rand.New(rand.NewSource(42)), benchN, 1<<20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := heap.From(heap.Less[int], in)
		for {
			if _, ok := h.Next(); !ok {
				break
			}
		}
	}
}
