// SPDX-License-Identifier: MIT

package heap

import (
	"iter"
	"slices"
)

// Drain returns a single-use sequence that extracts elements in priority
// order by calling Next. Ranging over it consumes the heap; stopping early
// leaves the remaining elements in place.
//
//	for v := range h.Drain() {
//	    fmt.Println(v)
//	}
func (h *Heap[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := h.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Sorted returns a new slice holding values in extraction order under less
// (heap sort). values itself is not modified.
//
// Complexity: O(n log n) time, O(n) space.
func Sorted[T any](values []T, less Comparator[T]) []T {
	h := From(less, values)

	return slices.AppendSeq(make([]T, 0, len(values)), h.Drain())
}
