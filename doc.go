// Package lvheap is a small, dependency-light home for priority ordering in Go:
// a generic binary heap you configure with a comparator instead of
// implementing container/heap's five-method interface.
//
// What is inside?
//
//	heap/     — Heap[T]: array-backed binary heap ordered by a Comparator[T],
//	            with NewMin/NewMax presets, O(n) heapify (From), destructive
//	            extraction (Next, Drain) and an O(n) invariant check (Validate).
//	examples/ — a runnable job-dispatch demo.
//
// Quick ASCII example (min-heap after inserting 4, 2, 9, 11):
//
//	        2
//	       / \
//	      4   9
//	     /
//	    11
//
// Next() yields 2, promotes 11 into the root and sifts it down.
//
// Heaps are single-owner values: no internal locking is provided.
//
//	go get github.com/katalvlaran/lvheap/heap
package lvheap
