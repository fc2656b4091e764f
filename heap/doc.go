// Package heap provides a generic, array-backed binary heap ordered by a
// caller-supplied comparator.
//
// Overview:
//
//   - Heap[T] keeps its elements in a single dense slice; index 0 is the root.
//     The children of index i are at 2i+1 and 2i+2, and its parent at (i-1)/2.
//   - Ordering is driven entirely by a Comparator[T]: less(a, b) == true means
//     a must come out before b. One engine therefore serves both
//     "smallest first" (NewMin) and "largest first" (NewMax) configurations.
//   - Extraction is destructive: Next and Drain consume the heap one element
//     at a time, and the resulting sequence cannot be restarted.
//
// Heap-order property:
//
//	for every index 0 < i < Len(): !less(items[i], items[(i-1)/2])
//
// Insert restores it by sift-up from the new leaf; Next restores it by
// promoting the last leaf into the root and sifting it down. During sift-down
// a node with only a left child selects that child without a sibling
// comparison, then compares it with the node being sunk.
//
// API reference:
//
//	New[T](less Comparator[T], opts ...Option) *Heap[T]
//	From[T](less Comparator[T], values []T, opts ...Option) *Heap[T]  // O(n) heapify
//	NewMin[T constraints.Ordered](opts ...Option) *Heap[T]
//	NewMax[T constraints.Ordered](opts ...Option) *Heap[T]
//
//	(*Heap[T]).Insert(v T)
//	(*Heap[T]).Next() (T, bool)   // false == exhausted, never an error
//	(*Heap[T]).Peek() (T, bool)
//	(*Heap[T]).Drain() iter.Seq[T]
//	(*Heap[T]).Len() int / IsEmpty() bool / Cap() int
//	(*Heap[T]).Clear()
//	(*Heap[T]).Validate() error
//
//	Sorted[T](values []T, less Comparator[T]) []T
//
// Performance and complexity:
//
//   - Insert: amortized O(log n) (append may reallocate).
//   - Next:   O(log n).
//   - Peek, Len, IsEmpty: O(1).
//   - From:   O(n).
//   - Validate: O(n).
//   - Space: O(n). Capacity grows by append and is never reduced by Next;
//     a drain loop therefore does not reallocate. Clear releases it.
//
// Error handling (sentinel errors):
//
//   - ErrNilComparator:
//     Panic value when New or From receive a nil comparator.
//   - ErrBadCapacity:
//     Panic value when WithCapacity receives a negative value.
//   - ErrHeapOrder:
//     Wrapped and returned by Validate on the first heap-order violation.
//
// Exhaustion is not an error: Next and Peek report it through their bool result.
// An inconsistent comparator is a caller programming error; it only degrades
// the extraction order and never causes out-of-range access.
//
// Thread safety:
//
//   - A Heap is not safe for concurrent use. Guard it with a mutex or confine
//     it to a single goroutine.
package heap
