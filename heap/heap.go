// SPDX-License-Identifier: MIT

package heap

import "fmt"

// Heap is an array-backed binary heap ordered by a caller-supplied Comparator.
//
// The element at index 0 is the root (highest priority). The children of
// index i live at 2i+1 and 2i+2, its parent at (i-1)/2. The logical size is
// len(items); extraction truncates, so there are no tombstone slots.
//
// A Heap is not safe for concurrent use. Callers sharing one across
// goroutines must guard it with their own lock.
type Heap[T any] struct {
	items []T           // dense heap storage, len(items) == logical size
	less  Comparator[T] // priority predicate, never nil
}

// New returns an empty Heap ordered by less.
//
// Panics with ErrNilComparator if less is nil, and with ErrBadCapacity if
// a WithCapacity option is negative.
//
// Complexity: O(1) time, O(Capacity) space.
func New[T any](less Comparator[T], opts ...Option) *Heap[T] {
	if less == nil {
		panic(ErrNilComparator.Error())
	}
	cfg := buildOptions(opts)

	return &Heap[T]{
		items: make([]T, 0, cfg.Capacity),
		less:  less,
	}
}

// From builds a Heap holding a copy of values, ordered by less. The caller's
// slice is never retained or reordered.
//
// The heap is built bottom-up: sift-down is applied to every internal node
// starting from the last parent, which costs O(n) rather than the O(n log n)
// of n successive Inserts.
func From[T any](less Comparator[T], values []T, opts ...Option) *Heap[T] {
	h := New(less, opts...)
	if cap(h.items) < len(values) {
		h.items = make([]T, 0, len(values))
	}
	h.items = append(h.items, values...)

	for i := len(h.items)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}

	return h
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int { return len(h.items) }

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool { return h.Len() == 0 }

// Cap returns the capacity of the backing array. Extraction never reduces it;
// only Clear does.
func (h *Heap[T]) Cap() int { return cap(h.items) }

// Insert adds v to the heap and restores heap order upward from the new leaf.
//
// Complexity: amortized O(log n).
func (h *Heap[T]) Insert(v T) {
	h.items = append(h.items, v)
	h.siftUp(len(h.items) - 1)
}

// Peek returns the highest-priority element without removing it.
// ok is false when the heap is empty.
func (h *Heap[T]) Peek() (v T, ok bool) {
	if h.IsEmpty() {
		return v, false
	}

	return h.items[0], true
}

// Next removes and returns the highest-priority element, transferring it to
// the caller. ok is false when the heap is exhausted; in that case the heap
// is left untouched and later calls keep returning false until an Insert.
//
// Each call irreversibly consumes one element: the sequence produced by
// repeated Next calls cannot be restarted.
//
// Complexity: O(log n).
func (h *Heap[T]) Next() (v T, ok bool) {
	n := len(h.items)
	if n == 0 {
		return v, false
	}

	v = h.items[0]
	var zero T
	if n > 1 {
		// Promote the last leaf into the root slot, then sink it.
		h.items[0] = h.items[n-1]
		h.items[n-1] = zero
		h.items = h.items[:n-1]
		h.siftDown(0)
	} else {
		h.items[0] = zero
		h.items = h.items[:0]
	}

	return v, true
}

// Clear removes every element and releases the backing array.
func (h *Heap[T]) Clear() {
	h.items = nil
}

// Validate checks the heap-order property over every parent/child pair and
// returns an error wrapping ErrHeapOrder for the first child that strictly
// outranks its parent. Equal priorities are accepted.
//
// It is a diagnostic aid for tests; it never runs implicitly.
//
// Complexity: O(n).
func (h *Heap[T]) Validate() error {
	n := len(h.items)
	var i int
	for i = 1; i < n; i++ {
		p := parent(i)
		if h.less(h.items[i], h.items[p]) {
			return fmt.Errorf("%w: parent index %d, child index %d", ErrHeapOrder, p, i)
		}
	}

	return nil
}

// siftUp moves the element at idx toward the root until its parent has priority.
func (h *Heap[T]) siftUp(idx int) {
	for idx > 0 {
		p := parent(idx)
		if h.less(h.items[p], h.items[idx]) {
			break
		}
		h.items[idx], h.items[p] = h.items[p], h.items[idx]
		idx = p
	}
}

// siftDown moves the element at idx toward the leaves until it has priority
// over its chosen child, or has no children.
func (h *Heap[T]) siftDown(idx int) {
	for {
		child, ok := h.priorityChild(idx)
		if !ok || h.less(h.items[idx], h.items[child]) {
			return
		}
		h.items[idx], h.items[child] = h.items[child], h.items[idx]
		idx = child
	}
}

// priorityChild returns the child of idx with higher priority. A lone left
// child is returned as-is; ok is false for a leaf.
func (h *Heap[T]) priorityChild(idx int) (int, bool) {
	n := len(h.items)
	l, r := left(idx), right(idx)
	if l >= n {
		return 0, false
	}
	if r >= n {
		return l, true
	}
	if h.less(h.items[l], h.items[r]) {
		return l, true
	}

	return r, true
}

func parent(i int) int { return (i - 1) / 2 }
func left(i int) int   { return 2*i + 1 }
func right(i int) int  { return 2*i + 2 }
