// SPDX-License-Identifier: MIT

package heap

import "golang.org/x/exp/constraints"

// Less is the "smallest first" comparator for ordered types.
func Less[T constraints.Ordered](a, b T) bool { return a < b }

// Greater is the "largest first" comparator for ordered types.
func Greater[T constraints.Ordered](a, b T) bool { return a > b }

// NewMin returns an empty Heap that extracts the smallest element first.
func NewMin[T constraints.Ordered](opts ...Option) *Heap[T] {
	return New(Less[T], opts...)
}

// NewMax returns an empty Heap that extracts the largest element first.
func NewMax[T constraints.Ordered](opts ...Option) *Heap[T] {
	return New(Greater[T], opts...)
}
