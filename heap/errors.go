// SPDX-License-Identifier: MIT
// Package heap: sentinel error set.
// Normal-path operations (Insert, Next, Peek, Len) never fail; these sentinels
// cover programmer errors at construction time and the diagnostic Validate.

package heap

import "errors"

// Every message is prefixed with "heap: ..." for consistency. Match with
// errors.Is; Validate wraps ErrHeapOrder with index context.
var (
	// ErrNilComparator is the panic value used when New or From receive a nil Comparator.
	ErrNilComparator = errors.New("heap: comparator is nil")

	// ErrBadCapacity is the panic value used when WithCapacity receives a negative value.
	ErrBadCapacity = errors.New("heap: capacity must be non-negative")

	// ErrHeapOrder is returned by Validate when a parent does not have
	// priority over one of its children.
	ErrHeapOrder = errors.New("heap: heap-order property violated")
)
