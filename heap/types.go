// SPDX-License-Identifier: MIT

package heap

// Comparator reports whether a has strictly higher priority than b, i.e. a
// must be an ancestor of b and is extracted first.
//
// Comparator must describe a strict ordering:
//   - irreflexive: less(a, a) is false;
//   - transitive: less(a, b) && less(b, c) implies less(a, c).
//
// A comparator that breaks these rules yields an unspecified extraction
// order, but never an out-of-range access. It is not checked at runtime.
type Comparator[T any] func(a, b T) bool

// Options configures a Heap at construction time.
//
// Capacity – initial capacity of the backing array (≥ 0). Default is 0,
//
//	the backing array then grows on demand via append.
type Options struct {
	Capacity int // Initial backing capacity
}

// Option represents a functional option for configuring a Heap.
type Option func(*Options)

// WithCapacity pre-sizes the backing array to hold n elements without
// reallocation. Must pass a non-negative value; a negative value panics
// with ErrBadCapacity when the option is applied by New or From.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Capacity: 0 (grow on demand).
func DefaultOptions() Options {
	return Options{
		Capacity: 0,
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
