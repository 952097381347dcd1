// File: buf/region.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Basic containers satisfying api.TrustedRegion, plus slice fill helpers.
// Heavier containers (pooled, mmap-backed) live in the pool package.

package buf

import "github.com/momentics/hioload-buf/api"

// Slice wraps an externally owned mutable slice as a region. The wrapped
// slice is used in place; the caller keeps ownership of the memory and must
// keep it alive and un-resliced for the lifetime of any tracker built on
// top.
type Slice[T any] struct {
	data []T
}

// NewSlice wraps s. Capacity is len(s), fixed from here on.
func NewSlice[T any](s []T) Slice[T] {
	return Slice[T]{data: s}
}

// Raw returns the wrapped slice.
func (s Slice[T]) Raw() []T { return s.data }

// TrustedRaw marks the stability promise: Raw always returns the slice
// captured at construction.
func (Slice[T]) TrustedRaw() {}

// Owned is a heap region allocated and owned by the library.
type Owned[T any] struct {
	data []T
}

// NewOwned allocates a region of n slots. Go zero-fills the allocation, so
// a fresh Owned region carries no stale data; the tracking still applies
// once the region is recycled (Reset on the tracker, pool reuse).
func NewOwned[T any](n int) *Owned[T] {
	return &Owned[T]{data: make([]T, n)}
}

// Raw returns the backing slice.
func (o *Owned[T]) Raw() []T { return o.data }

// TrustedRaw marks the stability promise.
func (*Owned[T]) TrustedRaw() {}

var (
	_ api.TrustedRegion[byte] = Slice[byte]{}
	_ api.TrustedRegion[byte] = (*Owned[byte])(nil)
)

// FillSlice writes item into every slot of s and returns s. The counterpart
// of the tracker's PartiallyFillUninit for raw slices handed out by the
// contract-bearing accessors.
func FillSlice[T any](s []T, item T) []T {
	for i := range s {
		s[i] = item
	}
	return s
}

// ZeroSlice writes the zero value of T into every slot of s and returns s.
func ZeroSlice[T any](s []T) []T {
	var zero T
	return FillSlice(s, zero)
}
