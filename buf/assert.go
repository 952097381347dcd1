// File: buf/assert.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Full: the proof-carrying wrapper over a completely initialized region.
// No extra state; the wrapper's existence is the proof.

package buf

import (
	"cmp"
	"hash/fnv"
	"slices"

	"github.com/momentics/hioload-buf/api"
)

// Full wraps a container whose every slot is known to hold a meaningful
// value. Constructed either through AssumeFull (the caller vouches), through
// NewFull (the library fills the region first), or by finishing a tracker
// (TryIntoFull). Once constructed, the whole region reads as plain items.
type Full[T any, R api.Region[T]] struct {
	inner R
}

// AssumeFull wraps inner, trusting the caller that the region is fully
// initialized.
//
// Contract: every slot of inner must hold a meaningful value. Wrapping a
// region with stale slots leaks their previous contents through Items to
// all downstream readers.
func AssumeFull[T any, R api.Region[T]](inner R) Full[T, R] {
	return Full[T, R]{inner: inner}
}

// NewFull fills the whole region with item and wraps it. The safe
// initialize-then-wrap convenience.
func NewFull[T any, R api.Region[T]](inner R, item T) Full[T, R] {
	FillSlice(inner.Raw(), item)
	return Full[T, R]{inner: inner}
}

// Items returns the whole region as initialized items, readable and
// rewritable with ordinary values.
func (f Full[T, R]) Items() []T { return f.inner.Raw() }

// Len returns the region length.
func (f Full[T, R]) Len() int { return len(f.inner.Raw()) }

// Inner returns the wrapped container without unwrapping.
func (f Full[T, R]) Inner() R { return f.inner }

// IntoInner unwraps into the underlying container, now known initialized.
// The wrapper must not be used afterwards.
func (f Full[T, R]) IntoInner() R { return f.inner }

// Equal reports whether two fully-initialized regions hold equal items.
// The two sides may use different container types.
func Equal[T comparable, A api.Region[T], B api.Region[T]](a Full[T, A], b Full[T, B]) bool {
	return slices.Equal(a.Items(), b.Items())
}

// Compare orders two fully-initialized regions lexicographically.
func Compare[T cmp.Ordered, A api.Region[T], B api.Region[T]](a Full[T, A], b Full[T, B]) int {
	return slices.Compare(a.Items(), b.Items())
}

// Sum64 hashes a fully-initialized byte region with FNV-1a, for use as a
// map key surrogate or content fingerprint.
func Sum64[R api.Region[byte]](f Full[byte, R]) uint64 {
	h := fnv.New64a()
	h.Write(f.Items())
	return h.Sum64()
}
