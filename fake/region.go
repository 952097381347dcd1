// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake region implementations for testing the capability contracts.

package fake

import "github.com/momentics/hioload-buf/api"

// Region is a well-behaved in-memory region with optional stale prefill,
// for tests that need deterministic "previous user" contents without a
// pool round-trip.
type Region struct {
	data []byte
}

// NewRegion creates a region of n bytes filled with stale, so tests can
// detect any leak of unexposed memory.
func NewRegion(n int, stale byte) *Region {
	data := make([]byte, n)
	for i := range data {
		data[i] = stale
	}
	return &Region{data: data}
}

// Raw returns the backing slice.
func (r *Region) Raw() []byte { return r.data }

// TrustedRaw marks the stability promise.
func (*Region) TrustedRaw() {}

var _ api.TrustedRegion[byte] = (*Region)(nil)

// UnstableRegion violates the TrustedRegion contract on purpose: every Raw
// call past the first returns a fresh backing array. It still implements
// the marker, the way a buggy container would, so tests can prove the
// trackers' runtime stability check catches liars.
type UnstableRegion struct {
	size  int
	calls int
	first []byte
}

// NewUnstableRegion creates an unstable region of n bytes.
func NewUnstableRegion(n int) *UnstableRegion {
	return &UnstableRegion{size: n, first: make([]byte, n)}
}

// Raw returns the original array on the first call and a fresh one after.
func (u *UnstableRegion) Raw() []byte {
	u.calls++
	if u.calls == 1 {
		return u.first
	}
	return make([]byte, u.size)
}

// TrustedRaw is the promise this fake deliberately breaks.
func (*UnstableRegion) TrustedRaw() {}

var _ api.TrustedRegion[byte] = (*UnstableRegion)(nil)
