// File: pool/region.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync/atomic"

	"github.com/momentics/hioload-buf/api"
)

// Region is a pooled byte region. It satisfies api.TrustedRegion[byte]:
// the backing slice is allocated once per Region and never resliced or
// reallocated, so Raw is stable for the Region's whole life, across any
// number of pool round-trips.
//
// Contents survive Release. The next Get that returns this Region hands
// the new user the previous user's bytes; wrap the Region in buf.Uninit so
// nothing stale leaks through safe accessors.
type Region struct {
	data     []byte
	pool     *classPool
	free     func()
	released atomic.Bool
}

// Raw returns the full backing region, including stale contents.
func (r *Region) Raw() []byte { return r.data }

// TrustedRaw marks the stability promise.
func (*Region) TrustedRaw() {}

var _ api.TrustedRegion[byte] = (*Region)(nil)

// Class returns the size class the region belongs to.
func (r *Region) Class() int { return len(r.data) }

// Release returns the region to its pool. The region must not be used
// afterwards; repeated Release is a no-op.
func (r *Region) Release() {
	if r.released.Swap(true) {
		return
	}
	r.pool.put(r)
}

// discard frees the backing memory instead of recycling it. Called when
// the free list is saturated or the pool is closed.
func (r *Region) discard() {
	if r.free != nil {
		r.free()
	}
	r.data = nil
}
