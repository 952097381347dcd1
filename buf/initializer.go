// File: buf/initializer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Initializer: the minimal unit pairing one region with an
// initialization-progress cursor. Slots [0, ItemsInitialized) hold
// meaningful values; slots past the cursor are stale.

package buf

import (
	"fmt"

	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/internal/debug"
)

// Initializer tracks how much of a single region has been written with
// meaningful values. The cursor is monotonically non-decreasing except for
// the explicit Reset.
//
// The region is exclusively owned by the Initializer for its lifetime; the
// view is re-derived from Raw on every access and verified against the base
// address and length captured at construction, so a container violating the
// TrustedRegion contract panics instead of corrupting the cursor.
type Initializer[T any, R api.TrustedRegion[T]] struct {
	inner     R
	itemsInit int

	// Captured at construction for the stability check.
	base     *T
	capacity int
}

// Track starts tracking inner with nothing recorded as initialized. Use
// TrackInitialized if the region already holds meaningful values
// throughout.
func Track[T any, R api.TrustedRegion[T]](inner R) *Initializer[T, R] {
	raw := inner.Raw()
	ini := &Initializer[T, R]{inner: inner, capacity: len(raw)}
	if len(raw) > 0 {
		ini.base = &raw[0]
	}
	return ini
}

// TrackInitialized starts tracking inner with the whole region recorded as
// initialized, for containers whose every slot already holds a meaningful
// value.
func TrackInitialized[T any, R api.TrustedRegion[T]](inner R) *Initializer[T, R] {
	ini := Track[T](inner)
	ini.itemsInit = ini.capacity
	return ini
}

// raw re-derives the full view and enforces the TrustedRegion contract.
func (ini *Initializer[T, R]) raw() []T {
	s := ini.inner.Raw()
	var base *T
	if len(s) > 0 {
		base = &s[0]
	}
	if len(s) != ini.capacity || base != ini.base {
		panic(fmt.Sprintf("hioload-buf: %v: base %p -> %p, len %d -> %d",
			api.ErrRegionUnstable, ini.base, base, ini.capacity, len(s)))
	}
	return s
}

func (ini *Initializer[T, R]) debugAssertValidity() {
	debug.Assert(ini.itemsInit <= ini.capacity,
		"items initialized %d exceeds capacity %d", ini.itemsInit, ini.capacity)
}

// Capacity returns the region length, fixed for the Initializer's lifetime.
func (ini *Initializer[T, R]) Capacity() int { return ini.capacity }

// ItemsInitialized returns the length of the meaningful prefix.
func (ini *Initializer[T, R]) ItemsInitialized() int { return ini.itemsInit }

// Remaining returns how many slots are still stale.
func (ini *Initializer[T, R]) Remaining() int { return ini.capacity - ini.itemsInit }

// IsCompletelyInit reports whether every slot holds a meaningful value.
func (ini *Initializer[T, R]) IsCompletelyInit() bool { return ini.itemsInit == ini.capacity }

// IsCompletelyUninit reports whether no slot has been initialized yet.
func (ini *Initializer[T, R]) IsCompletelyUninit() bool { return ini.itemsInit == 0 }

// InitPart returns the meaningful prefix. Reading and overwriting it with
// ordinary values is always fine; by invariant these slots already hold
// meaningful data, so no write through this view can desynchronize the
// cursor.
func (ini *Initializer[T, R]) InitPart() []T {
	ini.debugAssertValidity()
	return ini.raw()[:ini.itemsInit]
}

// UninitPart returns the stale remainder.
//
// Writing meaningful values here is how external producers fill the region;
// the cursor does not move until the write is acknowledged (AdvanceToEnd
// here, or AssumeInit on a Buffer layered on top). Callers must not treat
// anything read from this view as data.
func (ini *Initializer[T, R]) UninitPart() []T {
	ini.debugAssertValidity()
	return ini.raw()[ini.itemsInit:]
}

// InitUninitParts returns both partitions in one call.
func (ini *Initializer[T, R]) InitUninitParts() ([]T, []T) {
	ini.debugAssertValidity()
	s := ini.raw()
	return s[:ini.itemsInit], s[ini.itemsInit:]
}

// PartiallyFillUninit writes item into the next count stale slots and
// advances the cursor by count. Panics if count exceeds Remaining; nothing
// is written in that case.
func (ini *Initializer[T, R]) PartiallyFillUninit(count int, item T) {
	if count < 0 || count > ini.Remaining() {
		panic(fmt.Sprintf(
			"hioload-buf: partial fill of %d items overruns uninitialized region (%d init, %d capacity)",
			count, ini.itemsInit, ini.capacity))
	}
	FillSlice(ini.raw()[ini.itemsInit:ini.itemsInit+count], item)
	ini.itemsInit += count
	ini.debugAssertValidity()
}

// PartiallyZeroUninit writes the zero value of T into the next count stale
// slots and advances the cursor. Same failure behavior as
// PartiallyFillUninit.
func (ini *Initializer[T, R]) PartiallyZeroUninit(count int) {
	var zero T
	ini.PartiallyFillUninit(count, zero)
}

// AdvanceToEnd records the whole region as initialized without writing
// anything.
//
// Contract: every slot must actually hold a meaningful value, written
// through UninitPart or known from the container's provenance. Recording
// stale slots as initialized leaks their previous contents to every safe
// accessor downstream.
func (ini *Initializer[T, R]) AdvanceToEnd() {
	ini.itemsInit = ini.capacity
}

// Reset forgets all initialization progress. The region's contents become
// stale as far as tracking is concerned, even though the memory itself is
// untouched. Used when recycling a region from scratch.
func (ini *Initializer[T, R]) Reset() {
	ini.itemsInit = 0
}

// TryIntoFull consumes the Initializer and returns the proof-carrying
// wrapper when every slot is initialized. Otherwise it returns
// api.ErrNotFullyInitialized wrapped with the cursor values, and the
// Initializer is left exactly as it was, so no progress is lost and the
// caller can keep filling and retry.
func (ini *Initializer[T, R]) TryIntoFull() (Full[T, R], error) {
	if !ini.IsCompletelyInit() {
		return Full[T, R]{}, api.NewError(api.ErrCodeNotFullyInitialized, api.ErrNotFullyInitialized.Error()).
			WithContext("items_initialized", ini.itemsInit).
			WithContext("capacity", ini.capacity)
	}
	return Full[T, R]{inner: ini.inner}, nil
}

// IntoInner moves out the wrapped container, whatever its initialization
// state. The Initializer must not be used afterwards.
func (ini *Initializer[T, R]) IntoInner() R {
	return ini.inner
}
