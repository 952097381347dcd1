// File: api/region.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Region capability contracts: how a container exposes its backing storage
// as a contiguous run of possibly-stale slots, singly or scatter-gather.

package api

// Region describes a container exposing a fixed-capacity contiguous run of
// slots of type T. Slots may hold stale values left over from a previous
// user of the memory; the trackers layered on top record which prefix has
// been written with meaningful data.
//
// Contract, load-bearing for every tracker in this library:
//
//  1. Raw must return a slice over the same backing array, with the same
//     base address and the same length, on every call for the lifetime of
//     the value. No reallocation, no copy-on-write, no length change.
//  2. Raw must have no side effects.
//  3. Callers that received slots recorded as initialized must never use a
//     Raw view to overwrite them with stale or garbage data behind the
//     tracker's back. Writing meaningful values is always allowed.
//
// Trackers re-derive the view from Raw instead of caching it, and verify
// rule 1 at runtime on mutation paths (see buf.Initializer). A container
// that cannot uphold the contract must not be offered as backing storage.
type Region[T any] interface {
	// Raw returns the full backing region, including the stale suffix.
	Raw() []T
}

// TrustedRegion marks a Region whose Raw is idempotent, stable and free of
// side effects, as required by rules 1 and 2 above. The marker carries no
// behavior; implementing it is the container author's promise. Trackers
// require it so that accidental use of an unstable container (one that
// reallocates or reslices on access) fails at compile time rather than by
// corrupting cursors at runtime.
type TrustedRegion[T any] interface {
	Region[T]

	// TrustedRaw is a marker method; implementations do nothing.
	TrustedRaw()
}

// VectoredRegion is the Region capability for scatter-gather containers: a
// sequence of regions rather than one contiguous run. Elements are plain
// slices, the universal mutable view in Go; a container backed by richer
// region types exposes their Raw views here.
//
// The stability contract extends over the sequence: RawVectors must return
// the same element count, and each element with the same base address and
// length, on every call.
type VectoredRegion[T any] interface {
	// RawVectors returns the element regions in order.
	RawVectors() [][]T
}
