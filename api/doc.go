// Package api
// Author: momentics <momentics@gmail.com>
//
// Capability contracts for initialization-tracking buffers.
//
// The library tracks how much of a reusable memory region holds meaningful
// data. Go zero-fills fresh allocations, but recycled regions (pool slabs,
// mmap arenas, externally supplied scratch memory) keep whatever a previous
// user wrote into them. Slots past the initialized prefix are therefore
// "stale": reading them is not a crash, it is a silent data leak. The
// contracts in this package let any container plug its storage into the
// trackers in the buf and vectored packages without copying and without
// zeroing upfront.
//
// All contracts here are single-owner and synchronous. Nothing in this
// library locks; if a container is itself a guard (a pooled region, a locked
// cell), the tracker built on top inherits that guard's exclusion.
package api
