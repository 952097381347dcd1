// File: vectored/vectored.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Initialization tracking over a sequence of regions (scatter-gather).
// The cursor walks the vectors in order: all vectors before the current one
// are fully initialized, the current one has an item-level cursor, and all
// later ones are untouched.

// Package vectored extends the buf trackers to scatter-gather containers:
// lists of regions filled in order, as consumed by readv/writev-style
// APIs. See the adapters package for the platform iovec conversion.
package vectored

import (
	"fmt"

	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/buf"
	"github.com/momentics/hioload-buf/internal/debug"
)

// List is the basic scatter-gather container: an ordered set of
// caller-owned slices, used in place.
type List[T any] struct {
	vecs [][]T
}

// NewList wraps parts in order.
func NewList[T any](parts ...[]T) *List[T] {
	vecs := make([][]T, len(parts))
	copy(vecs, parts)
	return &List[T]{vecs: vecs}
}

// RawVectors returns the element regions in order.
func (l *List[T]) RawVectors() [][]T { return l.vecs }

var _ api.VectoredRegion[byte] = (*List[byte])(nil)

// Initializers tracks initialization across the vectors of a scatter-gather
// container. Cursor state: vectors [0, current) are fully initialized, the
// current vector is initialized up to itemsInitCurrent, later vectors are
// stale throughout.
type Initializers[T any, R api.VectoredRegion[T]] struct {
	inner            R
	current          int
	itemsInitCurrent int

	// Captured at construction for the stability check.
	vectorCount int
}

// Track starts tracking inner with nothing recorded as initialized.
func Track[T any, R api.VectoredRegion[T]](inner R) *Initializers[T, R] {
	ini := &Initializers[T, R]{inner: inner, vectorCount: len(inner.RawVectors())}
	ini.normalize()
	return ini
}

// vectors re-derives the element list and enforces the VectoredRegion
// stability contract over the element count.
func (ini *Initializers[T, R]) vectors() [][]T {
	vs := ini.inner.RawVectors()
	if len(vs) != ini.vectorCount {
		panic(fmt.Sprintf("hioload-buf: %v: vector count %d -> %d",
			api.ErrRegionUnstable, ini.vectorCount, len(vs)))
	}
	return vs
}

// normalize rolls the cursor past exhausted and zero-length vectors so that
// the current vector, when one exists, always has room.
func (ini *Initializers[T, R]) normalize() {
	vs := ini.vectors()
	for ini.current < len(vs) && ini.itemsInitCurrent == len(vs[ini.current]) {
		ini.current++
		ini.itemsInitCurrent = 0
	}
	ini.debugAssertValidity()
}

func (ini *Initializers[T, R]) debugAssertValidity() {
	debug.Assert(ini.current <= ini.vectorCount,
		"current vector %d exceeds vector count %d", ini.current, ini.vectorCount)
	if ini.current < ini.vectorCount {
		cur := len(ini.vectors()[ini.current])
		debug.Assert(ini.itemsInitCurrent <= cur,
			"items initialized %d exceeds current vector length %d", ini.itemsInitCurrent, cur)
	}
}

// VectorCount returns the number of vectors.
func (ini *Initializers[T, R]) VectorCount() int { return ini.vectorCount }

// TotalCapacity returns the summed capacity of all vectors.
func (ini *Initializers[T, R]) TotalCapacity() int {
	total := 0
	for _, v := range ini.vectors() {
		total += len(v)
	}
	return total
}

// ItemsInitialized returns the total number of initialized items across all
// vectors.
func (ini *Initializers[T, R]) ItemsInitialized() int {
	vs := ini.vectors()
	total := ini.itemsInitCurrent
	for i := 0; i < ini.current; i++ {
		total += len(vs[i])
	}
	return total
}

// Remaining returns how many items are still stale across all vectors.
func (ini *Initializers[T, R]) Remaining() int {
	return ini.TotalCapacity() - ini.ItemsInitialized()
}

// IsCompletelyInit reports whether every vector is fully initialized.
func (ini *Initializers[T, R]) IsCompletelyInit() bool {
	return ini.current == ini.vectorCount
}

// CurrentVectorAll returns the full current vector, or false when all
// vectors are exhausted. The prefix up to CurrentVectorItemsInitialized
// holds meaningful values; the rest carries the stale-memory contract of
// api.Region.
func (ini *Initializers[T, R]) CurrentVectorAll() ([]T, bool) {
	if ini.IsCompletelyInit() {
		return nil, false
	}
	return ini.vectors()[ini.current], true
}

// CurrentVectorItemsInitialized returns the item cursor within the current
// vector.
func (ini *Initializers[T, R]) CurrentVectorItemsInitialized() int {
	return ini.itemsInitCurrent
}

// CurrentVectorUninitPart returns the stale remainder of the current
// vector, or false when all vectors are exhausted. Writing meaningful
// values here then calling AssumeInit is how external writers fill the set.
func (ini *Initializers[T, R]) CurrentVectorUninitPart() ([]T, bool) {
	all, ok := ini.CurrentVectorAll()
	if !ok {
		return nil, false
	}
	return all[ini.itemsInitCurrent:], true
}

// PartiallyFillUninit writes item into the next count stale slots, crossing
// vector boundaries as needed, and advances the cursor. Panics if count
// exceeds Remaining; nothing is written in that case.
func (ini *Initializers[T, R]) PartiallyFillUninit(count int, item T) {
	if count < 0 || count > ini.Remaining() {
		panic(fmt.Sprintf(
			"hioload-buf: partial fill of %d items overruns uninitialized vectors (%d init, %d capacity)",
			count, ini.ItemsInitialized(), ini.TotalCapacity()))
	}
	for count > 0 {
		rest, _ := ini.CurrentVectorUninitPart()
		n := min(count, len(rest))
		buf.FillSlice(rest[:n], item)
		ini.itemsInitCurrent += n
		count -= n
		ini.normalize()
	}
}

// PartiallyZeroUninit writes the zero value of T into the next count stale
// slots. Same failure behavior as PartiallyFillUninit.
func (ini *Initializers[T, R]) PartiallyZeroUninit(count int) {
	var zero T
	ini.PartiallyFillUninit(count, zero)
}

// AssumeInit advances the cursor by count items without writing anything,
// crossing vector boundaries as needed.
//
// Contract: the count slots past the cursor must actually have been written
// with meaningful values, vector by vector in order, typically by a
// readv-style consumer of CurrentVectorUninitPart. Panics if count exceeds
// Remaining.
func (ini *Initializers[T, R]) AssumeInit(count int) {
	if count < 0 || count > ini.Remaining() {
		panic(fmt.Sprintf(
			"hioload-buf: assume-init of %d items overruns uninitialized vectors (%d init, %d capacity)",
			count, ini.ItemsInitialized(), ini.TotalCapacity()))
	}
	for count > 0 {
		rest, _ := ini.CurrentVectorUninitPart()
		n := min(count, len(rest))
		ini.itemsInitCurrent += n
		count -= n
		ini.normalize()
	}
}

// AdvanceToEnd records every vector as fully initialized without writing
// anything. Carries the buf.Initializer.AdvanceToEnd contract.
func (ini *Initializers[T, R]) AdvanceToEnd() {
	ini.current = ini.vectorCount
	ini.itemsInitCurrent = 0
}

// Reset forgets all initialization progress across all vectors.
func (ini *Initializers[T, R]) Reset() {
	ini.current = 0
	ini.itemsInitCurrent = 0
	ini.normalize()
}

// TryIntoFull consumes the tracker and returns the proof-carrying wrapper
// when every vector is fully initialized. On failure the tracker is
// untouched and the caller can keep filling and retry.
func (ini *Initializers[T, R]) TryIntoFull() (Full[T, R], error) {
	if !ini.IsCompletelyInit() {
		return Full[T, R]{}, api.NewError(api.ErrCodeNotFullyInitialized, api.ErrNotFullyInitialized.Error()).
			WithContext("items_initialized", ini.ItemsInitialized()).
			WithContext("total_capacity", ini.TotalCapacity()).
			WithContext("current_vector", ini.current)
	}
	return Full[T, R]{inner: ini.inner}, nil
}

// IntoInner moves out the wrapped container, whatever its initialization
// state. The tracker must not be used afterwards.
func (ini *Initializers[T, R]) IntoInner() R {
	return ini.inner
}

// Full wraps a scatter-gather container whose every vector is known fully
// initialized.
type Full[T any, R api.VectoredRegion[T]] struct {
	inner R
}

// AssumeFull wraps inner, trusting the caller that every vector is fully
// initialized. Carries the buf.AssumeFull contract, per vector.
func AssumeFull[T any, R api.VectoredRegion[T]](inner R) Full[T, R] {
	return Full[T, R]{inner: inner}
}

// Vectors returns each vector as initialized items, in order.
func (f Full[T, R]) Vectors() [][]T {
	return f.inner.RawVectors()
}

// Inner returns the wrapped container without unwrapping.
func (f Full[T, R]) Inner() R { return f.inner }

// IntoInner unwraps into the underlying container. The wrapper must not be
// used afterwards.
func (f Full[T, R]) IntoInner() R { return f.inner }
