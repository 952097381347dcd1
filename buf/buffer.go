// File: buf/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer: an Initializer plus a filledness cursor. Every reachable state
// satisfies 0 <= filled <= initialized <= capacity; operations only move
// the cursors forward, except RevertToStart (filled back to 0) and the
// Initializer's explicit Reset.

package buf

import (
	"fmt"

	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/internal/debug"
)

// Buffer layers a "filled" cursor over an Initializer. Filled marks data
// the surrounding protocol considers logically present; initialized only
// marks slots safe to read as memory. The gap between the two appears
// whenever a producer initializes more than it commits.
type Buffer[T any, R api.TrustedRegion[T]] struct {
	ini         Initializer[T, R]
	itemsFilled int
}

// Uninit creates a buffer over inner with both cursors at zero. Prefer New
// when the container already holds meaningful values throughout.
func Uninit[T any, R api.TrustedRegion[T]](inner R) *Buffer[T, R] {
	return &Buffer[T, R]{ini: *Track[T](inner)}
}

// New creates a buffer over a fully-initialized container with both
// cursors at capacity: everything readable, nothing left to fill. Call
// RevertToStart to overwrite from the top; previously written values stay
// readable through UnfilledInitPart until overwritten.
func New[T any, R api.TrustedRegion[T]](inner R) *Buffer[T, R] {
	b := &Buffer[T, R]{ini: *TrackInitialized[T](inner)}
	b.itemsFilled = b.ini.capacity
	return b
}

// FromInitializer wraps an existing tracker with the filled cursor at zero.
// The Initializer is taken over and must not be used on its own afterwards.
func FromInitializer[T any, R api.TrustedRegion[T]](ini *Initializer[T, R]) *Buffer[T, R] {
	return &Buffer[T, R]{ini: *ini}
}

// FromSlice wraps a caller-owned byte slice as a fully-initialized, empty
// buffer: initialized at capacity (the slice's own contents count), filled
// at zero. The usual shape for handing scratch memory to a reader.
func FromSlice(s []byte) *Buffer[byte, Slice[byte]] {
	ini := TrackInitialized[byte](NewSlice(s))
	return FromInitializer(ini)
}

func (b *Buffer[T, R]) debugAssertValidity() {
	b.ini.debugAssertValidity()
	debug.Assert(b.itemsFilled <= b.ini.itemsInit,
		"items filled %d exceeds items initialized %d", b.itemsFilled, b.ini.itemsInit)
}

// Capacity returns the region length.
func (b *Buffer[T, R]) Capacity() int { return b.ini.capacity }

// ItemsFilled returns the committed-data cursor. Distinct from
// ItemsInitialized, which only concerns memory state.
func (b *Buffer[T, R]) ItemsFilled() int { return b.itemsFilled }

// ItemsInitialized returns the initialization cursor of the underlying
// tracker.
func (b *Buffer[T, R]) ItemsInitialized() int { return b.ini.itemsInit }

// Remaining returns how many items may be filled before the buffer is full.
func (b *Buffer[T, R]) Remaining() int { return b.ini.capacity - b.itemsFilled }

// IsFull reports whether the buffer is completely filled, and thus also
// completely initialized.
func (b *Buffer[T, R]) IsFull() bool { return b.itemsFilled == b.ini.capacity }

// IsEmpty reports whether nothing has been filled. The region can still be
// partially or fully initialized.
func (b *Buffer[T, R]) IsEmpty() bool { return b.itemsFilled == 0 }

// Initializer exposes the underlying tracker. Moving its cursor directly
// respects the Buffer invariant because filled can only lag behind it.
func (b *Buffer[T, R]) Initializer() *Initializer[T, R] { return &b.ini }

// ByRef returns the narrowed facade for handing the unfilled region to an
// external producer.
func (b *Buffer[T, R]) ByRef() Ref[T, R] { return Ref[T, R]{inner: b} }

// FilledPart returns the committed prefix. Always safe to read and rewrite
// with ordinary values, since filled is a subset of initialized.
func (b *Buffer[T, R]) FilledPart() []T {
	b.debugAssertValidity()
	return b.ini.raw()[:b.itemsFilled]
}

// UnfilledPart returns everything past the filled cursor, including the
// initialized-but-unfilled zone.
//
// Contract: the view overlaps slots already recorded as initialized, so it
// must never be used to scribble stale or garbage data over them. Prefer
// Append or FillByRepeating; code interfacing with external writers that
// need the whole destination (syscalls, codec sinks) is what this accessor
// exists for, paired with AssumeInit.
func (b *Buffer[T, R]) UnfilledPart() []T {
	b.debugAssertValidity()
	return b.ini.raw()[b.itemsFilled:]
}

// UnfilledInitPart returns the slots between the filled and initialized
// cursors: meaningful values not yet committed. Safe to read and overwrite
// with ordinary values.
func (b *Buffer[T, R]) UnfilledInitPart() []T {
	b.debugAssertValidity()
	return b.ini.raw()[b.itemsFilled:b.ini.itemsInit]
}

// UnfilledUninitPart returns the genuinely stale suffix. Writing meaningful
// values here is how new data enters the buffer.
func (b *Buffer[T, R]) UnfilledUninitPart() []T {
	b.debugAssertValidity()
	return b.ini.raw()[b.ini.itemsInit:]
}

// AllParts returns the three-way partition in one value.
func (b *Buffer[T, R]) AllParts() Parts[T] {
	b.debugAssertValidity()
	s := b.ini.raw()
	return Parts[T]{
		Filled:         s[:b.itemsFilled],
		UnfilledInit:   s[b.itemsFilled:b.ini.itemsInit],
		UnfilledUninit: s[b.ini.itemsInit:],
	}
}

// FilledUnfilledParts returns the two-way split at the filled cursor. The
// unfilled half carries the UnfilledPart contract.
func (b *Buffer[T, R]) FilledUnfilledParts() ([]T, []T) {
	b.debugAssertValidity()
	s := b.ini.raw()
	return s[:b.itemsFilled], s[b.itemsFilled:]
}

// UnfilledParts returns the initialized and stale halves of the unfilled
// region.
func (b *Buffer[T, R]) UnfilledParts() ([]T, []T) {
	p := b.AllParts()
	return p.UnfilledInit, p.UnfilledUninit
}

// Append copies src into the buffer at the filled boundary and advances
// both cursors by len(src). Panics if src overruns Remaining; neither the
// cursors nor the memory are touched in that case.
func (b *Buffer[T, R]) Append(src []T) {
	if len(src) > b.Remaining() {
		panic(fmt.Sprintf(
			"hioload-buf: append of %d items overruns unfilled region (%d filled, %d capacity)",
			len(src), b.itemsFilled, b.ini.capacity))
	}
	copy(b.ini.raw()[b.itemsFilled:], src)
	b.AssumeInit(len(src))
}

// Advance moves the filled cursor forward by count within the already
// initialized region: "I wrote this through UnfilledInitPart, now commit
// it." Panics if count exceeds the initialized-but-unfilled zone.
func (b *Buffer[T, R]) Advance(count int) {
	if count < 0 || count > b.ini.itemsInit-b.itemsFilled {
		panic(fmt.Sprintf(
			"hioload-buf: advancing filledness cursor beyond the initialized region (%d + %d filled > %d init)",
			b.itemsFilled, count, b.ini.itemsInit))
	}
	b.itemsFilled += count
}

// AdvanceToInit moves the filled cursor up to the initialization cursor.
func (b *Buffer[T, R]) AdvanceToInit() {
	b.itemsFilled = b.ini.itemsInit
}

// AssumeInit advances the filled cursor by count and raises the
// initialization cursor to at least the new filled value.
//
// Contract: the count slots past the old filled cursor must actually have
// been written with meaningful values, typically through UnfilledPart by an
// external writer reporting how much it produced. Nothing is written here.
func (b *Buffer[T, R]) AssumeInit(count int) {
	b.itemsFilled += count
	if b.ini.itemsInit < b.itemsFilled {
		b.ini.itemsInit = b.itemsFilled
	}
	b.debugAssertValidity()
}

// AssumeInitAll marks the buffer fully filled and initialized without
// writing anything. Contract: every slot must actually hold a meaningful
// value.
func (b *Buffer[T, R]) AssumeInitAll() {
	b.itemsFilled = b.ini.capacity
	b.ini.itemsInit = b.ini.capacity
}

// FillByRepeating writes item into the whole unfilled region and marks the
// buffer fully filled. The all-at-once opposite of incremental Append.
func (b *Buffer[T, R]) FillByRepeating(item T) {
	FillSlice(b.UnfilledPart(), item)
	b.AssumeInitAll()
}

// FillByZeroing fills the unfilled region with the zero value of T.
func (b *Buffer[T, R]) FillByZeroing() {
	var zero T
	b.FillByRepeating(zero)
}

// RevertToStart resets the filled cursor to zero. Initialization progress
// is kept: previously filled values remain readable through
// UnfilledInitPart until overwritten.
func (b *Buffer[T, R]) RevertToStart() {
	b.itemsFilled = 0
}

// TryIntoFull consumes the buffer and returns the proof-carrying wrapper
// when the region is completely initialized (filledness does not matter for
// the proof). On failure the buffer is untouched; see
// Initializer.TryIntoFull.
func (b *Buffer[T, R]) TryIntoFull() (Full[T, R], error) {
	return b.ini.TryIntoFull()
}

// IntoInitializer moves out the underlying tracker, dropping the filled
// cursor. The buffer must not be used afterwards.
func (b *Buffer[T, R]) IntoInitializer() *Initializer[T, R] {
	return &b.ini
}

// IntoRawParts moves out the tracker and the filled cursor.
func (b *Buffer[T, R]) IntoRawParts() (*Initializer[T, R], int) {
	return &b.ini, b.itemsFilled
}

// IntoInner moves out the wrapped container, in whatever initialization
// state it is. The buffer must not be used afterwards.
func (b *Buffer[T, R]) IntoInner() R {
	return b.ini.IntoInner()
}

// String renders the cursor state as "[buffer at <addr>, filled/init/total]".
func (b *Buffer[T, R]) String() string {
	return fmt.Sprintf("[buffer at %p, %d/%d/%d]",
		b.ini.base, b.itemsFilled, b.ini.itemsInit, b.ini.capacity)
}

// Format implements fmt.Formatter; the alternate form ("%#v") adds
// percentages for log lines about long-lived buffers.
func (b *Buffer[T, R]) Format(f fmt.State, verb rune) {
	if verb == 'v' && f.Flag('#') {
		total := b.ini.capacity
		initPct, filledPct := 0.0, 0.0
		if total > 0 {
			initPct = float64(b.ini.itemsInit) / float64(total) * 100.0
			filledPct = float64(b.itemsFilled) / float64(total) * 100.0
		}
		fmt.Fprintf(f, "[buffer at %p, %d filled (%.1f%%), %d init (%.1f%%), %d total]",
			b.ini.base, b.itemsFilled, filledPct, b.ini.itemsInit, initPct, total)
		return
	}
	fmt.Fprint(f, b.String())
}
