// File: buf/ref.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Ref: a capability-narrowing facade over Buffer, not a separate state
// machine. Hand it to a passive writer (a reader filling the buffer, a
// decompressor, a syscall wrapper) instead of the Buffer itself.

package buf

import "github.com/momentics/hioload-buf/api"

// Ref is a non-owning exclusive borrow of a Buffer with a deliberately
// reduced operation set: no access to already-filled contents, no way to
// replace the underlying buffer. The inner pointer is private and never
// surfaced, so a holder cannot swap the destination out from under the
// caller.
type Ref[T any, R api.TrustedRegion[T]] struct {
	inner *Buffer[T, R]
}

// ItemsFilled returns the filled cursor.
func (r Ref[T, R]) ItemsFilled() int { return r.inner.ItemsFilled() }

// Remaining returns how many items may still be filled.
func (r Ref[T, R]) Remaining() int { return r.inner.Remaining() }

// ByRef reborrows, for passing the facade further down without giving the
// callee anything extra.
func (r Ref[T, R]) ByRef() Ref[T, R] { return r }

// UnfilledParts returns the initialized and stale halves of the unfilled
// region.
func (r Ref[T, R]) UnfilledParts() ([]T, []T) { return r.inner.UnfilledParts() }

// UnfilledRaw returns the whole unfilled region as one slice. Carries the
// Buffer.UnfilledPart contract: never scribble stale data over the
// initialized-but-unfilled zone. Pair with Advance to report progress.
func (r Ref[T, R]) UnfilledRaw() []T { return r.inner.UnfilledPart() }

// Advance reports that count items past the filled cursor now hold
// meaningful values, moving both cursors as needed. Carries the
// Buffer.AssumeInit contract.
func (r Ref[T, R]) Advance(count int) { r.inner.AssumeInit(count) }

// AdvanceAll reports the whole region as filled and initialized. Carries
// the Buffer.AssumeInitAll contract.
func (r Ref[T, R]) AdvanceAll() { r.inner.AssumeInitAll() }

// RevertToStart resets the filled cursor to zero, keeping initialization.
func (r Ref[T, R]) RevertToStart() { r.inner.RevertToStart() }

// Append copies src at the filled boundary; see Buffer.Append.
func (r Ref[T, R]) Append(src []T) { r.inner.Append(src) }

// FillByRepeating fills the whole unfilled region with item and marks the
// buffer full.
func (r Ref[T, R]) FillByRepeating(item T) { r.inner.FillByRepeating(item) }

// FillByZeroing fills the unfilled region with the zero value of T.
func (r Ref[T, R]) FillByZeroing() { r.inner.FillByZeroing() }
