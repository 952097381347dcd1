// Package buf
// Author: momentics <momentics@gmail.com>
//
// Initialization-tracking buffers over reusable memory regions.
//
// The package layers two cursors over any container satisfying
// api.TrustedRegion:
//
//   - Initializer tracks how many leading slots hold meaningful values
//     ("initialized"); everything past that prefix is stale memory from a
//     previous user of the region.
//   - Buffer adds a second cursor on top, "filled": how much of the
//     initialized prefix the surrounding protocol has actually committed
//     (bytes read so far, records produced so far). Filled never exceeds
//     initialized, initialized never exceeds capacity.
//
// The distinction matters when interfacing with writers that initialize
// more than they report as consumed (readv-style syscalls, codec scratch
// space): slots between the two cursors are safe to read and overwrite, but
// are not yet data.
//
// Ref is a narrowed facade over Buffer for handing the unfilled region to
// an external producer without letting it inspect already-filled contents
// or swap the destination out from under the caller. Full is the
// proof-carrying wrapper for regions known to be 100% initialized.
//
// See initializer.go, buffer.go, ref.go, assert.go for implementation
// details.
package buf
