// File: buf/parts.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buf

// Parts is the three-way partition of a Buffer's region, returned as one
// value so callers need not juggle the overlapping accessors themselves.
//
// Filled is committed data, UnfilledInit holds meaningful values not yet
// committed, UnfilledUninit is stale. The three slices are disjoint,
// adjacent, and cover the whole region. Only the length of UnfilledUninit
// means anything; its contents are leftovers from a previous user.
type Parts[T any] struct {
	Filled         []T
	UnfilledInit   []T
	UnfilledUninit []T
}
