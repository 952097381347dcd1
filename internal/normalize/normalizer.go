// File: internal/normalize/normalizer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Unified size normalization routines for region pools. Ensures all
// allocations and pool lookups validate requested sizes against the
// configured size-class table to prevent out-of-bounds classes and silent
// fallbacks. Should be used by ALL call sites working with size classes.

package normalize

import (
	"fmt"
	"sync/atomic"
)

// logNormalize reports normalization events; replaceable for tests or
// structured logging.
var logNormalize atomic.Pointer[func(msg string, args ...any)]

func init() {
	f := func(msg string, args ...any) {
		fmt.Printf("[normalize] "+msg+"\n", args...)
	}
	logNormalize.Store(&f)
}

// SetLogger replaces the normalization event logger. nil silences it.
func SetLogger(f func(msg string, args ...any)) {
	if f == nil {
		f = func(string, ...any) {}
	}
	logNormalize.Store(&f)
}

func logf(msg string, args ...any) {
	(*logNormalize.Load())(msg, args...)
}

// SizeClass returns the smallest class in table that can hold size.
// Falls back to the largest class when size exceeds the table, logging the
// event, so callers always receive a usable class.
func SizeClass(size int, table []int) int {
	for _, c := range table {
		if size <= c {
			return c
		}
	}
	last := table[len(table)-1]
	logf("size %d exceeds largest class %d, falling back", size, last)
	return last
}

// Size validates a requested region size.
//   - If size < 1, returns fallback and logs the event.
func Size(size, fallback int) int {
	if size < 1 {
		logf("region size %d invalid, fallback to %d", size, fallback)
		return fallback
	}
	return size
}
