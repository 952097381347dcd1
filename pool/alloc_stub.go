// File: pool/alloc_stub.go
//go:build !linux

// Package pool: portable allocation path. Regions come from the Go heap;
// the useMmap option has no effect.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

func allocRegion(size int, _ bool) ([]byte, func()) {
	return make([]byte, size), nil
}
