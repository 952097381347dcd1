// File: pool/mmap_linux.go
//go:build linux

// Package pool: Linux allocation path. Regions come from anonymous mmap,
// with 2 MiB hugepages attempted for classes of hugepage-multiple size.
// Falls back to the Go heap when mmap is unavailable (e.g. rlimit).
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import "golang.org/x/sys/unix"

const hugePageSize = 2 * 1024 * 1024

// allocRegion returns a backing slice of exactly size bytes plus a release
// function for when the region leaves the pool for good. The kernel zeroes
// fresh mappings; staleness begins with the first recycle, which is why the
// pool pairs with the buf trackers rather than re-zeroing.
func allocRegion(size int, useMmap bool) ([]byte, func()) {
	if !useMmap {
		return make([]byte, size), nil
	}
	prot := unix.PROT_READ | unix.PROT_WRITE
	flags := unix.MAP_PRIVATE | unix.MAP_ANONYMOUS

	if size%hugePageSize == 0 {
		if data, err := unix.Mmap(-1, 0, size, prot, flags|unix.MAP_HUGETLB); err == nil {
			return data, func() { _ = unix.Munmap(data) }
		}
	}
	if data, err := unix.Mmap(-1, 0, size, prot, flags); err == nil {
		return data, func() { _ = unix.Munmap(data) }
	}
	return make([]byte, size), nil
}
