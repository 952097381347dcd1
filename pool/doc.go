// Package pool
// Author: momentics <momentics@gmail.com>
//
// Size-classed recycling of byte regions for zero-copy pipelines.
//
// Recycled regions keep whatever the previous user wrote into them; the
// pool deliberately does not zero on Get or on Release. That stale memory
// is exactly what the buf trackers exist for: wrap a pooled region in
// buf.Uninit and only the initialized prefix is ever exposed through safe
// accessors. On Linux, large classes can be backed by mmap (hugepages when
// available); see mmap_linux.go.
package pool
