// File: adapters/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package adapters provides glue code between the capability contracts and
// platform descriptor types. The library core performs no I/O; these
// conversions exist for consumers that hand fully-initialized vectored sets
// to writev-style system calls. Platform-specific files carry build tags,
// mirroring the per-platform layout of the pool package.
package adapters
