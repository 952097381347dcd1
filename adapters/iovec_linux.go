// File: adapters/iovec_linux.go
//go:build linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package adapters

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/vectored"
)

// Iovecs converts a fully-initialized vectored set into the descriptor list
// consumed by writev/pwritev. Taking vectored.Full rather than the raw
// container keeps the proof obligation in the type: only vectors whose
// every byte is initialized can reach the syscall boundary, so no stale
// pool memory is ever written out.
//
// Zero-length vectors are skipped; the kernel accepts them but they waste
// iovec slots.
func Iovecs[R api.VectoredRegion[byte]](full vectored.Full[byte, R]) []unix.Iovec {
	vecs := full.Vectors()
	out := make([]unix.Iovec, 0, len(vecs))
	for _, v := range vecs {
		if len(v) == 0 {
			continue
		}
		iov := unix.Iovec{Base: &v[0]}
		iov.SetLen(len(v))
		out = append(out, iov)
	}
	return out
}
