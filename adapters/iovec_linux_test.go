// File: adapters/iovec_linux_test.go
//go:build linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package adapters_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-buf/adapters"
	"github.com/momentics/hioload-buf/vectored"
)

func TestIovecsFromFullSet(t *testing.T) {
	list := vectored.NewList[byte](make([]byte, 4), nil, make([]byte, 2))
	ini := vectored.Track[byte](list)
	ini.PartiallyFillUninit(6, 0xAB)

	full, err := ini.TryIntoFull()
	require.NoError(t, err)

	iovs := adapters.Iovecs(full)
	require.Len(t, iovs, 2) // zero-length vector skipped
	assert.Equal(t, uint64(4), iovs[0].Len)
	assert.Equal(t, uint64(2), iovs[1].Len)
	assert.Equal(t, &list.RawVectors()[0][0], iovs[0].Base)
	assert.Equal(t, &list.RawVectors()[2][0], iovs[1].Base)
}

func TestIovecsFromAssumed(t *testing.T) {
	a := []byte("write")
	b := []byte("v")
	full := vectored.AssumeFull[byte](vectored.NewList[byte](a, b))

	iovs := adapters.Iovecs(full)
	require.Len(t, iovs, 2)
	assert.Equal(t, &a[0], iovs[0].Base)
	assert.Equal(t, uint64(5), iovs[0].Len)
	assert.Equal(t, uint64(1), iovs[1].Len)
}
