// File: buf/buffer_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package buf_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentics/hioload-buf/buf"
	"github.com/momentics/hioload-buf/fake"
)

func TestBufferBasicOps(t *testing.T) {
	b := buf.Uninit[byte](buf.NewOwned[byte](32))

	require.Equal(t, 32, b.Capacity())
	require.Equal(t, 32, b.Remaining())
	require.True(t, b.IsEmpty())
	require.False(t, b.IsFull())
	require.True(t, b.Initializer().IsCompletelyUninit())
	require.False(t, b.Initializer().IsCompletelyInit())
	require.Equal(t, 0, b.Initializer().ItemsInitialized())
	require.Equal(t, 32, b.Initializer().Remaining())
	require.Empty(t, b.FilledPart())
	require.Len(t, b.UnfilledPart(), 32)

	parts := b.AllParts()
	require.Empty(t, parts.Filled)
	require.Empty(t, parts.UnfilledInit)
	require.Len(t, parts.UnfilledUninit, 32)

	src := []byte("I am a really nice slice!")
	modified := []byte("I am a really wise slice!")

	b.Append(src)

	require.False(t, b.IsEmpty())
	require.False(t, b.IsFull())
	require.Equal(t, src, b.FilledPart())
	require.False(t, b.Initializer().IsCompletelyInit())
	require.False(t, b.Initializer().IsCompletelyUninit())
	require.Equal(t, src, b.Initializer().InitPart())
	require.Equal(t, len(src), b.ItemsFilled())
	require.Equal(t, 32-len(src), b.Remaining())

	filled := b.FilledPart()
	filled[14] = 'w'
	filled[16] = 's'

	require.Equal(t, modified, b.FilledPart())
	require.Equal(t, modified, b.Initializer().InitPart())
	require.Equal(t, len(src), b.ItemsFilled())
	require.Equal(t, 32-len(src), b.Remaining())
	require.Len(t, b.UnfilledPart(), 32-len(src))

	ini := b.IntoInitializer()
	require.Equal(t, len(modified), ini.ItemsInitialized())
	require.Equal(t, 7, ini.Remaining())
	ini.PartiallyFillUninit(3, 0xFF)
	ini.PartiallyZeroUninit(1)
	require.Equal(t, 3, ini.Remaining())

	withGarbage := append(append([]byte{}, modified...), 0xFF, 0xFF, 0xFF, 0x00)
	initPart, uninitPart := ini.InitUninitParts()
	require.Equal(t, withGarbage, initPart)
	require.Len(t, uninitPart, 3)

	b2 := buf.FromInitializer(ini)
	b2.Advance(len(modified))

	parts = b2.AllParts()
	require.Equal(t, modified, parts.Filled)
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0x00}, parts.UnfilledInit)
	require.Len(t, parts.UnfilledUninit, 3)

	parts.UnfilledInit[2] = 0x13
	parts.UnfilledInit[3] = 0x37
	require.Equal(t, []byte{0xFF, 0xFF, 0x13, 0x37}, b2.UnfilledInitPart())

	rest := []byte(" Right?")
	b2.Append(rest)

	require.Equal(t, 32, b2.ItemsFilled())
	require.True(t, b2.IsFull())
	require.False(t, b2.IsEmpty())
	require.Equal(t, 0, b2.Remaining())
	require.Equal(t, 0, b2.Initializer().Remaining())
	require.True(t, b2.Initializer().IsCompletelyInit())

	b2.AdvanceToInit()

	full, err := b2.TryIntoFull()
	require.NoError(t, err)
	total := append(append([]byte{}, modified...), rest...)
	require.Equal(t, total, full.Items())
}

func TestBufferScenario(t *testing.T) {
	region := buf.NewOwned[byte](32)
	b := buf.Uninit[byte](region)

	src := []byte("I am a really nice slice!")
	b.Append(src)

	assert.Equal(t, len(src), b.ItemsFilled())
	assert.Equal(t, 32-len(src), b.Remaining())

	filled := b.FilledPart()
	filled[14] = 'w'
	filled[16] = 's'
	assert.Equal(t, []byte("I am a really wise slice!"), b.FilledPart())
}

func TestNewIsFullyFilled(t *testing.T) {
	region := buf.NewOwned[byte](8)
	copy(region.Raw(), "abcdefgh")

	b := buf.New[byte](region)
	require.True(t, b.IsFull())
	require.Equal(t, 8, b.ItemsFilled())
	require.Equal(t, 8, b.ItemsInitialized())
	require.Equal(t, []byte("abcdefgh"), b.FilledPart())
}

func TestFromSlice(t *testing.T) {
	scratch := []byte("previous contents")
	b := buf.FromSlice(scratch)

	require.Equal(t, 0, b.ItemsFilled())
	require.Equal(t, len(scratch), b.ItemsInitialized())
	// The slice's own contents count as initialized and stay readable until
	// overwritten.
	require.Equal(t, scratch, b.UnfilledInitPart())

	b.Append([]byte("new"))
	require.Equal(t, []byte("new"), b.FilledPart())
	require.Equal(t, []byte("vious contents"), b.UnfilledInitPart())
}

func TestAppendBoundaryNoPartialWrite(t *testing.T) {
	b := buf.Uninit[byte](fake.NewRegion(8, 0xAA))
	b.Append([]byte("abcd"))

	before := append([]byte{}, b.Initializer().InitPart()...)
	filledBefore, initBefore := b.ItemsFilled(), b.ItemsInitialized()

	require.Panics(t, func() { b.Append([]byte("too long for it")) })

	assert.Equal(t, filledBefore, b.ItemsFilled())
	assert.Equal(t, initBefore, b.ItemsInitialized())
	if diff := cmp.Diff(before, b.Initializer().InitPart()); diff != "" {
		t.Fatalf("init part changed (-want +got):\n%s", diff)
	}
}

func TestAdvanceBeyondInitPanics(t *testing.T) {
	b := buf.Uninit[byte](buf.NewOwned[byte](8))
	b.Append([]byte("ab"))
	b.Initializer().PartiallyFillUninit(2, 0x01)

	require.NotPanics(t, func() { b.Advance(2) })
	require.Panics(t, func() { b.Advance(1) })
}

func TestFillByRepeating(t *testing.T) {
	b := buf.Uninit[byte](buf.NewOwned[byte](16))
	b.FillByRepeating(0xFF)

	require.True(t, b.IsFull())
	require.Equal(t, 16, b.ItemsFilled())
	for _, v := range b.FilledPart() {
		require.Equal(t, byte(0xFF), v)
	}
}

func TestFillByZeroing(t *testing.T) {
	b := buf.Uninit[byte](fake.NewRegion(16, 0xEE))
	b.Append([]byte{1, 2, 3})
	b.FillByZeroing()

	require.True(t, b.IsFull())
	require.Equal(t, append([]byte{1, 2, 3}, make([]byte, 13)...), b.FilledPart())
}

func TestRevertToStart(t *testing.T) {
	b := buf.Uninit[byte](buf.NewOwned[byte](16))
	b.Append([]byte("hello"))

	b.RevertToStart()

	assert.Equal(t, 0, b.ItemsFilled())
	assert.Equal(t, 5, b.ItemsInitialized())
	// Previously filled bytes stay readable until overwritten.
	assert.Equal(t, []byte("hello"), b.UnfilledInitPart())

	b.Append([]byte("HE"))
	assert.Equal(t, []byte("HE"), b.FilledPart())
	assert.Equal(t, []byte("llo"), b.UnfilledInitPart())
}

func TestViewIdempotence(t *testing.T) {
	b := buf.Uninit[byte](buf.NewOwned[byte](16))
	b.Append([]byte("stable"))
	b.Initializer().PartiallyFillUninit(4, 0x7F)

	first := b.AllParts()
	second := b.AllParts()
	assert.Equal(t, first.Filled, second.Filled)
	assert.Equal(t, first.UnfilledInit, second.UnfilledInit)
	assert.Len(t, second.UnfilledUninit, len(first.UnfilledUninit))
	assert.Equal(t, b.FilledPart(), b.FilledPart())
}

func TestRoundTrip(t *testing.T) {
	b := buf.Uninit[byte](buf.NewOwned[byte](8))
	var want []byte
	for _, chunk := range [][]byte{[]byte("ab"), []byte("cde"), []byte("fgh")} {
		b.Append(chunk)
		want = append(want, chunk...)
	}
	require.True(t, b.IsFull())

	b.AdvanceToInit()
	full, err := b.TryIntoFull()
	require.NoError(t, err)
	require.Equal(t, want, full.Items())
	require.Equal(t, want, full.IntoInner().Raw())
}

func TestUnstableRegionCaught(t *testing.T) {
	b := buf.Uninit[byte](fake.NewUnstableRegion(16))
	defer func() {
		msg, ok := recover().(string)
		require.True(t, ok, "expected a string panic value")
		// The fake swaps the backing array without changing its length, so
		// the message must identify the base-address change, not just len.
		assert.Contains(t, msg, "hioload-buf: region view changed between calls")
		assert.Contains(t, msg, "base 0x")
		assert.Contains(t, msg, "len 16 -> 16")
	}()
	b.Append([]byte("x"))
	t.Fatal("append over an unstable region must panic")
}

func TestBufferFormat(t *testing.T) {
	b := buf.Uninit[byte](buf.NewOwned[byte](32))
	b.Append([]byte("Hello, world!"))
	b.Initializer().PartiallyZeroUninit(13)

	addr := fmt.Sprintf("%p", &b.Initializer().InitPart()[0])
	assert.Equal(t, fmt.Sprintf("[buffer at %s, 13/26/32]", addr), b.String())
	assert.Equal(t,
		fmt.Sprintf("[buffer at %s, 13 filled (40.6%%), 26 init (81.2%%), 32 total]", addr),
		fmt.Sprintf("%#v", b))
}

// TestCursorLattice drives a random operation sequence against a model and
// checks 0 <= filled <= initialized <= capacity plus the partition sizes
// after every step.
func TestCursorLattice(t *testing.T) {
	const capacity = 64
	for seed := int64(0); seed < 10; seed++ {
		rng := newRand(seed)
		b := buf.Uninit[byte](buf.NewOwned[byte](capacity))

		for i := 0; i < 5000; i++ {
			switch rng.next() % 6 {
			case 0:
				n := rng.next() % (capacity + 1)
				if n <= b.Remaining() {
					b.Append(make([]byte, n))
				}
			case 1:
				n := rng.next() % (capacity + 1)
				if n <= b.ItemsInitialized()-b.ItemsFilled() {
					b.Advance(n)
				}
			case 2:
				n := rng.next() % (capacity + 1)
				if n <= b.Initializer().Remaining() {
					b.Initializer().PartiallyFillUninit(n, 0x42)
				}
			case 3:
				b.AdvanceToInit()
			case 4:
				b.RevertToStart()
			case 5:
				if rng.next()%16 == 0 {
					b.FillByRepeating(0x55)
				}
			}

			filled, init := b.ItemsFilled(), b.ItemsInitialized()
			if filled < 0 || filled > init || init > capacity {
				t.Fatalf("invariant violated: filled=%d init=%d cap=%d", filled, init, capacity)
			}
			p := b.AllParts()
			if len(p.Filled)+len(p.UnfilledInit)+len(p.UnfilledUninit) != capacity {
				t.Fatalf("partition does not cover region: %d+%d+%d != %d",
					len(p.Filled), len(p.UnfilledInit), len(p.UnfilledUninit), capacity)
			}
		}
	}
}

// xorshift keeps the lattice test deterministic across runs.
type xorshift struct{ state uint64 }

func newRand(seed int64) *xorshift { return &xorshift{state: uint64(seed)*2685821657736338717 + 1} }

func (x *xorshift) next() int {
	x.state ^= x.state << 13
	x.state ^= x.state >> 7
	x.state ^= x.state << 17
	return int(x.state % (1 << 30))
}
