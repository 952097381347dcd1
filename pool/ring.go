// File: pool/ring.go
// Author: momentics <momentics@gmail.com>
//
// Lock-free fixed-capacity ring used as the fast path of each class free
// list. Power-of-two sizing keeps the index math to a mask.

package pool

import "sync/atomic"

// Ring is a lock-free fixed-capacity ring (power-of-two size). Regions are
// released and reacquired from arbitrary goroutines, so the ring is
// multi-producer multi-consumer: each slot carries a sequence number and a
// goroutine claims a slot with a single CAS on its cursor; the slot value
// is only touched by the claimant, with the sequence store publishing it.
type Ring[T any] struct {
	mask  uint64
	slots []ringSlot[T]
	_     [64]byte // Padding for hot/cold separation
	head  uint64
	_     [64]byte
	tail  uint64
}

type ringSlot[T any] struct {
	seq uint64
	val T
}

// NewRing allocates a ring of the given size (must be power of two).
func NewRing[T any](size uint64) *Ring[T] {
	if size == 0 || (size&(size-1)) != 0 {
		panic("ring size must be power of two")
	}
	r := &Ring[T]{
		mask:  size - 1,
		slots: make([]ringSlot[T], size),
	}
	for i := range r.slots {
		r.slots[i].seq = uint64(i)
	}
	return r
}

// Push adds an item; returns false if full.
func (r *Ring[T]) Push(val T) bool {
	tail := atomic.LoadUint64(&r.tail)
	for {
		s := &r.slots[tail&r.mask]
		seq := atomic.LoadUint64(&s.seq)
		switch diff := int64(seq) - int64(tail); {
		case diff == 0:
			if atomic.CompareAndSwapUint64(&r.tail, tail, tail+1) {
				s.val = val
				atomic.StoreUint64(&s.seq, tail+1)
				return true
			}
			tail = atomic.LoadUint64(&r.tail)
		case diff < 0:
			// Slot still holds an unconsumed value from the previous lap.
			return false
		default:
			tail = atomic.LoadUint64(&r.tail)
		}
	}
}

// Pop removes and returns (item, ok); ok==false if empty.
func (r *Ring[T]) Pop() (res T, ok bool) {
	head := atomic.LoadUint64(&r.head)
	for {
		s := &r.slots[head&r.mask]
		seq := atomic.LoadUint64(&s.seq)
		switch diff := int64(seq) - int64(head+1); {
		case diff == 0:
			if atomic.CompareAndSwapUint64(&r.head, head, head+1) {
				res = s.val
				var zero T
				s.val = zero
				atomic.StoreUint64(&s.seq, head+uint64(len(r.slots)))
				return res, true
			}
			head = atomic.LoadUint64(&r.head)
		case diff < 0:
			return res, false
		default:
			head = atomic.LoadUint64(&r.head)
		}
	}
}

// Len returns the number of items currently held; approximate while
// producers or consumers are in flight.
func (r *Ring[T]) Len() int {
	return int(atomic.LoadUint64(&r.tail) - atomic.LoadUint64(&r.head))
}

// Cap returns the ring capacity.
func (r *Ring[T]) Cap() int {
	return len(r.slots)
}
