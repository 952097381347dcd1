// File: pool/manager.go
// Package pool implements size-classed recycling of byte regions.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/internal/normalize"
)

// Predefined (power-of-two) region size classes (bytes).
// This table can be tuned per deployment via WithSizeClasses.
var defaultSizeClasses = []int{
	2 * 1024,        // 2K
	4 * 1024,        // 4K
	8 * 1024,        // 8K
	16 * 1024,       // 16K
	32 * 1024,       // 32K
	64 * 1024,       // 64K
	128 * 1024,      // 128K
	256 * 1024,      // 256K
	512 * 1024,      // 512K
	1 * 1024 * 1024, // 1M
}

const (
	defaultRingCapacity  = 1024
	defaultOverflowLimit = 4096
)

// Stats aggregates allocation and recycling counters for one size class.
type Stats struct {
	TotalAlloc int64 // regions allocated from the OS or heap
	Recycled   int64 // Gets satisfied from the free list
	InUse      int64 // regions currently handed out
}

// Option configures a Manager.
type Option func(*Manager)

// WithSizeClasses replaces the size-class table. Classes must be sorted
// ascending.
func WithSizeClasses(classes []int) Option {
	return func(m *Manager) { m.table = classes }
}

// WithRingCapacity sets the per-class lock-free free-list capacity (power
// of two).
func WithRingCapacity(n uint64) Option {
	return func(m *Manager) { m.ringCap = n }
}

// WithOverflowLimit bounds the per-class FIFO that catches free-list
// overflow. Regions released beyond the bound are discarded to the OS.
func WithOverflowLimit(n int) Option {
	return func(m *Manager) { m.overflowLimit = n }
}

// WithMmap toggles mmap-backed allocation where the platform supports it.
// No effect elsewhere; allocation falls back to the heap.
func WithMmap(enabled bool) Option {
	return func(m *Manager) { m.useMmap = enabled }
}

// Manager routes Get requests to per-class pools, lazily created.
type Manager struct {
	mu    sync.RWMutex
	class map[int]*classPool

	table         []int
	ringCap       uint64
	overflowLimit int
	useMmap       bool
	closed        atomic.Bool
}

// NewManager creates a manager with the default class table and limits.
// Panics on a misconfigured option: an empty or unsorted class table, or a
// ring capacity that is not a power of two.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		class:         make(map[int]*classPool),
		table:         defaultSizeClasses,
		ringCap:       defaultRingCapacity,
		overflowLimit: defaultOverflowLimit,
	}
	for _, opt := range opts {
		opt(m)
	}
	if len(m.table) == 0 {
		panic("size-class table must not be empty")
	}
	for i, c := range m.table {
		if c < 1 || (i > 0 && c <= m.table[i-1]) {
			panic(fmt.Sprintf("size-class table must be positive and strictly ascending, got %v", m.table))
		}
	}
	if m.ringCap == 0 || (m.ringCap&(m.ringCap-1)) != 0 {
		panic("ring capacity must be power of two")
	}
	return m
}

// Get returns a region of at least size bytes, recycled when possible.
// Returns api.ErrPoolClosed after Close.
func (m *Manager) Get(size int) (*Region, error) {
	if m.closed.Load() {
		return nil, api.ErrPoolClosed
	}
	size = normalize.Size(size, m.table[0])
	clz := normalize.SizeClass(size, m.table)
	return m.getOrCreatePool(clz).get(), nil
}

// getOrCreatePool returns the pool for a class, lazily allocating on first
// use.
func (m *Manager) getOrCreatePool(class int) *classPool {
	m.mu.RLock()
	p, ok := m.class[class]
	m.mu.RUnlock()
	if ok {
		return p
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok = m.class[class]; ok {
		return p
	}
	p = newClassPool(class, m.ringCap, m.overflowLimit, m.useMmap)
	m.class[class] = p
	return p
}

// Stats returns per-class counters.
func (m *Manager) Stats() map[int]Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[int]Stats, len(m.class))
	for clz, p := range m.class {
		out[clz] = p.stats()
	}
	return out
}

// Close discards all free regions and fails subsequent Gets. Regions still
// handed out stay valid; releasing them after Close discards them.
func (m *Manager) Close() {
	if m.closed.Swap(true) {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.class {
		p.drain()
	}
}

// classPool recycles regions of one size class. Fast path is the lock-free
// ring; overflow spills into a bounded FIFO; beyond that, regions are
// discarded.
type classPool struct {
	size    int
	useMmap bool
	closed  atomic.Bool

	free *Ring[*Region]

	mu            sync.Mutex
	overflow      *queue.Queue
	overflowLimit int

	totalAlloc atomic.Int64
	recycled   atomic.Int64
	inUse      atomic.Int64
}

func newClassPool(size int, ringCap uint64, overflowLimit int, useMmap bool) *classPool {
	return &classPool{
		size:          size,
		useMmap:       useMmap,
		free:          NewRing[*Region](ringCap),
		overflow:      queue.New(),
		overflowLimit: overflowLimit,
	}
}

func (p *classPool) get() *Region {
	if r, ok := p.free.Pop(); ok {
		r.released.Store(false)
		p.recycled.Add(1)
		p.inUse.Add(1)
		return r
	}

	p.mu.Lock()
	if p.overflow.Length() > 0 {
		r := p.overflow.Remove().(*Region)
		p.mu.Unlock()
		r.released.Store(false)
		p.recycled.Add(1)
		p.inUse.Add(1)
		return r
	}
	p.mu.Unlock()

	data, free := allocRegion(p.size, p.useMmap)
	p.totalAlloc.Add(1)
	p.inUse.Add(1)
	return &Region{data: data, pool: p, free: free}
}

func (p *classPool) put(r *Region) {
	p.inUse.Add(-1)
	if p.closed.Load() {
		r.discard()
		return
	}
	if p.free.Push(r) {
		// drain may have emptied the ring between the closed check and
		// the push; drain again so nothing is stranded in a closed pool.
		if p.closed.Load() {
			p.drainFree()
		}
		return
	}
	p.mu.Lock()
	if !p.closed.Load() && p.overflow.Length() < p.overflowLimit {
		p.overflow.Add(r)
		p.mu.Unlock()
		return
	}
	p.mu.Unlock()
	r.discard()
}

func (p *classPool) stats() Stats {
	return Stats{
		TotalAlloc: p.totalAlloc.Load(),
		Recycled:   p.recycled.Load(),
		InUse:      p.inUse.Load(),
	}
}

func (p *classPool) drain() {
	p.closed.Store(true)
	p.drainFree()
	p.mu.Lock()
	for p.overflow.Length() > 0 {
		p.overflow.Remove().(*Region).discard()
	}
	p.mu.Unlock()
}

func (p *classPool) drainFree() {
	for {
		r, ok := p.free.Pop()
		if !ok {
			return
		}
		r.discard()
	}
}
