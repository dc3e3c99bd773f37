package strbuf

import "sync"

// Allocator supplies backing storage for Strings. Alloc returns a slice of
// exactly size bytes; Free takes back a slice previously returned by Alloc
// on the same Allocator. Alloc and Free must pair across a given String's
// lifetime, so the default allocator must not be swapped while Strings
// created under the old one are still live.
type Allocator interface {
	Alloc(size int) []byte
	Free(buf []byte)
}

// heapAllocator is the default: plain make, with Free left to the garbage
// collector.
type heapAllocator struct{}

func (heapAllocator) Alloc(size int) []byte { return make([]byte, size) }
func (heapAllocator) Free([]byte)           {}

// defaultAlloc is the process-wide allocator used by Strings that carry no
// per-String override.
var defaultAlloc Allocator = heapAllocator{}

// SetDefaultAllocator replaces the process-wide allocator. Call it once at
// startup, before any String is created. A nil allocator is ignored.
func SetDefaultAllocator(a Allocator) {
	if a != nil {
		defaultAlloc = a
	}
}

func (s *String) allocator() Allocator {
	if s.alloc != nil {
		return s.alloc
	}
	return defaultAlloc
}

// Size classes for PoolAllocator, smallest to largest. Requests above the
// largest class fall through to the heap.
var poolClasses = []int{64, 256, 1024, 4096, 16384, 65536}

// PoolAllocator recycles backing buffers through per-size-class sync.Pools.
// It reduces GC pressure for workloads that create and release many
// short-lived Strings. Buffers handed out by Alloc are not zeroed beyond
// what the String invariants require, which is fine because a String
// terminates its content explicitly.
type PoolAllocator struct {
	pools [6]sync.Pool
}

// NewPoolAllocator creates a pool allocator with the default size classes.
func NewPoolAllocator() *PoolAllocator {
	p := &PoolAllocator{}
	for i := range p.pools {
		size := poolClasses[i]
		p.pools[i].New = func() interface{} {
			b := make([]byte, size)
			return &b
		}
	}
	return p
}

// classFor returns the index of the smallest class holding size, or -1 if
// size exceeds the largest class.
func classFor(size int) int {
	for i, c := range poolClasses {
		if size <= c {
			return i
		}
	}
	return -1
}

// Alloc returns a buffer of exactly size bytes, backed by the smallest
// class that holds it.
func (p *PoolAllocator) Alloc(size int) []byte {
	c := classFor(size)
	if c < 0 {
		return make([]byte, size)
	}
	bp := p.pools[c].Get().(*[]byte)
	return (*bp)[:size]
}

// Free returns a buffer to its class pool. Buffers larger than the largest
// class are left to the garbage collector.
func (p *PoolAllocator) Free(buf []byte) {
	c := classFor(cap(buf))
	if c < 0 || poolClasses[c] != cap(buf) {
		return
	}
	b := buf[:cap(buf)]
	p.pools[c].Put(&b)
}
