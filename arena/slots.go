package arena

import (
	"sync"

	"github.com/go-sundry/sundry/num"
)

// Slots allocates fixed-size slots and recycles freed ones through a
// free list threaded through the free slots themselves. Alloc reuses
// the most recently freed slot first.
type Slots struct {
	Base
	mu   sync.Mutex
	size uint32
	off  uint32
	free Ptr
}

// NewSlots returns a slot allocator whose slots hold size bytes. The
// slot size is rounded up to keep room for the free-list link.
func NewSlots(size int) *Slots {
	sz := num.AlignTo(num.Max(uint32(size), 4), 4)
	if size <= 0 || sz > ChunkSize-8 {
		panic("arena: invalid slot size")
	}
	return &Slots{size: sz}
}

// Alloc reserves one slot. n must fit the configured slot size.
func (s *Slots) Alloc(n int) Ptr {
	if n < 0 || uint32(n) > s.size {
		panic("arena: allocation exceeds slot size")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.free != 0 {
		res := s.free
		var next *Ptr
		s.Get(res, &next)
		s.free = *next
		return res
	}
	if s.off == 0 {
		s.extend()
		s.off = 8
	}
	if s.off+s.size > s.end {
		s.off = s.extend()
	}
	res := s.off
	s.off += s.size
	return Ptr(res)
}

// Dealloc pushes the slot onto the free list. Dealloc of the null
// handle is a no-op.
func (s *Slots) Dealloc(ref Ptr) {
	if ref == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var next *Ptr
	s.Get(ref, &next)
	*next = s.free
	s.free = ref
}
