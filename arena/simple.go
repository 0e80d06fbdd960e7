package arena

import (
	"sync"

	"github.com/go-sundry/sundry/num"
)

// Simple is a bump allocator. Allocations are 4-byte aligned and never
// straddle a chunk boundary. Dealloc is a no-op; freeing happens by
// dropping the whole arena.
type Simple struct {
	Base
	mu  sync.Mutex
	off uint32
}

func (s *Simple) Alloc(n int) Ptr {
	sz := num.AlignTo(uint32(n), 4)
	if n <= 0 || sz > ChunkSize-8 {
		panic("arena: invalid allocation size")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.off == 0 {
		s.extend()
		s.off = 8 // keep Ptr 0 and the first word unused
	}
	if s.off+sz > s.end {
		s.off = s.extend()
	}
	res := s.off
	s.off += sz
	return Ptr(res)
}

func (s *Simple) Dealloc(Ptr) {
	// bump allocators do not reclaim
}
