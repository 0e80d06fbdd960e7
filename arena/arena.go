// Package arena implements chunked arena allocators addressed by
// compact 32-bit handles instead of raw pointers.
//
// Storage is mmap'ed in large slabs and handed out in chunks; a Ptr
// encodes the chunk index and the offset inside it. Handle 0 is
// reserved as the null handle, so a zero Ptr always means "no object".
package arena

// Ptr is a handle into an arena. 0 is the null handle.
type Ptr uint32

// Allocator hands out storage addressed by Ptr handles.
type Allocator interface {
	// Get points ptr, which must be a non-nil **T, at the storage
	// behind ref.
	Get(ref Ptr, ptr any)
	// Alloc reserves n bytes and returns their handle.
	Alloc(n int) Ptr
	// Dealloc returns the storage behind ref, where the allocator
	// supports it.
	Dealloc(ref Ptr)
}
