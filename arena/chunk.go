package arena

import (
	"log"
	"unsafe"

	"github.com/modern-go/reflect2"
	"golang.org/x/sys/unix"
)

const slabSize = 1 << 22

// ChunkShift sizes the per-arena chunks; offsets within a chunk use the
// low ChunkShift bits of a Ptr.
const ChunkShift = 16
const ChunkSize = 1 << ChunkShift

type chunkGen struct {
	slab []byte
}

func (g *chunkGen) gen() (res *[ChunkSize]byte) {
	if len(g.slab) == 0 {
		var err error
		g.slab, err = unix.Mmap(-1, 0, slabSize, unix.PROT_READ|unix.PROT_WRITE,
			unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
		if err != nil {
			log.Fatal(err)
		}
	}
	*(*unsafe.Pointer)(unsafe.Pointer(&res)) = unsafe.Pointer(&g.slab[0])
	g.slab = g.slab[ChunkSize:]
	return res
}

var chunks chunkGen

// Base holds the mapped chunks of one arena and resolves handles to
// addresses. It is embedded by the concrete allocators.
type Base struct {
	chunks []*[ChunkSize]byte
	end    uint32
}

func (b *Base) Get(ref Ptr, ptr any) {
	n, off := ref>>ChunkShift, ref&(ChunkSize-1)
	addr := unsafe.Pointer(&b.chunks[n][off])
	*(*unsafe.Pointer)(reflect2.PtrOf(ptr)) = addr
}

// extend maps one more chunk and returns the offset of its first byte.
func (b *Base) extend() uint32 {
	b.chunks = append(b.chunks, chunks.gen())
	b.end = ChunkSize * uint32(len(b.chunks))
	return ChunkSize * uint32(len(b.chunks)-1)
}
