package arena_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-sundry/sundry/arena"
)

type pair struct {
	a, b uint32
}

func get(t *testing.T, al arena.Allocator, ref arena.Ptr) *pair {
	t.Helper()
	var p *pair
	al.Get(ref, &p)
	require.NotNil(t, p)
	return p
}

func TestSimple(t *testing.T) {
	var al arena.Simple

	p1 := al.Alloc(8)
	p2 := al.Alloc(8)
	require.NotZero(t, p1)
	require.NotZero(t, p2)
	require.NotEqual(t, p1, p2)
	require.Zero(t, uint32(p1)%4)
	require.Zero(t, uint32(p2)%4)

	v1, v2 := get(t, &al, p1), get(t, &al, p2)
	v1.a, v1.b = 1, 2
	v2.a, v2.b = 3, 4
	require.Equal(t, pair{1, 2}, *get(t, &al, p1))
	require.Equal(t, pair{3, 4}, *get(t, &al, p2))
}

func TestSimpleChunkCrossing(t *testing.T) {
	var al arena.Simple

	seen := make(map[arena.Ptr]bool)
	refs := make([]arena.Ptr, 0, 3*arena.ChunkSize/256)
	for i := 0; i < cap(refs); i++ {
		ref := al.Alloc(256)
		require.False(t, seen[ref])
		seen[ref] = true
		get(t, &al, ref).a = uint32(i)
		refs = append(refs, ref)
	}
	for i, ref := range refs {
		require.Equal(t, uint32(i), get(t, &al, ref).a)
	}
}

func TestSimpleInvalidSize(t *testing.T) {
	var al arena.Simple
	require.Panics(t, func() { al.Alloc(0) })
	require.Panics(t, func() { al.Alloc(arena.ChunkSize) })
}

func TestSlotsReuse(t *testing.T) {
	al := arena.NewSlots(12)

	a := al.Alloc(12)
	b := al.Alloc(8)
	require.NotZero(t, a)
	require.NotEqual(t, a, b)

	get(t, al, a).a = 7
	get(t, al, b).a = 9

	al.Dealloc(a)
	c := al.Alloc(12)
	require.Equal(t, a, c)

	al.Dealloc(b)
	al.Dealloc(c)
	require.Equal(t, c, al.Alloc(4))
	require.Equal(t, b, al.Alloc(4))

	al.Dealloc(0)
}

func TestSlotsOverflowPanics(t *testing.T) {
	al := arena.NewSlots(12)
	require.Panics(t, func() { al.Alloc(13) })
	require.Panics(t, func() { arena.NewSlots(0) })
}
