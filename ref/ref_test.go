package ref_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-sundry/sundry/ref"
)

func TestInit(t *testing.T) {
	r := ref.New()
	require.Equal(t, uint64(1), r.Count())

	var s ref.Ref
	s.Init()
	require.Equal(t, uint64(1), s.Count())
}

func TestAddSub(t *testing.T) {
	r := ref.New()

	require.Same(t, r, r.Inc())
	require.Equal(t, uint64(2), r.Count())
	r.Add(14)
	require.Equal(t, uint64(16), r.Count())

	require.Nil(t, r.Dec(nil, nil))
	require.Equal(t, uint64(15), r.Count())
	r.Sub(13, ref.Unreachable, nil)
	require.Equal(t, uint64(2), r.Count())
	r.Sub(2, nil, nil)
	require.Equal(t, uint64(0), r.Count())
}

func TestScenario(t *testing.T) {
	var calls int
	record := func(r *ref.Ref, userdata any) {
		require.Equal(t, "done", userdata)
		calls++
	}

	r := ref.New()
	r.Add(14)
	require.Equal(t, uint64(15), r.Count())
	r.Sub(13, func(*ref.Ref, any) { t.Fatal("callback fired early") }, nil)
	require.Equal(t, uint64(2), r.Count())
	r.Sub(1, ref.Unreachable, nil)
	require.Equal(t, uint64(1), r.Count())
	require.Zero(t, calls)
	r.Sub(1, record, "done")
	require.Equal(t, 1, calls)
	require.Equal(t, uint64(0), r.Count())
}

func TestAddUnlessZero(t *testing.T) {
	r := ref.New()
	require.Same(t, r, r.IncUnlessZero())
	require.Equal(t, uint64(2), r.Count())
	require.Same(t, r, r.AddUnlessZero(2))
	require.Equal(t, uint64(4), r.Count())

	r.Sub(4, nil, nil)
	require.Nil(t, r.IncUnlessZero())
	require.Nil(t, r.AddUnlessZero(16))
	require.Equal(t, uint64(0), r.Count())
}

func TestReleaseCallbackSeesDeadCounter(t *testing.T) {
	r := ref.New()
	r.Add(3)
	r.Sub(4, func(r *ref.Ref, userdata any) {
		require.Equal(t, uintptr(0xdeadbeef), userdata)
		require.Nil(t, r.IncUnlessZero())
		require.Nil(t, r.AddUnlessZero(16))

		// The embedder may recycle the object from here.
		r.Init()
		r.Add(15)
	}, uintptr(0xdeadbeef))
	require.Equal(t, uint64(16), r.Count())
}

func TestNilCounter(t *testing.T) {
	var r *ref.Ref
	require.Nil(t, r.Add(2))
	require.Nil(t, r.Inc())
	require.Nil(t, r.AddUnlessZero(2))
	require.Nil(t, r.IncUnlessZero())
	require.Nil(t, r.Sub(2, ref.Unreachable, nil))
	require.Nil(t, r.Dec(ref.Unreachable, nil))
	require.Equal(t, uint64(0), r.Count())
}

func TestInvariantViolations(t *testing.T) {
	r := ref.New()
	require.Panics(t, func() { r.Add(0) })
	require.Panics(t, func() { r.AddUnlessZero(0) })
	require.Panics(t, func() { r.Sub(0, nil, nil) })
	require.Panics(t, func() { r.Sub(2, nil, nil) })

	r = ref.New()
	r.Dec(nil, nil)
	require.Panics(t, func() { r.Inc() })
	require.Panics(t, func() { r.Dec(nil, nil) })

	r = ref.New()
	require.Panics(t, func() { r.Dec(ref.Unreachable, nil) })
}

func TestConcurrentSingleCallback(t *testing.T) {
	const workers = 8
	const rounds = 2000

	var fired int32
	r := ref.New()
	r.Add(workers)

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				r.Inc()
				if r.IncUnlessZero() != nil {
					r.Dec(ref.Unreachable, nil)
				}
				r.Dec(ref.Unreachable, nil)
			}
			r.Dec(func(*ref.Ref, any) {
				atomic.AddInt32(&fired, 1)
			}, nil)
		}()
	}

	r.Dec(func(*ref.Ref, any) {
		atomic.AddInt32(&fired, 1)
	}, nil)
	wg.Wait()

	require.Equal(t, int32(1), atomic.LoadInt32(&fired))
	require.Equal(t, uint64(0), r.Count())
}

func TestCounted(t *testing.T) {
	var released bool
	c := ref.NewCounted(func() { released = true })
	require.Equal(t, uint64(1), c.Count())

	c.Retain()
	require.True(t, c.TryRetain())
	require.Equal(t, uint64(3), c.Count())

	c.Release()
	c.Release()
	require.False(t, released)
	c.Release()
	require.True(t, released)
	require.False(t, c.TryRetain())
}

func TestHolder(t *testing.T) {
	var released int
	var h ref.Holder
	for i := 0; i < 3; i++ {
		h.Add(ref.NewCounted(func() { released++ }))
	}
	require.Zero(t, released)
	h.Release()
	require.Equal(t, 3, released)

	// A nil holder swallows both operations.
	var nh *ref.Holder
	nh.Add(ref.NewCounted(nil))
	nh.Release()
}
