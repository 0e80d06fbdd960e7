// Package ref implements an atomic reference counter.
//
// References can be acquired and released from multiple threads in
// parallel. An object embeds a Ref and every helper here operates on
// that single field only; the counter never owns or allocates the
// object it gates.
package ref

import (
	"fmt"
	"sync/atomic"
)

// Fn is a release callback. It is invoked exactly once, by the caller
// whose Sub or Dec dropped the count to zero.
type Fn func(r *Ref, userdata any)

// Ref is an atomic reference counter. A counter must be set up with
// Init or New before use; a fresh counter holds a single reference
// owned by its creator.
type Ref struct {
	n atomic.Uint64
}

// New returns a counter with a count of 1.
func New() *Ref {
	r := &Ref{}
	r.n.Store(1)
	return r
}

// Init resets the counter to 1, the creator's reference.
func (r *Ref) Init() {
	r.n.Store(1)
}

// Count returns the current count. The value may be stale the moment it
// is read; it is meant for tests and diagnostics only. A nil counter
// reports 0.
func (r *Ref) Count() uint64 {
	if r == nil {
		return 0
	}
	return r.n.Load()
}

// Add acquires n references. The caller must already own at least one
// reference; acquiring on a counter that already dropped to zero is a
// caller bug and panics. A nil receiver is a no-op. n must not be 0.
//
// No decision may ever be based on the count observed here, so the
// operation needs no ordering beyond atomicity.
func (r *Ref) Add(n uint64) *Ref {
	if n == 0 {
		panic("ref: Add of 0 references")
	}
	if r != nil {
		c := r.n.Add(n)
		if c-n == 0 {
			panic(fmt.Errorf("ref: acquired %d references on a dead counter", n))
		}
	}
	return r
}

// Inc acquires a single reference. See Add.
func (r *Ref) Inc() *Ref {
	return r.Add(1)
}

// AddUnlessZero acquires n references if, and only if, the count has
// not already dropped to zero. It returns nil on failure, without
// touching the counter. A failure says nothing about the surrounding
// object beyond "this attempt saw zero"; synchronization on the pointer
// to the object remains the caller's job. A nil receiver is a no-op
// returning nil. n must not be 0.
func (r *Ref) AddUnlessZero(n uint64) *Ref {
	if n == 0 {
		panic("ref: AddUnlessZero of 0 references")
	}
	if r == nil {
		return nil
	}
	for {
		c := r.n.Load()
		if c == 0 {
			return nil
		}
		if r.n.CompareAndSwap(c, c+n) {
			return r
		}
	}
}

// IncUnlessZero acquires a single reference if possible. See
// AddUnlessZero.
func (r *Ref) IncUnlessZero() *Ref {
	return r.AddUnlessZero(1)
}

// Sub releases n references. The caller must actually own n references;
// releasing more than held panics. If the count drops to exactly zero,
// fn is invoked (if non-nil) with r and userdata, and every write made
// by any thread while it held a reference is visible to fn. A nil
// receiver is a no-op. n must not be 0.
//
// Always returns nil: from the caller's perspective the reference is
// gone either way.
func (r *Ref) Sub(n uint64, fn Fn, userdata any) *Ref {
	if n == 0 {
		panic("ref: Sub of 0 references")
	}
	if r != nil {
		c := r.n.Add(^(n - 1))
		if c+n < n {
			panic(fmt.Errorf("ref: invalid count %d", int64(c)))
		}
		if c == 0 && fn != nil {
			fn(r, userdata)
		}
	}
	return nil
}

// Dec releases a single reference. See Sub.
func (r *Ref) Dec(fn Fn, userdata any) *Ref {
	return r.Sub(1, fn, userdata)
}

// Unreachable is a release callback for call sites that have proven by
// construction that their release can never be the last one. It panics
// if it is ever invoked.
func Unreachable(r *Ref, userdata any) {
	panic("ref: release marked unreachable dropped the count to zero")
}
