package ref

// Releaser is anything that gives up a held reference or resource.
type Releaser interface {
	Release()
}

// Counted couples a counter with the release callback most embedders
// want to carry alongside it. The zero value is not ready for use; call
// NewCounted or InitCounted.
type Counted struct {
	ref    Ref
	onZero func()
}

// NewCounted returns a counted object with a count of 1. onZero may be
// nil.
func NewCounted(onZero func()) *Counted {
	c := &Counted{}
	c.InitCounted(onZero)
	return c
}

// InitCounted resets the count to 1 and installs onZero.
func (c *Counted) InitCounted(onZero func()) {
	c.ref.Init()
	c.onZero = onZero
}

// Retain acquires a reference. The caller must already hold one.
func (c *Counted) Retain() {
	c.ref.Inc()
}

// TryRetain acquires a reference unless the count already dropped to
// zero, and reports whether it succeeded.
func (c *Counted) TryRetain() bool {
	return c.ref.IncUnlessZero() != nil
}

// Release drops a reference, firing the installed callback on the final
// drop. It satisfies Releaser.
func (c *Counted) Release() {
	c.ref.Dec(countedZero, c)
}

func countedZero(_ *Ref, userdata any) {
	c := userdata.(*Counted)
	if c.onZero != nil {
		c.onZero()
	}
}

// Count returns the current count, for tests and diagnostics.
func (c *Counted) Count() uint64 {
	return c.ref.Count()
}

// Holder collects Releasers so a batch of references can be dropped in
// one go. A nil holder ignores both Add and Release.
type Holder struct {
	rs []Releaser
}

func (h *Holder) Add(r Releaser) {
	if h == nil {
		return
	}
	h.rs = append(h.rs, r)
}

func (h *Holder) Release() {
	if h == nil {
		return
	}
	for _, r := range h.rs {
		r.Release()
	}
	h.rs = h.rs[:0]
}
