// Package list implements an intrusive doubly-linked list.
//
// Links are embedded inside caller-owned structures; the container
// never allocates and never owns element memory. An unlinked link
// points to itself, so linkage is testable from the link alone and
// removal is idempotent. Lists are not safe for unsynchronized
// concurrent mutation.
package list

import "unsafe"

// List is the container head. A list must be set up with Init before
// use.
type List struct {
	first *Link
	last  *Link
}

// Link is the intrusive node. Embed it in the owner struct and set it
// up with Init before linking.
type Link struct {
	prev *Link
	next *Link
}

// Init empties the list. Elements still linked are left dangling; the
// caller must remove them first if it cares.
func (l *List) Init() {
	l.first, l.last = nil, nil
}

// Init puts e into the unlinked state.
func (e *Link) Init() {
	e.prev, e.next = e, e
}

// IsLinked reports whether e is a member of a list. A nil link is not
// linked.
func (e *Link) IsLinked() bool {
	return e != nil && e.prev != e
}

// Prepend makes e the first element of l. e must be unlinked.
func (l *List) Prepend(e *Link) {
	if e.IsLinked() {
		panic("list: link is already a member of a list")
	}
	if l.last == nil {
		l.last = e
		e.next = nil
	} else {
		l.first.prev = e
		e.next = l.first
	}
	e.prev = nil
	l.first = e
}

// Append makes e the last element of l. e must be unlinked.
func (l *List) Append(e *Link) {
	if e.IsLinked() {
		panic("list: link is already a member of a list")
	}
	if l.first == nil {
		l.first = e
		e.prev = nil
	} else {
		l.last.next = e
		e.prev = l.last
	}
	e.next = nil
	l.last = e
}

// Remove unlinks e from l. Removing an unlinked link is a no-op, so
// callers need not track linkage state themselves.
func (l *List) Remove(e *Link) {
	if !e.IsLinked() {
		return
	}
	if l.first == e {
		l.first = e.next
	} else {
		e.prev.next = e.next
	}
	if l.last == e {
		l.last = e.prev
	} else {
		e.next.prev = e.prev
	}
	e.Init()
}

// First returns the first element of l, or nil if l is empty.
func (l *List) First() *Link {
	l.check()
	return l.first
}

// Last returns the last element of l, or nil if l is empty.
func (l *List) Last() *Link {
	l.check()
	return l.last
}

// Next returns the element after e, or nil if e is the last element or
// not linked at all.
func (e *Link) Next() *Link {
	if !e.IsLinked() {
		return nil
	}
	return e.next
}

// Prev returns the element before e, or nil if e is the first element
// or not linked at all.
func (e *Link) Prev() *Link {
	if !e.IsLinked() {
		return nil
	}
	return e.prev
}

func (l *List) check() {
	if (l.first == nil) != (l.last == nil) {
		panic("list: endpoints out of sync")
	}
}

// Owner recovers the struct of type T embedding the link e at byte
// offset off:
//
//	item := list.Owner[Item](e, unsafe.Offsetof(Item{}.link))
//
// The caller must pass the offset of the exact field e points into.
func Owner[T any](e *Link, off uintptr) *T {
	return (*T)(unsafe.Pointer(uintptr(unsafe.Pointer(e)) - off))
}
