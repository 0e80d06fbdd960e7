// Package alist implements an intrusive doubly-linked list whose links
// are arena handles instead of raw pointers.
//
// Nodes live in caller-managed arena slots and start with a Node
// header; the list itself stores only two handles. Because elements are
// addressed by index, a stale handle can never dangle into freed
// memory the way an embedded pointer can. The unlinked sentinel is a
// self-referential handle, mirroring the pointer list: linkage is
// testable from the node alone and removal is idempotent.
//
// Lists are not safe for unsynchronized concurrent mutation.
package alist

import "github.com/go-sundry/sundry/arena"

// Node is the intrusive header. It must be the first field of whatever
// the caller stores in the slot.
type Node struct {
	prev arena.Ptr
	next arena.Ptr
}

// List is the container head. The zero value is an empty list.
type List struct {
	first arena.Ptr
	last  arena.Ptr
}

func node(al arena.Allocator, ref arena.Ptr) *Node {
	var n *Node
	al.Get(ref, &n)
	return n
}

// InitNode puts the node behind ref into the unlinked state.
func InitNode(al arena.Allocator, ref arena.Ptr) {
	n := node(al, ref)
	n.prev, n.next = ref, ref
}

// IsLinked reports whether the node behind ref is a member of a list.
// The null handle is not linked.
func IsLinked(al arena.Allocator, ref arena.Ptr) bool {
	return ref != 0 && node(al, ref).prev != ref
}

// Prepend makes ref the first element of l. The node must be unlinked.
func (l *List) Prepend(al arena.Allocator, ref arena.Ptr) {
	if IsLinked(al, ref) {
		panic("alist: node is already a member of a list")
	}
	n := node(al, ref)
	if l.last == 0 {
		l.last = ref
		n.next = 0
	} else {
		node(al, l.first).prev = ref
		n.next = l.first
	}
	n.prev = 0
	l.first = ref
}

// Append makes ref the last element of l. The node must be unlinked.
func (l *List) Append(al arena.Allocator, ref arena.Ptr) {
	if IsLinked(al, ref) {
		panic("alist: node is already a member of a list")
	}
	n := node(al, ref)
	if l.first == 0 {
		l.first = ref
		n.prev = 0
	} else {
		node(al, l.last).next = ref
		n.prev = l.last
	}
	n.next = 0
	l.last = ref
}

// Remove unlinks ref from l. Removing an unlinked node is a no-op.
func (l *List) Remove(al arena.Allocator, ref arena.Ptr) {
	if !IsLinked(al, ref) {
		return
	}
	n := node(al, ref)
	if l.first == ref {
		l.first = n.next
	} else {
		node(al, n.prev).next = n.next
	}
	if l.last == ref {
		l.last = n.prev
	} else {
		node(al, n.next).prev = n.prev
	}
	n.prev, n.next = ref, ref
}

// First returns the handle of the first element, or 0 if l is empty.
func (l *List) First() arena.Ptr {
	l.check()
	return l.first
}

// Last returns the handle of the last element, or 0 if l is empty.
func (l *List) Last() arena.Ptr {
	l.check()
	return l.last
}

// Next returns the element after ref, or 0 if ref is the last element
// or not linked at all.
func Next(al arena.Allocator, ref arena.Ptr) arena.Ptr {
	if !IsLinked(al, ref) {
		return 0
	}
	return node(al, ref).next
}

// Prev returns the element before ref, or 0 if ref is the first element
// or not linked at all.
func Prev(al arena.Allocator, ref arena.Ptr) arena.Ptr {
	if !IsLinked(al, ref) {
		return 0
	}
	return node(al, ref).prev
}

func (l *List) check() {
	if (l.first == 0) != (l.last == 0) {
		panic("alist: endpoints out of sync")
	}
}
