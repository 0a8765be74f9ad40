/*
Package ringlist implements an intrusive circular doubly linked list with
a payload-free sentinel, plus in-place structural algorithms over it.
*/
package ringlist

// Ring is a circular doubly linked list rooted at a sentinel element
// that never carries a payload.
// The zero value is a ready to use empty ring.
type Ring[V any] struct {
	head Element[V]
}

// New creates an empty ring.
func New[V any]() *Ring[V] {
	r := new(Ring[V])
	r.Init()
	return r
}

// Init initializes or clears ring r.
// Previously linked elements are abandoned in place.
func (r *Ring[V]) Init() {
	r.head.Init()
}

func (r *Ring[V]) lazyInit() {
	if r.head.next == nil {
		r.head.Init()
	}
}

// Empty reports whether the ring has no elements.
func (r *Ring[V]) Empty() bool {
	return r.head.next == nil || r.head.next == &r.head
}

// Singular reports whether the ring has exactly one element.
func (r *Ring[V]) Singular() bool {
	return !r.Empty() && r.head.next == r.head.prev
}

// Front returns the first element of the ring or nil.
func (r *Ring[V]) Front() *Element[V] {
	if r.Empty() {
		return nil
	}
	return r.head.next
}

// Back returns the last element of the ring or nil.
func (r *Ring[V]) Back() *Element[V] {
	if r.Empty() {
		return nil
	}
	return r.head.prev
}

// PushFront links e as the first element of the ring.
func (r *Ring[V]) PushFront(e *Element[V]) {
	r.lazyInit()
	r.head.Link(e)
}

// PushBack links e as the last element of the ring.
func (r *Ring[V]) PushBack(e *Element[V]) {
	r.lazyInit()
	r.head.LinkBefore(e)
}

// MoveToFront moves an element of the ring to the front.
func (r *Ring[V]) MoveToFront(e *Element[V]) {
	e.Unlink()
	r.head.Link(e)
}

// Len returns the number of elements by walking the ring.
func (r *Ring[V]) Len() int {
	if r.Empty() {
		return 0
	}

	n := 0
	for e := r.head.next; e != &r.head; e = e.next {
		n++
	}

	return n
}

// Do calls function f on each element of the ring, in forward order.
// If f returns false, Do stops the iteration.
// f must not change r.
func (r *Ring[V]) Do(f func(e *Element[V]) bool) {
	if r.Empty() {
		return
	}

	for e := r.head.next; e != &r.head; e = e.next {
		if !f(e) {
			return
		}
	}
}

// DoSafe calls function f on each element of the ring, in forward order.
// The successor is captured before each call, so f may unlink or relink
// the current element without corrupting the walk.
// If f returns false, DoSafe stops the iteration.
func (r *Ring[V]) DoSafe(f func(e *Element[V]) bool) {
	if r.Empty() {
		return
	}

	e := r.head.next
	for e != &r.head {
		next := e.next
		if !f(e) {
			return
		}
		e = next
	}
}
