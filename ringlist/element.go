package ringlist

// Element is an intrusive ring list element.
type Element[V any] struct {
	Value      V
	next, prev *Element[V]
}

// NewElement creates a self-linked list element.
func NewElement[V any](v V) *Element[V] {
	e := &Element[V]{
		Value: v,
	}
	e.next = e
	e.prev = e
	return e
}

// Init resets e to a self-loop. e must not be linked into a ring.
func (e *Element[V]) Init() {
	e.next = e
	e.prev = e
}

// Next returns the next element.
func (e *Element[V]) Next() *Element[V] {
	return e.next
}

// Prev returns the previous element.
func (e *Element[V]) Prev() *Element[V] {
	return e.prev
}

// Link inserts an element after this element.
func (e *Element[V]) Link(s *Element[V]) {
	n := e.next
	e.next = s
	s.prev = e
	n.prev = s
	s.next = n
}

// LinkBefore inserts an element before this element.
func (e *Element[V]) LinkBefore(s *Element[V]) {
	e.prev.Link(s)
}

// Unlink relinks this element's neighbors to each other.
// e's own pointers are left as they were so that a walk currently
// standing on e can still step off of it. Use UnlinkInit when e
// is reused or relinked afterwards.
func (e *Element[V]) Unlink() {
	e.prev.next = e.next
	e.next.prev = e.prev
}

// UnlinkInit unlinks this element and resets it to a self-loop.
func (e *Element[V]) UnlinkInit() {
	e.Unlink()
	e.next = e
	e.prev = e
}
