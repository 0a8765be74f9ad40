package ringlist

// RemoveMiddle unlinks and returns the middle element of the ring,
// or nil if the ring is empty.
//
// The middle is found by walking a front cursor forward and a back
// cursor backward until they meet or become adjacent, which selects
// the third element of a six element ring.
func (r *Ring[V]) RemoveMiddle() *Element[V] {
	if r.Empty() {
		return nil
	}

	front := r.head.next
	back := r.head.prev

	for front != back && back.prev != front {
		front = front.next
		back = back.prev
	}

	front.UnlinkInit()

	return front
}

// Dedup unlinks every element whose value occurs more than once,
// keeping only values that occur exactly once, in their original
// relative order. The ring must be sorted so that equal values are
// adjacent; eq reports whether two values are equal.
func (r *Ring[V]) Dedup(eq func(a, b V) bool) {
	if r.Empty() {
		return
	}

	lastDup := false

	e := r.head.next
	for e != &r.head {
		next := e.next
		match := next != &r.head && eq(e.Value, next.Value)
		if match || lastDup {
			e.UnlinkInit()
		}
		lastDup = match
		e = next
	}
}

// SwapPairs exchanges the order of each adjacent pair of elements,
// leaving an odd trailing element in place. No elements are allocated
// or released.
func (r *Ring[V]) SwapPairs() {
	if r.Empty() {
		return
	}

	for e := r.head.next; e != &r.head && e.next != &r.head; e = e.next {
		next := e.next
		e.UnlinkInit()
		next.Link(e)
	}
}

// Reverse reverses the order of the elements in place by moving each
// element in original order to the front of the ring.
func (r *Ring[V]) Reverse() {
	if r.Empty() {
		return
	}

	e := r.head.next
	for e != &r.head {
		next := e.next
		r.MoveToFront(e)
		e = next
	}
}
