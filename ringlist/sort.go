package ringlist

// Sort sorts the ring into ascending order as determined by cmp,
// where cmp(a, b) < 0 means a orders before b. The sort is stable.
// Rings with fewer than two elements are left unchanged.
func (r *Ring[V]) Sort(cmp func(a, b V) int) {
	if r.Empty() || r.Singular() {
		return
	}

	// Cut the ring into an open singly linked chain. The prev
	// pointers go stale during the sort and are re-threaded below.
	r.head.prev.next = nil
	chain := sortChain(r.head.next, cmp)

	r.head.next = chain
	prev := &r.head
	for e := chain; e != nil; e = e.next {
		e.prev = prev
		prev = e
	}
	prev.next = &r.head
	r.head.prev = prev
}

// sortChain merge sorts a nil-terminated singly linked chain. The
// chain is split at the midpoint found by a slow/fast cursor pair:
// even lengths split into identical halves, odd lengths leave the
// extra element in the front half.
func sortChain[V any](head *Element[V], cmp func(a, b V) int) *Element[V] {
	if head == nil || head.next == nil {
		return head
	}

	slow, fast := head, head.next
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}

	back := slow.next
	slow.next = nil

	return mergeChains(sortChain(head, cmp), sortChain(back, cmp), cmp)
}

// mergeChains merges two ascending chains into one, emitting the front
// element on ties. The merge iterates rather than recursing so that
// stack growth stays logarithmic in the ring size.
func mergeChains[V any](front, back *Element[V], cmp func(a, b V) int) *Element[V] {
	var head *Element[V]
	tail := &head

	for front != nil && back != nil {
		if cmp(front.Value, back.Value) <= 0 {
			*tail = front
			tail = &front.next
			front = front.next
		} else {
			*tail = back
			tail = &back.next
			back = back.next
		}
	}

	if front != nil {
		*tail = front
	} else {
		*tail = back
	}

	return head
}
