/*
Package ringqueue implements a double-ended string queue backed by an
intrusive circular doubly linked list, with in-place structural
algorithms: middle deletion, duplicate collapsing, pairwise swap, full
reversal and merge sort.
*/
package ringqueue

import (
	"strings"

	"github.com/mgnsk/ringqueue/ringlist"
)

// Element is a queue member holding one string value.
type Element = ringlist.Element[string]

// Queue is a double-ended string queue.
//
// A Queue is not safe for concurrent use; callers must serialize all
// access to a queue themselves.
type Queue struct {
	ring *ringlist.Ring[string]
}

// New creates an empty queue.
func New() *Queue {
	return &Queue{
		ring: ringlist.New[string](),
	}
}

// Free releases every remaining element and tears the queue down.
// It is a no-op on a nil or already freed queue. After Free, every
// operation on q observes the same contract as on a nil queue.
func (q *Queue) Free() {
	if q == nil || q.ring == nil {
		return
	}

	q.ring.DoSafe(func(e *Element) bool {
		e.UnlinkInit()
		Release(e)
		return true
	})

	q.ring = nil
}

// Release frees the value owned by a removed element.
// The element must already be unlinked from its queue. Releasing the
// same element twice is outside the contract.
func Release(e *Element) {
	e.Value = ""
	e.Init()
}

// InsertHead inserts a new element holding s at the head of the queue.
// It reports false without mutating the queue when q is nil or freed.
func (q *Queue) InsertHead(s string) bool {
	if q == nil || q.ring == nil {
		return false
	}

	q.ring.PushFront(ringlist.NewElement(s))

	return true
}

// InsertTail inserts a new element holding s at the tail of the queue.
// It reports false without mutating the queue when q is nil or freed.
func (q *Queue) InsertTail(s string) bool {
	if q == nil || q.ring == nil {
		return false
	}

	q.ring.PushBack(ringlist.NewElement(s))

	return true
}

// RemoveHead unlinks and returns the head element, or nil when q is
// nil, freed or empty. Ownership of the element transfers to the
// caller, who releases it with Release exactly once when done.
//
// When buf is non-nil, up to len(buf)-1 bytes of the element's value
// are copied into buf followed by a NUL terminator; longer values are
// silently truncated.
func (q *Queue) RemoveHead(buf []byte) *Element {
	if q == nil || q.ring == nil {
		return nil
	}

	e := q.ring.Front()
	if e == nil {
		return nil
	}

	e.UnlinkInit()
	copyOut(buf, e.Value)

	return e
}

// RemoveTail unlinks and returns the tail element. It behaves exactly
// like RemoveHead otherwise.
func (q *Queue) RemoveTail(buf []byte) *Element {
	if q == nil || q.ring == nil {
		return nil
	}

	e := q.ring.Back()
	if e == nil {
		return nil
	}

	e.UnlinkInit()
	copyOut(buf, e.Value)

	return e
}

// Size returns the number of elements in the queue, or 0 when q is nil
// or freed.
func (q *Queue) Size() int {
	if q == nil || q.ring == nil {
		return 0
	}

	return q.ring.Len()
}

// DeleteMid deletes the middle element of the queue: for a queue of
// six elements the third is deleted. It reports false when q is nil,
// freed or empty.
func (q *Queue) DeleteMid() bool {
	if q == nil || q.ring == nil {
		return false
	}

	e := q.ring.RemoveMiddle()
	if e == nil {
		return false
	}

	Release(e)

	return true
}

// DeleteDup deletes every element whose value occurs more than once,
// keeping only values that occur exactly once, in their original
// relative order. The queue must be sorted. It reports false only when
// q is nil or freed; an empty queue succeeds vacuously.
func (q *Queue) DeleteDup() bool {
	if q == nil || q.ring == nil {
		return false
	}

	q.ring.Dedup(func(a, b string) bool {
		return a == b
	})

	return true
}

// SwapPairs exchanges the order of each adjacent pair of elements,
// leaving an odd trailing element in place. It is a no-op when q is
// nil, freed or empty.
func (q *Queue) SwapPairs() {
	if q == nil || q.ring == nil {
		return
	}

	q.ring.SwapPairs()
}

// Reverse reverses the order of the elements. It is a no-op when q is
// nil, freed or empty.
func (q *Queue) Reverse() {
	if q == nil || q.ring == nil {
		return
	}

	q.ring.Reverse()
}

// Sort sorts the queue into ascending order by byte-wise string
// comparison. Queues with fewer than two elements are left unchanged.
func (q *Queue) Sort() {
	if q == nil || q.ring == nil {
		return
	}

	q.ring.Sort(strings.Compare)
}

// copyOut copies s into buf, truncating to len(buf)-1 bytes, and
// writes a NUL terminator after the copied bytes.
func copyOut(buf []byte, s string) {
	if len(buf) == 0 {
		return
	}

	n := copy(buf[:len(buf)-1], s)
	buf[n] = 0
}
