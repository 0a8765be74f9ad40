package ringlist_test

import (
	"testing"

	"github.com/mgnsk/ringqueue/ringlist"
	. "github.com/onsi/gomega"
)

func newStringRing(values ...string) *ringlist.Ring[string] {
	r := ringlist.New[string]()
	for _, v := range values {
		r.PushBack(ringlist.NewElement(v))
	}
	return r
}

func TestRemoveMiddle(t *testing.T) {
	t.Run("empty ring", func(t *testing.T) {
		r := ringlist.New[string]()

		g := NewWithT(t)

		g.Expect(r.RemoveMiddle()).To(BeNil())
	})

	t.Run("single element", func(t *testing.T) {
		r := newStringRing("a")

		g := NewWithT(t)

		e := r.RemoveMiddle()
		g.Expect(e).NotTo(BeNil())
		g.Expect(e.Value).To(Equal("a"))
		g.Expect(r.Empty()).To(BeTrue())
	})

	t.Run("six elements removes the third", func(t *testing.T) {
		r := newStringRing("a", "b", "c", "d", "e", "f")

		g := NewWithT(t)

		e := r.RemoveMiddle()
		g.Expect(e.Value).To(Equal("c"))
		expectValidRing(g, r)
		g.Expect(elements(r)).To(Equal([]string{"a", "b", "d", "e", "f"}))
	})

	t.Run("four elements removes the second", func(t *testing.T) {
		r := newStringRing("a", "b", "c", "d")

		g := NewWithT(t)

		e := r.RemoveMiddle()
		g.Expect(e.Value).To(Equal("b"))
		expectValidRing(g, r)
		g.Expect(elements(r)).To(Equal([]string{"a", "c", "d"}))
	})

	t.Run("five elements removes the third", func(t *testing.T) {
		r := newStringRing("a", "b", "c", "d", "e")

		g := NewWithT(t)

		e := r.RemoveMiddle()
		g.Expect(e.Value).To(Equal("c"))
		expectValidRing(g, r)
		g.Expect(elements(r)).To(Equal([]string{"a", "b", "d", "e"}))
	})

	t.Run("removed element is detached", func(t *testing.T) {
		r := newStringRing("a", "b", "c")

		g := NewWithT(t)

		e := r.RemoveMiddle()
		g.Expect(e.Next()).To(BeIdenticalTo(e))
		g.Expect(e.Prev()).To(BeIdenticalTo(e))
	})
}

func TestDedup(t *testing.T) {
	eq := func(a, b string) bool { return a == b }

	t.Run("duplicates vanish entirely", func(t *testing.T) {
		r := newStringRing("apple", "apple", "banana", "cherry", "cherry", "cherry", "plum")

		g := NewWithT(t)

		r.Dedup(eq)

		expectValidRing(g, r)
		g.Expect(elements(r)).To(Equal([]string{"banana", "plum"}))
	})

	t.Run("duplicate-free ring is unchanged", func(t *testing.T) {
		r := newStringRing("apple", "banana", "cherry")

		g := NewWithT(t)

		r.Dedup(eq)

		expectValidRing(g, r)
		g.Expect(elements(r)).To(Equal([]string{"apple", "banana", "cherry"}))
	})

	t.Run("idempotent", func(t *testing.T) {
		r := newStringRing("a", "a", "b", "c", "c")

		g := NewWithT(t)

		r.Dedup(eq)
		r.Dedup(eq)

		expectValidRing(g, r)
		g.Expect(elements(r)).To(Equal([]string{"b"}))
	})

	t.Run("all duplicates leaves an empty ring", func(t *testing.T) {
		r := newStringRing("a", "a", "a")

		g := NewWithT(t)

		r.Dedup(eq)

		g.Expect(r.Empty()).To(BeTrue())
		g.Expect(r.Len()).To(Equal(0))
	})

	t.Run("empty ring", func(t *testing.T) {
		r := ringlist.New[string]()

		r.Dedup(eq)

		g := NewWithT(t)
		g.Expect(r.Empty()).To(BeTrue())
	})
}

func TestSwapPairs(t *testing.T) {
	t.Run("even length", func(t *testing.T) {
		r := newStringRing("1", "2", "3", "4")

		g := NewWithT(t)

		r.SwapPairs()

		expectValidRing(g, r)
		g.Expect(elements(r)).To(Equal([]string{"2", "1", "4", "3"}))
	})

	t.Run("odd trailing element stays", func(t *testing.T) {
		r := newStringRing("1", "2", "3", "4", "5")

		g := NewWithT(t)

		r.SwapPairs()

		expectValidRing(g, r)
		g.Expect(elements(r)).To(Equal([]string{"2", "1", "4", "3", "5"}))
	})

	t.Run("twice restores the original order", func(t *testing.T) {
		r := newStringRing("1", "2", "3", "4")

		g := NewWithT(t)

		r.SwapPairs()
		r.SwapPairs()

		expectValidRing(g, r)
		g.Expect(elements(r)).To(Equal([]string{"1", "2", "3", "4"}))
	})

	t.Run("single element", func(t *testing.T) {
		r := newStringRing("1")

		g := NewWithT(t)

		r.SwapPairs()

		expectValidRing(g, r)
		g.Expect(elements(r)).To(Equal([]string{"1"}))
	})

	t.Run("empty ring", func(t *testing.T) {
		r := ringlist.New[string]()

		r.SwapPairs()

		g := NewWithT(t)
		g.Expect(r.Empty()).To(BeTrue())
	})
}

func TestReverse(t *testing.T) {
	t.Run("reverses the order", func(t *testing.T) {
		r := newStringRing("a", "b", "c", "d", "e")

		g := NewWithT(t)

		r.Reverse()

		expectValidRing(g, r)
		g.Expect(elements(r)).To(Equal([]string{"e", "d", "c", "b", "a"}))
	})

	t.Run("twice restores the original order", func(t *testing.T) {
		r := newStringRing("a", "b", "c")

		g := NewWithT(t)

		r.Reverse()
		r.Reverse()

		expectValidRing(g, r)
		g.Expect(elements(r)).To(Equal([]string{"a", "b", "c"}))
	})

	t.Run("single element", func(t *testing.T) {
		r := newStringRing("a")

		g := NewWithT(t)

		r.Reverse()

		expectValidRing(g, r)
		g.Expect(elements(r)).To(Equal([]string{"a"}))
	})

	t.Run("empty ring", func(t *testing.T) {
		r := ringlist.New[string]()

		r.Reverse()

		g := NewWithT(t)
		g.Expect(r.Empty()).To(BeTrue())
	})
}
