package pqueue

import (
	"iter"
	"strconv"
	"strings"
)

// Insert links a new element holding value into q.
//
// The element goes in front of the first element whose value is less than
// or equal to value, so among equal values the newest one is closest to the
// head. Insert always succeeds and grows the chain by exactly one.
//
// Complexity: O(n)
func (q *Queue) Insert(value int) {
	// link points at the slot (q.head or some e.next) the new element takes.
	link := &q.head
	for *link != nil && (*link).Value > value {
		link = &(*link).next
	}

	e := &Element{Value: value, next: *link}
	*link = e
}

// Remove unlinks the first element equal to value, scanning from the head.
// It reports whether an element was removed; the chain is unchanged when
// value is absent. At most one element is removed per call.
//
// Complexity: O(n)
func (q *Queue) Remove(value int) bool {
	for link := &q.head; *link != nil; link = &(*link).next {
		cur := *link
		if cur.Value < value {
			// everything behind cur is smaller still
			return false
		}
		if cur.Value == value {
			*link = cur.next
			cur.next = nil

			return true
		}
	}

	return false
}

// Find returns the first element equal to value, or nil when the queue is
// empty or holds no such element. The returned element stays owned by q and
// must not be used after it has been removed.
//
// Complexity: O(n)
func (q *Queue) Find(value int) *Element {
	for e := q.head; e != nil && e.Value >= value; e = e.next {
		if e.Value == value {
			return e
		}
	}

	return nil
}

// Contains reports whether any element equals value.
func (q *Queue) Contains(value int) bool {
	return q.Find(value) != nil
}

// Length counts the elements from head to tail.
// Complexity: O(n)
func (q *Queue) Length() int {
	n := 0
	for e := q.head; e != nil; e = e.next {
		n++
	}

	return n
}

// Head returns the first (highest) element without modifying the chain,
// or nil when the queue is empty.
func (q *Queue) Head() *Element {
	return q.head
}

// Pop detaches the head and returns its value.
// Returns ErrEmptyQueue when there is nothing to pop.
func (q *Queue) Pop() (int, error) {
	if q.head == nil {
		return 0, ErrEmptyQueue
	}

	e := q.head
	q.head = e.next
	e.next = nil

	return e.Value, nil
}

// Clear releases every element in head-to-tail order, leaving q empty.
// Each forward link is cleared exactly once. It returns the number of
// elements released.
func (q *Queue) Clear() int {
	n := 0
	for e := q.head; e != nil; {
		next := e.next
		e.next = nil
		e = next
		n++
	}
	q.head = nil

	return n
}

// All returns an iterator over the values from head to tail.
// The chain must not be mutated while iterating.
func (q *Queue) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for e := q.head; e != nil; e = e.next {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Values returns a snapshot of the chain, head first.
func (q *Queue) Values() []int {
	out := make([]int, 0, q.Length())
	for v := range q.All() {
		out = append(out, v)
	}

	return out
}

// String renders the chain as "[42 23 16]".
func (q *Queue) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for e := q.head; e != nil; e = e.next {
		if e != q.head {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(e.Value))
	}
	sb.WriteByte(']')

	return sb.String()
}
