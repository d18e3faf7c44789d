package pqueue

import "errors"

// Sentinel errors returned by the queue.
var (
	// ErrEmptyQueue indicates that an element was requested from an empty queue.
	ErrEmptyQueue = errors.New("pqueue: queue is empty")
)

// Element is a single link of the chain.
//
// Value is the element's priority. The forward link is unexported so that
// only the owning Queue can rewire the chain.
type Element struct {
	// Value is the integer priority stored in this element.
	Value int

	next *Element
}

// Next returns the element that follows e, or nil at the tail.
func (e *Element) Next() *Element {
	if e == nil {
		return nil
	}

	return e.next
}

// Queue is a priority queue kept in non-increasing order.
//
// The zero value is an empty queue ready to use.
type Queue struct {
	head *Element // nil when empty, never a sentinel
}

// New creates an empty Queue.
// Complexity: O(1)
func New() *Queue {
	return &Queue{}
}

// FromValues creates a Queue and inserts values in the given order.
// Complexity: O(k·n) for k values.
func FromValues(values ...int) *Queue {
	q := New()
	for _, v := range values {
		q.Insert(v)
	}

	return q
}
