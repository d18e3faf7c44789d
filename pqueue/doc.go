// Package pqueue implements a sorted priority queue of integers backed by a
// singly-linked chain.
//
// What is it?
//
//	The queue keeps its elements in non-increasing order, so the head is
//	always the highest value. Every mutation walks the chain from the head:
//	  • Insert places a value in front of any run of equal values
//	  • Remove unlinks the first element equal to a value
//	  • Find returns the first element equal to a value
//	  • Pop detaches the head
//
// Ownership:
//
//	Each element is owned by its predecessor and the head by the Queue.
//	Detached elements have their forward link cleared, and Clear releases
//	the whole chain head to tail.
//
// Usage:
//
//	import "github.com/katalvlaran/pqlist/pqueue"
//
//	q := pqueue.New()
//	q.Insert(15)
//	q.Insert(42)
//	q.Insert(4)
//	fmt.Println(q)             // [42 15 4]
//	fmt.Println(q.Remove(15))  // true
//
// Performance:
//
//   - Insert, Remove, Find, Length: O(n)
//   - Head, Pop: O(1)
//
// A Queue is not safe for concurrent use; guard it with a sync.Mutex when
// sharing it between goroutines.
package pqueue
