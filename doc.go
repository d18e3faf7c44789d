// Package pqlist is a small collection of linked data structures.
//
// What is inside?
//
//	pqueue/     — sorted singly-linked priority queue of ints
//	cmd/pqueue/ — command-line driver for the queue
//
// Quick example:
//
//	q := pqueue.FromValues(4, 8, 15, 16, 23, 42)
//	q.Remove(16)
//	fmt.Println(q) // [42 23 15 8 4]
//
//	go get github.com/katalvlaran/pqlist/pqueue
package pqlist
