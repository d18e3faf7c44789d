package pqueue_test

import (
	"fmt"

	"github.com/katalvlaran/pqlist/pqueue"
)

// ExampleQueue builds a queue, removes an interior value and looks one up.
func ExampleQueue() {
	q := pqueue.New()
	for _, v := range []int{16, 4, 42, 8, 23, 15} {
		q.Insert(v)
	}
	fmt.Println(q, q.Length())

	fmt.Println(q.Remove(16), q.Remove(16))
	fmt.Println(q)

	if e := q.Find(8); e != nil {
		fmt.Println("found", e.Value, "followed by", e.Next().Value)
	}

	// Output:
	// [42 23 16 15 8 4] 6
	// true false
	// [42 23 15 8 4]
	// found 8 followed by 4
}

// ExampleQueue_Pop drains a queue in priority order.
func ExampleQueue_Pop() {
	q := pqueue.FromValues(3, 9, 1)
	for {
		v, err := q.Pop()
		if err != nil {
			fmt.Println(err)

			return
		}
		fmt.Println(v)
	}

	// Output:
	// 9
	// 3
	// 1
	// pqueue: queue is empty
}

// ExampleQueue_All walks the chain with a range-over-func loop.
func ExampleQueue_All() {
	q := pqueue.FromValues(5, 5, 2)
	sum := 0
	for v := range q.All() {
		sum += v
	}
	fmt.Println(sum)

	// Output:
	// 12
}
