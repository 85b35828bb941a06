// SPDX-License-Identifier: MIT

package pqueue

import (
	"cmp"
	"errors"
)

// ErrEmptyQueue is the panic value of Dequeue and Peek on an empty queue.
var ErrEmptyQueue = errors.New("pqueue: queue is empty")

// initialCapacity is the length of a fresh backing array.
const initialCapacity = 8

// pair couples an element with its priority inside the heap array.
type pair[E, P any] struct {
	element  E
	priority P
}

// Queue is a binary min-heap of elements E ordered by priorities P.
// The zero value is not usable; construct with New or NewFunc.
type Queue[E, P any] struct {
	pairs   []pair[E, P]     // heap array; len(pairs) is the capacity
	count   int              // live entries, always < len(pairs)
	compare func(a, b P) int // <0 when a sorts before b
}

// New returns an empty queue ordered by the natural order of P.
func New[E any, P cmp.Ordered]() *Queue[E, P] {
	return NewFunc[E, P](cmp.Compare[P])
}

// NewFunc returns an empty queue ordered by compare, which must return a
// negative number when a has higher priority (sorts first) than b, zero when
// they are equal and a positive number otherwise.
// A nil compare panics.
func NewFunc[E, P any](compare func(a, b P) int) *Queue[E, P] {
	if compare == nil {
		panic("pqueue: nil compare function")
	}

	return &Queue[E, P]{
		pairs:   make([]pair[E, P], initialCapacity),
		compare: compare,
	}
}

// Count returns the number of live entries.
func (q *Queue[E, P]) Count() int {
	return q.count
}

// Enqueue inserts element with the given priority.
// The backing array doubles when occupancy exceeds three quarters.
// Complexity: O(log n) amortized.
func (q *Queue[E, P]) Enqueue(element E, priority P) {
	n := len(q.pairs)
	if q.count > n/2+n/4 {
		q.resize(n * 2)
	}

	q.pairs[q.count] = pair[E, P]{element: element, priority: priority}
	current := q.count
	q.count++

	// sift up while strictly smaller than the parent
	for current > 0 {
		parent := (current - 1) / 2
		if q.compare(q.pairs[current].priority, q.pairs[parent].priority) >= 0 {
			break
		}
		q.pairs[current], q.pairs[parent] = q.pairs[parent], q.pairs[current]
		current = parent
	}
}

// Dequeue removes and returns the element with the smallest priority.
// It panics with ErrEmptyQueue if the queue is empty.
// Complexity: O(log n).
func (q *Queue[E, P]) Dequeue() E {
	if q.count == 0 {
		panic(ErrEmptyQueue)
	}
	element, _ := q.pop()

	return element
}

// Peek returns the element with the smallest priority without removing it.
// It panics with ErrEmptyQueue if the queue is empty.
func (q *Queue[E, P]) Peek() E {
	if q.count == 0 {
		panic(ErrEmptyQueue)
	}

	return q.pairs[0].element
}

// TryDequeue removes the root and returns it with its priority.
// ok is false, and the zero values are returned, when the queue is empty.
func (q *Queue[E, P]) TryDequeue() (element E, priority P, ok bool) {
	if q.count == 0 {
		return element, priority, false
	}
	element, priority = q.pop()

	return element, priority, true
}

// TryPeek returns the root and its priority without removing it.
// ok is false when the queue is empty.
func (q *Queue[E, P]) TryPeek() (element E, priority P, ok bool) {
	if q.count == 0 {
		return element, priority, false
	}

	return q.pairs[0].element, q.pairs[0].priority, true
}

// Clear drops every entry and zeroes the backing array so held values can
// be collected. Capacity is retained.
func (q *Queue[E, P]) Clear() {
	clear(q.pairs)
	q.count = 0
}

// pop removes the root, moves the last pair into its slot and sifts it down.
// Ties keep the parent in place. The caller guarantees count > 0.
func (q *Queue[E, P]) pop() (E, P) {
	root := q.pairs[0]

	q.count--
	q.pairs[0] = q.pairs[q.count]
	q.pairs[q.count] = pair[E, P]{}

	current := 0
	child := 1
	for child < q.count {
		// pick the smaller child
		if child+1 < q.count && q.compare(q.pairs[child].priority, q.pairs[child+1].priority) > 0 {
			child++
		}
		if q.compare(q.pairs[current].priority, q.pairs[child].priority) <= 0 {
			break
		}
		q.pairs[current], q.pairs[child] = q.pairs[child], q.pairs[current]
		current = child
		child = current*2 + 1
	}

	return root.element, root.priority
}

// resize reallocates the heap array to size slots, keeping live pairs.
func (q *Queue[E, P]) resize(size int) {
	grown := make([]pair[E, P], size)
	copy(grown, q.pairs[:q.count])
	q.pairs = grown
}
