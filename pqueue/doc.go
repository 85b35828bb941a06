// Package pqueue provides a growable, array-backed binary min-heap keyed by a
// priority that is stored separately from the element.
//
// What
//
//   - Enqueue(e, p) inserts e with priority p and sifts it up.
//   - Dequeue() removes the element with the smallest priority.
//   - Peek() returns that element without removing it.
//   - TryDequeue/TryPeek report ok=false instead of panicking on an empty queue.
//   - Count() and Clear() expose and reset the live size.
//
// Why
//
//	Every weighted search in this module (Dijkstra, A*, tile routing) keeps
//	its frontier here. The heap has no decrease-key; callers push duplicates
//	and skip stale entries on dequeue ("lazy deletion").
//
// Layout
//
//	parent(i) = (i-1)/2, left(i) = 2i+1, right(i) = 2i+2.
//	The backing array starts at 8 slots and doubles once occupancy exceeds 75%.
//
// Ordering
//
//	For every non-root slot i: priority(parent(i)) <= priority(i).
//	Equal priorities come out in no particular order; the heap is not stable.
//
// Errors
//
//   - ErrEmptyQueue is the panic value of Dequeue/Peek on an empty queue.
//     Calling them on an empty queue is a programmer error.
//
// Complexity
//
//   - Enqueue, Dequeue: O(log n). Peek, Count: O(1). Clear: O(capacity).
//
// A Queue is not safe for concurrent use.
package pqueue
