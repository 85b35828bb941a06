// Package dijkstra computes minimum-cost paths over a core.Graph whose node
// weights are entry costs.
//
// The cost of a path is the sum of the weights of every node entered after
// the start. Distances and visited flags are slices indexed by node ID, and
// the frontier is a pqueue.Queue keyed by tentative distance.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the frontier holds duplicates under lazy deletion.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: an improved distance is enqueued again and stale
//     entries are dropped on dequeue by the visited check.
//   - Path writes Node.Previous on every strict improvement, after clearing
//     the graph's back-pointers, and stops once goal is dequeued.
//   - WithMaxDistance bounds exploration; nodes beyond it stay unreached.
//
// Errors (sentinel):
//
//   - ErrGraphNil, ErrStartNotFound, ErrGoalNotFound for invalid input.
//   - ErrBadMaxDistance if a negative cap is supplied.
//
// An unreachable goal is not an error: Path returns found=false.
package dijkstra
