// Package astar finds minimum-cost paths over a core.Graph with A*.
//
// Nodes are ordered by f = g + h, where g is the accumulated entry cost from
// the start and h is a Heuristic estimate to the goal. The default heuristic
// is Manhattan distance, which is admissible whenever every passable weight
// is at least 1. Zero returns 0 everywhere and degrades the search to
// Dijkstra.
//
// Like the dijkstra package, g-scores and closed flags are slices indexed by
// node ID, the open set is a pqueue.Queue with lazy deletion, and Path writes
// Node.Previous after clearing the graph's back-pointers.
//
// An unreachable goal is not an error: Path returns found=false.
package astar
