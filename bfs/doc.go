// Package bfs provides breadth-first traversal and unweighted path finding
// over a core.Graph.
//
// What
//
//   - BFS(g, start) returns nodes in level order from start.
//   - Path(g, start, goal) finds a fewest-steps path, recording Node.Previous
//     on first discovery and stopping as soon as goal is dequeued.
//
// Visitation discipline
//
//	A neighbor is enqueued only if it can be entered, has not been visited
//	and is not already queued. Pending and visited flags are slices indexed by
//	node ID.
//
// Back-pointers
//
//	Path calls g.ResetNodePrevious before searching, so the chain read back
//	from goal was written by this run only.
//
// Errors
//
//   - ErrGraphNil, ErrStartNotFound, ErrGoalNotFound for invalid input.
//   - An unreachable goal is not an error: Path reports found=false and nil.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
