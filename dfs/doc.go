// Package dfs implements depth-first traversal over a core.Graph in two
// flavors: an explicit-stack walk (DFS) and a call-stack walk (Recursive).
//
// Both visit each reachable node once and skip neighbors that cannot be
// entered (negative weight), were already visited, or (DFS only) are already
// waiting on the stack. The returned slice is the visit order, which is a
// traversal, not a shortest path.
//
// The start node is always visited, even when it is itself impassable.
//
// Options:
//
//   - WithOnVisit(fn): called for each node as it is visited; a non-nil error
//     aborts the walk and is returned wrapped, together with the partial order.
//
// Errors:
//
//   - ErrGraphNil        if g is nil.
//   - ErrStartNotFound   if start is nil or belongs to another graph.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V) for id-indexed visited/pending flags and the stack.
package dfs
