// Package core defines the sparse grid Graph and its Node type shared by the
// dfs, bfs, dijkstra, astar and search packages.
//
// A Graph is built once from a rectangular matrix of integer weights. Every
// cell becomes a Node stored in one contiguous slice, so a node's ID is its
// row-major index:
//
//	id = row*cols + col
//
// Weights:
//
//   - weight >= 0: the cell can be entered; the weight is the cost of entering it.
//   - weight <  0: the cell is impassable. It still owns a Node (IDs stay dense)
//     but it has no edges and no other node lists it as adjacent.
//
// Adjacency is 4-directional (Up, Down, Left, Right, in that order) and
// symmetric: A lists B iff B lists A. It is fixed after New returns.
//
// Back-pointers:
//
//	Node.Previous is transient search state. Path searches call
//	ResetNodePrevious before running and write Previous on discovery; the
//	chain from goal to start is read back with Backtrack. Two searches must
//	not run concurrently on the same Graph.
//
// Errors:
//
//	ErrEmptyGrid       - no rows or no columns.
//	ErrNonRectangular  - rows of differing length.
//	ErrNodeNotFound    - ID or coordinate outside the grid.
package core
