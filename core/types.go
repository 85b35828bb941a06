// SPDX-License-Identifier: MIT

package core

import "errors"

// Sentinel errors for graph construction and lookup.
var (
	// ErrEmptyGrid indicates the weight matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("core: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("core: all rows must have the same length")

	// ErrNodeNotFound indicates an ID or coordinate outside the grid.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Node is one grid cell.
//
// ID is the row-major index of the cell and its position in Graph.nodes.
// Weight is the cost of entering the node; negative means impassable.
// Previous is the back-pointer written by the last path search.
type Node struct {
	ID     int
	Weight int

	// Previous links to the node this one was discovered from.
	// Only meaningful right after a path search on the owning Graph.
	Previous *Node

	adjacents []*Node // non-owning; fixed after construction
}

// CanVisit reports whether the node may be entered (Weight >= 0).
func (n *Node) CanVisit() bool {
	return n.Weight >= 0
}

// Adjacents returns the node's neighbors in Up, Down, Left, Right order,
// skipping directions that leave the grid or touch an impassable cell.
// The returned slice is shared; callers must not modify it.
func (n *Node) Adjacents() []*Node {
	return n.adjacents
}

// Graph owns a rows×cols arena of nodes with 4-directional adjacency.
// It is immutable after New apart from the Previous back-pointers.
type Graph struct {
	rows  int
	cols  int
	nodes []Node
}
