// SPDX-License-Identifier: MIT

package core

import "fmt"

// New builds a Graph from a rectangular weight matrix indexed grid[row][col].
// The input is read once and not retained.
// Returns ErrEmptyGrid or ErrNonRectangular for malformed input.
// Complexity: O(rows×cols) time and memory.
func New(grid [][]int) (*Graph, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(grid), len(grid[0])
	for r, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
	}

	g := &Graph{
		rows:  rows,
		cols:  cols,
		nodes: make([]Node, rows*cols),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := r*cols + c
			g.nodes[id].ID = id
			g.nodes[id].Weight = grid[r][c]
		}
	}

	// link passable cells; order is Up, Down, Left, Right
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if grid[r][c] < 0 {
				continue
			}
			n := &g.nodes[r*cols+c]
			n.adjacents = make([]*Node, 0, 4)
			if r > 0 && grid[r-1][c] >= 0 {
				n.adjacents = append(n.adjacents, &g.nodes[(r-1)*cols+c])
			}
			if r+1 < rows && grid[r+1][c] >= 0 {
				n.adjacents = append(n.adjacents, &g.nodes[(r+1)*cols+c])
			}
			if c > 0 && grid[r][c-1] >= 0 {
				n.adjacents = append(n.adjacents, &g.nodes[r*cols+c-1])
			}
			if c+1 < cols && grid[r][c+1] >= 0 {
				n.adjacents = append(n.adjacents, &g.nodes[r*cols+c+1])
			}
		}
	}

	return g, nil
}

// Rows returns the number of grid rows.
func (g *Graph) Rows() int { return g.rows }

// Cols returns the number of grid columns.
func (g *Graph) Cols() int { return g.cols }

// Len returns the number of nodes (rows×cols).
func (g *Graph) Len() int { return len(g.nodes) }

// Node returns the node with the given ID.
func (g *Graph) Node(id int) (*Node, error) {
	if id < 0 || id >= len(g.nodes) {
		return nil, fmt.Errorf("%w: id %d outside [0,%d)", ErrNodeNotFound, id, len(g.nodes))
	}

	return &g.nodes[id], nil
}

// NodeAt returns the node at (row, col).
func (g *Graph) NodeAt(row, col int) (*Node, error) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return nil, fmt.Errorf("%w: cell (%d,%d) outside %dx%d grid", ErrNodeNotFound, row, col, g.rows, g.cols)
	}

	return &g.nodes[row*g.cols+col], nil
}

// Nodes returns pointers to every node in ID order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, len(g.nodes))
	for i := range g.nodes {
		out[i] = &g.nodes[i]
	}

	return out
}

// Coordinate converts an ID back to (row, col).
func (g *Graph) Coordinate(id int) (row, col int) {
	return id / g.cols, id % g.cols
}

// Contains reports whether n is a node owned by g.
func (g *Graph) Contains(n *Node) bool {
	return n != nil && n.ID >= 0 && n.ID < len(g.nodes) && &g.nodes[n.ID] == n
}

// ResetNodePrevious clears every back-pointer. Idempotent.
// Complexity: O(V).
func (g *Graph) ResetNodePrevious() {
	for i := range g.nodes {
		g.nodes[i].Previous = nil
	}
}

// Backtrack walks Previous links from goal and returns the chain reversed,
// so the result runs from the search start to goal inclusive.
// A nil goal yields an empty path.
func Backtrack(goal *Node) []*Node {
	var path []*Node
	for step := goal; step != nil; step = step.Previous {
		path = append(path, step)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// PathCost returns the sum of entry weights along path, excluding the first
// node (the start is never entered). Empty and single-node paths cost 0.
func PathCost(path []*Node) int {
	cost := 0
	for i := 1; i < len(path); i++ {
		cost += path[i].Weight
	}

	return cost
}
