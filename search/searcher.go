// SPDX-License-Identifier: MIT

package search

import (
	"github.com/katalvlaran/islewalk/core"
)

// Searcher runs strategies against one graph and keeps the last result.
type Searcher struct {
	graph *core.Graph
	path  []*core.Node
}

// New binds a Searcher to g.
func New(g *core.Graph) (*Searcher, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return &Searcher{graph: g}, nil
}

// Graph returns the bound graph.
func (s *Searcher) Graph() *core.Graph { return s.graph }

// Path returns the buffer written by the last run. The slice is reused by
// the next run; copy it to keep it.
func (s *Searcher) Path() []*core.Node { return s.path }

// Search runs st from start towards goal and stores its output in the path
// buffer. The buffer is emptied first, and stays empty when a path strategy
// does not reach goal or the run fails.
func (s *Searcher) Search(st Strategy, start, goal *core.Node) (bool, error) {
	s.path = s.path[:0]
	if st == nil {
		return false, ErrNilStrategy
	}
	nodes, found, err := st.Run(s.graph, start, goal)
	if err != nil {
		return false, err
	}
	s.path = append(s.path, nodes...)

	return found, nil
}

// DFS fills the buffer with the explicit-stack traversal order from start.
func (s *Searcher) DFS(start *core.Node) error {
	_, err := s.Search(DFS{}, start, nil)

	return err
}

// RecursiveDFS fills the buffer with the recursive traversal order.
func (s *Searcher) RecursiveDFS(start *core.Node) error {
	_, err := s.Search(RecursiveDFS{}, start, nil)

	return err
}

// BFS fills the buffer with the level-order traversal from start.
func (s *Searcher) BFS(start *core.Node) error {
	_, err := s.Search(BFS{}, start, nil)

	return err
}

// PathFindingBFS stores a fewest-steps path from start to goal.
func (s *Searcher) PathFindingBFS(start, goal *core.Node) (bool, error) {
	return s.Search(PathBFS{}, start, goal)
}

// PathFindingDijkstra stores a minimum-cost path from start to goal.
func (s *Searcher) PathFindingDijkstra(start, goal *core.Node) (bool, error) {
	return s.Search(PathDijkstra{}, start, goal)
}

// PathFindingAstar stores a minimum-cost path found with Manhattan A*.
func (s *Searcher) PathFindingAstar(start, goal *core.Node) (bool, error) {
	return s.Search(PathAStar{}, start, goal)
}
