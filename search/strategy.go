// SPDX-License-Identifier: MIT

package search

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/islewalk/astar"
	"github.com/katalvlaran/islewalk/bfs"
	"github.com/katalvlaran/islewalk/core"
	"github.com/katalvlaran/islewalk/dfs"
	"github.com/katalvlaran/islewalk/dijkstra"
)

// DFS is the explicit-stack depth-first traversal.
type DFS struct{}

// RecursiveDFS is the call-stack depth-first traversal.
type RecursiveDFS struct{}

// BFS is the level-order traversal.
type BFS struct{}

// PathBFS finds a fewest-steps path.
type PathBFS struct{}

// PathDijkstra finds a minimum-cost path.
type PathDijkstra struct{}

// PathAStar finds a minimum-cost path with A*. A nil Heuristic means
// astar.Manhattan.
type PathAStar struct {
	Heuristic astar.Heuristic
}

func (DFS) Name() string          { return "dfs" }
func (RecursiveDFS) Name() string { return "recursive-dfs" }
func (BFS) Name() string          { return "bfs" }
func (PathBFS) Name() string      { return "path-bfs" }
func (PathDijkstra) Name() string { return "path-dijkstra" }
func (PathAStar) Name() string    { return "path-astar" }

func (DFS) Run(g *core.Graph, start, goal *core.Node) ([]*core.Node, bool, error) {
	return traversed(dfs.DFS(g, start))(goal)
}

func (RecursiveDFS) Run(g *core.Graph, start, goal *core.Node) ([]*core.Node, bool, error) {
	return traversed(dfs.Recursive(g, start))(goal)
}

func (BFS) Run(g *core.Graph, start, goal *core.Node) ([]*core.Node, bool, error) {
	return traversed(bfs.BFS(g, start))(goal)
}

func (PathBFS) Run(g *core.Graph, start, goal *core.Node) ([]*core.Node, bool, error) {
	return bfs.Path(g, start, goal)
}

func (PathDijkstra) Run(g *core.Graph, start, goal *core.Node) ([]*core.Node, bool, error) {
	return dijkstra.Path(g, start, goal)
}

func (s PathAStar) Run(g *core.Graph, start, goal *core.Node) ([]*core.Node, bool, error) {
	return astar.Path(g, start, goal, astar.WithHeuristic(s.Heuristic))
}

// traversed adapts a traversal result to the Strategy contract.
func traversed(order []*core.Node, err error) func(goal *core.Node) ([]*core.Node, bool, error) {
	return func(goal *core.Node) ([]*core.Node, bool, error) {
		if err != nil {
			return order, false, err
		}
		if goal == nil {
			return order, true, nil
		}
		for _, n := range order {
			if n == goal {
				return order, true, nil
			}
		}

		return order, false, nil
	}
}

var registry = map[string]Strategy{}

func init() {
	for _, s := range []Strategy{DFS{}, RecursiveDFS{}, BFS{}, PathBFS{}, PathDijkstra{}, PathAStar{}} {
		registry[s.Name()] = s
	}
}

// Lookup returns the strategy registered under name.
func Lookup(name string) (Strategy, error) {
	s, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}

	return s, nil
}

// Names lists registered strategy names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
