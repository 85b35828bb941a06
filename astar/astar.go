// SPDX-License-Identifier: MIT

package astar

import (
	"math"

	"github.com/katalvlaran/islewalk/core"
	"github.com/katalvlaran/islewalk/pqueue"
)

// runner holds the mutable state for one A* search.
type runner struct {
	g        *core.Graph
	h        Heuristic
	goalRow  int
	goalCol  int
	scale    int    // cheapest passable weight; multiplies h
	score    []int  // node ID -> best known g
	closed   []bool // node ID -> expanded
	open     *pqueue.Queue[*core.Node, int]
	expanded int
}

// estimate returns h(n, goal) scaled by the cheapest passable weight, so a
// unit-step heuristic stays admissible on any non-negative grid.
func (r *runner) estimate(n *core.Node) int {
	if r.scale == 0 {
		return 0
	}
	row, col := r.g.Coordinate(n.ID)

	return r.scale * r.h(row, col, r.goalRow, r.goalCol)
}

// minWeight returns the smallest weight among passable nodes, or 0 when
// none is passable.
func minWeight(g *core.Graph) int {
	lowest := -1
	for _, n := range g.Nodes() {
		if n.CanVisit() && (lowest < 0 || n.Weight < lowest) {
			lowest = n.Weight
		}
	}
	if lowest < 0 {
		return 0
	}

	return lowest
}

// Path finds a minimum-cost path from start to goal.
// g drives relaxation; f = g + h·minW orders the open set, where minW is the
// cheapest passable weight in the graph. Grids with zero-weight cells
// therefore search with a zero estimate. The graph's
// back-pointers are cleared first and rewritten on every strict improvement.
// found is false and path nil when goal is unreachable.
// Complexity: O((V + E) log V) worst case.
func Path(g *core.Graph, start, goal *core.Node, opts ...Option) (path []*core.Node, found bool, err error) {
	r, err := newRunner(g, start, goal, opts)
	if err != nil {
		return nil, false, err
	}
	if !r.run(start, goal) {
		return nil, false, nil
	}

	return core.Backtrack(goal), true, nil
}

// Expanded reports how many nodes a search from start to goal closes.
// It is the measure used to compare heuristics.
func Expanded(g *core.Graph, start, goal *core.Node, opts ...Option) (int, error) {
	r, err := newRunner(g, start, goal, opts)
	if err != nil {
		return 0, err
	}
	r.run(start, goal)

	return r.expanded, nil
}

func newRunner(g *core.Graph, start, goal *core.Node, opts []Option) (*runner, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Contains(start) {
		return nil, ErrStartNotFound
	}
	if !g.Contains(goal) {
		return nil, ErrGoalNotFound
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &runner{
		g:      g,
		h:      cfg.Heuristic,
		scale:  minWeight(g),
		score:  make([]int, g.Len()),
		closed: make([]bool, g.Len()),
		open:   pqueue.New[*core.Node, int](),
	}
	r.goalRow, r.goalCol = g.Coordinate(goal.ID)
	for i := range r.score {
		r.score[i] = math.MaxInt
	}

	return r, nil
}

// run executes the search and reports whether goal was closed.
func (r *runner) run(start, goal *core.Node) bool {
	r.g.ResetNodePrevious()
	r.score[start.ID] = 0
	r.open.Enqueue(start, r.estimate(start))

	for {
		cur, _, ok := r.open.TryDequeue()
		if !ok {
			return false
		}
		if r.closed[cur.ID] {
			continue
		}
		r.closed[cur.ID] = true
		r.expanded++
		if cur == goal {
			return true
		}

		for _, adj := range cur.Adjacents() {
			if !adj.CanVisit() || r.closed[adj.ID] {
				continue
			}
			tentative := r.score[cur.ID] + adj.Weight
			if tentative >= r.score[adj.ID] {
				continue
			}
			r.score[adj.ID] = tentative
			adj.Previous = cur
			r.open.Enqueue(adj, tentative+r.estimate(adj))
		}
	}
}
