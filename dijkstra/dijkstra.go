// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"

	"github.com/katalvlaran/islewalk/core"
	"github.com/katalvlaran/islewalk/pqueue"
)

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	options Options
	dist    []int  // node ID -> best known distance from start
	visited []bool // node ID -> distance is final
	pq      *pqueue.Queue[*core.Node, int]
	track   bool // write Previous on improvement
}

func newRunner(g *core.Graph, start *core.Node, opts []Option) (*runner, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Contains(start) {
		return nil, ErrStartNotFound
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MaxDistance < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadMaxDistance, cfg.MaxDistance)
	}

	r := &runner{
		options: cfg,
		dist:    make([]int, g.Len()),
		visited: make([]bool, g.Len()),
		pq:      pqueue.New[*core.Node, int](),
	}
	for i := range r.dist {
		r.dist[i] = Unreachable
	}
	r.dist[start.ID] = 0
	r.pq.Enqueue(start, 0)

	return r, nil
}

// process pops nodes in distance order until the frontier empties or stop
// returns true for a finalized node. It reports whether stop fired.
func (r *runner) process(stop func(*core.Node) bool) bool {
	for {
		u, d, ok := r.pq.TryDequeue()
		if !ok {
			return false
		}
		// stale entry left by lazy decrease-key
		if r.visited[u.ID] {
			continue
		}
		if d > r.options.MaxDistance {
			return false
		}
		r.visited[u.ID] = true
		if stop != nil && stop(u) {
			return true
		}
		r.relax(u)
	}
}

// relax tries to improve every enterable neighbor of u.
func (r *runner) relax(u *core.Node) {
	for _, v := range u.Adjacents() {
		if !v.CanVisit() || r.visited[v.ID] {
			continue
		}
		nd := r.dist[u.ID] + v.Weight
		if nd > r.options.MaxDistance || nd >= r.dist[v.ID] {
			continue
		}
		r.dist[v.ID] = nd
		if r.track {
			v.Previous = u
		}
		r.pq.Enqueue(v, nd)
	}
}

// Distances returns the minimum cost from start to every node, indexed by
// node ID. Unreached nodes report Unreachable.
// Complexity: O((V + E) log V).
func Distances(g *core.Graph, start *core.Node, opts ...Option) ([]int, error) {
	r, err := newRunner(g, start, opts)
	if err != nil {
		return nil, err
	}
	r.process(nil)

	return r.dist, nil
}

// Path finds a minimum-cost path from start to goal. It clears the graph's
// back-pointers, records Previous on every strict improvement and stops once
// goal is dequeued. found is false and path nil when goal is unreachable.
func Path(g *core.Graph, start, goal *core.Node, opts ...Option) (path []*core.Node, found bool, err error) {
	if g != nil && !g.Contains(goal) {
		return nil, false, ErrGoalNotFound
	}
	r, err := newRunner(g, start, opts)
	if err != nil {
		return nil, false, err
	}
	g.ResetNodePrevious()
	r.track = true

	if !r.process(func(n *core.Node) bool { return n == goal }) {
		return nil, false, nil
	}

	return core.Backtrack(goal), true, nil
}
