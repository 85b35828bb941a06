// SPDX-License-Identifier: MIT

package bfs

import (
	"github.com/katalvlaran/islewalk/core"
)

// walker encapsulates mutable BFS state for one call.
type walker struct {
	opts    Options
	queue   []*core.Node
	head    int
	depth   []int
	visited []bool
	queued  []bool
	track   bool // write Previous on discovery
}

func newWalker(g *core.Graph, start *core.Node, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Contains(start) {
		return nil, ErrStartNotFound
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.Len()

	w := &walker{
		opts:    o,
		queue:   make([]*core.Node, 0, n),
		depth:   make([]int, n),
		visited: make([]bool, n),
		queued:  make([]bool, n),
	}
	w.enqueue(start, nil)

	return w, nil
}

// enqueue marks n as pending and appends it to the queue.
func (w *walker) enqueue(n, from *core.Node) {
	w.queued[n.ID] = true
	if from != nil {
		w.depth[n.ID] = w.depth[from.ID] + 1
		if w.track {
			n.Previous = from
		}
	}
	w.queue = append(w.queue, n)
}

// dequeue pops the oldest node, marks it visited and runs OnVisit.
func (w *walker) dequeue() *core.Node {
	n := w.queue[w.head]
	w.head++
	w.queued[n.ID] = false
	w.visited[n.ID] = true
	w.opts.OnVisit(n, w.depth[n.ID])

	return n
}

// expand enqueues every enterable neighbor of n not yet seen.
func (w *walker) expand(n *core.Node) {
	for _, adj := range n.Adjacents() {
		if !adj.CanVisit() || w.visited[adj.ID] || w.queued[adj.ID] {
			continue
		}
		w.enqueue(adj, n)
	}
}

// BFS traverses g from start and returns the level-order visit sequence.
func BFS(g *core.Graph, start *core.Node, opts ...Option) ([]*core.Node, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}

	order := make([]*core.Node, 0, g.Len())
	for w.head < len(w.queue) {
		cur := w.dequeue()
		order = append(order, cur)
		w.expand(cur)
	}

	return order, nil
}

// Path finds a fewest-steps path from start to goal.
// It resets the graph's back-pointers, records Previous on first discovery
// and rebuilds the path from goal once goal is dequeued.
// found is false and path nil when goal is unreachable.
func Path(g *core.Graph, start, goal *core.Node, opts ...Option) (path []*core.Node, found bool, err error) {
	if g != nil && !g.Contains(goal) {
		return nil, false, ErrGoalNotFound
	}
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, false, err
	}
	g.ResetNodePrevious()
	w.track = true

	for w.head < len(w.queue) {
		cur := w.dequeue()
		if cur == goal {
			return core.Backtrack(goal), true, nil
		}
		w.expand(cur)
	}

	return nil, false, nil
}
