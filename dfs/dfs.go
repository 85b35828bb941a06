// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/islewalk/core"
)

// walker holds per-call traversal state. Flags are indexed by node ID.
type walker struct {
	opts    Options
	visited []bool
	pending []bool
	order   []*core.Node
}

func newWalker(g *core.Graph, start *core.Node, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Contains(start) {
		return nil, ErrStartNotFound
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &walker{
		opts:    o,
		visited: make([]bool, g.Len()),
		pending: make([]bool, g.Len()),
		order:   make([]*core.Node, 0, g.Len()),
	}, nil
}

// visit marks n, appends it to the order and runs the hook.
func (w *walker) visit(n *core.Node) error {
	w.visited[n.ID] = true
	w.order = append(w.order, n)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for node %d: %w", n.ID, err)
		}
	}

	return nil
}

// DFS walks g from start with an explicit stack and returns the visit order.
// Neighbors are pushed in adjacency order, so the last listed is visited first.
func DFS(g *core.Graph, start *core.Node, opts ...Option) ([]*core.Node, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}

	stack := []*core.Node{start}
	w.pending[start.ID] = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		w.pending[cur.ID] = false

		if err = w.visit(cur); err != nil {
			return w.order, err
		}

		for _, adj := range cur.Adjacents() {
			if !adj.CanVisit() || w.visited[adj.ID] || w.pending[adj.ID] {
				continue
			}
			stack = append(stack, adj)
			w.pending[adj.ID] = true
		}
	}

	return w.order, nil
}

// Recursive walks g from start on the call stack and returns the visit order.
// Neighbors are explored in adjacency order.
func Recursive(g *core.Graph, start *core.Node, opts ...Option) ([]*core.Node, error) {
	w, err := newWalker(g, start, opts)
	if err != nil {
		return nil, err
	}
	err = w.recurse(start)

	return w.order, err
}

func (w *walker) recurse(cur *core.Node) error {
	if err := w.visit(cur); err != nil {
		return err
	}
	for _, adj := range cur.Adjacents() {
		if !adj.CanVisit() || w.visited[adj.ID] {
			continue
		}
		if err := w.recurse(adj); err != nil {
			return err
		}
	}

	return nil
}
