package bfs

import (
	"errors"

	"github.com/katalvlaran/islewalk/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound indicates the start node is nil or foreign to the graph.
	ErrStartNotFound = errors.New("bfs: start node not found")

	// ErrGoalNotFound indicates the goal node is nil or foreign to the graph.
	ErrGoalNotFound = errors.New("bfs: goal node not found")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds callbacks to customize BFS execution.
type Options struct {
	// OnVisit is called when a node is dequeued, with its depth from start.
	OnVisit func(n *core.Node, depth int)
}

// DefaultOptions returns Options with a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		OnVisit: func(*core.Node, int) {},
	}
}

// WithOnVisit registers a callback to run on each dequeued node.
func WithOnVisit(fn func(n *core.Node, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
