package dfs

import (
	"errors"

	"github.com/katalvlaran/islewalk/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates the start node is nil or not owned by the graph.
	ErrStartNotFound = errors.New("dfs: start node not found")
)

// Option configures a traversal.
type Option func(*Options)

// Options holds traversal hooks.
type Options struct {
	// OnVisit, if non-nil, runs for each node in visit order.
	// Returning an error aborts the traversal.
	OnVisit func(n *core.Node) error
}

// DefaultOptions returns Options with no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithOnVisit installs fn as the visit hook.
func WithOnVisit(fn func(n *core.Node) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}
