package search

import (
	"errors"

	"github.com/katalvlaran/islewalk/core"
)

// Sentinel errors for the search facade.
var (
	// ErrGraphNil is returned by New for a nil graph.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrNilStrategy is returned by Search when no strategy is given.
	ErrNilStrategy = errors.New("search: strategy is nil")

	// ErrUnknownStrategy is returned by Lookup for an unregistered name.
	ErrUnknownStrategy = errors.New("search: unknown strategy")
)

// Strategy is one search algorithm over a core.Graph.
//
// Run returns the nodes produced by the algorithm and whether goal was
// reached. Traversals return the visit order; when goal is nil they report
// found=true. Path finders return start..goal inclusive or nil.
type Strategy interface {
	Name() string
	Run(g *core.Graph, start, goal *core.Node) (nodes []*core.Node, found bool, err error)
}
