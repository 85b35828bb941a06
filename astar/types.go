package astar

import "errors"

// Sentinel errors for A* execution.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("astar: graph is nil")

	// ErrStartNotFound indicates the start node is nil or foreign to the graph.
	ErrStartNotFound = errors.New("astar: start node not found")

	// ErrGoalNotFound indicates the goal node is nil or foreign to the graph.
	ErrGoalNotFound = errors.New("astar: goal node not found")
)

// Heuristic estimates the remaining number of unit steps between two grid
// cells. The search multiplies it by the graph's cheapest passable weight.
type Heuristic func(fromRow, fromCol, toRow, toCol int) int

// Manhattan returns |dr| + |dc|.
func Manhattan(fromRow, fromCol, toRow, toCol int) int {
	return abs(fromRow-toRow) + abs(fromCol-toCol)
}

// Zero always returns 0.
func Zero(_, _, _, _ int) int { return 0 }

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// Option configures A* via functional arguments.
type Option func(*Options)

// Options holds the heuristic used to order the open set.
type Options struct {
	Heuristic Heuristic
}

// DefaultOptions returns Options using Manhattan.
func DefaultOptions() Options {
	return Options{Heuristic: Manhattan}
}

// WithHeuristic replaces the heuristic. nil is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}
