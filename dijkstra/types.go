package dijkstra

import (
	"errors"
	"math"
)

// Unreachable is the distance reported for nodes the search never reached.
const Unreachable = math.MaxInt

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrStartNotFound indicates the start node is nil or foreign to the graph.
	ErrStartNotFound = errors.New("dijkstra: start node not found")

	// ErrGoalNotFound indicates the goal node is nil or foreign to the graph.
	ErrGoalNotFound = errors.New("dijkstra: goal node not found")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Option configures Dijkstra via functional arguments.
type Option func(*Options)

// Options configures the behavior of the search.
//
// MaxDistance – nodes whose distance would exceed this cap are not relaxed.
// Default is Unreachable (no cap).
type Options struct {
	MaxDistance int
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: Unreachable}
}

// WithMaxDistance caps the distances explored. A negative value is reported
// as ErrBadMaxDistance when the search starts.
func WithMaxDistance(d int) Option {
	return func(o *Options) {
		o.MaxDistance = d
	}
}
