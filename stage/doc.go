// Package stage runs an island walk without a renderer: it generates a map,
// places the player on the start town, plans routes on request and advances
// the player one waypoint at a time, revealing fog as it goes.
//
// The caller owns the clock. A viewer calls RequestMove when the user picks
// a tile and Step on every movement tick, then redraws the tile IDs Step
// returns.
//
//	s, err := stage.NewSession(ctx, stage.DefaultConfig())
//	found, err := s.RequestMove(target)
//	for s.Walking() {
//	    _, dirty, _ := s.Step()
//	    redraw(dirty)
//	}
//
// Targets must already be revealed; hidden targets fail with
// ErrTargetHidden. An unreachable target is not an error: RequestMove
// returns false and the current route is kept.
package stage
