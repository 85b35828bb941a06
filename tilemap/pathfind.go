// SPDX-License-Identifier: MIT

package tilemap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/islewalk/pqueue"
)

// step resolves a move from t towards side under the map's rules.
// It returns the target and the cost of entering it, or ok=false when the
// slot is empty, the target is impassable or the diagonal policy forbids it.
func (m *Map) step(t *Tile, side Side) (to *Tile, cost float64, ok bool) {
	to = t.neighbors[side]
	if to == nil {
		return nil, 0, false
	}
	w := to.Weight()
	if math.IsInf(w, 1) {
		return nil, 0, false
	}
	if !side.Diagonal() {
		return to, w, true
	}

	a, b := side.Flanks()
	fa, fb := t.neighbors[a], t.neighbors[b]
	switch m.diagonal {
	case DiagonalNone:
		return nil, 0, false
	case DiagonalBothFlanks:
		if fa == nil || fb == nil || !fa.Passable() || !fb.Passable() {
			return nil, 0, false
		}
	default:
		if fa == nil && fb == nil {
			return nil, 0, false
		}
	}

	return to, Sqrt2 * w, true
}

// Heuristic is the octile distance between a and b:
// min(dx,dy)·√2 + |dx−dy|. It never overestimates the cost of a path
// because every tile costs at least 1 to enter.
func (m *Map) Heuristic(a, b *Tile) float64 {
	ax, ay := m.Coordinate(a.ID)
	bx, by := m.Coordinate(b.ID)
	dx, dy := abs(ax-bx), abs(ay-by)

	return float64(min(dx, dy))*Sqrt2 + float64(abs(dx-dy))
}

func zeroHeuristic(_, _ *Tile) float64 { return 0 }

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// search is the single weighted search behind every A* and Dijkstra entry
// point. Nodes are ordered by distance + h; distance drives relaxation and
// closed tiles are skipped on dequeue. On success the path is appended to
// buf[:0] and returned.
func (m *Map) search(start, goal *Tile, h func(a, b *Tile) float64, buf []*Tile) ([]*Tile, bool) {
	buf = buf[:0]
	m.ResetNodePrevious()

	dist := make([]float64, len(m.tiles))
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	closed := make([]bool, len(m.tiles))
	open := pqueue.New[*Tile, float64]()

	dist[start.ID] = 0
	open.Enqueue(start, h(start, goal))

	for {
		cur, _, ok := open.TryDequeue()
		if !ok {
			return buf, false
		}
		if closed[cur.ID] {
			continue
		}
		if cur == goal {
			return backtrack(goal, buf), true
		}
		closed[cur.ID] = true

		for side := Down; side < sideCount; side++ {
			next, cost, ok := m.step(cur, side)
			if !ok || closed[next.ID] {
				continue
			}
			nd := dist[cur.ID] + cost
			if nd >= dist[next.ID] {
				continue
			}
			dist[next.ID] = nd
			next.Previous = cur
			open.Enqueue(next, nd+h(next, goal))
		}
	}
}

// backtrack appends the Previous chain ending at goal to buf in start-to-goal order.
func backtrack(goal *Tile, buf []*Tile) []*Tile {
	for t := goal; t != nil; t = t.Previous {
		buf = append(buf, t)
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return buf
}

// PathFind runs A* from start to goal and stores the route in the map's
// shared path buffer (see Path). It returns false and leaves the buffer
// empty when goal is unreachable or either tile does not belong to m.
func (m *Map) PathFind(start, goal *Tile) bool {
	if !m.owns(start) || !m.owns(goal) {
		m.path = m.path[:0]

		return false
	}
	var found bool
	m.path, found = m.search(start, goal, m.Heuristic, m.path)

	return found
}

// PathFindNew is PathFind writing into a freshly allocated slice.
func (m *Map) PathFindNew(start, goal *Tile) ([]*Tile, bool) {
	if !m.owns(start) || !m.owns(goal) {
		return nil, false
	}
	path, found := m.search(start, goal, m.Heuristic, nil)
	if !found {
		return nil, false
	}

	return path, true
}

// PathFindIDs resolves tile IDs and delegates to PathFindNew.
func (m *Map) PathFindIDs(start, goal int) ([]*Tile, bool, error) {
	s, err := m.Tile(start)
	if err != nil {
		return nil, false, fmt.Errorf("start: %w", err)
	}
	g, err := m.Tile(goal)
	if err != nil {
		return nil, false, fmt.Errorf("goal: %w", err)
	}
	path, found := m.PathFindNew(s, g)

	return path, found, nil
}

// PathFindingAstar returns a new A* path, empty when none exists.
func (m *Map) PathFindingAstar(start, goal *Tile) []*Tile {
	path, _ := m.PathFindNew(start, goal)

	return path
}

// PathFindingDijkstra returns a new minimum-cost path found without a
// heuristic, empty when none exists. Its cost always equals A*'s.
func (m *Map) PathFindingDijkstra(start, goal *Tile) []*Tile {
	if !m.owns(start) || !m.owns(goal) {
		return nil
	}
	path, found := m.search(start, goal, zeroHeuristic, nil)
	if !found {
		return nil
	}

	return path
}

// IsPathAvailable reports whether goal is reachable from start. It runs
// Dijkstra and leaves the shared path buffer untouched.
func (m *Map) IsPathAvailable(start, goal *Tile) bool {
	if !m.owns(start) || !m.owns(goal) {
		return false
	}
	_, found := m.search(start, goal, zeroHeuristic, nil)

	return found
}

// PathFindingBFS returns a fewest-steps path under the same step rules as
// A*, ignoring weights. Mountains are never entered and diagonals follow the
// map's DiagonalPolicy, so BFS and A* always agree on reachability.
// Previous is recorded on first discovery.
func (m *Map) PathFindingBFS(start, goal *Tile) []*Tile {
	if !m.owns(start) || !m.owns(goal) {
		return nil
	}
	m.ResetNodePrevious()

	seen := make([]bool, len(m.tiles))
	queue := []*Tile{start}
	seen[start.ID] = true
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if cur == goal {
			return backtrack(goal, nil)
		}
		for side := Down; side < sideCount; side++ {
			next, _, ok := m.step(cur, side)
			if !ok || seen[next.ID] {
				continue
			}
			seen[next.ID] = true
			next.Previous = cur
			queue = append(queue, next)
		}
	}

	return nil
}

// PathCost sums the step costs along path under the map's rules. It returns
// +Inf if any consecutive pair is not a legal step.
func (m *Map) PathCost(path []*Tile) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		cost, ok := m.stepBetween(path[i-1], path[i])
		if !ok {
			return math.Inf(1)
		}
		total += cost
	}

	return total
}

// stepBetween finds the side linking a to b and returns its cost.
func (m *Map) stepBetween(a, b *Tile) (float64, bool) {
	for side := Down; side < sideCount; side++ {
		if a.neighbors[side] != b {
			continue
		}
		if _, cost, ok := m.step(a, side); ok {
			return cost, true
		}

		return 0, false
	}

	return 0, false
}
