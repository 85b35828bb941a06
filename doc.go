// Package islewalk generates small island maps and walks agents across them,
// built on a set of grid search algorithms.
//
// 🚀 What is islewalk?
//
//	A deterministic, single-threaded toolkit that brings together:
//		• pqueue   - generic array-backed binary min-heap with Try variants
//		• core     - 4-directional weighted grid Graph with back-pointers
//		• dfs, bfs - traversals and fewest-steps paths
//		• dijkstra - minimum-cost paths over id-indexed arrays
//		• astar    - minimum-cost paths with a pluggable heuristic
//		• search   - strategy registry and a reusable path buffer
//		• tilemap  - 8-directional terrain maps, island generation, fog of war
//		• stage    - headless session: player, route, fog reveal per step
//
// Commands:
//
//	cmd/islewalk   - terminal viewer; click a revealed tile to walk there
//	cmd/gridsearch - run any search strategy over an integer grid
//
// Conventions:
//
//   - Errors are package sentinels; wrap with %w and test with errors.Is.
//   - "No path" is a normal outcome (found == false), never an error.
//   - Randomness comes from a seeded *rand.Rand; equal seeds give equal maps.
//   - Graphs and Maps carry transient search state and must not be searched
//     from two goroutines at once.
package islewalk
