// Package search is the single entry point over the dfs, bfs, dijkstra and
// astar packages.
//
// Each algorithm is a Strategy. A Searcher binds a core.Graph and keeps the
// result of the last run in a reusable path buffer, so callers pick the
// algorithm by value instead of switching on a method code:
//
//	s, _ := search.New(g)
//	found, err := s.Search(search.PathAStar{}, start, goal)
//	for _, n := range s.Path() { ... }
//
// Traversal strategies (DFS, RecursiveDFS, BFS) fill the buffer with the
// visit order. Path strategies fill it with start..goal inclusive, or leave
// it empty when the goal is unreachable.
//
// Strategies are also addressable by name through Lookup, which is what the
// gridsearch command uses.
//
// A Searcher is not safe for concurrent use; neither is the graph it wraps.
package search
