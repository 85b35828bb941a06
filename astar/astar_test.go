package astar_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/islewalk/astar"
	"github.com/katalvlaran/islewalk/bfs"
	"github.com/katalvlaran/islewalk/core"
	"github.com/katalvlaran/islewalk/dijkstra"
)

var demoGrid = [][]int{
	{1, -1, 1, 1, 1},
	{1, -1, 10, 5, 1},
	{1, -1, 10, 5, 1},
	{1, -1, 5, 1, 1},
	{1, 1, 1, 1, 1},
}

// weightedGrid fills a grid with weights in [1,9] and ~20% walls.
func weightedGrid(rnd *rand.Rand, rows, cols int, uniform bool) [][]int {
	grid := make([][]int, rows)
	for r := range grid {
		grid[r] = make([]int, cols)
		for c := range grid[r] {
			switch {
			case rnd.Intn(5) == 0:
				grid[r][c] = -1
			case uniform:
				grid[r][c] = 1
			default:
				grid[r][c] = 1 + rnd.Intn(9)
			}
		}
	}

	return grid
}

func TestManhattan(t *testing.T) {
	assert.Equal(t, 0, astar.Manhattan(2, 3, 2, 3))
	assert.Equal(t, 7, astar.Manhattan(0, 0, 3, 4))
	assert.Equal(t, 7, astar.Manhattan(3, 4, 0, 0))
	assert.Equal(t, 0, astar.Zero(0, 0, 9, 9))
}

// TestPath_Errors covers nil graph and foreign nodes.
func TestPath_Errors(t *testing.T) {
	g, _ := core.New([][]int{{1, 1}})
	other, _ := core.New([][]int{{1, 1}})
	s, _ := g.Node(0)
	foreign, _ := other.Node(1)

	_, _, err := astar.Path(nil, s, s)
	assert.ErrorIs(t, err, astar.ErrGraphNil)
	_, _, err = astar.Path(g, foreign, s)
	assert.ErrorIs(t, err, astar.ErrStartNotFound)
	_, _, err = astar.Path(g, s, foreign)
	assert.ErrorIs(t, err, astar.ErrGoalNotFound)
}

// TestPath_DemoGrid goes round the wall column at cost 12.
func TestPath_DemoGrid(t *testing.T) {
	g, err := core.New(demoGrid)
	require.NoError(t, err)
	s, _ := g.NodeAt(0, 0)
	goal, _ := g.NodeAt(0, 4)

	path, found, err := astar.Path(g, s, goal)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 12, core.PathCost(path))
	assert.Equal(t, s, path[0])
	assert.Equal(t, goal, path[len(path)-1])
}

// TestPath_NoPath returns found=false on a walled-off goal.
func TestPath_NoPath(t *testing.T) {
	g, _ := core.New([][]int{
		{1, -1, 1},
		{1, -1, 1},
	})
	s, _ := g.Node(0)
	goal, _ := g.Node(5)

	path, found, err := astar.Path(g, s, goal)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, path)
}

// TestPath_MatchesDijkstraCost checks optimality on random weighted grids.
func TestPath_MatchesDijkstraCost(t *testing.T) {
	rnd := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 40; trial++ {
		g, err := core.New(weightedGrid(rnd, 10, 10, false))
		require.NoError(t, err)
		s, _ := g.Node(rnd.Intn(g.Len()))
		goal, _ := g.Node(rnd.Intn(g.Len()))

		dpath, dfound, err := dijkstra.Path(g, s, goal)
		require.NoError(t, err)
		apath, afound, err := astar.Path(g, s, goal)
		require.NoError(t, err)

		require.Equal(t, dfound, afound, "trial %d", trial)
		if !afound {
			continue
		}
		assert.Equal(t, core.PathCost(dpath), core.PathCost(apath), "trial %d", trial)
		for i := 1; i < len(apath); i++ {
			assert.Contains(t, apath[i-1].Adjacents(), apath[i])
		}
	}
}

// TestPath_ZeroWeightsMatchDijkstra keeps A* optimal when cells cost 0.
func TestPath_ZeroWeightsMatchDijkstra(t *testing.T) {
	g, err := core.New([][]int{
		{1, 0, 0, 0, 0},
		{1, 5, 5, 5, 0},
		{1, 1, 1, 1, 1},
	})
	require.NoError(t, err)
	s, _ := g.NodeAt(1, 0)
	goal, _ := g.NodeAt(2, 4)

	path, found, err := astar.Path(g, s, goal)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, core.PathCost(path))

	rnd := rand.New(rand.NewSource(77))
	for trial := 0; trial < 40; trial++ {
		grid := weightedGrid(rnd, 8, 8, false)
		for r := range grid {
			for c := range grid[r] {
				if grid[r][c] > 0 && rnd.Intn(3) == 0 {
					grid[r][c] = 0
				}
			}
		}
		g, err := core.New(grid)
		require.NoError(t, err)
		s, _ := g.Node(rnd.Intn(g.Len()))
		goal, _ := g.Node(rnd.Intn(g.Len()))

		dpath, dfound, err := dijkstra.Path(g, s, goal)
		require.NoError(t, err)
		apath, afound, err := astar.Path(g, s, goal)
		require.NoError(t, err)

		require.Equal(t, dfound, afound, "trial %d", trial)
		assert.Equal(t, core.PathCost(dpath), core.PathCost(apath), "trial %d", trial)
	}
}

// TestPath_MatchesBFSOnUniformGrid compares step counts with BFS when all
// weights are 1.
func TestPath_MatchesBFSOnUniformGrid(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	for trial := 0; trial < 40; trial++ {
		g, err := core.New(weightedGrid(rnd, 9, 9, true))
		require.NoError(t, err)
		s, _ := g.Node(rnd.Intn(g.Len()))
		goal, _ := g.Node(rnd.Intn(g.Len()))

		bpath, bfound, err := bfs.Path(g, s, goal)
		require.NoError(t, err)
		apath, afound, err := astar.Path(g, s, goal)
		require.NoError(t, err)

		require.Equal(t, bfound, afound)
		assert.Equal(t, len(bpath), len(apath), "trial %d", trial)
	}
}

// TestExpanded_ManhattanBeatsZero expects the heuristic to prune work on an
// open grid.
func TestExpanded_ManhattanBeatsZero(t *testing.T) {
	grid := make([][]int, 15)
	for r := range grid {
		grid[r] = make([]int, 15)
		for c := range grid[r] {
			grid[r][c] = 1
		}
	}
	g, _ := core.New(grid)
	s, _ := g.NodeAt(0, 0)
	goal, _ := g.NodeAt(14, 14)

	withH, err := astar.Expanded(g, s, goal)
	require.NoError(t, err)
	without, err := astar.Expanded(g, s, goal, astar.WithHeuristic(astar.Zero))
	require.NoError(t, err)

	assert.LessOrEqual(t, withH, without)
	assert.Equal(t, g.Len(), without)
}
