package tilemap_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/islewalk/tilemap"
)

const eps = 1e-9

// generated returns a decorated map. Generation errors are ignored: the
// terrain passes have already run by the time town placement can fail.
func generated(t testing.TB, seed int64, w, h int) *tilemap.Map {
	t.Helper()
	m := mustMap(t, w, h, tilemap.WithSeed(seed))
	err := m.CreateIsland(tilemap.DefaultIslandConfig())
	if err != nil && !errors.Is(err, tilemap.ErrUnsatisfiableGeneration) {
		t.Fatalf("CreateIsland: %v", err)
	}

	return m
}

// requireValidTilePath checks endpoints, legal steps and uniqueness.
func requireValidTilePath(t *testing.T, m *tilemap.Map, path []*tilemap.Tile, start, goal *tilemap.Tile) {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	require.Equal(t, goal, path[len(path)-1])
	seen := map[int]bool{}
	for _, tile := range path {
		require.False(t, seen[tile.ID], "tile %d repeats", tile.ID)
		seen[tile.ID] = true
	}
	require.False(t, math.IsInf(m.PathCost(path), 1), "path contains an illegal step")
}

func TestHeuristic_Octile(t *testing.T) {
	m := mustMap(t, 10, 10)
	a := tileAt(t, m, 1, 2)

	assert.InDelta(t, 0, m.Heuristic(a, a), eps)
	assert.InDelta(t, 3*math.Sqrt2+2, m.Heuristic(a, tileAt(t, m, 6, 5)), eps)
	assert.InDelta(t, 7, m.Heuristic(a, tileAt(t, m, 1, 9)), eps)
}

// TestPathFind_OpenDiagonal walks the diagonal of an open map.
func TestPathFind_OpenDiagonal(t *testing.T) {
	m := mustMap(t, 5, 5)
	start, goal := tileAt(t, m, 0, 0), tileAt(t, m, 4, 4)

	require.True(t, m.PathFind(start, goal))
	path := m.Path()
	require.Len(t, path, 5)
	for i, tile := range path {
		assert.Equal(t, i*5+i, tile.ID)
	}
	assert.InDelta(t, 4*math.Sqrt2, m.PathCost(path), eps)

	fresh, ok := m.PathFindNew(start, goal)
	require.True(t, ok)
	assert.Equal(t, path, fresh)
	assert.Equal(t, fresh, m.PathFindingAstar(start, goal))
}

// TestPathFind_StartIsGoal yields a single-tile path.
func TestPathFind_StartIsGoal(t *testing.T) {
	m := mustMap(t, 3, 3)
	s := tileAt(t, m, 1, 1)

	require.True(t, m.PathFind(s, s))
	assert.Equal(t, []*tilemap.Tile{s}, m.Path())
	assert.Zero(t, m.PathCost(m.Path()))
}

// TestPathFind_MountainWall blocks every route with a column of mountains.
func TestPathFind_MountainWall(t *testing.T) {
	m := mustMap(t, 3, 3)
	setType(m, tilemap.Mountain, tileAt(t, m, 1, 0), tileAt(t, m, 1, 1), tileAt(t, m, 1, 2))
	start, goal := tileAt(t, m, 0, 0), tileAt(t, m, 2, 0)

	require.True(t, m.PathFind(start, tileAt(t, m, 0, 2)))
	require.NotEmpty(t, m.Path())

	assert.False(t, m.PathFind(start, goal))
	assert.Empty(t, m.Path())
	_, ok := m.PathFindNew(start, goal)
	assert.False(t, ok)
	assert.Empty(t, m.PathFindingAstar(start, goal))
	assert.Empty(t, m.PathFindingDijkstra(start, goal))
	assert.Empty(t, m.PathFindingBFS(start, goal))
	assert.False(t, m.IsPathAvailable(start, goal))

	// a mountain itself is never entered
	assert.False(t, m.IsPathAvailable(start, tileAt(t, m, 1, 1)))
}

// TestPathFind_WeightedDetour prefers grass around a dungeon.
func TestPathFind_WeightedDetour(t *testing.T) {
	m := mustMap(t, 3, 3)
	setType(m, tilemap.Dungeon, tileAt(t, m, 1, 1))
	start, goal := tileAt(t, m, 0, 1), tileAt(t, m, 2, 1)

	require.True(t, m.PathFind(start, goal))
	for _, tile := range m.Path() {
		assert.NotEqual(t, tileAt(t, m, 1, 1), tile)
	}
	// two diagonal steps around the dungeon
	assert.InDelta(t, 2*math.Sqrt2, m.PathCost(m.Path()), eps)
}

// TestDiagonalPolicy_CornerCutting removes one flank of a diagonal step.
func TestDiagonalPolicy_CornerCutting(t *testing.T) {
	cases := []struct {
		policy  tilemap.DiagonalPolicy
		wantLen int
		wantSum float64
	}{
		{tilemap.DiagonalEitherFlank, 2, math.Sqrt2},
		{tilemap.DiagonalBothFlanks, 3, 2},
		{tilemap.DiagonalNone, 3, 2},
	}
	for _, c := range cases {
		t.Run(c.policy.String(), func(t *testing.T) {
			m := mustMap(t, 3, 3, tilemap.WithDiagonalPolicy(c.policy))
			setType(m, tilemap.Empty, tileAt(t, m, 1, 0))
			start, goal := tileAt(t, m, 0, 0), tileAt(t, m, 1, 1)

			require.True(t, m.PathFind(start, goal))
			assert.Len(t, m.Path(), c.wantLen)
			assert.InDelta(t, c.wantSum, m.PathCost(m.Path()), eps)
			assert.Equal(t, c.policy, m.DiagonalPolicy())
		})
	}
}

// TestPathFind_ForeignTiles rejects tiles from another map.
func TestPathFind_ForeignTiles(t *testing.T) {
	m := mustMap(t, 2, 2)
	other := mustMap(t, 2, 2)

	assert.False(t, m.PathFind(tileAt(t, other, 0, 0), tileAt(t, m, 1, 1)))
	assert.False(t, m.IsPathAvailable(nil, tileAt(t, m, 1, 1)))
	assert.Nil(t, m.PathFindingBFS(tileAt(t, m, 0, 0), nil))
}

func TestPathFindIDs(t *testing.T) {
	m := mustMap(t, 4, 4)

	path, found, err := m.PathFindIDs(0, 15)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, path, 4)

	_, _, err = m.PathFindIDs(-1, 3)
	assert.ErrorIs(t, err, tilemap.ErrTileNotFound)
	_, _, err = m.PathFindIDs(0, 16)
	assert.ErrorIs(t, err, tilemap.ErrTileNotFound)
}

// TestPathCost_IllegalStep reports +Inf for non-adjacent pairs.
func TestPathCost_IllegalStep(t *testing.T) {
	m := mustMap(t, 4, 1)
	assert.True(t, math.IsInf(m.PathCost([]*tilemap.Tile{tileAt(t, m, 0, 0), tileAt(t, m, 2, 0)}), 1))
}

// TestPathFinders_Agree compares A*, Dijkstra and BFS on generated islands
// and checks that the octile heuristic never overestimates.
func TestPathFinders_Agree(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		m := generated(t, seed, 24, 24)
		rnd := rand.New(rand.NewSource(seed))
		var land []*tilemap.Tile
		for _, tile := range m.LandTiles() {
			if tile.Passable() {
				land = append(land, tile)
			}
		}
		if len(land) < 2 {
			continue
		}

		for trial := 0; trial < 20; trial++ {
			start := land[rnd.Intn(len(land))]
			goal := land[rnd.Intn(len(land))]

			astar, aok := m.PathFindNew(start, goal)
			dijkstra := m.PathFindingDijkstra(start, goal)
			bfs := m.PathFindingBFS(start, goal)
			reachable := m.IsPathAvailable(start, goal)

			require.Equal(t, reachable, aok, "seed %d trial %d", seed, trial)
			require.Equal(t, reachable, len(dijkstra) > 0)
			require.Equal(t, reachable, len(bfs) > 0)
			require.Equal(t, reachable, m.Connected(start, goal))
			if !reachable {
				continue
			}
			requireValidTilePath(t, m, astar, start, goal)
			requireValidTilePath(t, m, dijkstra, start, goal)
			requireValidTilePath(t, m, bfs, start, goal)

			cost := m.PathCost(dijkstra)
			assert.InDelta(t, cost, m.PathCost(astar), eps, "seed %d trial %d", seed, trial)
			assert.LessOrEqual(t, m.Heuristic(start, goal), cost+eps)
			assert.LessOrEqual(t, len(bfs), len(astar))
		}
	}
}

// TestPathFindingBFS_OpenMapMatchesAstarLength checks step counts on a
// uniform-cost map.
func TestPathFindingBFS_OpenMapMatchesAstarLength(t *testing.T) {
	m := mustMap(t, 9, 7)
	rnd := rand.New(rand.NewSource(3))
	for trial := 0; trial < 50; trial++ {
		start, _ := m.Tile(rnd.Intn(m.Len()))
		goal, _ := m.Tile(rnd.Intn(m.Len()))

		bfs := m.PathFindingBFS(start, goal)
		astar := m.PathFindingAstar(start, goal)
		requireValidTilePath(t, m, bfs, start, goal)
		assert.Len(t, astar, len(bfs))
	}
}

// TestPathFindingBFS_FollowsStepRules skips mountains and honours the
// diagonal policy the same way A* does.
func TestPathFindingBFS_FollowsStepRules(t *testing.T) {
	open := mustMap(t, 3, 3)
	assert.Len(t, open.PathFindingBFS(tileAt(t, open, 0, 0), tileAt(t, open, 2, 2)), 3)

	straight := mustMap(t, 3, 3, tilemap.WithDiagonalPolicy(tilemap.DiagonalNone))
	start, goal := tileAt(t, straight, 0, 0), tileAt(t, straight, 2, 2)
	path := straight.PathFindingBFS(start, goal)
	requireValidTilePath(t, straight, path, start, goal)
	assert.Len(t, path, 5)

	m := mustMap(t, 3, 3)
	setType(m, tilemap.Mountain, tileAt(t, m, 1, 1))
	start, goal = tileAt(t, m, 0, 0), tileAt(t, m, 2, 2)
	path = m.PathFindingBFS(start, goal)
	requireValidTilePath(t, m, path, start, goal)
	for _, tile := range path {
		assert.False(t, tile.Is(tilemap.Mountain))
	}
	assert.Len(t, path, len(m.PathFindingAstar(start, goal)))
}
