// SPDX-License-Identifier: MIT

package tilemap

import (
	"fmt"
	"math"
)

// IslandConfig holds the decoration densities of CreateIsland. Every
// percentage is a fraction of the candidate set in [0,1]; values outside
// that range are clamped by the candidate-count computation.
type IslandConfig struct {
	ErodeIterations int
	ErodePercent    float64
	LakePercent     float64
	TreePercent     float64
	HillPercent     float64
	MountainPercent float64
	TownPercent     float64
	DungeonPercent  float64
}

// DefaultIslandConfig returns three erosion passes and 10% for every density.
func DefaultIslandConfig() IslandConfig {
	return IslandConfig{
		ErodeIterations: 3,
		ErodePercent:    0.1,
		LakePercent:     0.1,
		TreePercent:     0.1,
		HillPercent:     0.1,
		MountainPercent: 0.1,
		TownPercent:     0.1,
		DungeonPercent:  0.1,
	}
}

// CreateIsland decorates a freshly built map: lakes, coastal erosion,
// trees, hills, mountains, dungeons, then towns until at least two exist,
// and finally SetCastlePlayer. On success the shared path buffer holds the
// route from the player start to the castle.
// Returns ErrUnsatisfiableGeneration when the attempt budget runs out.
func (m *Map) CreateIsland(cfg IslandConfig) error {
	m.DecorateTiles(m.LandTiles(), cfg.LakePercent, Empty)
	for i := 0; i < cfg.ErodeIterations; i++ {
		m.DecorateTiles(m.CoastTiles(), cfg.ErodePercent, Empty)
	}

	m.DecorateTiles(m.LandTiles(), cfg.TreePercent, Tree)
	m.DecorateTiles(m.LandTiles(), cfg.HillPercent, Hill)
	m.DecorateTiles(m.LandTiles(), cfg.MountainPercent, Mountain)
	m.DecorateTiles(m.LandTiles(), cfg.DungeonPercent, Dungeon)

	for attempt := 0; len(m.TownTiles()) < 2; attempt++ {
		if attempt == m.maxAttempts {
			return fmt.Errorf("%w: %d towns after %d town passes", ErrUnsatisfiableGeneration, len(m.TownTiles()), attempt)
		}
		m.DecorateTiles(m.LandTiles(), cfg.TownPercent, Town)
	}

	return m.SetCastlePlayer()
}

// DecorateTiles shuffles tiles in place and sets the first
// floor(len·percent) of them to tt. Turning a tile into Empty also unlinks
// it from its neighbors, whose masks are recomputed.
func (m *Map) DecorateTiles(tiles []*Tile, percent float64, tt TileType) {
	m.ShuffleTiles(tiles)
	total := decorateCount(len(tiles), percent)
	for _, t := range tiles[:total] {
		if tt == Empty {
			t.ClearNeighbors()
		}
		t.AutoTileID = int(tt)
	}
}

// decorateCount returns floor(n·percent) clamped to [0, n].
func decorateCount(n int, percent float64) int {
	if !(percent > 0) {
		return 0
	}
	if percent >= 1 {
		return n
	}

	return int(math.Floor(float64(n) * percent))
}

// ShuffleTiles permutes tiles in place with Fisher–Yates using the map's RNG.
func (m *Map) ShuffleTiles(tiles []*Tile) {
	for i := len(tiles) - 1; i > 0; i-- {
		j := m.rng.Intn(i + 1)
		tiles[i], tiles[j] = tiles[j], tiles[i]
	}
}

// SetCastlePlayer picks two towns joined by an A* path, makes the first the
// player start and turns the second into the Castle.
//
// Only towns that share a component with another town are shuffled, so a
// layout with no connected pair fails immediately instead of retrying. The
// shuffle-and-check loop is bounded by the map's attempt budget.
func (m *Map) SetCastlePlayer() error {
	towns := m.TownTiles()
	if len(towns) < 2 {
		return fmt.Errorf("%w: need 2 towns, have %d", ErrUnsatisfiableGeneration, len(towns))
	}

	labels, _ := m.components()
	perComponent := make(map[int]int)
	for _, t := range towns {
		perComponent[labels[t.ID]]++
	}
	candidates := towns[:0]
	for _, t := range towns {
		if perComponent[labels[t.ID]] >= 2 {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) < 2 {
		return fmt.Errorf("%w: no two of %d towns are connected", ErrUnsatisfiableGeneration, len(towns))
	}

	for attempt := 1; attempt <= m.maxAttempts; attempt++ {
		m.ShuffleTiles(candidates)
		if m.PathFind(candidates[0], candidates[1]) {
			m.playerStart = candidates[0]
			m.castle = candidates[1]
			m.castle.AutoTileID = int(Castle)
			m.logger.Printf("tilemap: castle %d, player %d after %d attempt(s), route %d tiles",
				m.castle.ID, m.playerStart.ID, attempt, len(m.path))

			return nil
		}
		m.logger.Printf("tilemap: towns %d and %d not connected, reshuffling", candidates[0].ID, candidates[1].ID)
	}

	return fmt.Errorf("%w: no connected town pair after %d attempts", ErrUnsatisfiableGeneration, m.maxAttempts)
}
