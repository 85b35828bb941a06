// SPDX-License-Identifier: MIT

package tilemap

import (
	"fmt"
	"log"
	"math/rand"
)

// Map owns a columns×rows arena of tiles with 8-directional links.
type Map struct {
	tiles   []Tile
	columns int
	rows    int

	playerStart *Tile
	castle      *Tile
	path        []*Tile // last PathFind result

	diagonal    DiagonalPolicy
	maxAttempts int
	rng         *rand.Rand
	logger      *log.Logger
}

// New allocates a width×height map, links every in-bounds neighbor slot and
// computes each tile's initial mask, so interior tiles start as Grass and
// border tiles as coast.
// Returns ErrInvalidDimensions if width or height is not positive.
// Complexity: O(width×height).
func New(width, height int, opts ...Option) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	cfg := newConfig(opts...)

	m := &Map{
		tiles:       make([]Tile, width*height),
		columns:     width,
		rows:        height,
		diagonal:    cfg.diagonal,
		maxAttempts: cfg.maxAttempts,
		rng:         cfg.rng,
		logger:      cfg.logger,
	}
	for i := range m.tiles {
		m.tiles[i].ID = i
		m.tiles[i].FogTileID = fullFog
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			t := &m.tiles[y*width+x]
			for side := Down; side < sideCount; side++ {
				dx, dy := side.Offset()
				if n := m.at(x+dx, y+dy); n != nil {
					t.SetNeighbor(side, n)
				}
			}
		}
	}
	for i := range m.tiles {
		m.tiles[i].UpdateAutoTileID()
	}

	return m, nil
}

// at returns the tile at (x, y) or nil when out of bounds.
func (m *Map) at(x, y int) *Tile {
	if x < 0 || x >= m.columns || y < 0 || y >= m.rows {
		return nil
	}

	return &m.tiles[y*m.columns+x]
}

// owns reports whether t belongs to m.
func (m *Map) owns(t *Tile) bool {
	return t != nil && t.ID >= 0 && t.ID < len(m.tiles) && &m.tiles[t.ID] == t
}

// Columns returns the map width.
func (m *Map) Columns() int { return m.columns }

// Rows returns the map height.
func (m *Map) Rows() int { return m.rows }

// Len returns the number of tiles.
func (m *Map) Len() int { return len(m.tiles) }

// DiagonalPolicy returns the diagonal step rule in effect.
func (m *Map) DiagonalPolicy() DiagonalPolicy { return m.diagonal }

// Tile returns the tile with the given ID.
func (m *Map) Tile(id int) (*Tile, error) {
	if id < 0 || id >= len(m.tiles) {
		return nil, fmt.Errorf("%w: id %d outside [0,%d)", ErrTileNotFound, id, len(m.tiles))
	}

	return &m.tiles[id], nil
}

// TileAt returns the tile in column x, row y.
func (m *Map) TileAt(x, y int) (*Tile, error) {
	t := m.at(x, y)
	if t == nil {
		return nil, fmt.Errorf("%w: (%d,%d) outside %dx%d map", ErrTileNotFound, x, y, m.columns, m.rows)
	}

	return t, nil
}

// Coordinate converts an ID to (x, y).
func (m *Map) Coordinate(id int) (x, y int) {
	return id % m.columns, id / m.columns
}

// Tiles returns pointers to every tile in ID order.
func (m *Map) Tiles() []*Tile {
	return m.filter(func(*Tile) bool { return true })
}

// CoastTiles returns the tiles whose AutoTileID is a coast mask.
func (m *Map) CoastTiles() []*Tile {
	return m.filter((*Tile).IsCoast)
}

// LandTiles returns Grass tiles and every terrain above it.
func (m *Map) LandTiles() []*Tile {
	return m.filter((*Tile).IsLand)
}

// TownTiles returns the tiles currently marked Town.
func (m *Map) TownTiles() []*Tile {
	return m.filter(func(t *Tile) bool { return t.Is(Town) })
}

func (m *Map) filter(keep func(*Tile) bool) []*Tile {
	var out []*Tile
	for i := range m.tiles {
		if keep(&m.tiles[i]) {
			out = append(out, &m.tiles[i])
		}
	}

	return out
}

// PlayerStartTile returns the town chosen by SetCastlePlayer, or nil.
func (m *Map) PlayerStartTile() *Tile { return m.playerStart }

// CastleTile returns the castle chosen by SetCastlePlayer, or nil.
func (m *Map) CastleTile() *Tile { return m.castle }

// Path returns the shared buffer written by PathFind. It is overwritten by
// the next PathFind call.
func (m *Map) Path() []*Tile { return m.path }

// ResetNodePrevious clears every tile's back-pointer. Idempotent.
func (m *Map) ResetNodePrevious() {
	for i := range m.tiles {
		m.tiles[i].Previous = nil
	}
}
