// SPDX-License-Identifier: MIT

package tilemap

import "math"

// Tile is one cell of a Map.
//
// AutoTileID holds the terrain: a 4-bit cardinal mask for coast and plain
// tiles, or a TileType once generation overwrites it. FogTileID selects the
// fog-edge variant and starts fully fogged. Revealed never goes back to
// false. Previous is the back-pointer of the last path search.
type Tile struct {
	ID         int
	AutoTileID int
	FogTileID  int
	Revealed   bool
	Previous   *Tile

	neighbors [sideCount]*Tile
}

// Type returns AutoTileID as a TileType.
func (t *Tile) Type() TileType {
	return TileType(t.AutoTileID)
}

// Is reports whether the tile currently has terrain tt.
func (t *Tile) Is(tt TileType) bool {
	return t.AutoTileID == int(tt)
}

// IsCoast reports whether AutoTileID is a coast mask (0..14).
func (t *Tile) IsCoast() bool {
	return t.AutoTileID > int(Empty) && t.AutoTileID < int(Grass)
}

// IsLand reports whether AutoTileID is Grass or a terrain above it.
func (t *Tile) IsLand() bool {
	return t.AutoTileID >= int(Grass)
}

// Weight is the cost of entering the tile, derived from AutoTileID only.
func (t *Tile) Weight() float64 {
	switch TileType(t.AutoTileID) {
	case Tree:
		return 5
	case Hill:
		return 15
	case Mountain:
		return math.Inf(1)
	case Dungeon:
		return 80
	}

	return 1
}

// Passable reports whether the tile can be entered at all.
func (t *Tile) Passable() bool {
	return !math.IsInf(t.Weight(), 1)
}

// Neighbor returns the tile linked on side, or nil.
func (t *Tile) Neighbor(side Side) *Tile {
	return t.neighbors[side]
}

// Neighbors returns a copy of all eight slots in Side order.
func (t *Tile) Neighbors() [sideCount]*Tile {
	return t.neighbors
}

// SetNeighbor links n on side. It does not link back.
func (t *Tile) SetNeighbor(side Side, n *Tile) {
	t.neighbors[side] = n
}

// UpdateAutoTileID recomputes AutoTileID from the cardinal slots:
// Down is bit 3, Right bit 2, Left bit 1, Up bit 0.
func (t *Tile) UpdateAutoTileID() {
	id := 0
	for side := Down; side <= Up; side++ {
		id <<= 1
		if t.neighbors[side] != nil {
			id++
		}
	}
	t.AutoTileID = id
}

// ClearNeighbors unlinks the tile from every neighbor in both directions.
// Each former neighbor and the tile itself get their mask recomputed.
func (t *Tile) ClearNeighbors() {
	for i, n := range t.neighbors {
		if n == nil {
			continue
		}
		n.removeNeighbor(t)
		t.neighbors[i] = nil
	}
	t.UpdateAutoTileID()
}

// removeNeighbor clears every slot pointing at n.
func (t *Tile) removeNeighbor(n *Tile) {
	for i := range t.neighbors {
		if t.neighbors[i] == n {
			t.neighbors[i] = nil
		}
	}
	t.UpdateAutoTileID()
}
