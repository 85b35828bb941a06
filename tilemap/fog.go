// SPDX-License-Identifier: MIT

package tilemap

import "fmt"

// fullFog is the FogTileID of a tile whose four sides are all hidden.
const fullFog = 15

// RevealFog marks every tile within radius of center (a square, clipped to
// the map) as revealed, then recomputes FogTileID over the square one tile
// larger. It returns the IDs of every recomputed tile so the caller can
// redraw them.
func (m *Map) RevealFog(center, radius int) ([]int, error) {
	if center < 0 || center >= len(m.tiles) {
		return nil, fmt.Errorf("%w: center %d", ErrTileNotFound, center)
	}
	if radius < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRadius, radius)
	}
	cx, cy := m.Coordinate(center)

	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if t := m.at(x, y); t != nil {
				t.Revealed = true
			}
		}
	}

	var touched []int
	for y := cy - radius - 1; y <= cy+radius+1; y++ {
		for x := cx - radius - 1; x <= cx+radius+1; x++ {
			if t := m.at(x, y); t != nil {
				t.FogTileID = m.fogMask(x, y)
				touched = append(touched, t.ID)
			}
		}
	}

	return touched, nil
}

// fogMask sets a bit per side that is the grid edge or unrevealed:
// Down is bit 3, Right bit 2, Left bit 1, Up bit 0.
func (m *Map) fogMask(x, y int) int {
	mask := 0
	for side := Down; side <= Up; side++ {
		mask <<= 1
		dx, dy := side.Offset()
		if n := m.at(x+dx, y+dy); n == nil || !n.Revealed {
			mask++
		}
	}

	return mask
}
