// SPDX-License-Identifier: MIT

package tilemap

import (
	"errors"
	"math"
)

// Sentinel errors for map construction, lookup and generation.
var (
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("tilemap: width and height must be positive")

	// ErrTileNotFound indicates a tile ID or coordinate outside the map.
	ErrTileNotFound = errors.New("tilemap: tile not found")

	// ErrInvalidRadius indicates a negative fog radius.
	ErrInvalidRadius = errors.New("tilemap: radius must be non-negative")

	// ErrUnsatisfiableGeneration indicates generation gave up after its
	// attempt budget, or the layout can never satisfy the town constraints.
	ErrUnsatisfiableGeneration = errors.New("tilemap: generation constraints cannot be satisfied")
)

// Sqrt2 is the cost multiplier of a diagonal step.
const Sqrt2 = math.Sqrt2

// TileType is a terrain category stored in Tile.AutoTileID.
// Values below Grass, other than Empty, are coast bitmasks.
type TileType int

const (
	Empty    TileType = -1
	Grass    TileType = 15
	Tree     TileType = 16
	Hill     TileType = 17
	Mountain TileType = 18
	Town     TileType = 19
	Castle   TileType = 20
	Dungeon  TileType = 21
)

// String returns the lower-case terrain name, or "coast" for mask values.
func (t TileType) String() string {
	switch t {
	case Empty:
		return "empty"
	case Grass:
		return "grass"
	case Tree:
		return "tree"
	case Hill:
		return "hill"
	case Mountain:
		return "mountain"
	case Town:
		return "town"
	case Castle:
		return "castle"
	case Dungeon:
		return "dungeon"
	}
	if t >= 0 && t < Grass {
		return "coast"
	}

	return "unknown"
}

// Side indexes a neighbor slot.
type Side int

const (
	Down Side = iota
	Right
	Left
	Up
	DR
	DL
	UR
	UL

	sideCount = 8
)

// offsets holds (dx, dy) per Side, y growing downwards.
var offsets = [sideCount][2]int{
	Down:  {0, 1},
	Right: {1, 0},
	Left:  {-1, 0},
	Up:    {0, -1},
	DR:    {1, 1},
	DL:    {-1, 1},
	UR:    {1, -1},
	UL:    {-1, -1},
}

// Offset returns the (dx, dy) step of the side.
func (s Side) Offset() (dx, dy int) {
	return offsets[s][0], offsets[s][1]
}

// Diagonal reports whether s is one of DR, DL, UR, UL.
func (s Side) Diagonal() bool {
	return s >= DR
}

// Flanks returns the two cardinal sides beside a diagonal side.
// For cardinal sides it returns s twice.
func (s Side) Flanks() (Side, Side) {
	switch s {
	case DR:
		return Down, Right
	case DL:
		return Down, Left
	case UR:
		return Up, Right
	case UL:
		return Up, Left
	}

	return s, s
}

// Opposite returns the side pointing back.
func (s Side) Opposite() Side {
	switch s {
	case Down:
		return Up
	case Up:
		return Down
	case Left:
		return Right
	case Right:
		return Left
	case DR:
		return UL
	case UL:
		return DR
	case DL:
		return UR
	}

	return DL
}

func (s Side) String() string {
	return [...]string{"down", "right", "left", "up", "down-right", "down-left", "up-right", "up-left"}[s]
}

// DiagonalPolicy decides when a diagonal step is allowed.
type DiagonalPolicy int

const (
	// DiagonalEitherFlank allows a diagonal step when at least one flanking
	// cardinal slot is linked. Corners of a single blocked tile can be cut.
	DiagonalEitherFlank DiagonalPolicy = iota

	// DiagonalBothFlanks requires both flanking slots to be linked and
	// passable.
	DiagonalBothFlanks

	// DiagonalNone disables diagonal movement.
	DiagonalNone
)

func (p DiagonalPolicy) String() string {
	switch p {
	case DiagonalEitherFlank:
		return "either"
	case DiagonalBothFlanks:
		return "both"
	case DiagonalNone:
		return "none"
	}

	return "unknown"
}

// ParseDiagonalPolicy maps "either", "both" or "none" to a policy.
func ParseDiagonalPolicy(s string) (DiagonalPolicy, bool) {
	for _, p := range []DiagonalPolicy{DiagonalEitherFlank, DiagonalBothFlanks, DiagonalNone} {
		if p.String() == s {
			return p, true
		}
	}

	return DiagonalEitherFlank, false
}
