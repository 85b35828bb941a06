package stage

import (
	"errors"
	"log"

	"github.com/katalvlaran/islewalk/tilemap"
)

// Sentinel errors for session operations.
var (
	// ErrTargetHidden indicates a move request towards an unrevealed tile.
	ErrTargetHidden = errors.New("stage: target tile is not revealed")

	// ErrGenerationFailed indicates no usable map was produced within the
	// configured number of maps.
	ErrGenerationFailed = errors.New("stage: map generation failed")
)

// Config describes the map a Session builds and how the player sees it.
type Config struct {
	Width     int
	Height    int
	Island    tilemap.IslandConfig
	FogRadius int

	// Seed drives every map the session generates; successive Resets
	// draw from the same stream and so produce different islands.
	Seed int64

	Diagonal    tilemap.DiagonalPolicy
	MaxAttempts int // per-map retry budget, see tilemap.WithMaxAttempts

	// MaxMaps bounds how many fresh maps Reset tries before giving up.
	MaxMaps int

	Logger *log.Logger
}

// DefaultConfig returns a 20×20 island with fog radius 2.
func DefaultConfig() Config {
	return Config{
		Width:       20,
		Height:      20,
		Island:      tilemap.DefaultIslandConfig(),
		FogRadius:   2,
		Seed:        tilemap.DefaultSeed,
		Diagonal:    tilemap.DiagonalEitherFlank,
		MaxAttempts: tilemap.DefaultMaxAttempts,
		MaxMaps:     16,
	}
}
