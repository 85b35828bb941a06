// SPDX-License-Identifier: MIT

package stage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"

	"github.com/katalvlaran/islewalk/tilemap"
)

// Session is one player walking one generated map. It is not safe for
// concurrent use.
type Session struct {
	cfg    Config
	rng    *rand.Rand
	logger *log.Logger

	m      *tilemap.Map
	player *tilemap.Tile
	route  []*tilemap.Tile // waypoints still ahead, current tile excluded
}

// NewSession validates cfg and generates the first map.
func NewSession(ctx context.Context, cfg Config) (*Session, error) {
	if cfg.FogRadius < 0 {
		return nil, fmt.Errorf("%w: fog radius %d", tilemap.ErrInvalidRadius, cfg.FogRadius)
	}
	if cfg.MaxMaps < 1 {
		cfg.MaxMaps = 1
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = tilemap.DefaultMaxAttempts
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	s := &Session{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		logger: logger,
	}
	if _, err := s.Reset(ctx); err != nil {
		return nil, err
	}

	return s, nil
}

// Reset discards the current map and generates a new one, retrying with
// fresh maps while generation reports tilemap.ErrUnsatisfiableGeneration.
// The player is placed on the start town and fog is revealed around it; the
// revealed tile IDs are returned.
func (s *Session) Reset(ctx context.Context) ([]int, error) {
	for n := 1; n <= s.cfg.MaxMaps; n++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m, err := tilemap.New(s.cfg.Width, s.cfg.Height,
			tilemap.WithRand(s.rng),
			tilemap.WithDiagonalPolicy(s.cfg.Diagonal),
			tilemap.WithMaxAttempts(s.cfg.MaxAttempts),
			tilemap.WithLogger(s.logger),
		)
		if err != nil {
			return nil, err
		}
		err = m.CreateIsland(s.cfg.Island)
		if errors.Is(err, tilemap.ErrUnsatisfiableGeneration) {
			s.logger.Printf("stage: map %d/%d rejected: %v", n, s.cfg.MaxMaps, err)
			continue
		}
		if err != nil {
			return nil, err
		}

		s.m = m
		s.player = m.PlayerStartTile()
		s.route = nil
		s.logger.Printf("stage: map ready after %d try(ies), player at %d", n, s.player.ID)

		return s.m.RevealFog(s.player.ID, s.cfg.FogRadius)
	}

	return nil, fmt.Errorf("%w: %d maps rejected", ErrGenerationFailed, s.cfg.MaxMaps)
}

// Map returns the current map.
func (s *Session) Map() *tilemap.Map { return s.m }

// Player returns the tile the player stands on.
func (s *Session) Player() *tilemap.Tile { return s.player }

// Route returns the waypoints still ahead of the player.
func (s *Session) Route() []*tilemap.Tile { return s.route }

// Walking reports whether waypoints remain.
func (s *Session) Walking() bool { return len(s.route) > 0 }

// RequestMove plans a route from the player's tile to target and replaces
// the current route with it. Hidden targets fail with ErrTargetHidden.
// found is false, and the current route kept, when target is unreachable.
func (s *Session) RequestMove(target int) (found bool, err error) {
	t, err := s.m.Tile(target)
	if err != nil {
		return false, err
	}
	if !t.Revealed {
		return false, fmt.Errorf("%w: tile %d", ErrTargetHidden, target)
	}

	path, found, err := s.m.PathFindIDs(s.player.ID, target)
	if err != nil || !found {
		return false, err
	}
	s.route = path[1:]

	return true, nil
}

// Step moves the player onto the next waypoint and reveals fog around it.
// It returns the reached tile and the IDs to redraw, or nil values when the
// player is standing.
func (s *Session) Step() (*tilemap.Tile, []int, error) {
	if len(s.route) == 0 {
		return nil, nil, nil
	}
	s.player = s.route[0]
	s.route = s.route[1:]

	dirty, err := s.m.RevealFog(s.player.ID, s.cfg.FogRadius)
	if err != nil {
		return nil, nil, err
	}

	return s.player, dirty, nil
}
