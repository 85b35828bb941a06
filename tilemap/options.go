// SPDX-License-Identifier: MIT

package tilemap

import (
	"io"
	"log"
	"math/rand"
)

// Deterministic defaults.
const (
	// DefaultSeed seeds the generator when neither WithSeed nor WithRand is given.
	DefaultSeed int64 = 1

	// DefaultMaxAttempts bounds every generation retry loop.
	DefaultMaxAttempts = 256
)

// Option customizes a Map before its tiles are linked.
type Option func(*config)

// config aggregates the knobs of a Map. It is resolved once in New.
type config struct {
	rng         *rand.Rand
	diagonal    DiagonalPolicy
	maxAttempts int
	logger      *log.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		diagonal:    DiagonalEitherFlank,
		maxAttempts: DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(DefaultSeed))
	}
	if cfg.logger == nil {
		cfg.logger = log.New(io.Discard, "", 0)
	}

	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock generated layouts.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG shared with the caller.
// Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("tilemap: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithDiagonalPolicy selects the diagonal step rule.
func WithDiagonalPolicy(p DiagonalPolicy) Option {
	return func(c *config) {
		c.diagonal = p
	}
}

// WithMaxAttempts bounds the town placement and castle selection loops.
// Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("tilemap: WithMaxAttempts must be at least 1")
	}

	return func(c *config) {
		c.maxAttempts = n
	}
}

// WithLogger routes generation diagnostics to l. nil keeps the default,
// which discards output.
func WithLogger(l *log.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
