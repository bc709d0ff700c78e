// SPDX-License-Identifier: MIT
// Package: igris/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • cellIDFn     = CellIDFn          ("cell_0","cell_1",...)
//   • rng          = nil                (pure/deterministic unless seeded)
//   • rewirePolicy = RewireDrop         (self-targeted shortcut slots vanish)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Cell ID strategy: index -> ID (deterministic).
	cellIDFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// What RingLattice does when a shortcut draw lands on its own source.
	rewirePolicy RewirePolicy
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		cellIDFn:     CellIDFn,
		rng:          nil,
		rewirePolicy: RewireDrop,
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
