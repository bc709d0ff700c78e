// SPDX-License-Identifier: MIT
// Package: igris/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"fmt"
	"math/rand"
	"strings"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// RewirePolicy decides what happens to a ring slot whose shortcut draw
// selects the slot's own source cell.
type RewirePolicy int

const (
	// RewireDrop emits no edge for the slot (the slot silently vanishes).
	RewireDrop RewirePolicy = iota
	// RewireResample redraws the target until it differs from the source.
	RewireResample
)

// String returns the canonical lowercase policy name.
func (p RewirePolicy) String() string {
	switch p {
	case RewireDrop:
		return "drop"
	case RewireResample:
		return "resample"
	default:
		return fmt.Sprintf("RewirePolicy(%d)", int(p))
	}
}

// ParseRewirePolicy maps "drop"/"resample" (case-insensitive) to a policy.
// Returns ErrOptionViolation for anything else.
func ParseRewirePolicy(s string) (RewirePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "drop":
		return RewireDrop, nil
	case "resample":
		return RewireResample, nil
	default:
		return RewireDrop, fmt.Errorf("rewire policy %q: %w", s, ErrOptionViolation)
	}
}

// WithCellIDScheme sets the deterministic cell ID generator: idx -> string.
// Panics on nil to surface programmer error early and keep invariants tight.
func WithCellIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithCellIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.cellIDFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// The RNG is not safe for concurrent use; do not share it across builds
// running in parallel.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRewirePolicy selects how RingLattice treats self-targeted shortcut draws.
// Panics on values other than RewireDrop and RewireResample.
func WithRewirePolicy(p RewirePolicy) BuilderOption {
	if p != RewireDrop && p != RewireResample {
		panic(fmt.Sprintf("builder: WithRewirePolicy(%d)", int(p)))
	}
	return func(c *builderConfig) {
		c.rewirePolicy = p
	}
}
