// SPDX-License-Identifier: MIT
// Package: igris/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`:
//       fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRingLattice, p, ErrInvalidProbability)
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// Priority (tie-break when multiple validations fail):
//   • ErrTooFewNodes          - size/domain checks first.
//   • ErrInvalidProbability   - then probability ranges.
//   • ErrParameterOutOfRange  - then fan-out bounds.
//   • ErrNeedRandSource       - then RNG presence for stochastic draws.
//   • ErrConstructFailed      - only for programmer errors (nil constructors).

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (cells, hubs, layers) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside the
// closed interval [0,1] or is NaN.
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrParameterOutOfRange indicates an integer parameter outside its admissible
// range, e.g. a hub fan-out k that is non-positive or exceeds the cell pool.
var ErrParameterOutOfRange = errors.New("builder: parameter out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder could not run a constructor
// at all (e.g. a nil Constructor was passed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates that an option value supplied as text
// (e.g. a rewire policy name from configuration) could not be resolved.
var ErrOptionViolation = errors.New("builder: invalid option value")
