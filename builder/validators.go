// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a sentinel-wrapped error when its precondition is
// violated, so callers can branch with errors.Is.
package builder

import (
	"fmt"
	"math"
)

// validateMin ensures that got ≥ min, otherwise ErrTooFewNodes.
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewNodes)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability] and rejects NaN.
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// validateRange enforces lo ≤ got ≤ hi, otherwise ErrParameterOutOfRange.
// Complexity: O(1).
func validateRange(method, name string, got, lo, hi int) error {
	if got < lo || got > hi {
		return fmt.Errorf("%s: %s=%d not in [%d,%d]: %w", method, name, got, lo, hi, ErrParameterOutOfRange)
	}

	return nil
}
