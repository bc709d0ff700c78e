// Package builder provides internal helper functions and types
// for configuring ID schemes in graph constructors.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a node identifier from its zero‐based index.
// It must be a pure, deterministic function: given the same idx, it always returns the same string.
// Panics in implementations indicate programmer error in configuration.
type IDFn func(idx int) string

// CellIDFn returns "cell_" + decimal idx, e.g. 0→"cell_0", 19→"cell_19".
// Complexity: O(d) where d is the number of decimal digits in idx.
// Panics if idx < 0.
func CellIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("CellIDFn: idx must be ≥ 0, got %d", idx))
	}

	return CellIDPrefix + strconv.Itoa(idx)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Complexity: O(d) where d is the number of decimal digits in idx.
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithCellPrefix sets the cell ID scheme to SymbolNumberIDFn(prefix).
// Example: WithCellPrefix("n") → "n0","n1",...
func WithCellPrefix(prefix string) BuilderOption {
	return WithCellIDScheme(SymbolNumberIDFn(prefix))
}
