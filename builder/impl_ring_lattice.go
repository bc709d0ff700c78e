// SPDX-License-Identifier: MIT
// Package: igris/builder
//
// impl_ring_lattice.go - implementation of RingLattice(n, p) constructor.
//
// Canonical model (Watts–Strogatz-style rewiring of a directed 2-neighbour ring):
//   - For each cell i asc, for each offset in RingOffsets (+1 then +2):
//       draw u ~ U[0,1); if u < p the slot is rewired to a shortcut i→j with
//       j ~ U{0..n-1}; otherwise the canonical local edge i→(i+offset)%n is kept.
//   - A shortcut draw with j == i follows cfg.rewirePolicy:
//       RewireDrop     → the slot emits nothing;
//       RewireResample → j is redrawn until j != i.
//
// Contract:
//   - n ≥ MinCellNodes (else ErrTooFewNodes).
//   - 0 ≤ p ≤ 1, NaN rejected (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when p > 0 (else ErrNeedRandSource); p == 0 consumes no randomness.
//   - Cells cfg.cellIDFn(0..n-1) must already exist (core reports ErrNodeNotFound otherwise).
//   - Shortcuts may duplicate an existing pair; the graph must allow multi-edges for that.
//
// Complexity:
//   - Time: O(n) slots; each slot costs O(1) draws (expected n/(n-1) under RewireResample).
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable slot order (i asc, offset asc) and a fixed number of draws per slot under
//     RewireDrop ⇒ identical output for a fixed seed.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/igris/core"
)

// RingLattice returns a Constructor that emits the rewired ring over n cells.
func RingLattice(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateMin(methodRingLattice, "n", n, MinCellNodes); err != nil {
			return err
		}
		if err := validateProbability(methodRingLattice, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > 0 {
			return fmt.Errorf("%s: rng is required for p=%.6f: %w", methodRingLattice, p, ErrNeedRandSource)
		}

		// 2) Emit one edge (or nothing) per slot in stable order.
		for i := 0; i < n; i++ {
			u := cfg.cellIDFn(i)
			for _, off := range RingOffsets {
				kind := core.EdgeLocal
				j := (i + off) % n

				if p > 0 && cfg.rng.Float64() < p {
					var ok bool
					if j, ok = drawShortcut(cfg.rng, n, i, cfg.rewirePolicy); !ok {
						continue // dropped slot
					}
					kind = core.EdgeShortcut
				}

				v := cfg.cellIDFn(j)
				if _, err := g.AddEdge(u, v, kind); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, %s): %w", methodRingLattice, u, v, kind, err)
				}
			}
		}

		return nil
	}
}

// drawShortcut picks a uniformly random target in [0,n) for source i.
// Under RewireDrop a self draw reports ok=false; under RewireResample it is redrawn.
func drawShortcut(rng *rand.Rand, n, i int, policy RewirePolicy) (j int, ok bool) {
	j = rng.Intn(n)
	if j != i {
		return j, true
	}
	if policy == RewireDrop {
		return i, false
	}
	// n ≥ MinCellNodes, so a distinct target always exists.
	for j == i {
		j = rng.Intn(n)
	}

	return j, true
}
