// SPDX-License-Identifier: MIT
// Package: igris/builder
//
// impl_hub_overlay.go - implementation of HubOverlay(hubIDs, n, k) constructor.
//
// Canonical model (hub-and-spoke over a cell pool):
//   - For each hub in slice order, choose k DISTINCT cell indices out of [0,n)
//     uniformly without replacement and emit hub→cell hub-connection edges.
//   - Sampling is a partial Fisher–Yates shuffle over a fresh index pool, so the
//     cost is bounded and termination is guaranteed for every admissible k.
//
// Contract:
//   - len(hubIDs) ≥ MinHubNodes and n ≥ MinCellNodes (else ErrTooFewNodes).
//   - 1 ≤ k ≤ n (else ErrParameterOutOfRange).
//   - cfg.rng must be non-nil when k < n (else ErrNeedRandSource). With k == n and
//     no RNG, every hub connects to all cells in ascending order.
//   - Hubs and cells must already exist (core reports ErrNodeNotFound otherwise).
//
// Complexity:
//   - Time: O(h·(n + k)); Space: O(n) for the pool.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/igris/core"
)

// HubOverlay returns a Constructor that connects every hub to k distinct cells.
func HubOverlay(hubIDs []string, n, k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodHubOverlay, "hubs", len(hubIDs), MinHubNodes); err != nil {
			return err
		}
		if err := validateMin(methodHubOverlay, "n", n, MinCellNodes); err != nil {
			return err
		}
		if err := validateRange(methodHubOverlay, "k", k, 1, n); err != nil {
			return err
		}
		if cfg.rng == nil && k < n {
			return fmt.Errorf("%s: rng is required for k=%d < n=%d: %w", methodHubOverlay, k, n, ErrNeedRandSource)
		}

		for _, hub := range hubIDs {
			for _, idx := range sampleDistinct(cfg.rng, n, k) {
				cell := cfg.cellIDFn(idx)
				if _, err := g.AddEdge(hub, cell, core.EdgeHubConnection); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodHubOverlay, hub, cell, err)
				}
			}
		}

		return nil
	}
}

// sampleDistinct returns k distinct indices from [0,n) in draw order using a
// partial Fisher–Yates shuffle. A nil rng yields the identity prefix 0..k-1.
// Requires 0 ≤ k ≤ n (validated by callers).
func sampleDistinct(rng *rand.Rand, n, k int) []int {
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	if rng == nil {
		return pool[:k]
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k]
}
