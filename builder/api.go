// SPDX-License-Identifier: MIT
// Package: igris/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go (single place to read docs).
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/igris/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect core graph policy flags (loops/multigraph).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately together with a nil graph, so callers never observe a
// partially built topology.
//
// Complexity:
//   - Resolving options: O(len(bopts)) time, O(1) space.
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
//
// Errors:
//   - Wraps constructor errors via %w; callers should branch with errors.Is
//     against builder sentinels (ErrInvalidProbability, ErrParameterOutOfRange, ...).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Add cells via cfg.cellIDFn; hubs and layers carry fixed IDs.
//   - Emit edges in a stable, documented order.
//   - Return only sentinel errors; NEVER panic at runtime.

// Hubs adds one hub node per HubSpec in the given order (len ≥ 1).
// Complexity: O(h).
//func Hubs(specs []HubSpec) Constructor

// Cells adds n generic cell nodes cellIDFn(0..n-1) (n ≥ MinCellNodes).
// Complexity: O(n).
//func Cells(n int) Constructor

// RingLattice emits the rewired two-neighbour ring over n existing cells.
// Requires 0 ≤ p ≤ 1 and cfg.rng != nil when p > 0.
// Complexity: O(n) draws (O(n) expected under RewireResample).
//func RingLattice(n int, p float64) Constructor

// HubOverlay connects every hub to k distinct cells out of n (1 ≤ k ≤ n).
// Requires cfg.rng != nil when k < n.
// Complexity: O(n + h·k).
//func HubOverlay(hubIDs []string, n, k int) Constructor

// LayerStack adds a sequential stack of layers chained by forward edges (len ≥ 2).
// Complexity: O(l).
//func LayerStack(layers []LayerSpec) Constructor
