// Package builder provides “functional‐options”‐style topology constructors
// over core.Graph. It centralizes ID schemes, RNG handling, rewiring policy and
// parameter validation, keeping the topology package a thin composition layer.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        creates a graph, resolves options, runs constructors in order.
//     – Constructor:       func(*core.Graph, builderConfig) error.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed/WithRand: deterministic or injected randomness.
//     – WithRewirePolicy:  RewireDrop (default) or RewireResample.
//     – WithCellIDScheme / WithCellPrefix: cell ID strategy (default "cell_i").
//   - Constructors:
//     – Hubs(specs):               named hub nodes.
//     – Cells(n):                  generic cell nodes.
//     – RingLattice(n, p):         rewired two-neighbour ring (local / shortcut edges).
//     – HubOverlay(hubs, n, k):    k distinct hub-connection edges per hub.
//     – LayerStack(layers):        forward-chained sequential stack.
//   - Validation helpers:
//     – validateMin, validateRange, validateProbability.
//
// Guarantees:
//
//   - Fail-fast validation: every constructor checks its parameters before
//     touching the graph and returns wrapped sentinels (errors.Is friendly).
//   - BuildGraph returns a nil graph on any constructor error.
//   - Determinism for a fixed seed, option set and constructor order.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
package builder
