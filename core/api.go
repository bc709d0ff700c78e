// File: api.go
// Role: Thin public facade exposing read-only policy getters and Stats.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// Multigraph reports whether parallel edges are permitted.
// Complexity: O(1).
func (g *Graph) Multigraph() bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return g.allowMulti
}

// Looped reports whether self-loops are permitted.
// Complexity: O(1).
func (g *Graph) Looped() bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return g.allowLoops
}

// Stats produces a read-only snapshot of policy flags, catalog sizes and a
// classification of nodes and edges by kind.
//
// Implementation:
//   - Stage 1: Acquire muNode.RLock, snapshot flags and node kinds, then release.
//   - Stage 2: Acquire muEdgeAdj.RLock, snapshot edge kinds, then release.
//
// Behavior highlights:
//   - Avoids holding both locks simultaneously (reduces contention and avoids lock-order hazards).
//
// Complexity:
//   - Time O(V+E), Space O(#kinds).
func (g *Graph) Stats() *GraphStats {
	g.muNode.RLock()
	stats := GraphStats{
		AllowsMulti: g.allowMulti,
		AllowsLoops: g.allowLoops,
		NodeCount:   len(g.nodes),
		NodesByKind: make(map[NodeKind]int),
		EdgesByKind: make(map[EdgeKind]int),
	}
	for _, n := range g.nodes {
		stats.NodesByKind[n.Kind]++
	}
	g.muNode.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, e := range g.edges {
		stats.EdgesByKind[e.Kind]++
	}
	g.muEdgeAdj.RUnlock()

	return &stats
}
