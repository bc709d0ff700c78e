// File: view.go
// Role: Derived, non-mutating views over a Graph.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph induced by the set "keep" of node IDs:
// the result contains only nodes n where keep[n] is true, and all edges whose
// endpoints are both in keep. Node and edge insertion order, edge IDs and
// policy flags are preserved. The input graph is not mutated.
//
// Complexity: O(V + E). Concurrency: read locks only on source.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	var opts []GraphOption
	if g.Multigraph() {
		opts = append(opts, WithMultiEdges())
	}
	if g.Looped() {
		opts = append(opts, WithLoops())
	}
	out := NewGraph(opts...)

	// Copy only kept nodes, in order.
	g.muNode.RLock()
	for _, id := range g.nodeOrder {
		if !keep[id] {
			continue
		}
		n := *g.nodes[id]
		out.nodes[id] = &n
		out.nodeOrder = append(out.nodeOrder, id)
		ensureBucket(out.out, id)
		ensureBucket(out.in, id)
	}
	g.muNode.RUnlock()

	// Copy only edges whose endpoints are both kept; preserve ID and kind.
	g.muEdgeAdj.RLock()
	// Carrying the counter forward prevents reusing historical IDs.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	for _, eid := range g.edgeOrder {
		e := g.edges[eid]
		if !keep[e.Source] || !keep[e.Target] {
			continue
		}
		ne := *e
		out.edges[eid] = &ne
		out.edgeOrder = append(out.edgeOrder, eid)
		ensureAdjacency(out.out, ne.Source, ne.Target)
		out.out[ne.Source][ne.Target][eid] = struct{}{}
		ensureAdjacency(out.in, ne.Target, ne.Source)
		out.in[ne.Target][ne.Source][eid] = struct{}{}
	}
	g.muEdgeAdj.RUnlock()

	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}
