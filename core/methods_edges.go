// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edge/Edges/EdgesByKind/EdgeCount.
//       Also: nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new directed edge source→target of the given kind.
//
// Steps:
//  1. Validate IDs and the loop policy.
//  2. Check both endpoints exist (endpoints are never created implicitly).
//  3. Lock muEdgeAdj, check the multi-edge policy.
//  4. Generate eid atomically, store the edge and index it in out/in.
//
// Errors:
//   - ErrEmptyNodeID: either endpoint is "".
//   - ErrLoopNotAllowed: source == target without WithLoops.
//   - ErrNodeNotFound: either endpoint is unknown.
//   - ErrMultiEdgeNotAllowed: a source→target edge exists without WithMultiEdges.
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
func (g *Graph) AddEdge(source, target string, kind EdgeKind) (string, error) {
	if source == "" || target == "" {
		return "", ErrEmptyNodeID
	}
	if source == target && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if !g.HasNode(source) || !g.HasNode(target) {
		return "", ErrNodeNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti && len(g.out[source][target]) > 0 {
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, Source: source, Target: target, Kind: kind}
	g.edgeOrder = append(g.edgeOrder, eid)

	ensureAdjacency(g.out, source, target)
	g.out[source][target][eid] = struct{}{}
	ensureAdjacency(g.in, target, source)
	g.in[target][source][eid] = struct{}{}

	return eid, nil
}

// HasEdge reports whether at least one edge source→target exists.
// Complexity: O(1).
func (g *Graph) HasEdge(source, target string) bool {
	if source == "" || target == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.out[source][target]) > 0
}

// Edge returns a copy of the edge with the given ID, or ErrEdgeNotFound.
// Complexity: O(1).
func (g *Graph) Edge(edgeID string) (Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return Edge{}, ErrEdgeNotFound
	}

	return *e, nil
}

// Edges returns copies of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		out = append(out, *g.edges[eid])
	}

	return out
}

// EdgesByKind returns copies of all edges of kind k in insertion order.
// Complexity: O(E).
func (g *Graph) EdgesByKind(k EdgeKind) []Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []Edge
	for _, eid := range g.edgeOrder {
		if e := g.edges[eid]; e.Kind == k {
			out = append(out, *e)
		}
	}

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID.
//
// Uses a monotonic uint64 counter incremented atomically and produces
// "e" + decimal digits (no locale/time/randomness).
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
