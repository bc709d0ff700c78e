// File: methods_adjacent.go
// Role: Neighbourhood queries and adjacency bootstrap helpers.
//
// Determinism:
//   - Successors() and NeighborIDs() return unique IDs sorted lexicographically.
//
// Concurrency:
//   - All queries run under the muEdgeAdj read lock.
package core

import "sort"

// Successors returns the unique IDs of nodes reachable from id over one
// outgoing edge, sorted ascending.
//
// Errors:
//   - ErrNodeNotFound: if id is not present.
//
// Complexity: O(k log k) where k is the number of distinct successors.
func (g *Graph) Successors(id string) ([]string, error) {
	if !g.HasNode(id) {
		return nil, ErrNodeNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]string, 0, len(g.out[id]))
	for to, bucket := range g.out[id] {
		if len(bucket) > 0 {
			ids = append(ids, to)
		}
	}
	sort.Strings(ids)

	return ids, nil
}

// NeighborIDs returns the unique IDs adjacent to id in the undirected view of
// the graph (successors ∪ predecessors), sorted ascending. Self-loops are
// excluded.
//
// Errors:
//   - ErrNodeNotFound: if id is not present.
//
// Complexity: O(k log k) where k is the number of distinct neighbours.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if !g.HasNode(id) {
		return nil, ErrNodeNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return undirectedNeighbors(g, id), nil
}

// AdjacencyList returns a snapshot mapping every node ID to its undirected
// neighbour IDs (unique, sorted). Isolated nodes map to an empty slice.
//
// Determinism:
//   - Per-node slices are sorted; map key order is not, use NodeIDs() for it.
//
// Complexity: O(V + E + Σ sort(deg(v))).
func (g *Graph) AdjacencyList() map[string][]string {
	ids := g.NodeIDs()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	result := make(map[string][]string, len(ids))
	for _, id := range ids {
		result[id] = undirectedNeighbors(g, id)
	}

	return result
}

// undirectedNeighbors collects out- and in-neighbours of id. Caller holds muEdgeAdj.
func undirectedNeighbors(g *Graph, id string) []string {
	seen := make(map[string]struct{}, len(g.out[id])+len(g.in[id]))
	for to, bucket := range g.out[id] {
		if len(bucket) > 0 && to != id {
			seen[to] = struct{}{}
		}
	}
	for from, bucket := range g.in[id] {
		if len(bucket) > 0 && from != id {
			seen[from] = struct{}{}
		}
	}

	ids := make([]string, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids
}

// ensureBucket guarantees that index[id] is initialized.
// Caller must hold muEdgeAdj for writing.
func ensureBucket(index map[string]map[string]map[string]struct{}, id string) {
	if index[id] == nil {
		index[id] = make(map[string]map[string]struct{})
	}
}

// ensureAdjacency guarantees that index[from] and index[from][to] are initialized.
// Caller must hold muEdgeAdj for writing.
func ensureAdjacency(index map[string]map[string]map[string]struct{}, from, to string) {
	ensureBucket(index, from)
	if index[from][to] == nil {
		index[from][to] = make(map[string]struct{})
	}
}
