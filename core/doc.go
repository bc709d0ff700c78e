// Package core provides a thread-safe, in-memory typed multigraph used as the
// construction target for every topology in igris.
//
// The Graph G = (V,E) stores:
//
//   - Nodes with a Kind (hub, cell, input, layer, output), a display Label and a
//     Description. Node IDs are unique; AddNode rejects duplicates.
//   - Directed edges Source→Target tagged with an EdgeKind (local, shortcut,
//     hub-connection, forward). The kind records provenance only; no method in
//     this package branches on it.
//   - Constant-time adjacency via nested maps:
//     adjacency[source][target][edgeID] = struct{}{}
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for nodes (muNode) and edges+adjacency (muEdgeAdj)
//
// Why not a plain slice pair?
//
//   - Referential integrity is enforced on insert: AddEdge never creates
//     endpoints implicitly, so every stored edge references existing nodes.
//   - Insertion order is preserved: Nodes() and Edges() enumerate exactly in
//     the order the builder emitted them, which is the order consumers expect.
//   - Loop and multi-edge policy is a graph flag, not a convention.
//
// Configuration Options (GraphOption):
//
//	– WithMultiEdges()
//	    Allows multiple parallel edges between the same endpoints.
//	    Otherwise a second AddEdge(s,t) → ErrMultiEdgeNotAllowed.
//
//	– WithLoops()
//	    Permits self-loops (s == t); otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(n Node) error                // O(1)
//	HasNode(id string) bool              // O(1)
//	Node(id string) (Node, error)        // O(1)
//	Nodes() []Node                       // O(V), insertion order
//	NodesByKind(k NodeKind) []Node       // O(V), insertion order
//
//	// Edge lifecycle
//	AddEdge(s, t string, k EdgeKind) (edgeID string, err error) // O(1)†
//	HasEdge(s, t string) bool            // O(1)
//	Edge(edgeID string) (Edge, error)    // O(1)
//	Edges() []Edge                       // O(E), insertion order
//	EdgesByKind(k EdgeKind) []Edge       // O(E), insertion order
//
//	// Query
//	Successors(id string) ([]string, error)   // out-neighbours, unique, sorted
//	NeighborIDs(id string) ([]string, error)  // undirected view, unique, sorted
//	Degree(id string) (in, out int, err error)
//	AdjacencyList() map[string][]string       // undirected view snapshot
//	Stats() *GraphStats
//
//	// Views
//	InducedSubgraph(g, keep) *Graph
//
// Errors:
//
//	ErrEmptyNodeID         – zero-length node ID
//	ErrDuplicateNode       – node ID already present
//	ErrNodeNotFound        – missing node
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
//
// † amortized constant time: atomic ID generation + nested-map insertion.
package core
