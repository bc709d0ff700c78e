// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() and NodesByKind() return nodes in insertion order.
//
// Concurrency:
//   - Node catalog protected by muNode.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

// AddNode registers a new node.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyNodeID).
//   - Stage 2: Under muNode write lock, reject duplicates and register the node.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap adjacency buckets so edge
//     methods can rely on their presence.
//
// Errors:
//   - ErrEmptyNodeID: if n.ID == "".
//   - ErrDuplicateNode: if a node with n.ID already exists.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
//
// Notes:
//   - Lock order is muNode -> muEdgeAdj to avoid lock inversion across node/edge code paths.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()

	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNode
	}

	// Store a private copy; callers keep ownership of their value.
	stored := n
	g.nodes[n.ID] = &stored
	g.nodeOrder = append(g.nodeOrder, n.ID)

	g.muEdgeAdj.Lock()
	ensureBucket(g.out, n.ID)
	ensureBucket(g.in, n.ID)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasNode reports whether the node ID exists (empty ID ⇒ false).
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	if id == "" {
		return false
	}
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node with the given ID, or ErrNodeNotFound.
// Complexity: O(1).
func (g *Graph) Node(id string) (Node, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return *n, nil
}

// Nodes returns copies of all nodes in insertion order.
// The returned slice is freshly allocated and safe to retain.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	out := make([]Node, 0, len(g.nodeOrder))
	for _, id := range g.nodeOrder {
		out = append(out, *g.nodes[id])
	}

	return out
}

// NodesByKind returns copies of all nodes of kind k in insertion order.
// Complexity: O(V).
func (g *Graph) NodesByKind(k NodeKind) []Node {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	var out []Node
	for _, id := range g.nodeOrder {
		if n := g.nodes[id]; n.Kind == k {
			out = append(out, *n)
		}
	}

	return out
}

// NodeIDs returns all node IDs in insertion order.
// Complexity: O(V).
func (g *Graph) NodeIDs() []string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	out := make([]string, len(g.nodeOrder))
	copy(out, g.nodeOrder)

	return out
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// Degree returns the in- and out-degree of id, counting parallel edges
// individually.
//
// Errors:
//   - ErrNodeNotFound: if id is not present.
//
// Complexity: O(deg(id)).
func (g *Graph) Degree(id string) (in, out int, err error) {
	if !g.HasNode(id) {
		return 0, 0, ErrNodeNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, bucket := range g.out[id] {
		out += len(bucket)
	}
	for _, bucket := range g.in[id] {
		in += len(bucket)
	}

	return in, out, nil
}
