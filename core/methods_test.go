// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in insertion-order enumeration for nodes and edges.
//   - Validate constraint enforcement (referential integrity, loops, multi-edges).
//   - Anchor the undirected neighbourhood view used by traversal and metrics.

package core_test

import (
	"testing"

	"github.com/katalvlaran/igris/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cell(id string) core.Node { return core.Node{ID: id, Kind: core.KindCell, Label: id} }

// TestGraph_AddNode verifies empty-ID and duplicate rejection and lookup.
func TestGraph_AddNode(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddNode(core.Node{}), core.ErrEmptyNodeID)
	require.NoError(t, g.AddNode(core.Node{ID: "MemoryHub", Kind: core.KindHub, Label: "Memory Hub"}))
	require.ErrorIs(t, g.AddNode(core.Node{ID: "MemoryHub"}), core.ErrDuplicateNode)

	assert.True(t, g.HasNode("MemoryHub"))
	assert.False(t, g.HasNode(""))
	assert.False(t, g.HasNode("PlanningHub"))

	n, err := g.Node("MemoryHub")
	require.NoError(t, err)
	assert.Equal(t, core.KindHub, n.Kind)
	assert.Equal(t, "Memory Hub", n.Label)

	_, err = g.Node("nope")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	assert.Equal(t, 1, g.NodeCount())
}

// TestGraph_NodesInsertionOrder verifies Nodes/NodeIDs/NodesByKind keep emission order.
func TestGraph_NodesInsertionOrder(t *testing.T) {
	g := core.NewGraph()
	ids := []string{"z", "PlanningHub", "a", "cell_10", "cell_2"}
	for _, id := range ids {
		kind := core.KindCell
		if id == "PlanningHub" {
			kind = core.KindHub
		}
		require.NoError(t, g.AddNode(core.Node{ID: id, Kind: kind}))
	}

	assert.Equal(t, ids, g.NodeIDs())
	got := make([]string, 0, len(ids))
	for _, n := range g.Nodes() {
		got = append(got, n.ID)
	}
	assert.Equal(t, ids, got)

	hubs := g.NodesByKind(core.KindHub)
	require.Len(t, hubs, 1)
	assert.Equal(t, "PlanningHub", hubs[0].ID)
	assert.Len(t, g.NodesByKind(core.KindCell), 4)
}

// TestGraph_AddEdge_Constraints verifies every AddEdge rejection path.
func TestGraph_AddEdge_Constraints(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(cell("a")))
	require.NoError(t, g.AddNode(cell("b")))

	tests := []struct {
		name   string
		s, t   string
		target error
	}{
		{"empty source", "", "b", core.ErrEmptyNodeID},
		{"empty target", "a", "", core.ErrEmptyNodeID},
		{"self-loop", "a", "a", core.ErrLoopNotAllowed},
		{"unknown source", "x", "b", core.ErrNodeNotFound},
		{"unknown target", "a", "x", core.ErrNodeNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.AddEdge(tc.s, tc.t, core.EdgeLocal)
			require.ErrorIs(t, err, tc.target)
		})
	}
	assert.Equal(t, 0, g.EdgeCount())

	eid, err := g.AddEdge("a", "b", core.EdgeLocal)
	require.NoError(t, err)
	assert.Equal(t, "e1", eid)

	_, err = g.AddEdge("a", "b", core.EdgeShortcut)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	// The reverse direction is a different ordered pair.
	_, err = g.AddEdge("b", "a", core.EdgeShortcut)
	require.NoError(t, err)
}

// TestGraph_MultiEdgesAndLoops verifies the policy flags lift their constraints.
func TestGraph_MultiEdgesAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	require.NoError(t, g.AddNode(cell("a")))
	require.NoError(t, g.AddNode(cell("b")))

	for i := 0; i < 3; i++ {
		_, err := g.AddEdge("a", "b", core.EdgeShortcut)
		require.NoError(t, err)
	}
	_, err := g.AddEdge("a", "a", core.EdgeLocal)
	require.NoError(t, err)

	in, out, err := g.Degree("a")
	require.NoError(t, err)
	assert.Equal(t, 1, in)
	assert.Equal(t, 4, out)

	// Loops never appear in the undirected neighbour view.
	nbs, err := g.NeighborIDs("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, nbs)

	st := g.Stats()
	assert.True(t, st.AllowsMulti)
	assert.True(t, st.AllowsLoops)
	assert.Equal(t, 4, st.EdgeCount)
	assert.Equal(t, 3, st.EdgesByKind[core.EdgeShortcut])
	assert.Equal(t, 2, st.NodesByKind[core.KindCell])
}

// TestGraph_EdgesInsertionOrder verifies Edges/EdgesByKind/Edge lookups.
func TestGraph_EdgesInsertionOrder(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	for _, id := range []string{"h", "c0", "c1", "c2"} {
		require.NoError(t, g.AddNode(cell(id)))
	}
	pairs := []struct {
		s, t string
		k    core.EdgeKind
	}{
		{"c2", "c0", core.EdgeLocal},
		{"c0", "c1", core.EdgeShortcut},
		{"h", "c2", core.EdgeHubConnection},
		{"c1", "c2", core.EdgeLocal},
	}
	for _, p := range pairs {
		_, err := g.AddEdge(p.s, p.t, p.k)
		require.NoError(t, err)
	}

	edges := g.Edges()
	require.Len(t, edges, len(pairs))
	for i, p := range pairs {
		assert.Equal(t, p.s, edges[i].Source)
		assert.Equal(t, p.t, edges[i].Target)
		assert.Equal(t, p.k, edges[i].Kind)
	}

	locals := g.EdgesByKind(core.EdgeLocal)
	require.Len(t, locals, 2)
	assert.Equal(t, "c2", locals[0].Source)
	assert.Equal(t, "c1", locals[1].Source)

	e, err := g.Edge(edges[2].ID)
	require.NoError(t, err)
	assert.Equal(t, core.EdgeHubConnection, e.Kind)
	_, err = g.Edge("e999")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)

	assert.True(t, g.HasEdge("h", "c2"))
	assert.False(t, g.HasEdge("c2", "h"))
}

// TestGraph_Neighbourhood verifies Successors, NeighborIDs and AdjacencyList.
func TestGraph_Neighbourhood(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddNode(cell(id)))
	}
	for _, p := range [][2]string{{"a", "b"}, {"c", "a"}, {"a", "c"}} {
		_, err := g.AddEdge(p[0], p[1], core.EdgeLocal)
		require.NoError(t, err)
	}

	succ, err := g.Successors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, succ)

	nbs, err := g.NeighborIDs("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, nbs)

	_, err = g.NeighborIDs("zz")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, err = g.Successors("zz")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
	_, _, err = g.Degree("zz")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	adj := g.AdjacencyList()
	assert.Equal(t, []string{"b", "c"}, adj["a"])
	assert.Equal(t, []string{"a"}, adj["b"])
	assert.Empty(t, adj["d"])
	assert.Len(t, adj, 4)
}

// TestInducedSubgraph verifies kept nodes/edges, preserved order and IDs.
func TestInducedSubgraph(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, g.AddNode(core.Node{ID: "hub", Kind: core.KindHub}))
	for _, id := range []string{"c0", "c1", "c2"} {
		require.NoError(t, g.AddNode(cell(id)))
	}
	_, _ = g.AddEdge("c0", "c1", core.EdgeLocal)
	_, _ = g.AddEdge("hub", "c0", core.EdgeHubConnection)
	_, _ = g.AddEdge("c1", "c2", core.EdgeLocal)

	sub := core.InducedSubgraph(g, map[string]bool{"c0": true, "c1": true, "c2": true})
	assert.Equal(t, []string{"c0", "c1", "c2"}, sub.NodeIDs())
	edges := sub.Edges()
	require.Len(t, edges, 2)
	assert.Equal(t, "e1", edges[0].ID)
	assert.Equal(t, "e3", edges[1].ID)
	assert.True(t, sub.Multigraph())

	// The source graph is untouched and new IDs do not collide.
	assert.Equal(t, 3, g.EdgeCount())
	eid, err := sub.AddEdge("c2", "c0", core.EdgeShortcut)
	require.NoError(t, err)
	assert.Equal(t, "e4", eid)
}
