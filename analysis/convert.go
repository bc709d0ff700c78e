package analysis

import (
	"fmt"

	"github.com/katalvlaran/igris/core"
	"github.com/katalvlaran/igris/topology"
)

// FromGraphData rebuilds a multigraph from exported data, preserving order.
func FromGraphData(d *topology.GraphData) (*core.Graph, error) {
	if d == nil {
		return nil, ErrGraphNil
	}
	g := core.NewGraph(core.WithMultiEdges())
	for _, n := range d.Nodes {
		node := core.Node{ID: n.ID, Kind: n.Kind, Label: n.Label, Description: n.Description}
		if err := g.AddNode(node); err != nil {
			return nil, fmt.Errorf("analysis: node %q: %w", n.ID, err)
		}
	}
	for i, e := range d.Edges {
		if _, err := g.AddEdge(e.Source, e.Target, e.Kind); err != nil {
			return nil, fmt.Errorf("analysis: edge %d %s→%s: %w", i, e.Source, e.Target, err)
		}
	}

	return g, nil
}
