package analysis

import (
	"fmt"

	"github.com/katalvlaran/igris/core"
)

// Neighborhood is what lights up when a node is focused: the node itself,
// the edges touching it and the nodes at their other ends.
type Neighborhood struct {
	Node      core.Node   `json:"node" yaml:"node"`
	Neighbors []string    `json:"neighbors" yaml:"neighbors"`
	Edges     []core.Edge `json:"edges" yaml:"edges"`
}

// NeighborhoodOf returns the neighbourhood of id. Edges keep insertion order;
// neighbours are unique and sorted.
func NeighborhoodOf(g *core.Graph, id string) (Neighborhood, error) {
	if g == nil {
		return Neighborhood{}, ErrGraphNil
	}
	n, err := g.Node(id)
	if err != nil {
		return Neighborhood{}, fmt.Errorf("analysis: neighborhood %q: %w", id, err)
	}
	nbrs, err := g.NeighborIDs(id)
	if err != nil {
		return Neighborhood{}, fmt.Errorf("analysis: neighborhood %q: %w", id, err)
	}

	var incident []core.Edge
	for _, e := range g.Edges() {
		if e.Source == id || e.Target == id {
			incident = append(incident, e)
		}
	}

	return Neighborhood{Node: n, Neighbors: nbrs, Edges: incident}, nil
}
