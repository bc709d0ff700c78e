// SPDX-License-Identifier: MIT
// Package: igris/builder
//
// impl_layer_stack.go - implementation of LayerStack(layers) constructor.
//
// Contract:
//   - len(layers) ≥ MinStackLayers (else ErrTooFewNodes).
//   - Adds one node per LayerSpec in slice order, then emits forward edges
//     layers[i]→layers[i+1] for i asc.
//   - Consumes no randomness.
//
// Complexity: O(l) nodes + O(l-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/igris/core"
)

// LayerSpec describes one stage of a sequential stack.
type LayerSpec struct {
	ID    string
	Kind  core.NodeKind
	Label string
	// Description is optional display metadata.
	Description string
}

// LayerStack returns a Constructor that builds a forward-chained path of layers.
func LayerStack(layers []LayerSpec) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodLayerStack, "layers", len(layers), MinStackLayers); err != nil {
			return err
		}
		for _, l := range layers {
			n := core.Node{ID: l.ID, Kind: l.Kind, Label: l.Label, Description: l.Description}
			if err := g.AddNode(n); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodLayerStack, l.ID, err)
			}
		}
		for i := 0; i+1 < len(layers); i++ {
			u, v := layers[i].ID, layers[i+1].ID
			if _, err := g.AddEdge(u, v, core.EdgeForward); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodLayerStack, u, v, err)
			}
		}

		return nil
	}
}
