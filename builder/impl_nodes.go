// SPDX-License-Identifier: MIT
// Package: igris/builder
//
// impl_nodes.go - node-only constructors: Hubs(specs) and Cells(n).
//
// Contract:
//   - Hubs: len(specs) ≥ MinHubNodes (else ErrTooFewNodes); adds hubs in slice order
//     with their fixed IDs (not cfg.cellIDFn).
//   - Cells: n ≥ MinCellNodes (else ErrTooFewNodes); adds cfg.cellIDFn(0..n-1) in
//     ascending order with label "Cell i" and CellDescription.
//   - Neither constructor emits edges or consumes randomness.

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/igris/core"
)

// HubSpec describes one named hub.
type HubSpec struct {
	ID          string
	Label       string
	Description string
}

// Hubs returns a Constructor that adds one KindHub node per spec.
func Hubs(specs []HubSpec) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodHubs, "hubs", len(specs), MinHubNodes); err != nil {
			return err
		}
		for _, s := range specs {
			n := core.Node{ID: s.ID, Kind: core.KindHub, Label: s.Label, Description: s.Description}
			if err := g.AddNode(n); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodHubs, s.ID, err)
			}
		}

		return nil
	}
}

// Cells returns a Constructor that adds n generic KindCell nodes.
func Cells(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCells, "n", n, MinCellNodes); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			id := cfg.cellIDFn(i)
			node := core.Node{
				ID:          id,
				Kind:        core.KindCell,
				Label:       CellLabelPrefix + strconv.Itoa(i),
				Description: CellDescription,
			}
			if err := g.AddNode(node); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodCells, id, err)
			}
		}

		return nil
	}
}
