package topology_test

import (
	"fmt"

	"github.com/katalvlaran/igris/core"
	"github.com/katalvlaran/igris/topology"
)

// ExampleGenerate builds the unrewired graph: 40 ring edges plus four hubs
// with four spokes each.
func ExampleGenerate() {
	data, err := topology.Generate(0, 4, topology.WithSeed(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(data.Nodes), len(data.Edges))
	fmt.Println(data.CountEdges(core.EdgeLocal), data.CountEdges(core.EdgeHubConnection))
	fmt.Println(data.Edges[0].Source, data.Edges[0].Target)
	// Output:
	// 24 56
	// 40 16
	// cell_0 cell_1
}

func ExampleTransformer() {
	data, _ := topology.Transformer()
	for _, e := range data.Edges {
		fmt.Printf("%s->%s ", e.Source, e.Target)
	}
	fmt.Println()
	// Output:
	// input->L1 L1->L2 L2->L3 L3->L4 L4->output
}
