package topology

import (
	"fmt"

	"github.com/katalvlaran/igris/builder"
	"github.com/katalvlaran/igris/core"
)

// TransformerLayers is the number of attention blocks in the stack.
const TransformerLayers = 4

func transformerSpecs() []builder.LayerSpec {
	specs := make([]builder.LayerSpec, 0, TransformerLayers+2)
	specs = append(specs, builder.LayerSpec{ID: "input", Kind: core.KindInput, Label: "Input Embeddings"})
	for i := 1; i <= TransformerLayers; i++ {
		specs = append(specs, builder.LayerSpec{
			ID:    fmt.Sprintf("L%d", i),
			Kind:  core.KindLayer,
			Label: fmt.Sprintf("Layer %d: Attn + FFN", i),
		})
	}
	specs = append(specs, builder.LayerSpec{ID: "output", Kind: core.KindOutput, Label: "Output Probabilities"})

	return specs
}

// BuildTransformer returns the sequential stack input→L1→…→L4→output.
func BuildTransformer() (*core.Graph, error) {
	g, err := builder.BuildGraph(nil, nil, builder.LayerStack(transformerSpecs()))
	if err != nil {
		return nil, fmt.Errorf("topology: transformer: %w", err)
	}
	return g, nil
}

// Transformer returns the sequential stack in exported form.
func Transformer() (*GraphData, error) {
	g, err := BuildTransformer()
	if err != nil {
		return nil, err
	}
	return Export(g), nil
}
