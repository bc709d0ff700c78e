package analysis

import (
	"fmt"

	"github.com/katalvlaran/igris/core"
)

// Comparison pairs the summaries of both architectures.
type Comparison struct {
	IGRIS       Summary `json:"igris" yaml:"igris"`
	Transformer Summary `json:"transformer" yaml:"transformer"`
}

// Compare summarizes an IGRIS graph and a Transformer stack side by side.
func Compare(igris, transformer *core.Graph) (Comparison, error) {
	a, err := Summarize(igris)
	if err != nil {
		return Comparison{}, fmt.Errorf("analysis: compare igris: %w", err)
	}
	b, err := Summarize(transformer)
	if err != nil {
		return Comparison{}, fmt.Errorf("analysis: compare transformer: %w", err)
	}

	return Comparison{IGRIS: a, Transformer: b}, nil
}
