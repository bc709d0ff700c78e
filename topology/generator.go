package topology

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/igris/builder"
	"github.com/katalvlaran/igris/core"
)

// hubSpecs lists the four hubs in emission order.
var hubSpecs = []builder.HubSpec{
	{ID: MemoryHub, Label: "Memory Hub", Description: "Long-term storage (Vector DB)"},
	{ID: PlanningHub, Label: "Planning Hub", Description: "Hierarchical Task Network"},
	{ID: PredictHub, Label: "Prediction Hub", Description: "World Model Simulation"},
	{ID: LearningHub, Label: "Learning Hub", Description: "Global Gradient Updates"},
}

// HubIDs returns the hub identifiers in emission order.
func HubIDs() []string {
	ids := make([]string, len(hubSpecs))
	for i, h := range hubSpecs {
		ids[i] = h.ID
	}
	return ids
}

// Generate builds the IGRIS graph and returns it in exported form.
//
// rewiringProb must lie in [0,1] and hubConnectivity in [1, CellCount].
// Edges are emitted ring slot by ring slot (cell index, then offset +1, +2),
// followed by hub connections hub by hub.
func Generate(rewiringProb float64, hubConnectivity int, opts ...Option) (*GraphData, error) {
	g, err := Build(rewiringProb, hubConnectivity, opts...)
	if err != nil {
		return nil, err
	}

	return Export(g), nil
}

// Build is Generate without the export step, for callers that analyse the
// graph further.
func Build(rewiringProb float64, hubConnectivity int, opts ...Option) (*core.Graph, error) {
	if err := Validate(rewiringProb, hubConnectivity); err != nil {
		return nil, err
	}

	cfg := genConfig{policy: builder.RewireDrop}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.policy != builder.RewireDrop && cfg.policy != builder.RewireResample {
		return nil, fmt.Errorf("topology: rewire policy %s: %w", cfg.policy, ErrInvalidParameter)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithMultiEdges()},
		[]builder.BuilderOption{builder.WithRand(cfg.rng), builder.WithRewirePolicy(cfg.policy)},
		builder.Hubs(hubSpecs),
		builder.Cells(CellCount),
		builder.RingLattice(CellCount, rewiringProb),
		builder.HubOverlay(HubIDs(), CellCount, hubConnectivity),
	)
	if err != nil {
		return nil, fmt.Errorf("topology: generate: %w", err)
	}

	return g, nil
}

// Validate checks generator parameters without building anything.
func Validate(rewiringProb float64, hubConnectivity int) error {
	if math.IsNaN(rewiringProb) || rewiringProb < 0 || rewiringProb > 1 {
		return fmt.Errorf("topology: rewiring probability %v not in [0,1]: %w", rewiringProb, ErrInvalidParameter)
	}
	if hubConnectivity < 1 || hubConnectivity > CellCount {
		return fmt.Errorf("topology: hub connectivity %d not in [1,%d]: %w", hubConnectivity, CellCount, ErrParameterOutOfRange)
	}

	return nil
}
