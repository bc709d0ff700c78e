package analysis

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/igris/core"
)

// DefaultActivitySize is the number of edges fired per simulation step.
const DefaultActivitySize = 5

// Activity is one simulation step: the edges that fired and every node they
// touched (sorted, unique).
type Activity struct {
	Edges []core.Edge `json:"edges" yaml:"edges"`
	Nodes []string    `json:"nodes" yaml:"nodes"`
}

// SampleActivity draws n edges uniformly with replacement.
func SampleActivity(g *core.Graph, rng *rand.Rand, n int) (Activity, error) {
	switch {
	case g == nil:
		return Activity{}, ErrGraphNil
	case rng == nil:
		return Activity{}, ErrNeedRandSource
	case n < 1:
		return Activity{}, ErrInvalidSampleSize
	}
	edges := g.Edges()
	if len(edges) == 0 {
		return Activity{}, ErrNoEdges
	}

	act := Activity{Edges: make([]core.Edge, 0, n)}
	touched := make(map[string]struct{}, 2*n)
	for i := 0; i < n; i++ {
		e := edges[rng.Intn(len(edges))]
		act.Edges = append(act.Edges, e)
		touched[e.Source] = struct{}{}
		touched[e.Target] = struct{}{}
	}
	act.Nodes = make([]string, 0, len(touched))
	for id := range touched {
		act.Nodes = append(act.Nodes, id)
	}
	sort.Strings(act.Nodes)

	return act, nil
}
