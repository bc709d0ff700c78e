package analysis

import (
	"fmt"
	"math"

	"github.com/katalvlaran/igris/bfs"
	"github.com/katalvlaran/igris/core"
)

// Summary describes the structure of one graph.
type Summary struct {
	Nodes       int                   `json:"nodes" yaml:"nodes"`
	Edges       int                   `json:"edges" yaml:"edges"`
	NodesByKind map[core.NodeKind]int `json:"nodes_by_kind" yaml:"nodes_by_kind"`
	EdgesByKind map[core.EdgeKind]int `json:"edges_by_kind" yaml:"edges_by_kind"`

	// Degrees count distinct neighbours in the undirected view.
	MinDegree  int     `json:"min_degree" yaml:"min_degree"`
	MaxDegree  int     `json:"max_degree" yaml:"max_degree"`
	MeanDegree float64 `json:"mean_degree" yaml:"mean_degree"`

	// Clustering is the mean local clustering coefficient over nodes of
	// degree ≥ 2; 0 when there are none.
	Clustering float64 `json:"clustering" yaml:"clustering"`

	// PathLength is the mean hop distance over reachable ordered pairs.
	PathLength float64 `json:"path_length" yaml:"path_length"`
	Diameter   int     `json:"diameter" yaml:"diameter"`
	Connected  bool    `json:"connected" yaml:"connected"`
}

// Summarize computes the Summary of g.
//
// Complexity: O(V·(V+E)) for the all-pairs BFS plus O(Σ deg²) for clustering.
func Summarize(g *core.Graph) (Summary, error) {
	if g == nil {
		return Summary{}, ErrGraphNil
	}

	stats := g.Stats()
	s := Summary{
		Nodes:       stats.NodeCount,
		Edges:       stats.EdgeCount,
		NodesByKind: stats.NodesByKind,
		EdgesByKind: stats.EdgesByKind,
		Connected:   true,
	}
	if s.Nodes == 0 {
		return s, nil
	}

	adj := g.AdjacencyList()
	ids := g.NodeIDs()

	s.MinDegree = math.MaxInt
	total := 0
	for _, id := range ids {
		d := len(adj[id])
		total += d
		s.MinDegree = min(s.MinDegree, d)
		s.MaxDegree = max(s.MaxDegree, d)
	}
	s.MeanDegree = float64(total) / float64(len(ids))
	s.Clustering = clustering(adj, ids)

	var pairs, sum int
	for _, id := range ids {
		res, err := bfs.BFS(g, id)
		if err != nil {
			return Summary{}, fmt.Errorf("analysis: summarize from %q: %w", id, err)
		}
		if len(res.Order) != len(ids) {
			s.Connected = false
		}
		for _, v := range res.Order[1:] {
			d := res.Depth[v]
			sum += d
			pairs++
			s.Diameter = max(s.Diameter, d)
		}
	}
	if pairs > 0 {
		s.PathLength = float64(sum) / float64(pairs)
	}

	return s, nil
}

// clustering returns the mean local clustering coefficient over nodes with
// at least two neighbours.
func clustering(adj map[string][]string, ids []string) float64 {
	linked := func(u, v string) bool {
		for _, w := range adj[u] {
			if w == v {
				return true
			}
		}
		return false
	}

	var sum float64
	counted := 0
	for _, id := range ids {
		nbrs := adj[id]
		k := len(nbrs)
		if k < 2 {
			continue
		}
		links := 0
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				if linked(nbrs[i], nbrs[j]) {
					links++
				}
			}
		}
		sum += float64(2*links) / float64(k*(k-1))
		counted++
	}
	if counted == 0 {
		return 0
	}

	return sum / float64(counted)
}
