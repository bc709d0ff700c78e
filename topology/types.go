package topology

import "github.com/katalvlaran/igris/core"

// Architecture names.
const (
	NameIGRIS       = "igris"
	NameTransformer = "transformer"
)

// Fixed sizes of the IGRIS graph.
const (
	CellCount = 20
	HubCount  = 4
)

// Hub identifiers in emission order.
const (
	MemoryHub   = "MemoryHub"
	PlanningHub = "PlanningHub"
	PredictHub  = "PredictHub"
	LearningHub = "LearningHub"
)

// NodeData is the exported form of a node.
type NodeData struct {
	ID          string        `json:"id" yaml:"id"`
	Kind        core.NodeKind `json:"kind" yaml:"kind"`
	Label       string        `json:"label" yaml:"label"`
	Description string        `json:"description" yaml:"description"`
}

// EdgeData is the exported form of an edge.
type EdgeData struct {
	Source string        `json:"source" yaml:"source"`
	Target string        `json:"target" yaml:"target"`
	Kind   core.EdgeKind `json:"kind" yaml:"kind"`
}

// GraphData is the plain node/edge list handed to callers. Nodes and edges
// keep the order in which they were created.
type GraphData struct {
	Nodes []NodeData `json:"nodes" yaml:"nodes"`
	Edges []EdgeData `json:"edges" yaml:"edges"`
}

// Export copies g into a GraphData, preserving insertion order.
func Export(g *core.Graph) *GraphData {
	nodes := g.Nodes()
	edges := g.Edges()
	out := &GraphData{
		Nodes: make([]NodeData, 0, len(nodes)),
		Edges: make([]EdgeData, 0, len(edges)),
	}
	for _, n := range nodes {
		out.Nodes = append(out.Nodes, NodeData{ID: n.ID, Kind: n.Kind, Label: n.Label, Description: n.Description})
	}
	for _, e := range edges {
		out.Edges = append(out.Edges, EdgeData{Source: e.Source, Target: e.Target, Kind: e.Kind})
	}

	return out
}

// CountEdges returns the number of edges of kind k.
func (d *GraphData) CountEdges(k core.EdgeKind) int {
	c := 0
	for _, e := range d.Edges {
		if e.Kind == k {
			c++
		}
	}
	return c
}

// CountNodes returns the number of nodes of kind k.
func (d *GraphData) CountNodes(k core.NodeKind) int {
	c := 0
	for _, n := range d.Nodes {
		if n.Kind == k {
			c++
		}
	}
	return c
}
