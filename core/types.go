// Package core defines the central Graph, Node, and Edge types,
// and provides thread-safe primitives for building and querying graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muNode for nodes,
// muEdgeAdj for edges and adjacency), so graphs can be read from many
// goroutines while a builder is still emitting edges.
//
// Errors:
//
//	ErrEmptyNodeID         - node ID is the empty string.
//	ErrDuplicateNode       - node ID already registered.
//	ErrNodeNotFound        - requested node does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - parallel edge when multi-edges are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that the provided Node has an empty ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates that a node with the same ID is already present.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted when multi-edges are disabled.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// NodeKind classifies a node by its architectural role.
type NodeKind string

// Node kinds. Hub and Cell make up the small-world topology; Input, Layer and
// Output make up the sequential stack.
const (
	KindHub    NodeKind = "hub"
	KindCell   NodeKind = "cell"
	KindInput  NodeKind = "input"
	KindLayer  NodeKind = "layer"
	KindOutput NodeKind = "output"
)

// EdgeKind records how an edge came to exist.
type EdgeKind string

// Edge kinds.
const (
	// EdgeLocal is a canonical ring-lattice edge i→(i+offset)%n.
	EdgeLocal EdgeKind = "local"
	// EdgeShortcut replaces a ring slot after rewiring.
	EdgeShortcut EdgeKind = "shortcut"
	// EdgeHubConnection links a hub to one of its cells.
	EdgeHubConnection EdgeKind = "hub-connection"
	// EdgeForward links consecutive layers of a sequential stack.
	EdgeForward EdgeKind = "forward"
)

// Node represents a vertex of the graph.
//
// ID uniquely identifies this Node within its Graph. Label and Description are
// display metadata and never influence construction.
type Node struct {
	ID          string   `json:"id" yaml:"id"`
	Kind        NodeKind `json:"kind" yaml:"kind"`
	Label       string   `json:"label" yaml:"label"`
	Description string   `json:"description" yaml:"description"`
}

// Edge represents a directed connection Source→Target.
//
// Each Edge has a unique ID assigned by the Graph on insertion.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string `json:"id" yaml:"id"`

	// Source is the originating node ID.
	Source string `json:"source" yaml:"source"`

	// Target is the destination node ID.
	Target string `json:"target" yaml:"target"`

	// Kind records the provenance of the edge.
	Kind EdgeKind `json:"kind" yaml:"kind"`
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiEdges permits parallel edges between the same nodes.
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-loops (edges from a node to itself).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the core in-memory graph data structure.
//
// muNode protects nodes and nodeOrder; muEdgeAdj protects edges, edgeOrder
// and both adjacency indexes. nextEdgeID is an atomic counter for unique
// Edge.ID generation. Lock order, when both are needed, is muNode → muEdgeAdj.
type Graph struct {
	muNode    sync.RWMutex // guards nodes, nodeOrder
	muEdgeAdj sync.RWMutex // guards edges, edgeOrder, out, in

	// Configuration flags
	allowMulti bool // allow parallel edges
	allowLoops bool // allow self-loops

	// Storage
	nextEdgeID uint64           // atomic edge ID generator
	nodes      map[string]*Node // node ID → Node
	nodeOrder  []string         // node IDs in insertion order
	edges      map[string]*Edge // edge ID → Edge
	edgeOrder  []string         // edge IDs in insertion order

	// out[source][target][edgeID] and in[target][source][edgeID]
	out map[string]map[string]map[string]struct{}
	in  map[string]map[string]map[string]struct{}
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph allows neither loops nor multi-edges.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: make(map[string]*Node),
		edges: make(map[string]*Edge),
		out:   make(map[string]map[string]map[string]struct{}),
		in:    make(map[string]map[string]map[string]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// GraphStats is a read-only snapshot of a Graph's policy flags and catalog sizes.
type GraphStats struct {
	AllowsMulti bool
	AllowsLoops bool
	NodeCount   int
	EdgeCount   int
	NodesByKind map[NodeKind]int
	EdgesByKind map[EdgeKind]int
}
