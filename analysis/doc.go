// Package analysis computes structural metrics over igris graphs and the
// interactive views built on them.
//
// All metrics use the undirected simple view of a core.Graph: edge direction
// is ignored, and parallel edges and loops collapse. This is the view in
// which "small-world" is meaningful: a rewired ring keeps a high clustering
// coefficient while its characteristic path length drops toward that of a
// random graph.
//
//   - Summarize:      node/edge counts, degree statistics, clustering,
//                     characteristic path length, diameter, connectivity.
//   - Compare:        summaries of the two architectures side by side.
//   - Neighborhood:   incident edges and neighbours of one node.
//   - SampleActivity: a random batch of edges with the nodes they touch.
//   - FromGraphData:  rebuilds a core.Graph from exported data.
package analysis
