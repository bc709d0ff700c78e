// Package bfs implements breadth-first search over a core.Graph.
//
// Edges are followed in both directions, matching how the igris topologies
// are analysed and highlighted: a hub→cell spoke connects the two nodes
// regardless of its emission direction. Parallel edges and loops collapse,
// so every node is enqueued at most once.
//
// Options:
//
//   - WithContext(ctx):       cancellation, checked once per dequeue.
//   - WithMaxDepth(d):        stop expanding below depth d (d > 0); 0 is no limit.
//   - WithFilterNeighbor(fn): skip curr→neighbor steps for which fn returns false.
//   - WithOnEnqueue(fn):      hook when a node is first discovered.
//   - WithOnVisit(fn):        hook when a node is visited; an error aborts.
//
// Neighbors are expanded in sorted ID order, so Order and Parent are
// deterministic for a given graph.
//
// Complexity: O(V + E) time, O(V) memory.
package bfs
