// Package igris generates and analyses small-world agent topologies and
// contrasts them with a sequential Transformer stack.
//
// An IGRIS graph is a ring of 20 processing cells, each wired to its two
// clockwise neighbours, where every ring slot may be rewired into a random
// shortcut with probability p. Four named hubs (memory, planning, prediction,
// learning) are then overlaid, each connecting to k distinct cells.
//
// The module is organised as:
//
//	core/      thread-safe graph with typed nodes and edges
//	builder/   seeded, option-driven constructors (ring, hubs, layer stack)
//	topology/  IGRIS and Transformer generators, profile metadata
//	bfs/       breadth-first traversal with hooks and depth limits
//	analysis/  degree, clustering and path-length summaries, neighbourhoods, activity sampling
//	config/    viper-backed configuration, zap logger, hot-reload store
//	server/    chi HTTP API, prometheus metrics, websocket activity stream
//	cmd/igris  cobra CLI: generate, transformer, compare, serve
//
// Quick start:
//
//	data, err := topology.Generate(0.1, 4, topology.WithSeed(42))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(len(data.Nodes), len(data.Edges))
package igris
