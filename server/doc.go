// Package server exposes the igris generators over HTTP.
//
// Routes:
//
//	GET /health
//	GET /metrics
//	GET /api/v1/profiles
//	GET /api/v1/topologies/transformer
//	GET /api/v1/topologies/igris?rewiring=&hubs=&seed=&policy=
//	GET /api/v1/topologies/igris/summary?...
//	GET /api/v1/topologies/igris/nodes/{nodeID}/neighborhood?...
//	GET /api/v1/compare?...
//	GET /ws/activity?...
//
// Omitted query parameters fall back to the active configuration. Every
// generation reports the seed it used in meta.seed, so a client can request
// the same graph again. JSON responses share one envelope:
//
//	{"success":bool,"data":...,"error":{"code","message"},"meta":{...}}
package server
