// Package topology generates the two architectures igris compares.
//
// Generate builds the IGRIS small-world graph: four named hubs over a ring of
// twenty cells. Each cell links to its next two ring neighbours; every such
// slot is independently rewired into a random shortcut with probability p, and
// each hub then connects to k distinct cells chosen uniformly at random.
//
// Transformer builds the fixed sequential stack (input, four layers, output)
// used as the point of comparison, and Profiles returns the descriptive panels
// for both architectures.
//
// Parameters are validated before any construction. Invalid input yields an
// error matching ErrInvalidParameter or ErrParameterOutOfRange and never a
// partial graph. Every call builds fresh containers, so Generate is safe for
// concurrent callers as long as an injected *rand.Rand is not shared.
package topology
