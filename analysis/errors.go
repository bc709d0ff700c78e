package analysis

import "errors"

// Sentinel errors for analysis.
var (
	// ErrGraphNil is returned when a nil graph or GraphData is passed.
	ErrGraphNil = errors.New("analysis: graph is nil")

	// ErrNoEdges is returned when sampling activity on a graph without edges.
	ErrNoEdges = errors.New("analysis: graph has no edges")

	// ErrInvalidSampleSize is returned for a non-positive sample size.
	ErrInvalidSampleSize = errors.New("analysis: sample size must be positive")

	// ErrNeedRandSource is returned when sampling without a random source.
	ErrNeedRandSource = errors.New("analysis: rng is required")
)
