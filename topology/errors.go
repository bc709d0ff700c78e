package topology

import "errors"

// Sentinel errors for topology generation.
var (
	// ErrInvalidParameter is returned when the rewiring probability is NaN
	// or lies outside [0,1].
	ErrInvalidParameter = errors.New("topology: invalid parameter")

	// ErrParameterOutOfRange is returned when the hub connectivity lies
	// outside [1, CellCount].
	ErrParameterOutOfRange = errors.New("topology: parameter out of range")
)
