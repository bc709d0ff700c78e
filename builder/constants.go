// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	methodHubs        = "Hubs"
	methodCells       = "Cells"
	methodRingLattice = "RingLattice"
	methodHubOverlay  = "HubOverlay"
	methodLayerStack  = "LayerStack"
)

//-----------------------------------------------------------------------------
// Node ID and metadata defaults
//-----------------------------------------------------------------------------

// CellIDPrefix prefixes the decimal index of every generic cell ("cell_7").
const CellIDPrefix = "cell_"

// CellLabelPrefix prefixes the decimal index in a cell's display label ("Cell 7").
const CellLabelPrefix = "Cell "

// CellDescription is the description shared by every generic cell.
const CellDescription = "Local compute unit"

//-----------------------------------------------------------------------------
// Minimum sizes and ring geometry
//-----------------------------------------------------------------------------

// MinCellNodes is the smallest ring for which both forward offsets land on a
// node other than the source.
const MinCellNodes = 3

// MinHubNodes is the smallest hub set HubOverlay and Hubs accept.
const MinHubNodes = 1

// MinStackLayers is the smallest sequential stack (one forward edge).
const MinStackLayers = 2

// RingOffsets are the forward distances of the canonical ring-lattice
// neighbours, emitted in this order for every cell.
var RingOffsets = [...]int{1, 2}

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for rewiring probabilities, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for rewiring probabilities, inclusive.
const MaxProbability = 1.0
