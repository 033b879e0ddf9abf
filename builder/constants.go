// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodComplete is the canonical name for the Complete constructor.
	MethodComplete = "Complete"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
	// MethodRandomSparse is the canonical name for the RandomSparse constructor.
	MethodRandomSparse = "RandomSparse"
	// MethodRandomConnected is the canonical name for the RandomConnected constructor.
	MethodRandomConnected = "RandomConnected"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is the smallest star: a center and one leaf.
const MinStarNodes = 2

// MinCompleteNodes is the smallest complete graph with at least one edge.
const MinCompleteNodes = 2

// MinGridDim is the smallest allowed number of rows or columns.
const MinGridDim = 1

// MinRandomNodes is the smallest vertex count accepted by the random constructors.
const MinRandomNodes = 1

//-----------------------------------------------------------------------------
// Probability bounds
//-----------------------------------------------------------------------------

const (
	// MinProbability is the lower bound accepted by RandomSparse.
	MinProbability = 0.0
	// MaxProbability is the upper bound accepted by RandomSparse.
	MaxProbability = 1.0
)
