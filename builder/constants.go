// Package builder defines shared constants used by the edge-list constructors.
package builder

// Constructor names used to prefix errors.
const (
	MethodBuild        = "Build"
	MethodPath         = "Path"
	MethodCycle        = "Cycle"
	MethodStar         = "Star"
	MethodComplete     = "Complete"
	MethodGrid         = "Grid"
	MethodRandomSparse = "RandomSparse"
)

// MinPathNodes is the smallest meaningful size for a path (one edge).
const MinPathNodes = 2

// MinCycleNodes is the smallest ring without loops or parallel edges.
const MinCycleNodes = 3

// MinStarLeaves is the smallest number of leaves around a star center.
const MinStarLeaves = 1

// MinCompleteNodes is the smallest complete graph (a single node, no edges).
const MinCompleteNodes = 1

// MinGridDim is the smallest grid side.
const MinGridDim = 1

// MinRandomSparseNodes is the smallest node count for RandomSparse.
const MinRandomSparseNodes = 1

// Probability domain for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
