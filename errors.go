package gridastar

import "errors"

// Sentinel errors for search operations.
var (
	// ErrOutOfBounds is returned when the start or goal position lies outside the grid.
	// It is a usage error, distinct from a goal that simply cannot be reached.
	ErrOutOfBounds = errors.New("position out of grid bounds")

	// ErrRaggedGrid is returned when the rows of a grid differ in length.
	ErrRaggedGrid = errors.New("grid rows differ in length")

	// ErrBudgetExhausted is returned when a search configured with WithMaxExpansions
	// extracts its maximum number of nodes without reaching the goal.
	ErrBudgetExhausted = errors.New("search expansion budget exhausted")

	// errEmptyFrontier never leaves the package: an empty frontier means "no path".
	errEmptyFrontier = errors.New("frontier is empty")
)
