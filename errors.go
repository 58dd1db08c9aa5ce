package gridpath

import "github.com/pkg/errors"

var (
	// ErrInvalidEndpoint is returned when start or goal is outside the grid or blocked.
	ErrInvalidEndpoint = errors.New("invalid endpoint")
	// ErrNoPathFound is returned when the frontier empties before reaching the goal.
	ErrNoPathFound = errors.New("no path found")
	// ErrInvalidDimensions is returned for grids with a non-positive side.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfBounds is returned when mutating a cell outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrMalformedMap is returned by ParseMap for unreadable map text.
	ErrMalformedMap = errors.New("malformed map")
)
