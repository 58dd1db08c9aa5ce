package gridpath

// Result contains the outcome of a search
type Result struct {
	Path          Path
	TotalCost     int
	ExpandedNodes int
	Found         bool
}

// Search runs A* from start to goal on grid.
//
// It returns an error wrapping ErrInvalidEndpoint when start or goal is out of
// bounds or blocked, and one wrapping ErrNoPathFound when no route exists. The
// grid is only read, so concurrent searches may share it.
func Search(grid *Grid, start, goal Cell, options ...Option) (Result, error) {
	stepper, err := NewStepper(grid, start, goal, options...)
	if err != nil {
		applyOptions(options).Logger.Debug("search rejected endpoints")
		return Result{}, err
	}
	return stepper.Run()
}

// FindPath returns a shortest path from start to goal, or an empty path and
// the reason none was produced.
func FindPath(grid *Grid, start, goal Cell, options ...Option) (Path, error) {
	result, err := Search(grid, start, goal, options...)
	return result.Path, err
}
