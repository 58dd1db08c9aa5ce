package gridpath

import (
	"runtime"

	"go.uber.org/zap"
)

// ClosePolicy selects when a cell joins the closed set.
type ClosePolicy int

const (
	// ClosePolicyOnPop closes a cell when it is popped and expanded. Stale
	// frontier entries for an already closed cell are skipped.
	ClosePolicyOnPop ClosePolicy = iota
	// ClosePolicyOnPush closes a cell the first time it is pushed, so every
	// cell enters the frontier at most once. A cell keeps the cost of the
	// route that discovered it first, which can miss a cheaper route found
	// later. On unit-cost grids with the Manhattan heuristic this only
	// matters when several routes tie on f.
	ClosePolicyOnPush
)

func (p ClosePolicy) String() string {
	switch p {
	case ClosePolicyOnPop:
		return "pop"
	case ClosePolicyOnPush:
		return "push"
	default:
		return "unknown"
	}
}

// Options defines parameters for the search.
type Options struct {
	// NumberOfWorkers bounds the goroutines used by SolveAll.
	NumberOfWorkers int
	ClosePolicy     ClosePolicy
	Logger          *zap.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many searches SolveAll may run at once.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithClosePolicy picks when cells are marked closed.
func WithClosePolicy(policy ClosePolicy) Option {
	return func(options *Options) { options.ClosePolicy = policy }
}

// WithLogger attaches a logger. Searches log their outcome at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
		ClosePolicy:     ClosePolicyOnPop,
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = zap.NewNop()
	}
	return searchOptions
}
