package gridpath

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Query is one start/goal pair for SolveAll.
type Query struct {
	Start Cell
	Goal  Cell
}

// BatchResult pairs a query with its outcome. Err holds per-query failures
// such as ErrInvalidEndpoint or ErrNoPathFound.
type BatchResult struct {
	Query  Query
	Result Result
	Err    error
}

// SolveAll runs every query against grid using at most NumberOfWorkers
// goroutines. Results keep the order of queries. Only context cancellation
// aborts the batch.
func SolveAll(ctx context.Context, grid *Grid, queries []Query, options ...Option) ([]BatchResult, error) {
	searchOptions := applyOptions(options)
	results := make([]BatchResult, len(queries))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(searchOptions.NumberOfWorkers)
	for i, query := range queries {
		i, query := i, query
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			result, err := Search(grid, query.Start, query.Goal, options...)
			results[i] = BatchResult{Query: query, Result: result, Err: err}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
