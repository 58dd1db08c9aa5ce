package gridpath

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveAll(t *testing.T) {
	g := mustGrid(t, 5, 5, Cell{1, 1}, Cell{1, 2}, Cell{2, 1}, Cell{2, 2})
	queries := []Query{
		{Start: Cell{0, 0}, Goal: Cell{4, 4}},
		{Start: Cell{1, 1}, Goal: Cell{4, 4}},
		{Start: Cell{4, 0}, Goal: Cell{0, 4}},
		{Start: Cell{3, 3}, Goal: Cell{3, 3}},
	}

	results, err := SolveAll(context.Background(), g, queries, WithWorkers(2))
	require.NoError(t, err)
	require.Len(t, results, len(queries))

	for i, r := range results {
		assert.Equal(t, queries[i], r.Query)
	}

	require.NoError(t, results[0].Err)
	assert.Equal(t, 8, results[0].Result.TotalCost)

	assert.True(t, errors.Is(results[1].Err, ErrInvalidEndpoint))
	assert.Empty(t, results[1].Result.Path)

	require.NoError(t, results[2].Err)
	requireValidPath(t, g, results[2].Result.Path, Cell{4, 0}, Cell{0, 4})

	require.NoError(t, results[3].Err)
	assert.Equal(t, Path{{3, 3}}, results[3].Result.Path)
}

func TestSolveAll_SharedGridMatchesSequential(t *testing.T) {
	g := mustGrid(t, 8, 8, Cell{2, 2}, Cell{2, 3}, Cell{2, 4}, Cell{5, 5}, Cell{6, 5})
	var queries []Query
	for r := 0; r < 8; r += 3 {
		for c := 0; c < 8; c += 2 {
			queries = append(queries, Query{Start: Cell{r, c}, Goal: Cell{7 - r, 7 - c}})
		}
	}

	results, err := SolveAll(context.Background(), g, queries, WithWorkers(4))
	require.NoError(t, err)
	for i, q := range queries {
		want, wantErr := Search(g, q.Start, q.Goal)
		assert.Equal(t, want, results[i].Result)
		assert.Equal(t, wantErr == nil, results[i].Err == nil)
	}
}

func TestSolveAll_Cancelled(t *testing.T) {
	g := mustGrid(t, 3, 3)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := SolveAll(ctx, g, []Query{{Start: Cell{0, 0}, Goal: Cell{2, 2}}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Nil(t, results)
}
