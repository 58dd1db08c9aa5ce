package gridpath

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepper_Corridor(t *testing.T) {
	for _, policy := range policies {
		t.Run(policy.String(), func(t *testing.T) {
			g := mustGrid(t, 1, 3)
			s, err := NewStepper(g, Cell{0, 0}, Cell{0, 2}, WithClosePolicy(policy))
			require.NoError(t, err)
			require.False(t, s.Done())

			snap := s.Step()
			assert.Equal(t, 1, snap.StepIndex)
			assert.Equal(t, Cell{0, 0}, snap.Current)
			assert.Equal(t, []Cell{{0, 0}}, snap.Closed)
			assert.Equal(t, []Cell{{0, 1}}, snap.Open)
			assert.False(t, snap.Done)
			assert.Empty(t, snap.Path)

			snap = s.Step()
			assert.Equal(t, 2, snap.StepIndex)
			assert.Equal(t, Cell{0, 1}, snap.Current)
			assert.Equal(t, []Cell{{0, 0}, {0, 1}}, snap.Closed)
			assert.Equal(t, []Cell{{0, 2}}, snap.Open)

			snap = s.Step()
			assert.Equal(t, 3, snap.StepIndex)
			assert.True(t, snap.Done)
			assert.True(t, snap.Found)
			assert.Equal(t, Cell{0, 2}, snap.Current)
			assert.Equal(t, Path{{0, 0}, {0, 1}, {0, 2}}, snap.Path)
			assert.True(t, s.Done())

			// Stepping a finished search is a no-op.
			again := s.Step()
			assert.Equal(t, snap, again)
		})
	}
}

func TestStepper_ExhaustsFrontier(t *testing.T) {
	g := mustGrid(t, 2, 3, Cell{0, 1}, Cell{1, 1})
	s, err := NewStepper(g, Cell{0, 0}, Cell{0, 2})
	require.NoError(t, err)

	var snap StepSnapshot
	for i := 0; i < 10 && !snap.Done; i++ {
		snap = s.Step()
	}
	require.True(t, snap.Done)
	assert.False(t, snap.Found)
	assert.Empty(t, snap.Open)
	assert.ElementsMatch(t, []Cell{{0, 0}, {1, 0}}, snap.Closed)

	result, err := s.Run()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoPathFound))
	assert.Equal(t, 2, result.ExpandedNodes)
}

func TestStepper_RunAfterPartialSteps(t *testing.T) {
	g := mustGrid(t, 5, 5, Cell{1, 1}, Cell{1, 2}, Cell{2, 1}, Cell{2, 2})
	s, err := NewStepper(g, Cell{0, 0}, Cell{4, 4})
	require.NoError(t, err)

	s.Step()
	s.Step()
	result, err := s.Run()
	require.NoError(t, err)
	assert.Equal(t, 8, result.TotalCost)
	requireValidPath(t, g, result.Path, Cell{0, 0}, Cell{4, 4})
}

func TestNewStepper_InvalidEndpoint(t *testing.T) {
	g := mustGrid(t, 2, 2, Cell{1, 1})
	_, err := NewStepper(g, Cell{0, 0}, Cell{1, 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidEndpoint))
	assert.Contains(t, err.Error(), "goal (1, 1)")
}
