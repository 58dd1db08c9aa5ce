package cli

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath"
)

func TestStepCmd_RunsToGoal(t *testing.T) {
	out, err := execute(t, "S..G\n", "step")
	require.NoError(t, err)
	assert.Contains(t, out, "CURRENT")
	assert.Contains(t, out, "(0, 3)")
	assert.Contains(t, out, "S * * G")
	assert.Contains(t, out, "path of 3 steps")
}

func TestStepCmd_MaxSteps(t *testing.T) {
	out, err := execute(t, obstacleMap, "step", "--max-steps", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "stopped after 2 steps")
}

func TestStepCmd_NoPath(t *testing.T) {
	_, err := execute(t, "S#G\n", "step")
	require.Error(t, err)
	assert.True(t, errors.Is(err, gridpath.ErrNoPathFound))
}
