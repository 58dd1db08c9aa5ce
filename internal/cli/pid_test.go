package cli

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridpath/pid"
)

func TestPIDCmd(t *testing.T) {
	out, err := execute(t, "", "pid", "--kp", "1", "--setpoint", "10", "--initial", "7", "--dt", "1", "--steps", "2")
	require.NoError(t, err)
	// Step 1 outputs 3, which moves the plant to the setpoint.
	assert.Contains(t, out, "3.0000")
	assert.Contains(t, out, "10.0000")
	assert.Contains(t, out, "OUTPUT")
}

func TestPIDCmd_Errors(t *testing.T) {
	_, err := execute(t, "", "pid", "--kd", "-1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pid.ErrNegativeGain))

	_, err = execute(t, "", "pid", "--dt", "0")
	require.Error(t, err)
	assert.True(t, errors.Is(err, pid.ErrNonPositiveStep))
}
