package cli

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdrpinto/gridpath/pid"
)

// pidFlags configures a PID loop against a first-order plant whose
// measurement moves by output*dt each step.
type pidFlags struct {
	kp, ki, kd float64
	setpoint   float64
	initial    float64
	dt         float64
	steps      int
}

func newPIDCmd(a *app) *cobra.Command {
	var f pidFlags
	cmd := &cobra.Command{
		Use:   "pid",
		Short: "Drive a PID controller against a simple integrating plant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			controller, err := pid.New(f.kp, f.ki, f.kd)
			if err != nil {
				return err
			}
			logger := a.logger.Named("pid")

			table := newTable(cmd.OutOrStdout(), "Step", "Measured", "Error", "Output")
			measured := f.initial
			for step := 1; step <= f.steps; step++ {
				output, err := controller.Compute(f.setpoint, measured, f.dt)
				if err != nil {
					return err
				}
				table.Append([]string{
					strconv.Itoa(step),
					formatFloat(measured),
					formatFloat(f.setpoint - measured),
					formatFloat(output),
				})
				logger.Debug("pid step", zap.Int("step", step), zap.Float64("measured", measured), zap.Float64("output", output))
				measured += output * f.dt
			}
			table.Render()
			return nil
		},
	}
	cmd.Flags().Float64Var(&f.kp, "kp", 1, "proportional gain")
	cmd.Flags().Float64Var(&f.ki, "ki", 0, "integral gain")
	cmd.Flags().Float64Var(&f.kd, "kd", 0, "derivative gain")
	cmd.Flags().Float64Var(&f.setpoint, "setpoint", 10, "target value")
	cmd.Flags().Float64Var(&f.initial, "initial", 0, "initial measurement")
	cmd.Flags().Float64Var(&f.dt, "dt", 0.1, "time step in seconds")
	cmd.Flags().IntVar(&f.steps, "steps", 20, "number of control steps")
	return cmd
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
