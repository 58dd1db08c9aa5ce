package cli

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridpath"
)

func newStepCmd(a *app) *cobra.Command {
	var (
		source   mapFlags
		policy   string
		maxSteps int
	)
	cmd := &cobra.Command{
		Use:   "step [map-file]",
		Short: "Trace the search one expansion at a time",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			closePolicy, err := parsePolicy(policy)
			if err != nil {
				return err
			}
			m, err := source.loadWithEndpoints(cmd, args)
			if err != nil {
				return err
			}
			stepper, err := gridpath.NewStepper(m.Grid, m.Start, m.Goal,
				gridpath.WithClosePolicy(closePolicy),
				gridpath.WithLogger(a.logger.Named("step")),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			table := newTable(out, "Step", "Current", "Open", "Closed")
			var snap gridpath.StepSnapshot
			for !snap.Done {
				if maxSteps > 0 && snap.StepIndex >= maxSteps {
					break
				}
				snap = stepper.Step()
				table.Append([]string{
					strconv.Itoa(snap.StepIndex),
					snap.Current.String(),
					strconv.Itoa(len(snap.Open)),
					strconv.Itoa(len(snap.Closed)),
				})
			}
			table.Render()
			fmt.Fprintln(out)
			fmt.Fprint(out, renderMap(m, snap.Path, a.color))

			switch {
			case !snap.Done:
				fmt.Fprintf(out, "stopped after %d steps\n", snap.StepIndex)
				return nil
			case !snap.Found:
				return errors.Wrapf(gridpath.ErrNoPathFound, "from %v to %v", m.Start, m.Goal)
			}
			fmt.Fprintf(out, "path of %d steps\n", snap.Path.Steps())
			return nil
		},
	}
	source.register(cmd)
	cmd.Flags().StringVar(&policy, "policy", gridpath.ClosePolicyOnPop.String(), "close policy: pop or push")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "stop after this many expansions (0 runs to completion)")
	return cmd
}
