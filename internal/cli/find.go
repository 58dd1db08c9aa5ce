package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridpath"
)

func newFindCmd(a *app) *cobra.Command {
	var (
		source mapFlags
		policy string
	)
	cmd := &cobra.Command{
		Use:   "find [map-file]",
		Short: "Find a shortest path and render it",
		Long: `Find reads a map from a file, from stdin when no file or "-" is given,
or generates one with --random, then prints the map with the path marked
and a summary table.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			closePolicy, err := parsePolicy(policy)
			if err != nil {
				return err
			}
			m, err := source.loadWithEndpoints(cmd, args)
			if err != nil {
				return err
			}

			result, searchErr := gridpath.Search(m.Grid, m.Start, m.Goal,
				gridpath.WithClosePolicy(closePolicy),
				gridpath.WithLogger(a.logger.Named("find")),
			)

			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderMap(m, result.Path, a.color))
			fmt.Fprintln(out)

			table := newTable(out, "Start", "Goal", "Found", "Steps", "Expanded", "Policy")
			table.Append([]string{
				m.Start.String(),
				m.Goal.String(),
				strconv.FormatBool(result.Found),
				strconv.Itoa(result.Path.Steps()),
				strconv.Itoa(result.ExpandedNodes),
				closePolicy.String(),
			})
			table.Render()
			return searchErr
		},
	}
	source.register(cmd)
	cmd.Flags().StringVar(&policy, "policy", gridpath.ClosePolicyOnPop.String(), "close policy: pop or push")
	return cmd
}
