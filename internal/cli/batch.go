package cli

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridpath"
)

func newBatchCmd(a *app) *cobra.Command {
	var (
		source  mapFlags
		queries []string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "batch [map-file]",
		Short: "Solve many start/goal queries on one map concurrently",
		Example: `  gridpath batch office.map -q 0,0:4,4 -q 4,0:0,4
  gridpath batch --random --rows 50 --cols 80 -q 0,0:49,79 -w 8`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := source.load(cmd, args)
			if err != nil {
				return err
			}
			parsed, err := parseQueries(queries)
			if err != nil {
				return err
			}
			if len(parsed) == 0 {
				if !m.HasStart || !m.HasGoal {
					return errors.New("no queries: pass --query or mark S and G in the map")
				}
				parsed = []gridpath.Query{{Start: m.Start, Goal: m.Goal}}
			}

			results, err := gridpath.SolveAll(cmd.Context(), m.Grid, parsed,
				gridpath.WithWorkers(workers),
				gridpath.WithLogger(a.logger.Named("batch")),
			)
			if err != nil {
				return err
			}

			table := newTable(cmd.OutOrStdout(), "Start", "Goal", "Steps", "Expanded", "Status")
			failed := 0
			for _, r := range results {
				status := "ok"
				if r.Err != nil {
					status = r.Err.Error()
					failed++
				}
				table.Append([]string{
					r.Query.Start.String(),
					r.Query.Goal.String(),
					strconv.Itoa(r.Result.Path.Steps()),
					strconv.Itoa(r.Result.ExpandedNodes),
					status,
				})
			}
			table.SetFooter([]string{"", "", "", "Failed", fmt.Sprintf("%d/%d", failed, len(results))})
			table.Render()
			return nil
		},
	}
	source.register(cmd)
	cmd.Flags().StringArrayVarP(&queries, "query", "q", nil, "query as ROW,COL:ROW,COL (can be repeated)")
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "number of searches to run at once")
	return cmd
}

func parseQueries(raw []string) ([]gridpath.Query, error) {
	queries := make([]gridpath.Query, 0, len(raw))
	for _, q := range raw {
		from, to, ok := strings.Cut(q, ":")
		if !ok {
			return nil, errors.Errorf("query %q must be ROW,COL:ROW,COL", q)
		}
		start, err := parseCell(from)
		if err != nil {
			return nil, err
		}
		goal, err := parseCell(to)
		if err != nil {
			return nil, err
		}
		queries = append(queries, gridpath.Query{Start: start, Goal: goal})
	}
	return queries, nil
}
