package cli

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridpath"
)

// mapFlags selects where a command gets its grid from.
type mapFlags struct {
	start string
	goal  string

	random   bool
	rows     int
	cols     int
	seed     int64
	clusters int
	walk     int
	density  float64
}

func (f *mapFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.start, "start", "", "start cell as ROW,COL (overrides S in the map)")
	cmd.Flags().StringVar(&f.goal, "goal", "", "goal cell as ROW,COL (overrides G in the map)")
	cmd.Flags().BoolVar(&f.random, "random", false, "generate a map with clustered random walls")
	cmd.Flags().IntVar(&f.rows, "rows", 24, "rows of a random map")
	cmd.Flags().IntVar(&f.cols, "cols", 40, "columns of a random map")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "seed of a random map")
	cmd.Flags().IntVar(&f.clusters, "clusters", 8, "wall clusters of a random map")
	cmd.Flags().IntVar(&f.walk, "walk", 200, "random walk length per wall cluster")
	cmd.Flags().Float64Var(&f.density, "density", 0.25, "probability a walk step leaves a wall")
}

// load reads the map from args[0], stdin, or the random generator and
// applies --start/--goal overrides.
func (f *mapFlags) load(cmd *cobra.Command, args []string) (*gridpath.Map, error) {
	var (
		m   *gridpath.Map
		err error
	)
	switch {
	case f.random:
		m, err = generateMap(f.rows, f.cols, f.clusters, f.walk, f.density, f.seed)
	case len(args) == 0 || args[0] == "-":
		m, err = gridpath.ParseMap(cmd.InOrStdin())
	default:
		m, err = readMapFile(args[0])
	}
	if err != nil {
		return nil, err
	}

	if f.start != "" {
		if m.Start, err = parseCell(f.start); err != nil {
			return nil, err
		}
		m.HasStart = true
	}
	if f.goal != "" {
		if m.Goal, err = parseCell(f.goal); err != nil {
			return nil, err
		}
		m.HasGoal = true
	}
	return m, nil
}

func (f *mapFlags) loadWithEndpoints(cmd *cobra.Command, args []string) (*gridpath.Map, error) {
	m, err := f.load(cmd, args)
	if err != nil {
		return nil, err
	}
	if !m.HasStart || !m.HasGoal {
		return nil, errors.New("map needs a start and a goal: mark S and G or pass --start and --goal")
	}
	return m, nil
}

func readMapFile(path string) (*gridpath.Map, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening map")
	}
	defer file.Close()
	m, err := gridpath.ParseMap(file)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}
	return m, nil
}

func parseCell(s string) (gridpath.Cell, error) {
	var c gridpath.Cell
	if _, err := fmt.Sscanf(s, "%d,%d", &c.Row, &c.Col); err != nil {
		return gridpath.Cell{}, errors.Wrapf(err, "cell %q must be ROW,COL", s)
	}
	return c, nil
}

// generateMap grows wall clusters by random walks and keeps start and goal free.
func generateMap(rows, cols, clusters, walk int, density float64, seed int64) (*gridpath.Map, error) {
	grid, err := gridpath.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	r := rand.New(rand.NewSource(seed))

	start := gridpath.Cell{Row: r.Intn(rows), Col: r.Intn(cols)}
	goal := start
	for rows*cols > 1 && goal == start {
		goal = gridpath.Cell{Row: r.Intn(rows), Col: r.Intn(cols)}
	}

	steps := []gridpath.Cell{{Row: 1}, {Row: -1}, {Col: 1}, {Col: -1}}
	for c := 0; c < clusters; c++ {
		p := gridpath.Cell{Row: r.Intn(rows), Col: r.Intn(cols)}
		for s := 0; s < walk; s++ {
			if r.Float64() < density && p != start && p != goal {
				if err := grid.SetBlocked(p, true); err != nil {
					return nil, err
				}
			}
			d := steps[r.Intn(len(steps))]
			np := gridpath.Cell{Row: p.Row + d.Row, Col: p.Col + d.Col}
			if grid.InBounds(np) {
				p = np
			}
		}
	}
	return &gridpath.Map{Grid: grid, Start: start, Goal: goal, HasStart: true, HasGoal: true}, nil
}
