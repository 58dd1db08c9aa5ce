package gridpath

import (
	"fmt"

	"github.com/pkg/errors"
)

// Cell is a (row, column) coordinate on a Grid.
type Cell struct {
	Row int
	Col int
}

func (c Cell) String() string { return fmt.Sprintf("(%d, %d)", c.Row, c.Col) }

// Path is an ordered list of cells from start to goal, both inclusive.
type Path []Cell

// Steps returns the number of moves along the path.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// directions lists neighbor offsets in expansion order: up, down, left, right.
var directions = [4]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a fixed-size matrix of walkable or blocked cells.
type Grid struct {
	rows    int
	cols    int
	blocked []bool
}

// NewGrid returns a rows x cols grid with every cell walkable.
func NewGrid(rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%d", rows, cols)
	}
	return &Grid{rows: rows, cols: cols, blocked: make([]bool, rows*cols)}, nil
}

func (g *Grid) Rows() int { return g.rows }
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsBlocked reports whether c holds an obstacle. Out-of-bounds cells count as blocked.
func (g *Grid) IsBlocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[g.index(c)]
}

// IsWalkable reports whether c is inside the grid and free.
func (g *Grid) IsWalkable(c Cell) bool {
	return !g.IsBlocked(c)
}

// SetBlocked marks or clears an obstacle at c.
func (g *Grid) SetBlocked(c Cell, blocked bool) error {
	if !g.InBounds(c) {
		return errors.Wrapf(ErrOutOfBounds, "cell %v on %dx%d grid", c, g.rows, g.cols)
	}
	g.blocked[g.index(c)] = blocked
	return nil
}

// Block marks every given cell as an obstacle.
func (g *Grid) Block(cells ...Cell) error {
	for _, c := range cells {
		if err := g.SetBlocked(c, true); err != nil {
			return err
		}
	}
	return nil
}

// BlockedCells returns the obstacles in row-major order.
func (g *Grid) BlockedCells() []Cell {
	var cells []Cell
	for i, b := range g.blocked {
		if b {
			cells = append(cells, Cell{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return cells
}

func (g *Grid) index(c Cell) int { return c.Row*g.cols + c.Col }

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
func Manhattan(a, b Cell) int {
	return absInt(a.Row-b.Row) + absInt(a.Col-b.Col)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
