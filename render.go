package gridpath

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// Map symbols shared by Render and ParseMap.
const (
	SymbolFree    = '.'
	SymbolBlocked = '#'
	SymbolPath    = '*'
	SymbolStart   = 'S'
	SymbolGoal    = 'G'
)

// Canvas lays out grid, path and endpoints as one symbol per cell.
// Start and goal are drawn last so they win over path marks.
func Canvas(grid *Grid, path Path, start, goal Cell) [][]byte {
	display := make([][]byte, grid.rows)
	for r := range display {
		display[r] = make([]byte, grid.cols)
		for c := range display[r] {
			display[r][c] = SymbolFree
			if grid.blocked[r*grid.cols+c] {
				display[r][c] = SymbolBlocked
			}
		}
	}
	mark := func(cell Cell, symbol byte) {
		if grid.InBounds(cell) {
			display[cell.Row][cell.Col] = symbol
		}
	}
	for _, cell := range path {
		mark(cell, SymbolPath)
	}
	mark(start, SymbolStart)
	mark(goal, SymbolGoal)
	return display
}

// Render formats Canvas output with cells separated by spaces, one row per line.
func Render(grid *Grid, path Path, start, goal Cell) string {
	var b strings.Builder
	for _, row := range Canvas(grid, path, start, goal) {
		for i, symbol := range row {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(symbol)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Map is a grid read from text together with its optional endpoints.
type Map struct {
	Grid     *Grid
	Start    Cell
	Goal     Cell
	HasStart bool
	HasGoal  bool
}

// ParseMap reads the text form produced by Render. Blank lines and spaces
// between symbols are ignored, path marks read as free cells, and every row
// must have the same width.
func ParseMap(r io.Reader) (*Map, error) {
	var rows [][]rune
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		row := []rune(strings.Map(func(ch rune) rune {
			if unicode.IsSpace(ch) {
				return -1
			}
			return ch
		}, scanner.Text()))
		if len(row) == 0 {
			continue
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, errors.Wrapf(ErrMalformedMap, "row %d has %d cells, want %d", len(rows), len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading map")
	}
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrMalformedMap, "empty map")
	}

	grid, err := NewGrid(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	m := &Map{Grid: grid}
	for r, row := range rows {
		for c, symbol := range row {
			cell := Cell{Row: r, Col: c}
			switch symbol {
			case SymbolFree, SymbolPath:
			case SymbolBlocked:
				grid.blocked[grid.index(cell)] = true
			case SymbolStart:
				if m.HasStart {
					return nil, errors.Wrapf(ErrMalformedMap, "second start at %v", cell)
				}
				m.Start, m.HasStart = cell, true
			case SymbolGoal:
				if m.HasGoal {
					return nil, errors.Wrapf(ErrMalformedMap, "second goal at %v", cell)
				}
				m.Goal, m.HasGoal = cell, true
			default:
				return nil, errors.Wrapf(ErrMalformedMap, "unknown symbol %q at %v", symbol, cell)
			}
		}
	}
	return m, nil
}
