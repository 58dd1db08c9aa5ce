// Package gridpath finds shortest paths on 4-connected grids with A*.
//
// A Grid is a fixed rows x cols matrix of walkable or blocked cells. Moves go
// up, down, left or right at unit cost and the Manhattan distance guides the
// search. It exposes three entry points:
//
//   - FindPath and Search: run the algorithm to completion.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//   - SolveAll: run many independent queries against one grid with a bounded worker pool.
//
// Ties in the frontier are broken by lower f, then lower h, then insertion
// order, so results are reproducible.
package gridpath
