package models

import (
	"errors"
	"fmt"
)

// ErrRaggedGrid indicates that the rows of a grid differ in length.
var ErrRaggedGrid = errors.New("grid rows have different lengths")

// Grid is a row-major rectangular block of cells.
type Grid [][]Cell

// NormalizeGrid wraps a single flat row as a one-row grid.
func NormalizeGrid(row []Cell) Grid {
	return Grid{row}
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns, taken from the first row.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Empty reports whether the grid has no cells.
func (g Grid) Empty() bool {
	return g.Rows() == 0 || g.Cols() == 0
}

// Validate checks that every row has the same length.
func (g Grid) Validate() error {
	cols := g.Cols()
	for i, row := range g {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedGrid, i+1, len(row), cols)
		}
	}
	return nil
}
