// Package parser reads spreadsheet selections into grids of styled cells.
package parser

import "errors"

// ErrInvalidSelection indicates the selection is not a single rectangular range.
var ErrInvalidSelection = errors.New("selection is not a single rectangular range")

// ErrEmptySheet indicates the sheet has no data to select.
var ErrEmptySheet = errors.New("sheet has no data")

// ErrNoPrintArea indicates the sheet defines no print area.
var ErrNoPrintArea = errors.New("sheet has no print area")

// ErrInvalidGrid indicates a grid document that is not an array of rows or cells.
var ErrInvalidGrid = errors.New("invalid grid document")

// ErrUnsupportedFormat indicates an unknown grid document format.
var ErrUnsupportedFormat = errors.New("unsupported grid format")
