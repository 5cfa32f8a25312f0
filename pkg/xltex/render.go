package xltex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/xltex-go/pkg/xltex/latex"
	"github.com/ukaji3/xltex-go/pkg/xltex/models"
	"github.com/ukaji3/xltex-go/pkg/xltex/output"
	"github.com/ukaji3/xltex-go/pkg/xltex/parser"
)

// Result is a rendered selection.
type Result struct {
	// BookName is the workbook file name (no path). Empty for grid input.
	BookName string `json:"book_name,omitempty" yaml:"book_name,omitempty"`
	// SheetName is the sheet the selection was read from.
	SheetName string `json:"sheet_name,omitempty" yaml:"sheet_name,omitempty"`
	// Area is the selection bounds.
	Area *models.Area `json:"area,omitempty" yaml:"area,omitempty"`
	// Document is the rendered table.
	Document *models.Document `json:"document" yaml:"document"`
	// Output is the document written through the configured sink.
	Output string `json:"output" yaml:"output"`
}

// Render reads the selection described by opts from an xlsx file and
// renders it as LaTeX.
func Render(path string, opts Options) (*Result, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	result, err := RenderFile(f, opts)
	if err != nil {
		return nil, err
	}
	result.BookName = filepath.Base(path)
	return result, nil
}

// RenderFile renders the selection described by opts from an open workbook.
func RenderFile(f *excelize.File, opts Options) (*Result, error) {
	sheetName, area, err := resolveSelection(f, opts)
	if err != nil {
		return nil, err
	}

	grid, err := parser.ReadGrid(f, sheetName, area)
	if err != nil {
		return nil, NewRenderError(sheetName, area.Ref(), err)
	}

	result := RenderGrid(grid, opts)
	result.SheetName = sheetName
	result.Area = &area
	return result, nil
}

// RenderGrid renders an already decoded grid.
func RenderGrid(grid models.Grid, opts Options) *Result {
	doc := latex.Render(grid, opts.LatexOptions())

	out := output.Text(doc)
	if opts.Sink() == SinkPreview {
		out = output.Preview(doc)
	}

	return &Result{
		Document: doc,
		Output:   out,
	}
}

// resolveSelection picks the sheet and area to read: an explicit range,
// the print area, or the detected data region, in that order.
func resolveSelection(f *excelize.File, opts Options) (string, models.Area, error) {
	sheetName := opts.Sheet
	var (
		area models.Area
		err  error
	)

	if opts.Range != "" {
		var refSheet string
		refSheet, area, err = parser.ParseSelection(opts.Range)
		if err != nil {
			return "", models.Area{}, NewRenderError(sheetName, opts.Range, err)
		}
		if refSheet != "" {
			if sheetName != "" && sheetName != refSheet {
				return "", models.Area{}, NewRenderError(sheetName, opts.Range,
					fmt.Errorf("%w: range refers to sheet %q", ErrInvalidSelection, refSheet))
			}
			sheetName = refSheet
		}
	}

	if sheetName == "" {
		sheetName = f.GetSheetName(f.GetActiveSheetIndex())
	}
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return "", models.Area{}, NewRenderError(sheetName, opts.Range, ErrSheetNotFound)
	}

	if opts.Range != "" {
		return sheetName, area, nil
	}

	if opts.UsePrintArea {
		area, err = parser.PrintAreaSelection(f, sheetName)
	} else {
		area, err = parser.DetectSelection(f, sheetName)
	}
	if err != nil {
		return "", models.Area{}, NewRenderError(sheetName, "", err)
	}
	return sheetName, area, nil
}
