package xltex

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xltex-go/pkg/xltex/models"
	"github.com/ukaji3/xltex-go/pkg/xltex/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the requested sheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// Selection and grid errors, re-exported from the parser.
var (
	ErrInvalidSelection = parser.ErrInvalidSelection
	ErrEmptySheet       = parser.ErrEmptySheet
	ErrNoPrintArea      = parser.ErrNoPrintArea
	ErrRaggedGrid       = models.ErrRaggedGrid
	ErrInvalidGrid      = parser.ErrInvalidGrid
)

// RenderError represents an error while rendering a selection.
type RenderError struct {
	SheetName string
	Range     string
	Err       error
}

func (e *RenderError) Error() string {
	if e.Range == "" {
		return fmt.Sprintf("render error in sheet %q: %v", e.SheetName, e.Err)
	}
	return fmt.Sprintf("render error in sheet %q (%s): %v", e.SheetName, e.Range, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// NewRenderError creates a new RenderError.
func NewRenderError(sheetName, rangeRef string, err error) *RenderError {
	return &RenderError{
		SheetName: sheetName,
		Range:     rangeRef,
		Err:       err,
	}
}

// IsInvalidSelection reports whether err means the selection is not a
// single rectangular range.
func IsInvalidSelection(err error) bool {
	return errors.Is(err, ErrInvalidSelection) || errors.Is(err, ErrRaggedGrid)
}
