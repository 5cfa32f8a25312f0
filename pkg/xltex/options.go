// Package xltex renders spreadsheet selections as LaTeX tables.
package xltex

import (
	"fmt"

	"github.com/ukaji3/xltex-go/pkg/xltex/latex"
)

// Variant is a preset combination of environment, blank-cell text and sink.
type Variant string

const (
	// VariantText renders a tabular as plain text with empty blank cells.
	VariantText Variant = "text"
	// VariantMath renders an array as plain text with blank cells as spaces.
	VariantMath Variant = "math"
	// VariantPreview renders an array wrapped in a standalone document for typesetting.
	VariantPreview Variant = "preview"
)

// ParseVariant parses a variant name.
func ParseVariant(s string) (Variant, error) {
	switch v := Variant(s); v {
	case VariantText, VariantMath, VariantPreview:
		return v, nil
	}
	return "", fmt.Errorf("invalid variant: %s (must be text, math, or preview)", s)
}

// Sink is where a rendered document is written to.
type Sink string

const (
	// SinkText emits the LaTeX table source as is.
	SinkText Sink = "text"
	// SinkPreview emits a standalone document ready for typesetting.
	SinkPreview Sink = "preview"
)

// Options configures rendering behavior.
type Options struct {
	// Variant selects the preset (text, math, preview).
	Variant Variant
	// Sheet is the sheet to read. Empty means the active sheet.
	Sheet string
	// Range is the selection in A1 notation. Empty means the print area
	// when UsePrintArea is set, otherwise the detected data region.
	Range string
	// UsePrintArea selects the sheet's print area when Range is empty.
	UsePrintArea bool
	// Environment overrides the variant's table environment.
	Environment latex.Environment
	// BlankCell overrides the variant's replacement for empty cells.
	// If nil, defaults to "" for text, " " otherwise.
	BlankCell *string
	// Escape quotes LaTeX special characters in cell text.
	Escape bool
}

// DefaultOptions returns default rendering options.
func DefaultOptions() Options {
	return Options{
		Variant: VariantText,
	}
}

// ResolvedEnvironment returns the table environment to render.
func (o Options) ResolvedEnvironment() latex.Environment {
	if o.Environment != "" {
		return o.Environment
	}
	if o.Variant == VariantMath || o.Variant == VariantPreview {
		return latex.Array
	}
	return latex.Tabular
}

// ResolvedBlankCell returns the text used for empty cells.
func (o Options) ResolvedBlankCell() string {
	if o.BlankCell != nil {
		return *o.BlankCell
	}
	if o.Variant == VariantMath || o.Variant == VariantPreview {
		return " "
	}
	return ""
}

// Sink returns where the document is written to.
func (o Options) Sink() Sink {
	if o.Variant == VariantPreview {
		return SinkPreview
	}
	return SinkText
}

// LatexOptions returns the renderer options for o.
func (o Options) LatexOptions() latex.Options {
	return latex.Options{
		Environment: o.ResolvedEnvironment(),
		BlankCell:   o.ResolvedBlankCell(),
		Escape:      o.Escape,
	}
}
