// Package models defines data structures for spreadsheet-to-LaTeX rendering.
package models

// Underline is the underline variant of a cell font.
type Underline int

const (
	// UnderlineNone means the font is not underlined.
	UnderlineNone Underline = iota
	// UnderlineSingle is a plain single underline.
	UnderlineSingle
	// UnderlineOther covers double, accounting and any other underline kind.
	UnderlineOther
)

// NoColor is the font color treated as "no color" by the formatter.
const NoColor = "#000000"

// Style holds the whole-cell font attributes read for each cell.
type Style struct {
	Bold          bool      `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic        bool      `json:"italic,omitempty" yaml:"italic,omitempty"`
	Strikethrough bool      `json:"strikethrough,omitempty" yaml:"strikethrough,omitempty"`
	Subscript     bool      `json:"subscript,omitempty" yaml:"subscript,omitempty"`
	Superscript   bool      `json:"superscript,omitempty" yaml:"superscript,omitempty"`
	Underline     Underline `json:"underline,omitempty" yaml:"underline,omitempty"`
	// Color is a #RRGGBB string. Empty and NoColor both mean unset.
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// HasColor reports whether the style carries a color other than the default.
func (s Style) HasColor() bool {
	return s.Color != "" && s.Color != NoColor
}

// Cell is a single spreadsheet cell: its raw scalar value and font style.
type Cell struct {
	// Value is a string, int64, float64 or bool. "" is a blank cell.
	Value interface{} `json:"value" yaml:"value"`
	Style Style       `json:"style,omitempty" yaml:"style,omitempty"`
}
